// Package catalogstore persists a species catalog in SQLite so operators can
// maintain a catalog other than the built-in one.
//
// Rows keep an explicit position column because catalog order decides ties
// during identification. Imports replace the whole catalog inside one
// transaction while holding a file lock next to the database, so concurrent
// imports cannot interleave rows.
package catalogstore
