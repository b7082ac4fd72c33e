// Package main hosts the algaid CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration and logging once, loads the
// active species catalog (built-in, TOML file or SQLite store) and hands it
// to the identification session or the catalog maintenance commands.
//
// Keep this package thin: matching, catalog handling and the questionnaire
// live in internal packages and are surfaced here through flags and output
// formatting.
package main
