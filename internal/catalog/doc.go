// Package catalog holds the fixed list of alga species the identifier scores
// observations against.
//
// A Catalog is built once (from the built-in table, a TOML file, or the
// catalog store) and never changes afterwards. Row order is significant:
// the matcher breaks ties in favour of the earlier species, so every loader
// and writer in this package preserves the order it was given.
package catalog
