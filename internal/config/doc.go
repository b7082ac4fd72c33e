// Package config loads, normalizes, and validates algaid configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the ALGAID_CATALOG environment
// fallback. Always obtain settings through this package so downstream code
// receives absolute paths, canonical log formats, and clear validation errors.
package config
