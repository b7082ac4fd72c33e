// Package logging assembles structured slog loggers and formatting helpers used
// across algaid.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes helpers that tag log lines with the identification
// session and component that produced them. A no-op logger is provided for
// tests and wiring code that cannot fail.
package logging
