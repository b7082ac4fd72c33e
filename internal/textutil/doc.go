// Package textutil folds free-form user input so it can be compared with
// menu labels regardless of accents, case, or spacing.
package textutil
