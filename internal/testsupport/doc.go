// Package testsupport builds throwaway configs, catalog files and catalog
// stores for tests.
package testsupport
