package testsupport

import (
	"context"
	"testing"

	"algaid/internal/catalog"
	"algaid/internal/catalogstore"
	"algaid/internal/config"
	"algaid/internal/logging"
)

// MustOpenStore opens the catalog store named by cfg and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalogstore.Store {
	t.Helper()

	store, err := catalogstore.Open(context.Background(), cfg.Catalog.Database, logging.NewNop())
	if err != nil {
		t.Fatalf("catalogstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// SeedStore replaces the stored catalog with c.
func SeedStore(t testing.TB, store *catalogstore.Store, c *catalog.Catalog) {
	t.Helper()

	if err := store.Replace(context.Background(), c, "test"); err != nil {
		t.Fatalf("store.Replace: %v", err)
	}
}
