package catalogstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"algaid/internal/catalog"
	"algaid/internal/logging"
)

var (
	// ErrEmptyCatalog indicates the store holds no species.
	ErrEmptyCatalog = errors.New("catalog store is empty")
	// ErrLocked indicates another process is writing the catalog.
	ErrLocked = errors.New("catalog store is locked by another import")
)

const lockRetryDelay = 50 * time.Millisecond

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// Info summarizes the stored catalog.
type Info struct {
	Path       string
	Species    int
	Source     string
	ImportedAt time.Time
}

// Open initializes or connects to the catalog database.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:     db,
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "catalogstore"),
	}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored catalog in position order.
func (s *Store) Load(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, color, texture, shape, habitat, length_class FROM species ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query species: %w", err)
	}
	defer rows.Close()

	var templates []catalog.SpeciesTemplate
	for rows.Next() {
		var t catalog.SpeciesTemplate
		var length string
		if err := rows.Scan(&t.Name, &t.Color, &t.Texture, &t.Shape, &t.Habitat, &length); err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		t.Length = catalog.LengthClass(length)
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate species: %w", err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("%w: %s (run `algaid catalog import`)", ErrEmptyCatalog, s.path)
	}

	c, err := catalog.New(templates...)
	if err != nil {
		return nil, fmt.Errorf("stored catalog invalid: %w", err)
	}
	return c, nil
}

// Replace swaps the stored catalog for c, keeping c's order. source records
// where the rows came from (for example the imported file path).
func (s *Store) Replace(ctx context.Context, c *catalog.Catalog, source string) error {
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ErrLocked, ctxErr)
		}
		return fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return ErrLocked
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			logging.WarnWithContext(s.logger, "failed to release catalog lock", "catalog_unlock_failed",
				logging.Error(err),
				logging.String("lock", s.lock.Path()),
				logging.String(logging.FieldErrorHint, "remove the stale lock file if no import is running"),
			)
		}
	}()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM species`); err != nil {
		return fmt.Errorf("clear species: %w", err)
	}
	for i, t := range c.All() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO species (position, name, color, texture, shape, habitat, length_class)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, t.Name, t.Color, t.Texture, t.Shape, t.Habitat, string(t.Length),
		); err != nil {
			return fmt.Errorf("insert species %q: %w", t.Name, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO catalog_meta (id, source, imported_at) VALUES (1, ?, ?)
         ON CONFLICT(id) DO UPDATE SET source = excluded.source, imported_at = excluded.imported_at`,
		source, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("record import metadata: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	s.logger.Info("catalog imported",
		logging.String(logging.FieldEventType, "catalog_imported"),
		logging.String("source", source),
		logging.Int("species", c.Len()),
		logging.String("database", s.path),
	)
	return nil
}

// Info reports how many species are stored and where they came from.
func (s *Store) Info(ctx context.Context) (Info, error) {
	info := Info{Path: s.path}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM species`).Scan(&info.Species); err != nil {
		return info, fmt.Errorf("count species: %w", err)
	}

	var importedRaw string
	err := s.db.QueryRowContext(ctx, `SELECT source, imported_at FROM catalog_meta WHERE id = 1`).
		Scan(&info.Source, &importedRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return info, nil
	}
	if err != nil {
		return info, fmt.Errorf("read catalog metadata: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, importedRaw); parseErr == nil {
		info.ImportedAt = ts
	}
	return info, nil
}
