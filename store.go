package postzaper

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding the tool catalog shown on the site.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The site only reads; WAL keeps the seed/CLI writer from blocking it.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS tools (
    slug TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    summary TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL DEFAULT 0
);
`)
	return err
}

// ListTools returns tools in catalog order. If category is non-empty,
// results are filtered to that category.
func (s *Store) ListTools(category string) ([]Tool, error) {
	var rows *sql.Rows
	var err error
	if category == "" {
		rows, err = s.db.Query(`SELECT slug, name, summary, category, position FROM tools ORDER BY position, slug`)
	} else {
		rows, err = s.db.Query(`SELECT slug, name, summary, category, position FROM tools WHERE category = ? ORDER BY position, slug`, normalizeCategory(category))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []Tool
	for rows.Next() {
		var t Tool
		if err := rows.Scan(&t.Slug, &t.Name, &t.Summary, &t.Category, &t.Position); err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

// ListCategories returns the distinct non-empty categories, sorted.
func (s *Store) ListCategories() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT category FROM tools WHERE category != '' ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// ListSlugs returns every slug in catalog order.
func (s *Store) ListSlugs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug FROM tools ORDER BY position, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slugs := []string{}
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		slugs = append(slugs, slug)
	}
	return slugs, rows.Err()
}

// GetTool returns a single tool by slug.
func (s *Store) GetTool(slug string) (Tool, error) {
	t := Tool{Slug: slug}
	err := s.db.QueryRow(`SELECT name, summary, category, position FROM tools WHERE slug = ?`, slug).
		Scan(&t.Name, &t.Summary, &t.Category, &t.Position)
	if err != nil {
		return Tool{}, err
	}
	return t, nil
}

// SaveTool upserts a tool. The category is normalized to lowercase.
func (s *Store) SaveTool(t Tool) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO tools (slug, name, summary, category, position) VALUES (?, ?, ?, ?, ?)`,
		t.Slug, t.Name, t.Summary, normalizeCategory(t.Category), t.Position)
	return err
}

// DeleteTool removes a tool by slug.
func (s *Store) DeleteTool(slug string) error {
	_, err := s.db.Exec(`DELETE FROM tools WHERE slug = ?`, slug)
	return err
}

// Count returns the number of stored tools.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM tools`).Scan(&n)
	return n, err
}

// ReplaceAll swaps the whole catalog for tools in one transaction. Positions
// follow slice order.
func (s *Store) ReplaceAll(tools []Tool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tools`); err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO tools (slug, name, summary, category, position) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, t := range tools {
		if _, err := stmt.Exec(t.Slug, t.Name, t.Summary, normalizeCategory(t.Category), i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SeedIfEmpty loads tools only when the store holds none. It reports
// whether anything was written.
func (s *Store) SeedIfEmpty(tools []Tool) (bool, error) {
	n, err := s.Count()
	if err != nil {
		return false, err
	}
	if n > 0 || len(tools) == 0 {
		return false, nil
	}
	return true, s.ReplaceAll(tools)
}

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
