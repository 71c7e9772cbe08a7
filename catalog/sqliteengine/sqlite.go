// Package sqliteengine provides a SQLite implementation of the catalog store
// for local, single-file catalogs. The schema is bootstrapped on open, and
// filters are translated into parameterized LIKE conditions with a LOWER()
// wrapper to reproduce the case-insensitive matching semantics shared by all
// engines.
package sqliteengine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/bookstacks/book-catalog-go/catalog"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
  book_id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  authors TEXT NOT NULL,
  added_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_books_added_at ON books(added_at);
`

// CatalogStore wraps a SQLite database holding catalog books.
type CatalogStore struct {
	db     *sql.DB
	logger catalog.Logger
}

// Option defines a functional option for configuring CatalogStore.
type Option func(*CatalogStore)

// WithLogger sets the logger for the CatalogStore.
func WithLogger(logger catalog.Logger) Option {
	return func(cs *CatalogStore) {
		cs.logger = logger
	}
}

// Open opens or creates a SQLite catalog database at the given path and
// initializes the schema if not present. Use ":memory:" for an ephemeral catalog.
func Open(dbPath string, options ...Option) (*CatalogStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing catalog schema: %w", err)
	}

	return newCatalogStore(db, options...), nil
}

func newCatalogStore(db *sql.DB, options ...Option) *CatalogStore {
	cs := &CatalogStore{db: db}

	for _, option := range options {
		option(cs)
	}

	return cs
}

// Close closes the underlying database connection.
func (cs *CatalogStore) Close() error {
	if cs.db != nil {
		return cs.db.Close()
	}

	return nil
}

// Add inserts one or multiple catalog.StorableBook(s) within a single transaction.
func (cs *CatalogStore) Add(ctx context.Context, book catalog.StorableBook, additionalBooks ...catalog.StorableBook) error {
	allBooks := catalog.StorableBooks{book}
	allBooks = append(allBooks, additionalBooks...)

	tx, err := cs.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning insert transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO books (book_id, title, authors, added_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing book insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range allBooks {
		if _, err := stmt.ExecContext(ctx, b.ID, b.Title, string(b.AuthorsJSON), b.AddedAt); err != nil {
			return fmt.Errorf("inserting book %s: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing insert transaction: %w", err)
	}

	if cs.logger != nil {
		cs.logger.Info("catalogstore operation: books added", "book_count", len(allBooks))
	}

	return nil
}

// Search returns all books matching the provided catalog.Filter criteria,
// ordered by the time they were added.
func (cs *CatalogStore) Search(ctx context.Context, filter catalog.Filter) (catalog.StorableBooks, error) {
	query, args := buildSelectQuery(filter)

	start := time.Now()
	rows, err := cs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	books := make(catalog.StorableBooks, 0)

	for rows.Next() {
		var (
			bookID  string
			title   string
			authors string
			addedAt time.Time
		)

		if err := rows.Scan(&bookID, &title, &authors, &addedAt); err != nil {
			return nil, fmt.Errorf("scanning book row: %w", err)
		}

		book, err := catalog.BuildStorableBook(bookID, title, addedAt, []byte(authors))
		if err != nil {
			return nil, err
		}

		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating book rows: %w", err)
	}

	if cs.logger != nil {
		cs.logger.Info("catalogstore operation: search completed",
			"book_count", len(books), "duration_ms", time.Since(start).Milliseconds())
	}

	return books, nil
}

// buildSelectQuery translates a catalog.Filter into a parameterized SELECT.
func buildSelectQuery(filter catalog.Filter) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0)

	sb.WriteString(`SELECT book_id, title, authors, added_at FROM books`)

	conditions := make([]string, 0)

	itemConditions := make([]string, 0, len(filter.Items()))
	for _, item := range filter.Items() {
		termConditions := make([]string, 0, len(item.Terms()))

		for _, term := range item.Terms() {
			pattern := "%" + strings.ToLower(term.Term()) + "%"

			switch term.Field() {
			case catalog.FieldTitle:
				termConditions = append(termConditions, `LOWER(title) LIKE ?`)
				args = append(args, pattern)

			case catalog.FieldAuthor:
				termConditions = append(termConditions, `LOWER(authors) LIKE ?`)
				args = append(args, pattern)
			}
		}

		if len(termConditions) == 0 {
			continue
		}

		joiner := " OR "
		if item.AllTermsMustMatch() {
			joiner = " AND "
		}

		itemConditions = append(itemConditions, "("+strings.Join(termConditions, joiner)+")")
	}

	if len(itemConditions) > 0 {
		conditions = append(conditions, "("+strings.Join(itemConditions, " OR ")+")")
	}

	if !filter.AddedFrom().IsZero() {
		conditions = append(conditions, `added_at >= ?`)
		args = append(args, filter.AddedFrom())
	}

	if !filter.AddedUntil().IsZero() {
		conditions = append(conditions, `added_at <= ?`)
		args = append(args, filter.AddedUntil())
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	sb.WriteString(" ORDER BY added_at ASC")

	return sb.String(), args
}
