// Package postgresengine provides a PostgreSQL implementation of the catalog store.
//
// This package supports multiple PostgreSQL database libraries (pgx, database/sql,
// and sqlx) through an adapter pattern, allowing flexible integration with
// existing applications.
//
// The implementation translates catalog.Filter values into SQL with case-insensitive
// pattern matching (ILIKE) on titles and authors, and supports optional structured
// logging, metrics collection, and distributed tracing through functional options.
//
// Create a store with one of the factory methods:
//   - NewCatalogStoreFromPGXPool
//   - NewCatalogStoreFromSQLDB
//   - NewCatalogStoreFromSQLX
//
// The store expects a books table with this shape (the table name is
// configurable with WithTableName):
//
//	CREATE TABLE books (
//	    book_id  TEXT PRIMARY KEY,
//	    title    TEXT NOT NULL,
//	    authors  JSONB NOT NULL,
//	    added_at TIMESTAMP WITH TIME ZONE NOT NULL
//	);
package postgresengine
