// Package memoryengine provides an in-memory implementation of the catalog
// store. It applies catalog.Filter.Matches directly, making it the reference
// for the matching semantics the SQL engines translate into their own query
// languages. Safe for concurrent use.
package memoryengine

import (
	"context"
	"sync"

	"github.com/bookstacks/book-catalog-go/catalog"
)

// CatalogStore holds storable books in memory, in insertion order.
type CatalogStore struct {
	mu    sync.RWMutex
	books catalog.StorableBooks

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

// NewCatalogStore creates an empty in-memory CatalogStore.
func NewCatalogStore(options ...Option) *CatalogStore {
	cs := &CatalogStore{books: make(catalog.StorableBooks, 0)}

	for _, option := range options {
		option(cs)
	}

	return cs
}

// Add appends one or multiple catalog.StorableBook(s) to the store.
func (cs *CatalogStore) Add(_ context.Context, book catalog.StorableBook, additionalBooks ...catalog.StorableBook) error {
	allBooks := catalog.StorableBooks{book}
	allBooks = append(allBooks, additionalBooks...)

	for _, b := range allBooks {
		if _, err := b.Authors(); err != nil {
			return err
		}
	}

	cs.mu.Lock()
	cs.books = append(cs.books, allBooks...)
	cs.mu.Unlock()

	if cs.logger != nil {
		cs.logger.Info("catalogstore operation: books added", "book_count", len(allBooks))
	}

	return nil
}

// Search returns all books matching the provided catalog.Filter criteria,
// in insertion order.
func (cs *CatalogStore) Search(ctx context.Context, filter catalog.Filter) (catalog.StorableBooks, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	matches := make(catalog.StorableBooks, 0)

	for _, book := range cs.books {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		authors, err := book.Authors()
		if err != nil {
			return nil, err
		}

		if filter.Matches(book.Title, authors, book.AddedAt) {
			matches = append(matches, book)
		}
	}

	if cs.logger != nil {
		cs.logger.Info("catalogstore operation: search completed", "book_count", len(matches))
	}

	return matches, nil
}
