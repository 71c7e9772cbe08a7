// Package catalog provides core types and pure query operations for a small
// book catalog, plus the filter abstraction shared by all storage engines.
//
// The package is split into two layers:
//
//   - Pure in-memory queries over a Shelf (a slice of Book) and People
//     (a slice of Person): author lookups, title keyword search, repeated
//     author detection, and mother/child pairing. These are total functions
//     without side effects.
//
//   - A SearchFilter builder that describes catalog queries in a
//     storage-agnostic way. Engine packages (postgresengine, sqliteengine,
//     memoryengine) translate a Filter into their own query language.
//
// Common usage pattern:
//
//	filter := catalog.BuildSearchFilter().
//		Matching().
//		AnyTermOf(catalog.M(catalog.FieldAuthor, "Gosling")).
//		Finalize()
//
//	books, err := store.Search(ctx, filter)
//	if err != nil {
//		// handle error
//	}
package catalog
