// Package testutil provides shared fixtures and helpers for the catalog test
// suites: the demonstrated five-book shelf, the three-person family, and
// builders for storable book records.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/bookstacks/book-catalog-go/catalog"
)

// GivenUniqueID supplies a fresh time-ordered ID for test book records.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	bookID, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return bookID
}

// DemonstrationShelf returns the well-known five-book fixture shelf.
func DemonstrationShelf() catalog.Shelf {
	return catalog.Shelf{
		{
			Title:   "Structure and Interpretation of Computer Programs",
			Authors: []string{"Abelson, Harold", "Sussman, Gerald J."},
		},
		{
			Title:   "Principles of Compiler Design",
			Authors: []string{"Aho, Alfred", "Ullman, Jeffrey"},
		},
		{
			Title:   "Programming in Modula-2",
			Authors: []string{"Wirth, Niklaus"},
		},
		{
			Title:   "Elements of ML Programming",
			Authors: []string{"Ullman, Jeffrey"},
		},
		{
			Title:   "The Java Language Specification",
			Authors: []string{"Gosling, James", "Joy, Bill", "Steele, Guy", "Bracha, Gilad"},
		},
	}
}

// DemonstrationFamily returns the well-known three-person fixture family:
// two children and their mother.
func DemonstrationFamily() catalog.People {
	return catalog.People{
		{Name: "Lara", IsMale: false},
		{Name: "Bob", IsMale: true},
		{Name: "Julie", IsMale: false, Children: []string{"Lara", "Bob"}},
	}
}

// ToStorable converts a Book into its storable record with a fresh ID.
func ToStorable(t testing.TB, book catalog.Book, addedAt time.Time) catalog.StorableBook {
	t.Helper()

	record, err := catalog.BuildStorableBookFrom(GivenUniqueID(t).String(), book, addedAt)
	assert.NoError(t, err, "error in arranging test data")

	return record
}

// GivenStorableShelf converts a whole Shelf into storable records, spacing
// the AddedAt timestamps one minute apart starting at the given time.
func GivenStorableShelf(t testing.TB, shelf catalog.Shelf, start time.Time) catalog.StorableBooks {
	t.Helper()

	records := make(catalog.StorableBooks, 0, len(shelf))
	for i, book := range shelf {
		records = append(records, ToStorable(t, book, start.Add(time.Duration(i)*time.Minute)))
	}

	return records
}
