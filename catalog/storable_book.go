package catalog

import (
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidAuthorsJSON = errors.New("authors json is not valid")
var ErrEmptyBookID = errors.New("book id must not be empty")
var ErrEmptyBookTitle = errors.New("book title must not be empty")

// StorableBooks is an alias type for a slice of StorableBook.
type StorableBooks = []StorableBook

// StorableBook is a DTO (data transfer object) used by the catalog engines
// to add books and query them back.
//
// It is built on scalars to be completely agnostic of the storage backend.
// The authors are carried as a JSON array of names so engines can store them
// in a single column.
//
// While its properties are exported, it should only be constructed with the
// supplied factory methods:
//   - BuildStorableBook
//   - BuildStorableBookFrom
type StorableBook struct {
	ID          string
	Title       string
	AuthorsJSON []byte
	AddedAt     time.Time
}

// BuildStorableBook is a factory method for StorableBook.
//
// It populates the StorableBook with the given scalar input.
// Returns an error if id or title are empty or authorsJSON is not valid JSON.
func BuildStorableBook(id string, title string, addedAt time.Time, authorsJSON []byte) (StorableBook, error) {
	if id == "" {
		return StorableBook{}, ErrEmptyBookID
	}

	if title == "" {
		return StorableBook{}, ErrEmptyBookTitle
	}

	if !jsoniter.ConfigFastest.Valid(authorsJSON) {
		return StorableBook{}, ErrInvalidAuthorsJSON
	}

	return StorableBook{
		ID:          id,
		Title:       title,
		AuthorsJSON: authorsJSON,
		AddedAt:     addedAt,
	}, nil
}

// BuildStorableBookFrom is a factory method for StorableBook.
//
// It serializes the authors of the given Book into the AuthorsJSON column value.
func BuildStorableBookFrom(id string, book Book, addedAt time.Time) (StorableBook, error) {
	authorsJSON, marshalErr := jsoniter.ConfigFastest.Marshal(book.Authors)
	if marshalErr != nil {
		return StorableBook{}, errors.Join(ErrBuildingStorableBookFailed, marshalErr)
	}

	return BuildStorableBook(id, book.Title, addedAt, authorsJSON)
}

// Authors deserializes the AuthorsJSON column value back into author names.
func (b StorableBook) Authors() ([]string, error) {
	var authors []string

	if unmarshalErr := jsoniter.ConfigFastest.Unmarshal(b.AuthorsJSON, &authors); unmarshalErr != nil {
		return nil, errors.Join(ErrInvalidAuthorsJSON, unmarshalErr)
	}

	return authors, nil
}

// ToBook converts the DTO back into a plain catalog Book.
func (b StorableBook) ToBook() (Book, error) {
	authors, err := b.Authors()
	if err != nil {
		return Book{}, err
	}

	return Book{Title: b.Title, Authors: authors}, nil
}
