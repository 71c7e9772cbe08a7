package catalog

import (
	"strings"
)

// Shelf is an ordered collection of books, insertion order significant.
type Shelf []Book

// Book is a catalog entry with a title and one or more authors.
// Author names use the "Lastname, Firstname" convention.
type Book struct {
	Title   string
	Authors []string
}

// TitlesByAuthor returns the titles of all books having at least one author
// whose name contains the given substring, in shelf order.
func (s Shelf) TitlesByAuthor(name string) []string {
	titles := make([]string, 0)

	for _, book := range s {
		for _, author := range book.Authors {
			if strings.Contains(author, name) {
				titles = append(titles, book.Title)
				break
			}
		}
	}

	return titles
}

// TitlesContaining returns the titles of all books whose title contains the
// given keyword, in shelf order.
func (s Shelf) TitlesContaining(keyword string) []string {
	titles := make([]string, 0)

	for _, book := range s {
		if strings.Contains(book.Title, keyword) {
			titles = append(titles, book.Title)
		}
	}

	return titles
}

// RepeatedAuthors returns the names of authors who have written at least
// two books on the shelf.
//
// The raw pairwise join yields each such author once per ordered pair of
// their books; the repeats are then collapsed with RemoveDuplicates.
func (s Shelf) RepeatedAuthors() []string {
	repeated := make([]string, 0)

	for i, b1 := range s {
		for j, b2 := range s {
			if i == j {
				continue
			}

			for _, a1 := range b1.Authors {
				for _, a2 := range b2.Authors {
					if a1 == a2 {
						repeated = append(repeated, a1)
					}
				}
			}
		}
	}

	return RemoveDuplicates(repeated)
}
