package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookstacks/book-catalog-go/catalog"
	"github.com/bookstacks/book-catalog-go/testutil"
)

func Test_Shelf_TitlesByAuthor(t *testing.T) {
	shelf := testutil.DemonstrationShelf()

	tests := []struct {
		name     string
		author   string
		expected []string
	}{
		{
			name:     "single_match_by_last_name",
			author:   "Gosling",
			expected: []string{"The Java Language Specification"},
		},
		{
			name:   "author_with_two_books_yields_both_titles",
			author: "Ullman, Jeffrey",
			expected: []string{
				"Principles of Compiler Design",
				"Elements of ML Programming",
			},
		},
		{
			name:     "unknown_author_yields_no_titles",
			author:   "Knuth",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shelf.TitlesByAuthor(tt.author))
		})
	}
}

func Test_Shelf_TitlesContaining(t *testing.T) {
	shelf := testutil.DemonstrationShelf()

	expected := []string{
		"Structure and Interpretation of Computer Programs",
		"Programming in Modula-2",
		"Elements of ML Programming",
	}

	assert.Equal(t, expected, shelf.TitlesContaining("Program"))
}

func Test_Shelf_TitlesContaining_NoMatches(t *testing.T) {
	shelf := testutil.DemonstrationShelf()

	assert.Empty(t, shelf.TitlesContaining("Category Theory"))
}

func Test_Shelf_RepeatedAuthors(t *testing.T) {
	shelf := testutil.DemonstrationShelf()

	assert.Equal(t, []string{"Ullman, Jeffrey"}, shelf.RepeatedAuthors())
}

func Test_Shelf_RepeatedAuthors_EmptyShelf(t *testing.T) {
	assert.Empty(t, catalog.Shelf{}.RepeatedAuthors())
}

func Test_People_MothersWithChildren(t *testing.T) {
	family := testutil.DemonstrationFamily()

	expected := []catalog.MotherChild{
		{Mother: "Julie", Child: "Lara"},
		{Mother: "Julie", Child: "Bob"},
	}

	assert.Equal(t, expected, family.MothersWithChildren())
}

func Test_People_MothersWithChildren_NoMothers(t *testing.T) {
	family := catalog.People{
		{Name: "Bob", IsMale: true, Children: []string{"Tim"}},
	}

	assert.Empty(t, family.MothersWithChildren())
}
