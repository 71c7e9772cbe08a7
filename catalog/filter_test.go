package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookstacks/book-catalog-go/catalog"
)

//nolint:funlen
func Test_FilterBuilder_ValidCombinations(t *testing.T) {
	tests := []struct {
		name     string
		build    func() catalog.Filter
		validate func(t *testing.T, filter catalog.Filter)
	}{
		{
			name: "matching_any_book_creates_empty_filter",
			build: func() catalog.Filter {
				return catalog.BuildSearchFilter().MatchingAnyBook()
			},
			validate: func(t *testing.T, f catalog.Filter) {
				assert.Empty(t, f.Items())
				assert.True(t, f.AddedFrom().IsZero())
				assert.True(t, f.AddedUntil().IsZero())
			},
		},
		{
			name: "added_from_only_filter",
			build: func() catalog.Filter {
				timeFrom := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
				return catalog.BuildSearchFilter().
					AddedFrom(timeFrom).
					Finalize()
			},
			validate: func(t *testing.T, f catalog.Filter) {
				expectedTime := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
				assert.Equal(t, expectedTime, f.AddedFrom())
				assert.True(t, f.AddedUntil().IsZero())
				assert.Empty(t, f.Items())
			},
		},
		{
			name: "added_from_and_until_filter",
			build: func() catalog.Filter {
				timeFrom := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
				timeUntil := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
				return catalog.BuildSearchFilter().
					AddedFrom(timeFrom).
					AndAddedUntil(timeUntil).
					Finalize()
			},
			validate: func(t *testing.T, f catalog.Filter) {
				expectedFrom := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
				expectedUntil := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
				assert.Equal(t, expectedFrom, f.AddedFrom())
				assert.Equal(t, expectedUntil, f.AddedUntil())
				assert.Empty(t, f.Items())
			},
		},
		{
			name: "single_term_filter",
			build: func() catalog.Filter {
				return catalog.BuildSearchFilter().
					Matching().
					AnyTermOf(catalog.M(catalog.FieldAuthor, "Gosling")).
					Finalize()
			},
			validate: func(t *testing.T, f catalog.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Len(t, f.Items()[0].Terms(), 1)
				assert.Equal(t, catalog.FieldAuthor, f.Items()[0].Terms()[0].Field())
				assert.Equal(t, "Gosling", f.Items()[0].Terms()[0].Term())
				assert.False(t, f.Items()[0].AllTermsMustMatch())
			},
		},
		{
			name: "multiple_any_terms_are_sorted_and_deduplicated",
			build: func() catalog.Filter {
				return catalog.BuildSearchFilter().
					Matching().
					AnyTermOf(
						catalog.M(catalog.FieldTitle, "Program"),
						catalog.M(catalog.FieldAuthor, "Ullman"),
						catalog.M(catalog.FieldTitle, "Program")).
					Finalize()
			},
			validate: func(t *testing.T, f catalog.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []catalog.MatchTerm{
					catalog.M(catalog.FieldAuthor, "Ullman"),
					catalog.M(catalog.FieldTitle, "Program"),
				}, f.Items()[0].Terms())
				assert.False(t, f.Items()[0].AllTermsMustMatch())
			},
		},
		{
			name: "empty_terms_are_removed",
			build: func() catalog.Filter {
				return catalog.BuildSearchFilter().
					Matching().
					AnyTermOf(
						catalog.M(catalog.FieldTitle, ""),
						catalog.M(catalog.FieldAuthor, "Wirth")).
					Finalize()
			},
			validate: func(t *testing.T, f catalog.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Equal(t, []catalog.MatchTerm{
					catalog.M(catalog.FieldAuthor, "Wirth"),
				}, f.Items()[0].Terms())
			},
		},
		{
			name: "all_terms_filter",
			build: func() catalog.Filter {
				return catalog.BuildSearchFilter().
					Matching().
					AllTermsOf(
						catalog.M(catalog.FieldAuthor, "Aho"),
						catalog.M(catalog.FieldAuthor, "Ullman")).
					Finalize()
			},
			validate: func(t *testing.T, f catalog.Filter) {
				assert.Len(t, f.Items(), 1)
				assert.Len(t, f.Items()[0].Terms(), 2)
				assert.True(t, f.Items()[0].AllTermsMustMatch())
			},
		},
		{
			name: "multiple_filter_items_via_or_matching",
			build: func() catalog.Filter {
				return catalog.BuildSearchFilter().
					Matching().
					AnyTermOf(catalog.M(catalog.FieldAuthor, "Gosling")).
					OrMatching().
					AnyTermOf(catalog.M(catalog.FieldTitle, "Modula")).
					Finalize()
			},
			validate: func(t *testing.T, f catalog.Filter) {
				assert.Len(t, f.Items(), 2)
				assert.Equal(t, "Gosling", f.Items()[0].Terms()[0].Term())
				assert.Equal(t, "Modula", f.Items()[1].Terms()[0].Term())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := tt.build()
			tt.validate(t, filter)
		})
	}
}

//nolint:funlen
func Test_Filter_Matches(t *testing.T) {
	addedAt := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	title := "The Java Language Specification"
	authors := []string{"Gosling, James", "Joy, Bill", "Steele, Guy", "Bracha, Gilad"}

	tests := []struct {
		name     string
		filter   catalog.Filter
		expected bool
	}{
		{
			name:     "empty_filter_matches_everything",
			filter:   catalog.BuildSearchFilter().MatchingAnyBook(),
			expected: true,
		},
		{
			name: "author_term_matches_case_insensitively",
			filter: catalog.BuildSearchFilter().
				Matching().
				AnyTermOf(catalog.M(catalog.FieldAuthor, "gosling")).
				Finalize(),
			expected: true,
		},
		{
			name: "title_term_matches_substring",
			filter: catalog.BuildSearchFilter().
				Matching().
				AnyTermOf(catalog.M(catalog.FieldTitle, "Java")).
				Finalize(),
			expected: true,
		},
		{
			name: "any_terms_match_when_one_matches",
			filter: catalog.BuildSearchFilter().
				Matching().
				AnyTermOf(
					catalog.M(catalog.FieldAuthor, "Wirth"),
					catalog.M(catalog.FieldAuthor, "Joy")).
				Finalize(),
			expected: true,
		},
		{
			name: "all_terms_fail_when_one_does_not_match",
			filter: catalog.BuildSearchFilter().
				Matching().
				AllTermsOf(
					catalog.M(catalog.FieldAuthor, "Joy"),
					catalog.M(catalog.FieldAuthor, "Wirth")).
				Finalize(),
			expected: false,
		},
		{
			name: "all_terms_match_when_every_term_matches",
			filter: catalog.BuildSearchFilter().
				Matching().
				AllTermsOf(
					catalog.M(catalog.FieldAuthor, "Joy"),
					catalog.M(catalog.FieldTitle, "Specification")).
				Finalize(),
			expected: true,
		},
		{
			name: "second_filter_item_can_match_when_first_does_not",
			filter: catalog.BuildSearchFilter().
				Matching().
				AnyTermOf(catalog.M(catalog.FieldAuthor, "Wirth")).
				OrMatching().
				AnyTermOf(catalog.M(catalog.FieldAuthor, "Bracha")).
				Finalize(),
			expected: true,
		},
		{
			name: "added_from_excludes_earlier_books",
			filter: catalog.BuildSearchFilter().
				AddedFrom(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)).
				Finalize(),
			expected: false,
		},
		{
			name: "added_until_excludes_later_books",
			filter: catalog.BuildSearchFilter().
				AddedUntil(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
				Finalize(),
			expected: false,
		},
		{
			name: "time_range_including_the_book_matches",
			filter: catalog.BuildSearchFilter().
				AddedFrom(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
				AndAddedUntil(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)).
				Finalize(),
			expected: true,
		},
		{
			name: "unknown_author_does_not_match",
			filter: catalog.BuildSearchFilter().
				Matching().
				AnyTermOf(catalog.M(catalog.FieldAuthor, "Knuth")).
				Finalize(),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(title, authors, addedAt))
		})
	}
}
