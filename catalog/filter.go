package catalog

import (
	"slices"
	"strings"
	"time"
)

// SearchField names a searchable attribute of a catalog entry.
type SearchField string

const (
	FieldTitle  SearchField = "title"
	FieldAuthor SearchField = "author"
)

/***** Filter *****/

type Filter struct {
	items      []FilterItem
	addedFrom  time.Time
	addedUntil time.Time
}

func (f Filter) Items() []FilterItem {
	return f.items
}

func (f Filter) AddedFrom() time.Time {
	return f.addedFrom
}

func (f Filter) AddedUntil() time.Time {
	return f.addedUntil
}

// Matches evaluates the filter against a single catalog entry in memory.
// Term matching is case-insensitive substring matching, so that every
// engine shares the same semantics regardless of its query language.
//
// An empty filter matches every entry.
func (f Filter) Matches(title string, authors []string, addedAt time.Time) bool {
	if !f.addedFrom.IsZero() && addedAt.Before(f.addedFrom) {
		return false
	}

	if !f.addedUntil.IsZero() && addedAt.After(f.addedUntil) {
		return false
	}

	if len(f.items) == 0 {
		return true
	}

	for _, item := range f.items {
		if item.matches(title, authors) {
			return true
		}
	}

	return false
}

/***** FilterItem *****/

type FilterItem struct {
	terms             []MatchTerm
	allTermsMustMatch bool
}

func (fi FilterItem) Terms() []MatchTerm {
	return fi.terms
}

func (fi FilterItem) AllTermsMustMatch() bool {
	return fi.allTermsMustMatch
}

func (fi FilterItem) matches(title string, authors []string) bool {
	if len(fi.terms) == 0 {
		return true
	}

	for _, term := range fi.terms {
		matched := term.matches(title, authors)

		if fi.allTermsMustMatch && !matched {
			return false
		}

		if !fi.allTermsMustMatch && matched {
			return true
		}
	}

	return fi.allTermsMustMatch
}

/***** MatchTerm *****/

type MatchTerm struct {
	field SearchField
	term  string
}

// M constructs a MatchTerm for the given field.
func M(field SearchField, term string) MatchTerm {
	return MatchTerm{field: field, term: term}
}

func (mt MatchTerm) Field() SearchField {
	return mt.field
}

func (mt MatchTerm) Term() string {
	return mt.term
}

func (mt MatchTerm) matches(title string, authors []string) bool {
	needle := strings.ToLower(mt.term)

	switch mt.field {
	case FieldTitle:
		return strings.Contains(strings.ToLower(title), needle)

	case FieldAuthor:
		for _, author := range authors {
			if strings.Contains(strings.ToLower(author), needle) {
				return true
			}
		}
	}

	return false
}

/***** FilterBuilder *****/

// FilterBuilder builds a generic catalog search filter to be translated by
// DB type-specific engine implementations into their own query language,
// e.g.: Postgres, SQLite, in-memory matching.
// It is designed to only allow "useful" filter combinations:
//
//   - empty filter (any book)
//   - (term)
//   - (term OR term...)
//   - (term AND term...)
//   - ((term...) OR (term...)) -> multiple FilterItem(s)
//   - any of the above AND an added-at time range
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// AddedFrom restricts the filter to books added at or after the given time.
	AddedFrom(from time.Time) TimeRangeFilterBuilder

	// AddedUntil restricts the filter to books added at or before the given time.
	AddedUntil(until time.Time) TimeRangeFilterBuilder

	// MatchingAnyBook directly creates an empty Filter.
	MatchingAnyBook() Filter
}

type TimeRangeFilterBuilder interface {
	// AndAddedUntil restricts the filter to books added at or before the given time.
	AndAddedUntil(until time.Time) TimeRangeFilterBuilder

	// Matching starts a new FilterItem.
	Matching() EmptyFilterItemBuilder

	// Finalize returns the Filter with only the time range applied.
	Finalize() Filter
}

type EmptyFilterItemBuilder interface {
	// AnyTermOf adds one or multiple MatchTerm(s) to the current FilterItem
	// expecting ANY term to match.
	//
	// It sanitizes the input:
	//	- removing empty MatchTerm(s) (term is "")
	//	- sorting the MatchTerm(s)
	//	- removing duplicate MatchTerm(s)
	AnyTermOf(term MatchTerm, terms ...MatchTerm) CompletedFilterItemBuilder

	// AllTermsOf adds one or multiple MatchTerm(s) to the current FilterItem
	// expecting ALL terms to match.
	//
	// It sanitizes the input the same way as AnyTermOf.
	AllTermsOf(term MatchTerm, terms ...MatchTerm) CompletedFilterItemBuilder
}

type CompletedFilterItemBuilder interface {
	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() EmptyFilterItemBuilder

	// Finalize returns the Filter once it has at least one FilterItem with at least one MatchTerm.
	Finalize() Filter
}

// filterBuilder implements all the interfaces of FilterBuilder.
type filterBuilder struct {
	filter            Filter
	currentFilterItem FilterItem
	itemStarted       bool
}

// BuildSearchFilter creates a FilterBuilder which must eventually be
// finalized with Finalize() or MatchingAnyBook().
func BuildSearchFilter() FilterBuilder {
	return filterBuilder{}
}

// Matching starts a new FilterItem.
func (fb filterBuilder) Matching() EmptyFilterItemBuilder {
	fb.currentFilterItem = FilterItem{}
	fb.itemStarted = true

	return fb
}

// AddedFrom restricts the filter to books added at or after the given time.
func (fb filterBuilder) AddedFrom(from time.Time) TimeRangeFilterBuilder {
	fb.filter.addedFrom = from

	return fb
}

// AddedUntil restricts the filter to books added at or before the given time.
func (fb filterBuilder) AddedUntil(until time.Time) TimeRangeFilterBuilder {
	fb.filter.addedUntil = until

	return fb
}

// AndAddedUntil restricts the filter to books added at or before the given time.
func (fb filterBuilder) AndAddedUntil(until time.Time) TimeRangeFilterBuilder {
	fb.filter.addedUntil = until

	return fb
}

// AnyTermOf adds one or multiple MatchTerm(s) to the current FilterItem expecting ANY term to match.
//
// It sanitizes the input:
//   - removing empty MatchTerm(s) (term is "")
//   - sorting the MatchTerm(s)
//   - removing duplicate MatchTerm(s)
func (fb filterBuilder) AnyTermOf(term MatchTerm, terms ...MatchTerm) CompletedFilterItemBuilder {
	fb.currentFilterItem.terms = append(
		fb.currentFilterItem.terms,
		fb.sanitizeTerms(term, terms...)...,
	)

	return fb
}

// AllTermsOf adds one or multiple MatchTerm(s) to the current FilterItem expecting ALL terms to match.
//
// It sanitizes the input:
//   - removing empty MatchTerm(s) (term is "")
//   - sorting the MatchTerm(s)
//   - removing duplicate MatchTerm(s)
func (fb filterBuilder) AllTermsOf(term MatchTerm, terms ...MatchTerm) CompletedFilterItemBuilder {
	fb.currentFilterItem.allTermsMustMatch = true

	fb.currentFilterItem.terms = append(
		fb.currentFilterItem.terms,
		fb.sanitizeTerms(term, terms...)...,
	)

	return fb
}

func (fb filterBuilder) sanitizeTerms(term MatchTerm, terms ...MatchTerm) []MatchTerm {
	allTerms := append([]MatchTerm{term}, terms...)
	allTerms = slices.DeleteFunc(allTerms, func(t MatchTerm) bool { return len(t.term) == 0 })
	slices.SortFunc(
		allTerms,
		func(a, b MatchTerm) int {
			if a.field != b.field {
				return strings.Compare(string(a.field), string(b.field))
			}

			return strings.Compare(a.term, b.term)
		})

	allTerms = slices.Compact(allTerms)
	allTerms = slices.Clip(allTerms)

	return allTerms
}

// OrMatching finalizes the current FilterItem and starts a new one.
func (fb filterBuilder) OrMatching() EmptyFilterItemBuilder {
	fb.filter.items = append(fb.filter.items, fb.currentFilterItem)
	fb.currentFilterItem = FilterItem{}

	return fb
}

// MatchingAnyBook directly creates an empty filter.
func (fb filterBuilder) MatchingAnyBook() Filter {
	return fb.filter
}

// Finalize returns the Filter.
func (fb filterBuilder) Finalize() Filter {
	if fb.itemStarted {
		fb.filter.items = append(fb.filter.items, fb.currentFilterItem)
	}

	return fb.filter
}
