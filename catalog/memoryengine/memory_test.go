package memoryengine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstacks/book-catalog-go/catalog"
	"github.com/bookstacks/book-catalog-go/catalog/memoryengine"
	"github.com/bookstacks/book-catalog-go/testutil"
	"github.com/bookstacks/book-catalog-go/testutil/testdoubles"
)

func givenStoreWithDemonstrationShelf(t *testing.T) *memoryengine.CatalogStore {
	t.Helper()

	store := memoryengine.NewCatalogStore()
	start := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	records := testutil.GivenStorableShelf(t, testutil.DemonstrationShelf(), start)

	err := store.Add(context.Background(), records[0], records[1:]...)
	require.NoError(t, err)

	return store
}

func titlesOf(t *testing.T, books catalog.StorableBooks) []string {
	t.Helper()

	titles := make([]string, 0, len(books))
	for _, book := range books {
		titles = append(titles, book.Title)
	}

	return titles
}

func Test_CatalogStore_Search_EmptyFilterReturnsEverything(t *testing.T) {
	store := givenStoreWithDemonstrationShelf(t)

	books, err := store.Search(context.Background(), catalog.BuildSearchFilter().MatchingAnyBook())

	assert.NoError(t, err)
	assert.Len(t, books, 5)
}

func Test_CatalogStore_Search_ByAuthor(t *testing.T) {
	store := givenStoreWithDemonstrationShelf(t)

	filter := catalog.BuildSearchFilter().
		Matching().
		AnyTermOf(catalog.M(catalog.FieldAuthor, "Gosling")).
		Finalize()

	books, err := store.Search(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, []string{"The Java Language Specification"}, titlesOf(t, books))
}

func Test_CatalogStore_Search_ByTitleKeyword(t *testing.T) {
	store := givenStoreWithDemonstrationShelf(t)

	filter := catalog.BuildSearchFilter().
		Matching().
		AnyTermOf(catalog.M(catalog.FieldTitle, "Program")).
		Finalize()

	books, err := store.Search(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Structure and Interpretation of Computer Programs",
		"Programming in Modula-2",
		"Elements of ML Programming",
	}, titlesOf(t, books))
}

func Test_CatalogStore_Search_AllTermsMustMatch(t *testing.T) {
	store := givenStoreWithDemonstrationShelf(t)

	filter := catalog.BuildSearchFilter().
		Matching().
		AllTermsOf(
			catalog.M(catalog.FieldAuthor, "Ullman"),
			catalog.M(catalog.FieldTitle, "Compiler")).
		Finalize()

	books, err := store.Search(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Principles of Compiler Design"}, titlesOf(t, books))
}

func Test_CatalogStore_Search_TimeRangeExcludesBooksAddedOutsideIt(t *testing.T) {
	store := givenStoreWithDemonstrationShelf(t)

	// The fixture spaces AddedAt one minute apart starting 08:00, so this
	// range covers only the first two records.
	filter := catalog.BuildSearchFilter().
		AddedFrom(time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)).
		AndAddedUntil(time.Date(2025, 5, 1, 8, 1, 0, 0, time.UTC)).
		Finalize()

	books, err := store.Search(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Structure and Interpretation of Computer Programs",
		"Principles of Compiler Design",
	}, titlesOf(t, books))
}

func Test_CatalogStore_Search_CanceledContextFails(t *testing.T) {
	store := givenStoreWithDemonstrationShelf(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Search(ctx, catalog.BuildSearchFilter().MatchingAnyBook())

	assert.ErrorIs(t, err, context.Canceled)
}

func Test_CatalogStore_Add_RejectsInvalidAuthorsJSON(t *testing.T) {
	store := memoryengine.NewCatalogStore()

	broken := catalog.StorableBook{
		ID:          "book-1",
		Title:       "Broken",
		AuthorsJSON: []byte(`not json`),
		AddedAt:     time.Now(),
	}

	err := store.Add(context.Background(), broken)

	assert.ErrorContains(t, err, catalog.ErrInvalidAuthorsJSON.Error())
}

func Test_CatalogStore_LogsOperations(t *testing.T) {
	spy := testdoubles.NewLoggerSpy()
	store := memoryengine.NewCatalogStore(memoryengine.WithLogger(spy))
	record := testutil.ToStorable(t, catalog.Book{Title: "Programming in Modula-2", Authors: []string{"Wirth, Niklaus"}}, time.Now())

	err := store.Add(context.Background(), record)
	require.NoError(t, err)

	_, err = store.Search(context.Background(), catalog.BuildSearchFilter().MatchingAnyBook())
	require.NoError(t, err)

	assert.True(t, spy.HasMessage("catalogstore operation: books added"))
	assert.True(t, spy.HasMessage("catalogstore operation: search completed"))
}
