package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/bookstacks/book-catalog-go/catalog"
	"github.com/bookstacks/book-catalog-go/catalog/postgresengine/internal/adapters"
)

const (
	defaultBooksTableName         = "books"
	logMsgBuildSelectQueryFailed  = "failed to build select query"
	logMsgDBQueryFailed           = "database query execution failed"
	logMsgCloseRowsFailed         = "failed to close database rows"
	logMsgScanRowFailed           = "failed to scan database row"
	logMsgBuildStorableBookFailed = "failed to build storable book from database row"
	logMsgBuildInsertQueryFailed  = "failed to build insert query"
	logMsgDBExecFailed            = "database execution failed during book insert"
	logMsgRowsAffectedFailed      = "failed to get rows affected count"
	logMsgSearchCompleted         = "search completed"
	logMsgBooksAdded              = "books added"
	logAttrError                  = "error"
	logAttrQuery                  = "query"
	logAttrBookCount              = "book_count"
	logAttrDurationMS             = "duration_ms"
	colBookID                     = "book_id"
	colTitle                      = "title"
	colAuthors                    = "authors"
	colAddedAt                    = "added_at"
	dialectPostgres               = "postgres"
	likePattern                   = "%"
	authorsTextILike              = "authors::text ILIKE ?"
)

type sqlQueryString = string

// CatalogStore represents a storage mechanism for adding and searching catalog books.
// It leverages a database adapter and supports customizable logging, metrics,
// tracing, and books table configuration.
type CatalogStore struct {
	db               adapters.DBAdapter
	booksTableName   string
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

type queryResultRow struct {
	bookID  string
	title   string
	authors []byte
	addedAt time.Time
}

// NewCatalogStoreFromPGXPool creates a new CatalogStore using a pgx Pool with optional configuration.
func NewCatalogStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (CatalogStore, error) {
	if db == nil {
		return CatalogStore{}, catalog.ErrNilDatabaseConnection
	}

	return newCatalogStore(adapters.NewPGXAdapter(db), options...)
}

// NewCatalogStoreFromSQLDB creates a new CatalogStore using a sql.DB with optional configuration.
func NewCatalogStoreFromSQLDB(db *sql.DB, options ...Option) (CatalogStore, error) {
	if db == nil {
		return CatalogStore{}, catalog.ErrNilDatabaseConnection
	}

	return newCatalogStore(adapters.NewSQLAdapter(db), options...)
}

// NewCatalogStoreFromSQLX creates a new CatalogStore using a sqlx.DB with optional configuration.
func NewCatalogStoreFromSQLX(db *sqlx.DB, options ...Option) (CatalogStore, error) {
	if db == nil {
		return CatalogStore{}, catalog.ErrNilDatabaseConnection
	}

	return newCatalogStore(adapters.NewSQLXAdapter(db), options...)
}

func newCatalogStore(db adapters.DBAdapter, options ...Option) (CatalogStore, error) {
	cs := CatalogStore{
		db:             db,
		booksTableName: defaultBooksTableName,
	}

	for _, option := range options {
		if err := option(&cs); err != nil {
			return CatalogStore{}, err
		}
	}

	return cs, nil
}

// Search retrieves books from the Postgres catalog store based on the provided
// catalog.Filter criteria and returns them as catalog.StorableBooks ordered by
// the time they were added.
func (cs CatalogStore) Search(ctx context.Context, filter catalog.Filter) (catalog.StorableBooks, error) {
	spanCtx, span := cs.startSpan(ctx, spanNameSearch)

	sqlQuery, buildQueryErr := cs.buildSelectQuery(filter)
	if buildQueryErr != nil {
		cs.logError(spanCtx, logMsgBuildSelectQueryFailed, logAttrError, buildQueryErr.Error())
		cs.finishSpanWithError(span, buildQueryErr)

		return nil, buildQueryErr
	}

	start := time.Now()
	rows, queryErr := cs.db.Query(spanCtx, sqlQuery)
	duration := time.Since(start)
	cs.logQueryWithDuration(spanCtx, sqlQuery, operationSearch, duration)

	if queryErr != nil {
		cs.logError(spanCtx, logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		cs.recordOperationOutcome(spanCtx, operationSearch, statusError, duration)
		cs.finishSpanWithError(span, queryErr)

		return nil, errors.Join(catalog.ErrSearchingBooksFailed, queryErr)
	}
	defer cs.closeRows(spanCtx, rows)

	books, scanErr := cs.processSearchResults(spanCtx, rows)
	if scanErr != nil {
		cs.recordOperationOutcome(spanCtx, operationSearch, statusError, duration)
		cs.finishSpanWithError(span, scanErr)

		return nil, scanErr
	}

	cs.logOperation(spanCtx, logMsgSearchCompleted,
		logAttrBookCount, len(books),
		logAttrDurationMS, durationToMilliseconds(duration))
	cs.recordOperationOutcome(spanCtx, operationSearch, statusSuccess, duration)
	cs.finishSpan(span, statusSuccess)

	return books, nil
}

// Add inserts one or multiple catalog.StorableBook(s) into the Postgres catalog store.
func (cs CatalogStore) Add(ctx context.Context, book catalog.StorableBook, additionalBooks ...catalog.StorableBook) error {
	spanCtx, span := cs.startSpan(ctx, spanNameAdd)

	allBooks := catalog.StorableBooks{book}
	allBooks = append(allBooks, additionalBooks...)

	sqlQuery, buildQueryErr := cs.buildInsertQuery(allBooks)
	if buildQueryErr != nil {
		cs.logError(spanCtx, logMsgBuildInsertQueryFailed, logAttrError, buildQueryErr.Error(), logAttrBookCount, len(allBooks))
		cs.finishSpanWithError(span, buildQueryErr)

		return buildQueryErr
	}

	start := time.Now()
	result, execErr := cs.db.Exec(spanCtx, sqlQuery)
	duration := time.Since(start)
	cs.logQueryWithDuration(spanCtx, sqlQuery, operationAdd, duration)

	if execErr != nil {
		cs.logError(spanCtx, logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		cs.recordOperationOutcome(spanCtx, operationAdd, statusError, duration)
		cs.finishSpanWithError(span, execErr)

		return errors.Join(catalog.ErrAddingBookFailed, execErr)
	}

	if _, rowsAffectedErr := result.RowsAffected(); rowsAffectedErr != nil {
		cs.logError(spanCtx, logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		cs.recordOperationOutcome(spanCtx, operationAdd, statusError, duration)
		cs.finishSpanWithError(span, rowsAffectedErr)

		return errors.Join(catalog.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	cs.logOperation(spanCtx, logMsgBooksAdded,
		logAttrBookCount, len(allBooks),
		logAttrDurationMS, durationToMilliseconds(duration))
	cs.recordOperationOutcome(spanCtx, operationAdd, statusSuccess, duration)
	cs.finishSpan(span, statusSuccess)

	return nil
}

// closeRows safely closes database rows and logs any errors.
func (cs CatalogStore) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		cs.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// processSearchResults converts database rows into storable books.
func (cs CatalogStore) processSearchResults(ctx context.Context, rows adapters.DBRows) (catalog.StorableBooks, error) {
	result := queryResultRow{}
	books := make(catalog.StorableBooks, 0)

	for rows.Next() {
		rowScanErr := rows.Scan(&result.bookID, &result.title, &result.authors, &result.addedAt)
		if rowScanErr != nil {
			cs.logError(ctx, logMsgScanRowFailed, logAttrError, rowScanErr.Error())

			return nil, errors.Join(catalog.ErrScanningDBRowFailed, rowScanErr)
		}

		book, buildStorableErr := catalog.BuildStorableBook(result.bookID, result.title, result.addedAt, result.authors)
		if buildStorableErr != nil {
			cs.logError(ctx, logMsgBuildStorableBookFailed, logAttrError, buildStorableErr.Error())

			return nil, errors.Join(catalog.ErrBuildingStorableBookFailed, buildStorableErr)
		}

		books = append(books, book)
	}

	return books, nil
}

func (cs CatalogStore) buildSelectQuery(filter catalog.Filter) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(cs.booksTableName).
		Select(colBookID, colTitle, colAuthors, colAddedAt).
		Order(goqu.I(colAddedAt).Asc())

	selectStmt = cs.addWhereClause(filter, selectStmt)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(catalog.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (cs CatalogStore) buildInsertQuery(books catalog.StorableBooks) (sqlQueryString, error) {
	records := make([]any, 0, len(books))
	for _, book := range books {
		records = append(records, goqu.Record{
			colBookID:  book.ID,
			colTitle:   book.Title,
			colAuthors: string(book.AuthorsJSON),
			colAddedAt: book.AddedAt,
		})
	}

	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(cs.booksTableName).
		Rows(records...)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(catalog.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (cs CatalogStore) addWhereClause(filter catalog.Filter, selectStmt *goqu.SelectDataset) *goqu.SelectDataset {
	itemsExpressions := make([]goqu.Expression, 0)

	for _, item := range filter.Items() {
		termExpressions := make([]goqu.Expression, 0)

		for _, term := range item.Terms() {
			pattern := likePattern + term.Term() + likePattern

			switch term.Field() {
			case catalog.FieldTitle:
				termExpressions = append(termExpressions, goqu.I(colTitle).ILike(pattern))

			case catalog.FieldAuthor:
				termExpressions = append(termExpressions, goqu.L(authorsTextILike, pattern))
			}
		}

		var termsExpressionList exp.ExpressionList

		if item.AllTermsMustMatch() {
			termsExpressionList = goqu.And(termExpressions...)
		} else {
			termsExpressionList = goqu.Or(termExpressions...)
		}

		itemsExpressions = append(itemsExpressions, termsExpressionList)
	}

	addedAtExpressions := make([]goqu.Expression, 0)

	if !filter.AddedFrom().IsZero() {
		addedAtExpressions = append(
			addedAtExpressions,
			goqu.C(colAddedAt).Gte(filter.AddedFrom()),
		)
	}

	if !filter.AddedUntil().IsZero() {
		addedAtExpressions = append(
			addedAtExpressions,
			goqu.C(colAddedAt).Lte(filter.AddedUntil()),
		)
	}

	selectStmt = selectStmt.Where(
		goqu.And(
			goqu.Or(itemsExpressions...),
			goqu.And(addedAtExpressions...),
		),
	)

	return selectStmt
}
