package catalog

import (
	"errors"
)

var ErrEmptyBooksTableName = errors.New("empty booksTableName supplied")
var ErrNilDatabaseConnection = errors.New("nil database connection supplied")
var ErrBuildingQueryFailed = errors.New("building query failed")
var ErrSearchingBooksFailed = errors.New("searching books failed")
var ErrScanningDBRowFailed = errors.New("scanning database row failed")
var ErrBuildingStorableBookFailed = errors.New("building storable book failed")
var ErrAddingBookFailed = errors.New("adding book failed")
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
