// Package shelffile persists a catalog.Shelf as a JSONL file, one book per
// line, with file locking for safe concurrent access across processes.
package shelffile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	jsoniter "github.com/json-iterator/go"

	"github.com/bookstacks/book-catalog-go/catalog"
)

const defaultLockTimeout = 5 * time.Second
const lockRetryInterval = 50 * time.Millisecond

// bookRecord is the JSONL line format for a single book.
type bookRecord struct {
	Title   string   `json:"title"`
	Authors []string `json:"authors"`
}

// ShelfFile reads and writes a shelf stored as JSONL at a fixed path.
type ShelfFile struct {
	path        string
	lockPath    string
	lockTimeout time.Duration
}

// New creates a ShelfFile for the given path. The lock file is created
// next to it with a ".lock" suffix.
func New(path string) *ShelfFile {
	return NewWithTimeout(path, defaultLockTimeout)
}

// NewWithTimeout creates a ShelfFile with a custom lock timeout.
func NewWithTimeout(path string, lockTimeout time.Duration) *ShelfFile {
	return &ShelfFile{
		path:        path,
		lockPath:    path + ".lock",
		lockTimeout: lockTimeout,
	}
}

// Load reads the shelf from disk under a shared lock. A missing file yields
// an empty shelf.
func (sf *ShelfFile) Load(ctx context.Context) (catalog.Shelf, error) {
	fileLock := flock.New(sf.lockPath)

	lockCtx, cancel := context.WithTimeout(ctx, sf.lockTimeout)
	defer cancel()

	locked, err := fileLock.TryRLockContext(lockCtx, lockRetryInterval)
	if err != nil || !locked {
		return nil, fmt.Errorf("acquiring shared lock on %s: %w", sf.lockPath, err)
	}
	defer func() { _ = fileLock.Unlock() }()

	return sf.read()
}

// Save writes the shelf to disk under an exclusive lock. The write is atomic:
// the content goes to a temporary file first and is renamed into place.
func (sf *ShelfFile) Save(ctx context.Context, shelf catalog.Shelf) error {
	fileLock := flock.New(sf.lockPath)

	lockCtx, cancel := context.WithTimeout(ctx, sf.lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, lockRetryInterval)
	if err != nil || !locked {
		return fmt.Errorf("acquiring exclusive lock on %s: %w", sf.lockPath, err)
	}
	defer func() { _ = fileLock.Unlock() }()

	return sf.write(shelf)
}

func (sf *ShelfFile) read() (catalog.Shelf, error) {
	file, err := os.Open(sf.path)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog.Shelf{}, nil
		}

		return nil, fmt.Errorf("opening shelf file: %w", err)
	}
	defer file.Close()

	shelf := make(catalog.Shelf, 0)
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var record bookRecord
		if err := jsoniter.ConfigFastest.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("parsing shelf file line %d: %w", lineNo, err)
		}

		shelf = append(shelf, catalog.Book{Title: record.Title, Authors: record.Authors})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading shelf file: %w", err)
	}

	return shelf, nil
}

func (sf *ShelfFile) write(shelf catalog.Shelf) error {
	tmp, err := os.CreateTemp(filepath.Dir(sf.path), ".shelf-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary shelf file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	writer := bufio.NewWriter(tmp)

	for _, book := range shelf {
		line, err := jsoniter.ConfigFastest.Marshal(bookRecord{Title: book.Title, Authors: book.Authors})
		if err != nil {
			cleanup()
			return fmt.Errorf("serializing book %q: %w", book.Title, err)
		}

		if _, err := writer.Write(append(line, '\n')); err != nil {
			cleanup()
			return fmt.Errorf("writing shelf file: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		cleanup()
		return fmt.Errorf("flushing shelf file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temporary shelf file: %w", err)
	}

	if err := os.Rename(tmpPath, sf.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing shelf file: %w", err)
	}

	return nil
}
