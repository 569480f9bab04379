package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// collection is one JSON array file used as a makeshift table. Every write is
// a whole-file read-modify-write, so all access is serialized through the
// mutex: without it two concurrent writers would clobber each other's
// full-file rewrite.
type collection[T any] struct {
	mu   sync.Mutex
	path string
}

func newCollection[T any](path string) *collection[T] {
	return &collection[T]{path: path}
}

// all returns every record in the collection.
func (c *collection[T]) all() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// update applies fn to the loaded records and persists whatever it returns.
// The collection stays locked for the whole read-modify-write.
func (c *collection[T]) update(fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	records, err = fn(records)
	if err != nil {
		return err
	}
	return c.store(records)
}

func (c *collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrStorageMissing
	}
	if err != nil {
		return nil, err
	}

	// A blank file is an empty collection; anything else must parse.
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	return records, nil
}

func (c *collection[T]) store(records []T) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}

	// Write through a temp file and rename so a failed write can never leave
	// a truncated collection behind.
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}
