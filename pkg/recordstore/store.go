// Package recordstore implements a slot-oriented record store: a
// single-file wrapper that allocates slot ids, writes/reads records by
// slot id through a record.Layout, and marks deletions via the existence
// flag rather than reclaiming space. A single *os.File is guarded by a
// sync.RWMutex, opened with os.MkdirAll on the parent directory and
// O_RDWR|O_CREATE.
package recordstore

import (
	"os"
	"path/filepath"
	"sync"

	"btreeindex/pkg/codec"
	"btreeindex/pkg/record"
)

// Store is a single logical "table": one file, one record.Layout, one
// slot-id allocator.
type Store struct {
	file     *os.File
	layout   record.Layout
	mu       sync.RWMutex
	nextSlot int64
}

// Open creates or opens the file at path and prepares slot allocation for
// schema-derived layout. The next free slot is derived from the current
// file size, so reopening an existing file resumes append-only allocation
// correctly.
func Open(path string, layout record.Layout) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	next := int64(0)
	if layout.Width > 0 {
		next = stat.Size() / int64(layout.Width)
	}

	return &Store{file: f, layout: layout, nextSlot: next}, nil
}

// Save writes values to slotID if slotID >= 0 (overwriting that slot), or
// appends to a freshly-assigned slot id if slotID < 0. It returns the
// slot id the record was written at.
func (s *Store) Save(slotID int64, values []codec.Value) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slotID < 0 {
		slotID = s.nextSlot
	}
	if slotID >= s.nextSlot {
		s.nextSlot = slotID + 1
	}

	if err := s.layout.WriteRecord(s.file, slotID, values); err != nil {
		return 0, err
	}
	return slotID, nil
}

// FindByID reads the record at slotID. exists is false if the slot has
// never been written or was deleted.
func (s *Store) FindByID(slotID int64) (values []codec.Value, exists bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.layout.ReadRecord(s.file, slotID)
}

// Delete clears the existence flag of slotID's slot. The slot becomes a
// hole: the append-only allocation policy means it is never automatically
// reused.
func (s *Store) Delete(slotID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.layout.DeleteRecord(s.file, slotID)
}

// Drop removes the backing file entirely.
func (s *Store) Drop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.file.Name()
	if err := s.file.Close(); err != nil {
		return err
	}
	return os.Remove(path)
}

// Close releases the underlying file handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.file.Close()
}
