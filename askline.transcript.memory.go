package askline

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of TranscriptStore.
// It is primarily intended for testing and development.
// All data is lost when the process terminates.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*TranscriptEntry
	closed  bool
}

// MemoryStoreDriver is the driver for creating MemoryStore instances.
type MemoryStoreDriver struct{}

func init() {
	RegisterStoreDriver(StoreDriverNameMemory, &MemoryStoreDriver{})
}

// Open creates a new MemoryStore instance.
// The connection string is ignored for memory stores.
func (d *MemoryStoreDriver) Open(connectionString string) (TranscriptStore, error) {
	return NewMemoryStore(), nil
}

// NewMemoryStore creates a new in-memory transcript store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append stores one entry.
func (s *MemoryStore) Append(ctx context.Context, entry *TranscriptEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	s.entries = append(s.entries, copyTranscriptEntry(entry))
	return nil
}

// List returns entries matching the query, oldest first.
func (s *MemoryStore) List(ctx context.Context, query *TranscriptQuery) ([]*TranscriptEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, NewStoreClosedError()
	}

	var matched []*TranscriptEntry
	for _, entry := range s.entries {
		if matchesQuery(entry, query) {
			matched = append(matched, copyTranscriptEntry(entry))
		}
	}

	return applyWindow(matched, query), nil
}

// Close marks the store closed; further operations fail.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.entries = nil
	return nil
}
