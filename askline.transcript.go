package askline

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// TranscriptEntry records one attempt of one value request: what was asked,
// what came back, and how it ended. Transcripts exist for diagnostics and
// audit of interactive sessions; they are never read back by the ask loop
// and provide no input recall.
type TranscriptEntry struct {
	// ID is the unique identifier for this entry (e.g. "trn_6ByTSYmGzT2c").
	ID string `json:"id"`

	// Session groups entries produced by one engine instance.
	Session string `json:"session"`

	// Prompt is the verbatim prompt text of the request.
	Prompt string `json:"prompt"`

	// TypeName is the expected type's human-readable name.
	TypeName string `json:"expected_type"`

	// Input is the trimmed text the user supplied; empty for aborted
	// entries where no line was obtained.
	Input string `json:"input"`

	// Outcome is one of OutcomeAccepted, OutcomeRejected, OutcomeAborted.
	Outcome string `json:"outcome"`

	// Detail carries the conversion or stream error text, if any.
	Detail string `json:"detail,omitempty"`

	// Attempt is the 1-based attempt counter within the request.
	Attempt int `json:"attempt"`

	// CreatedAt is when the attempt concluded (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// TranscriptQuery defines filters for listing transcript entries.
type TranscriptQuery struct {
	// Session filters by session identifier (empty matches all).
	Session string

	// Outcome filters by outcome value (empty matches all).
	Outcome string

	// Limit is the maximum number of results (0 = no limit).
	Limit int

	// Offset is the number of results to skip (for pagination).
	Offset int
}

// TranscriptStore is the interface for pluggable transcript backends.
// Implementations must be safe for concurrent use.
type TranscriptStore interface {
	// Append stores one entry. Entries are immutable once appended.
	Append(ctx context.Context, entry *TranscriptEntry) error

	// List returns entries matching the query, oldest first.
	List(ctx context.Context, query *TranscriptQuery) ([]*TranscriptEntry, error)

	// Close releases any resources held by the store.
	// After Close, the store should not be used.
	Close() error
}

// StoreDriver is a factory for creating transcript store instances.
// Drivers register themselves during init().
type StoreDriver interface {
	// Open creates a new store with the given connection string.
	// The format of the connection string is driver-specific.
	Open(connectionString string) (TranscriptStore, error)
}

var (
	storeDriversMu sync.RWMutex
	storeDrivers   = make(map[string]StoreDriver)
)

// RegisterStoreDriver registers a transcript store driver by name.
// Registration is first-come-wins; re-registering a name is a no-op.
func RegisterStoreDriver(name string, driver StoreDriver) {
	if name == "" || driver == nil {
		return
	}

	storeDriversMu.Lock()
	defer storeDriversMu.Unlock()

	if _, exists := storeDrivers[name]; exists {
		return
	}
	storeDrivers[name] = driver
}

// OpenStore creates a transcript store using a registered driver.
func OpenStore(driverName, connectionString string) (TranscriptStore, error) {
	storeDriversMu.RLock()
	driver, ok := storeDrivers[driverName]
	storeDriversMu.RUnlock()

	if !ok {
		return nil, NewUnknownStoreDriverError(driverName)
	}
	return driver.Open(connectionString)
}

// newID generates a random prefixed identifier for entries and sessions.
func newID(prefix string) string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}

// matchesQuery applies in-process query filtering, shared by the memory and
// file stores.
func matchesQuery(entry *TranscriptEntry, query *TranscriptQuery) bool {
	if query == nil {
		return true
	}
	if query.Session != "" && entry.Session != query.Session {
		return false
	}
	if query.Outcome != "" && entry.Outcome != query.Outcome {
		return false
	}
	return true
}

// applyWindow applies offset/limit pagination to an already-filtered slice.
func applyWindow(entries []*TranscriptEntry, query *TranscriptQuery) []*TranscriptEntry {
	if query == nil {
		return entries
	}
	if query.Offset > 0 {
		if query.Offset >= len(entries) {
			return nil
		}
		entries = entries[query.Offset:]
	}
	if query.Limit > 0 && query.Limit < len(entries) {
		entries = entries[:query.Limit]
	}
	return entries
}

// copyTranscriptEntry creates a copy so callers cannot mutate stored state.
func copyTranscriptEntry(entry *TranscriptEntry) *TranscriptEntry {
	if entry == nil {
		return nil
	}
	clone := *entry
	return &clone
}
