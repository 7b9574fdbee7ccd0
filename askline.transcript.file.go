package askline

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"sync"
)

// FileStore is an append-only JSONL implementation of TranscriptStore.
// Each entry is one JSON object per line, so transcripts survive crashes up
// to the last completed attempt and stay greppable.
type FileStore struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	closed bool
}

// FileStoreDriver is the driver for creating FileStore instances.
type FileStoreDriver struct{}

func init() {
	RegisterStoreDriver(StoreDriverNameFile, &FileStoreDriver{})
}

// Open creates a new FileStore instance.
// The connection string is the path of the JSONL file.
func (d *FileStoreDriver) Open(connectionString string) (TranscriptStore, error) {
	return NewFileStore(connectionString)
}

// NewFileStore opens (creating if needed) the transcript file at path.
func NewFileStore(path string) (*FileStore, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, NewStoreError(ErrMsgStoreOpenFailed, err)
	}
	return &FileStore{path: path, file: file}, nil
}

// Append writes one entry as a JSON line.
func (s *FileStore) Append(ctx context.Context, entry *TranscriptEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return NewStoreError(ErrMsgStoreAppendFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return NewStoreClosedError()
	}

	if _, err := s.file.Write(append(data, '\n')); err != nil {
		return NewStoreError(ErrMsgStoreAppendFailed, err)
	}
	return nil
}

// List reads the whole file and returns matching entries, oldest first.
// Unparseable lines (e.g. a torn final write) are skipped.
func (s *FileStore) List(ctx context.Context, query *TranscriptQuery) ([]*TranscriptEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, NewStoreClosedError()
	}
	path := s.path
	s.mu.Unlock()

	file, err := os.Open(path)
	if err != nil {
		return nil, NewStoreError(ErrMsgStoreListFailed, err)
	}
	defer file.Close()

	var matched []*TranscriptEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		entry := &TranscriptEntry{}
		if err := json.Unmarshal(line, entry); err != nil {
			continue
		}
		if matchesQuery(entry, query) {
			matched = append(matched, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, NewStoreError(ErrMsgStoreListFailed, err)
	}

	return applyWindow(matched, query), nil
}

// Close flushes and closes the underlying file.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.file.Close()
}
