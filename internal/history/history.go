package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/google/uuid"
)

// Type is the kind of operation an entry records.
type Type string

const (
	TypeEncrypt Type = "encrypt"
	TypeDecrypt Type = "decrypt"
)

const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Entry represents a single history entry.
type Entry struct {
	ID        string `json:"id"`
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Type      Type   `json:"type"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	KeyA      int    `json:"a"`
	KeyB      int    `json:"b"`
}

// Time parses the entry timestamp. It returns the zero time when the
// timestamp is malformed.
func (e Entry) Time() time.Time {
	t, err := time.Parse(timestampLayout, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Store is a history log backed by a JSON Lines file.
type Store struct {
	Path string

	now func() time.Time
}

// NewStore returns a store writing to path. The file and its directory
// are created on first append.
func NewStore(path string) *Store {
	return &Store{Path: path, now: time.Now}
}

// Append writes entry to the end of the log, filling in its ID and
// timestamp when they are empty, and returns the stored entry.
func (s *Store) Append(entry Entry) (Entry, error) {
	if entry.Type != TypeEncrypt && entry.Type != TypeDecrypt {
		return Entry{}, fmt.Errorf("%w: %q", kerrors.ErrInvalidHistoryType, entry.Type)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = s.clock().UTC().Format(timestampLayout)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, err
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return Entry{}, fmt.Errorf("creating history directory: %w", err)
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return Entry{}, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return Entry{}, fmt.Errorf("writing history: %w", err)
	}
	return entry, nil
}

// List returns all entries, newest first. A missing log is an empty history.
func (s *Store) List() ([]Entry, error) {
	entries, err := s.read()
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Get returns the entry with the given ID.
func (s *Store) Get(id string) (Entry, error) {
	entries, err := s.read()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", kerrors.ErrHistoryEntryNotFound, id)
}

// Delete removes the entry with the given ID.
func (s *Store) Delete(id string) error {
	entries, err := s.read()
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("%w: %s", kerrors.ErrHistoryEntryNotFound, id)
	}
	return s.rewrite(kept)
}

// Clear removes every entry. Clearing an empty history is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Prune keeps only the newest limit entries. A limit of 0 keeps everything.
func (s *Store) Prune(limit int) error {
	if limit <= 0 {
		return nil
	}
	entries, err := s.read()
	if err != nil {
		return err
	}
	if len(entries) <= limit {
		return nil
	}
	return s.rewrite(entries[len(entries)-limit:])
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// read returns entries in file order, oldest first.
func (s *Store) read() ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	return ParseEntries(data), nil
}

// rewrite replaces the log with entries via a temporary file.
func (s *Store) rewrite(entries []Entry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".history-*.jsonl")
	if err != nil {
		return fmt.Errorf("rewriting history: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("rewriting history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rewriting history: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rewriting history: %w", err)
	}
	return nil
}

// ParseEntries parses JSON Lines data into history entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) []Entry {
	var entries []Entry
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		if entry.ID == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}
