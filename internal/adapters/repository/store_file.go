package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// saveVersion is the current save-blob schema version. Bump when the
// GameState shape changes incompatibly.
const saveVersion = 1

// saveFileName is the blob file inside the data dir.
const saveFileName = "saves.json"

// fileEnvelope is the on-disk shape: a version plus slot records keyed by
// slot id.
type fileEnvelope struct {
	Version int                   `json:"version"`
	Slots   map[string]SlotRecord `json:"slots"`
}

// FileStore persists slot records as one JSON blob under a data dir.
type FileStore struct {
	mu   sync.Mutex
	path string
	env  fileEnvelope
}

// NewFileStore creates the data dir if needed and loads any existing blob.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreIO, err)
	}
	s := &FileStore{
		path: filepath.Join(dataDir, saveFileName),
		env:  fileEnvelope{Version: saveVersion, Slots: map[string]SlotRecord{}},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads the blob, tolerating a missing file.
func (s *FileStore) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrStoreIO, err)
	}

	var env fileEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	if env.Version != saveVersion {
		return fmt.Errorf("%w: unsupported save version %d", ErrCorruptSave, env.Version)
	}
	if env.Slots == nil {
		env.Slots = map[string]SlotRecord{}
	}
	s.env = env
	return nil
}

// flush writes the blob atomically via a temp file rename.
func (s *FileStore) flush() error {
	b, err := json.MarshalIndent(s.env, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreIO, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreIO, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreIO, err)
	}
	return nil
}

// Save writes a record, overwriting any prior occupant of the slot.
func (s *FileStore) Save(ctx context.Context, rec SlotRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.env.Slots[strconv.Itoa(rec.SlotID)] = rec
	return s.flush()
}

// Load returns the record for a slot.
func (s *FileStore) Load(ctx context.Context, slotID int) (SlotRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.env.Slots[strconv.Itoa(slotID)]
	if !ok {
		return SlotRecord{}, fmt.Errorf("%w: %d", ErrEmptySlot, slotID)
	}
	return rec, nil
}

// Delete vacates a slot.
func (s *FileStore) Delete(ctx context.Context, slotID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strconv.Itoa(slotID)
	if _, ok := s.env.Slots[key]; !ok {
		return fmt.Errorf("%w: %d", ErrEmptySlot, slotID)
	}
	delete(s.env.Slots, key)
	return s.flush()
}
