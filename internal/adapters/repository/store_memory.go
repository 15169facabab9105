package repository

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps slot records in memory. Used by tests and by callers
// that bring their own persistence.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[int]SlotRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[int]SlotRecord{}}
}

// Save writes a record, overwriting any prior occupant of the slot.
func (s *MemoryStore) Save(ctx context.Context, rec SlotRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[rec.SlotID] = rec
	return nil
}

// Load returns the record for a slot.
func (s *MemoryStore) Load(ctx context.Context, slotID int) (SlotRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.slots[slotID]
	if !ok {
		return SlotRecord{}, fmt.Errorf("%w: %d", ErrEmptySlot, slotID)
	}
	return rec, nil
}

// Delete vacates a slot.
func (s *MemoryStore) Delete(ctx context.Context, slotID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[slotID]; !ok {
		return fmt.Errorf("%w: %d", ErrEmptySlot, slotID)
	}
	delete(s.slots, slotID)
	return nil
}
