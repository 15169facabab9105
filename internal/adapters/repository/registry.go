// Package repository owns the fixed set of save slots: creation, load,
// delete, and the durable store behind them. The save blob format is a
// versioned envelope so catalogs can evolve without stranding old saves.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lanebreak/tenpin/internal/domain/model"
)

// SlotRecord is one occupied save slot.
type SlotRecord struct {
	SlotID    int             `json:"slot_id"`
	LastSaved time.Time       `json:"last_saved"`
	State     model.GameState `json:"state"`
}

// SlotSummary is the read shape for slot listings.
type SlotSummary struct {
	SlotID     int       `json:"slot_id"`
	Empty      bool      `json:"empty"`
	PlayerName string    `json:"player_name,omitempty"`
	Season     int       `json:"season,omitempty"`
	Week       int       `json:"week,omitempty"`
	LastSaved  time.Time `json:"last_saved,omitzero"`
}

// Store provides durable access to slot records, keyed by slot id.
type Store interface {
	// Save writes a record, overwriting any prior occupant of the slot.
	Save(ctx context.Context, rec SlotRecord) error
	// Load returns the record for a slot. Returns ErrEmptySlot when vacant.
	Load(ctx context.Context, slotID int) (SlotRecord, error)
	// Delete vacates a slot. Returns ErrEmptySlot when already vacant.
	Delete(ctx context.Context, slotID int) error
}

// Registry enforces the fixed slot range over a Store. The engine allows
// exactly one loaded profile at a time; the registry is how slots change.
type Registry struct {
	store Store
	slots int
	now   func() time.Time
}

// NewRegistry creates a Registry with slotCount slots numbered 1..slotCount.
func NewRegistry(store Store, slotCount int, opts ...RegistryOption) *Registry {
	r := &Registry{
		store: store,
		slots: slotCount,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SlotCount returns the fixed number of slots.
func (r *Registry) SlotCount() int {
	return r.slots
}

// validSlot rejects slot ids outside 1..slots.
func (r *Registry) validSlot(slotID int) error {
	if slotID < 1 || slotID > r.slots {
		return fmt.Errorf("%w: %d not in 1..%d", ErrInvalidSlot, slotID, r.slots)
	}
	return nil
}

// Save writes the state into a slot, stamping LastSaved.
func (r *Registry) Save(ctx context.Context, slotID int, state model.GameState) error {
	if err := r.validSlot(slotID); err != nil {
		return err
	}
	return r.store.Save(ctx, SlotRecord{
		SlotID:    slotID,
		LastSaved: r.now(),
		State:     state,
	})
}

// Load returns the state stored in a slot.
func (r *Registry) Load(ctx context.Context, slotID int) (SlotRecord, error) {
	if err := r.validSlot(slotID); err != nil {
		return SlotRecord{}, err
	}
	return r.store.Load(ctx, slotID)
}

// Delete vacates a slot.
func (r *Registry) Delete(ctx context.Context, slotID int) error {
	if err := r.validSlot(slotID); err != nil {
		return err
	}
	return r.store.Delete(ctx, slotID)
}

// Summaries lists every slot in id order, vacant ones included.
func (r *Registry) Summaries(ctx context.Context) []SlotSummary {
	out := make([]SlotSummary, 0, r.slots)
	for id := 1; id <= r.slots; id++ {
		rec, err := r.store.Load(ctx, id)
		if err != nil {
			out = append(out, SlotSummary{SlotID: id, Empty: true})
			continue
		}
		out = append(out, SlotSummary{
			SlotID:     id,
			Empty:      false,
			PlayerName: rec.State.Profile.Name,
			Season:     rec.State.Profile.CurrentSeason,
			Week:       rec.State.Profile.CurrentWeek,
			LastSaved:  rec.LastSaved,
		})
	}
	return out
}

// RegistryOption applies a configuration option to the Registry.
type RegistryOption func(*Registry)

// WithClock sets the timestamp source, useful in tests.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}
