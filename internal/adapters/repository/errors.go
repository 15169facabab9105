package repository

import "errors"

// Sentinel kinds for save-registry errors.
var (
	ErrInvalidSlot = errors.New("invalid save slot")
	ErrEmptySlot   = errors.New("save slot is empty")
	ErrCorruptSave = errors.New("corrupted save data")
	ErrStoreIO     = errors.New("save store io failed")
)
