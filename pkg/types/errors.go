package types

import "errors"

// Inventory operation errors. All are recoverable and leave the inventory
// unchanged.
var (
	ErrNotFound         = errors.New("item not found")
	ErrNoSpaceAvailable = errors.New("no space available")
	ErrPositionOccupied = errors.New("position is occupied")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrDuplicateID      = errors.New("duplicate item ID")
	ErrInvalidData      = errors.New("invalid item data")
)

// Item validation errors.
var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidQuality  = errors.New("invalid quality")
)

// Configuration errors.
var (
	ErrInvalidSpace    = errors.New("space dimensions must be positive")
	ErrStrategyUnknown = errors.New("unknown allocation strategy")
	ErrMetricUnknown   = errors.New("unknown distance metric")
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
