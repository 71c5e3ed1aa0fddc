package types

// Snapshot is the complete state of an inventory: what a Store saves and
// what an inventory is restored from.
type Snapshot struct {
	Space      Space       `json:"space"`
	Strategy   string      `json:"strategy"`
	Cursor     *Position   `json:"cursor,omitempty"` // Set only for cursor strategies.
	Placements []Placement `json:"placements"`
}

// Store persists inventory snapshots. Callers attach to a backend, load or
// save, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Load and Save return ErrStoreDetached.
	Detach() error

	// Load returns the stored snapshot. The boolean is false when nothing
	// has been saved yet.
	Load() (Snapshot, bool, error)

	// Save replaces the stored state with snap.
	Save(snap Snapshot) error
}
