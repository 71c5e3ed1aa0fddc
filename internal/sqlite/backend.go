// Package sqlite implements the SQLite storage backend for Stockroom.
//
// JSONL files in DataDir are the source of truth. Attach rebuilds a fresh
// SQLite database from them and Save writes both the database and the JSONL
// files, so the database never has to survive between runs.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite as the query engine
// and JSON files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   *zap.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger for lifecycle and save records.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Backend) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Attach initializes the backend with the given configuration.
// Creates DataDir if it does not exist, initializes the SQLite schema, and
// loads the JSONL files. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if config.DataDir == "" {
		config.DataDir = "."
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return err
	}

	// The database is a cache of the JSONL files; start from a fresh file.
	dbPath := filepath.Join(config.DataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := initJSONLFiles(config.DataDir); err != nil {
		db.Close()
		return err
	}
	if err := loadAllJSONL(db, config.DataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	b.logger.Debug("store attached",
		zap.String("backend", config.Backend),
		zap.String("data_dir", config.DataDir))
	return nil
}

// Detach releases all resources held by the backend. After Detach, Load and
// Save return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false

	b.logger.Debug("store detached", zap.String("data_dir", b.config.DataDir))
	return nil
}

// Load returns the stored snapshot, or false when nothing has been saved.
func (b *Backend) Load() (types.Snapshot, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Snapshot{}, false, types.ErrStoreDetached
	}

	meta, err := b.readMeta()
	if err != nil {
		return types.Snapshot{}, false, err
	}
	rawSpace, ok := meta[metaKeySpace]
	if !ok {
		return types.Snapshot{}, false, nil
	}

	var snap types.Snapshot
	if err := json.Unmarshal([]byte(rawSpace), &snap.Space); err != nil {
		return types.Snapshot{}, false, fmt.Errorf("parsing stored space: %w", err)
	}
	snap.Strategy = meta[metaKeyStrategy]
	if rawCursor, ok := meta[metaKeyCursor]; ok {
		var cursor types.Position
		if err := json.Unmarshal([]byte(rawCursor), &cursor); err != nil {
			return types.Snapshot{}, false, fmt.Errorf("parsing stored cursor: %w", err)
		}
		snap.Cursor = &cursor
	}

	snap.Placements, err = b.readSlots()
	if err != nil {
		return types.Snapshot{}, false, err
	}
	return snap, true, nil
}

// Save replaces every stored slot and the meta values with snap in a single
// transaction, then rewrites the JSONL files atomically, meta.jsonl before
// slots.jsonl.
func (b *Backend) Save(snap types.Snapshot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	metaRecords, err := metaFromSnapshot(snap)
	if err != nil {
		return err
	}
	slotRecords := slotsFromSnapshot(snap)

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM slots"); err != nil {
		return fmt.Errorf("clearing slots: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM meta"); err != nil {
		return fmt.Errorf("clearing meta: %w", err)
	}
	for _, m := range metaRecords {
		if _, err := tx.Exec("INSERT INTO meta (key, value) VALUES (?, ?)", m.Key, m.Value); err != nil {
			return fmt.Errorf("saving meta %s: %w", m.Key, err)
		}
	}
	for _, s := range slotRecords {
		_, err := tx.Exec(
			"INSERT INTO slots (row, shelf, zone, item_id, name, quantity, quality, expiration_day) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			s.Row, s.Shelf, s.Zone, s.ItemID, s.Name, s.Quantity, s.Quality, s.ExpirationDay,
		)
		if err != nil {
			return fmt.Errorf("saving item %s: %w", s.ItemID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}

	// Meta goes first: if the slots write then fails, the files hold new
	// meta with the previous slots, never new slots under a stale space.
	if err := persistJSONL(b.config.DataDir, metaJSONL, metaRecords); err != nil {
		return err
	}
	if err := persistJSONL(b.config.DataDir, slotsJSONL, slotRecords); err != nil {
		return err
	}

	b.logger.Debug("snapshot saved",
		zap.String("strategy", snap.Strategy),
		zap.Int("items", len(snap.Placements)))
	return nil
}

// persistJSONL rewrites one JSONL file in dataDir from values.
func persistJSONL[T any](dataDir, fileName string, values []T) error {
	records, err := marshalRecords(values)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", fileName, err)
	}
	if err := writeJSONL(filepath.Join(dataDir, fileName), records); err != nil {
		return fmt.Errorf("persisting %s: %w", fileName, err)
	}
	return nil
}

// readMeta returns every meta row as a map.
func (b *Backend) readMeta() (map[string]string, error) {
	rows, err := b.db.Query("SELECT key, value FROM meta")
	if err != nil {
		return nil, fmt.Errorf("querying meta: %w", err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning meta: %w", err)
		}
		meta[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating meta: %w", err)
	}
	return meta, nil
}

// readSlots hydrates every slot row in position order.
func (b *Backend) readSlots() ([]types.Placement, error) {
	rows, err := b.db.Query(
		"SELECT row, shelf, zone, item_id, name, quantity, quality, expiration_day FROM slots ORDER BY row, shelf, zone",
	)
	if err != nil {
		return nil, fmt.Errorf("querying slots: %w", err)
	}
	defer rows.Close()

	placements := []types.Placement{}
	for rows.Next() {
		var p types.Placement
		var quality string
		if err := rows.Scan(
			&p.Position.Row, &p.Position.Shelf, &p.Position.Zone,
			&p.Item.ItemID, &p.Item.Name, &p.Item.Quantity, &quality, &p.Item.ExpirationDay,
		); err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		p.Item.Quality = types.Quality(quality)
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}
	return placements, nil
}

func metaFromSnapshot(snap types.Snapshot) ([]metaJSONLRecord, error) {
	space, err := json.Marshal(snap.Space)
	if err != nil {
		return nil, fmt.Errorf("marshaling space: %w", err)
	}
	records := []metaJSONLRecord{
		{Key: metaKeySpace, Value: string(space)},
		{Key: metaKeyStrategy, Value: snap.Strategy},
	}
	if snap.Cursor != nil {
		cursor, err := json.Marshal(snap.Cursor)
		if err != nil {
			return nil, fmt.Errorf("marshaling cursor: %w", err)
		}
		records = append(records, metaJSONLRecord{Key: metaKeyCursor, Value: string(cursor)})
	}
	return records, nil
}

func slotsFromSnapshot(snap types.Snapshot) []slotJSONLRecord {
	records := make([]slotJSONLRecord, len(snap.Placements))
	for i, p := range snap.Placements {
		records[i] = slotJSONLRecord{
			Row:           p.Position.Row,
			Shelf:         p.Position.Shelf,
			Zone:          p.Position.Zone,
			ItemID:        p.Item.ItemID,
			Name:          p.Item.Name,
			Quantity:      p.Item.Quantity,
			Quality:       string(p.Item.Quality),
			ExpirationDay: p.Item.ExpirationDay,
		}
	}
	return records
}
