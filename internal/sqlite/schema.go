package sqlite

// Schema DDL. Slot exclusivity and id uniqueness are enforced by the primary
// key and the unique item_id column, so a corrupt JSONL line cannot produce a
// second item in a slot.
const (
	createSlots = `CREATE TABLE slots (
    row INTEGER NOT NULL,
    shelf INTEGER NOT NULL,
    zone INTEGER NOT NULL,
    item_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    quality TEXT NOT NULL,
    expiration_day INTEGER NOT NULL,
    PRIMARY KEY (row, shelf, zone)
);`

	createMeta = `CREATE TABLE meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL for name lookups and expiration scans.
const (
	idxSlotsName       = `CREATE INDEX idx_slots_name ON slots(name);`
	idxSlotsExpiration = `CREATE INDEX idx_slots_expiration ON slots(expiration_day);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createSlots,
	createMeta,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxSlotsName,
	idxSlotsExpiration,
}

// Keys of the meta table.
const (
	metaKeySpace    = "space"
	metaKeyStrategy = "strategy"
	metaKeyCursor   = "cursor"
)

// JSONL file names in DataDir.
const (
	slotsJSONL = "slots.jsonl"
	metaJSONL  = "meta.jsonl"
)

// dbFileName is the SQLite file created in DataDir on every Attach.
const dbFileName = "stockroom.db"
