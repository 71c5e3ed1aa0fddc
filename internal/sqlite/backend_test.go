// Tests for the SQLite backend lifecycle and snapshot persistence.
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func testConfig(dir string) types.Config {
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: dir,
	}
}

func sampleSnapshot() types.Snapshot {
	cursor := types.Position{Row: 0, Shelf: 0, Zone: 2}
	return types.Snapshot{
		Space:    types.Space{Rows: 1, Shelves: 1, Zones: 3},
		Strategy: types.StrategyRoundRobin,
		Cursor:   &cursor,
		Placements: []types.Placement{
			{
				Position: types.Position{Row: 0, Shelf: 0, Zone: 0},
				Item: types.Item{
					ItemID:        "item-1",
					Name:          "Bolts",
					Quantity:      40,
					Quality:       types.QualityNew,
					ExpirationDay: types.NeverExpires,
				},
			},
			{
				Position: types.Position{Row: 0, Shelf: 0, Zone: 1},
				Item: types.Item{
					ItemID:        "item-2",
					Name:          "milk",
					Quantity:      1,
					Quality:       types.QualityGood,
					ExpirationDay: 19500,
				},
			},
		},
	}
}

func TestBackend_Attach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	config := testConfig(tmpDir)

	err := b.Attach(config)
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	// Verify database file created
	dbPath := filepath.Join(tmpDir, dbFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("%s not created", dbFileName)
	}

	// Verify double attach fails
	err = b.Attach(config)
	if !errors.Is(err, types.ErrAlreadyAttached) {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}

	b.Detach()
}

func TestBackend_AttachCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	b := NewBackend()
	if err := b.Attach(testConfig(dataDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	if _, err := os.Stat(dataDir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	b := NewBackend()

	err := b.Attach(types.Config{DataDir: t.TempDir()})
	if !errors.Is(err, types.ErrBackendEmpty) {
		t.Errorf("expected ErrBackendEmpty, got %v", err)
	}

	err = b.Attach(types.Config{Backend: "dolt", DataDir: t.TempDir()})
	if !errors.Is(err, types.ErrBackendUnknown) {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	b.Attach(testConfig(tmpDir))

	err := b.Detach()
	if err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach failed: %v", err)
	}

	// Verify operations fail after detach
	if _, _, err := b.Load(); !errors.Is(err, types.ErrStoreDetached) {
		t.Errorf("expected ErrStoreDetached from Load, got %v", err)
	}
	if err := b.Save(sampleSnapshot()); !errors.Is(err, types.ErrStoreDetached) {
		t.Errorf("expected ErrStoreDetached from Save, got %v", err)
	}
}

func TestBackend_LoadEmpty(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	_, ok, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("expected no stored snapshot in a fresh data dir")
	}
}

func TestBackend_SaveLoad(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	want := sampleSnapshot()
	if err := b.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, ok, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected stored snapshot")
	}
	if got.Space != want.Space {
		t.Errorf("space = %v, want %v", got.Space, want.Space)
	}
	if got.Strategy != want.Strategy {
		t.Errorf("strategy = %q, want %q", got.Strategy, want.Strategy)
	}
	if got.Cursor == nil || *got.Cursor != *want.Cursor {
		t.Errorf("cursor = %v, want %v", got.Cursor, *want.Cursor)
	}
	if len(got.Placements) != len(want.Placements) {
		t.Fatalf("expected %d placements, got %d", len(want.Placements), len(got.Placements))
	}
	for i := range want.Placements {
		if got.Placements[i] != want.Placements[i] {
			t.Errorf("placement %d = %v, want %v", i, got.Placements[i], want.Placements[i])
		}
	}
}

func TestBackend_SaveReplacesPreviousSnapshot(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t.TempDir())); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	if err := b.Save(sampleSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	next := sampleSnapshot()
	next.Strategy = types.StrategyNearestFree
	next.Cursor = nil
	next.Placements = next.Placements[1:]
	if err := b.Save(next); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, _, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Strategy != types.StrategyNearestFree {
		t.Errorf("strategy = %q, want %q", got.Strategy, types.StrategyNearestFree)
	}
	if got.Cursor != nil {
		t.Errorf("expected no cursor, got %v", *got.Cursor)
	}
	if len(got.Placements) != 1 || got.Placements[0].Item.ItemID != "item-2" {
		t.Errorf("expected only item-2, got %v", got.Placements)
	}
}

func TestBackend_PersistenceAcrossRestarts(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	if err := b.Save(sampleSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	b.Detach()

	// A fresh backend rebuilds the database from JSONL.
	b2 := NewBackend()
	if err := b2.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer b2.Detach()

	got, ok, err := b2.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("expected stored snapshot after restart")
	}
	if len(got.Placements) != 2 {
		t.Errorf("expected 2 placements, got %d", len(got.Placements))
	}
	if got.Cursor == nil || *got.Cursor != (types.Position{Zone: 2}) {
		t.Errorf("cursor not restored: %v", got.Cursor)
	}
}

func TestBackend_SaveWritesMetaBeforeSlots(t *testing.T) {
	tmpDir := t.TempDir()

	b := NewBackend()
	if err := b.Attach(testConfig(tmpDir)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	first := sampleSnapshot()
	first.Placements = first.Placements[:1]
	if err := b.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	slotsPath := filepath.Join(tmpDir, slotsJSONL)
	before, err := os.ReadFile(slotsPath)
	if err != nil {
		t.Fatalf("failed to read slots.jsonl: %v", err)
	}

	// A non-empty directory in place of meta.jsonl makes its rename fail.
	metaPath := filepath.Join(tmpDir, metaJSONL)
	if err := os.Remove(metaPath); err != nil {
		t.Fatalf("failed to remove meta.jsonl: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(metaPath, "blocker"), 0o755); err != nil {
		t.Fatalf("failed to block meta.jsonl: %v", err)
	}

	if err := b.Save(sampleSnapshot()); err == nil {
		t.Fatal("expected Save to fail when meta.jsonl cannot be written")
	}

	after, err := os.ReadFile(slotsPath)
	if err != nil {
		t.Fatalf("failed to read slots.jsonl: %v", err)
	}
	if string(after) != string(before) {
		t.Errorf("slots.jsonl changed although meta.jsonl was not written:\nbefore: %s\nafter:  %s", before, after)
	}
}
