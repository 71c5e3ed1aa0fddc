package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func TestNewBackend_Lifecycle(t *testing.T) {
	store := NewBackend(nil)
	require.NoError(t, store.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))

	_, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)

	snap := types.Snapshot{Space: types.Space{Rows: 2, Shelves: 2, Zones: 2}, Strategy: types.StrategyNearestFree}
	require.NoError(t, store.Save(snap))

	got, found, err := store.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, snap.Space, got.Space)
	assert.Empty(t, got.Placements)

	require.NoError(t, store.Detach())
	_, _, err = store.Load()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
}
