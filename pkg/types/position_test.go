package types

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", Position{1, 2, 3}, Position{1, 2, 3}, 0},
		{"row dominates shelf", Position{0, 9, 9}, Position{1, 0, 0}, -1},
		{"shelf dominates zone", Position{1, 1, 0}, Position{1, 0, 9}, 1},
		{"zone breaks tie", Position{1, 1, 1}, Position{1, 1, 2}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestParsePosition(t *testing.T) {
	t.Run("accepts comma form", func(t *testing.T) {
		p, err := ParsePosition("1,2,3")
		require.NoError(t, err)
		assert.Equal(t, Position{Row: 1, Shelf: 2, Zone: 3}, p)
	})

	t.Run("round-trips String", func(t *testing.T) {
		want := Position{Row: 4, Shelf: 0, Zone: 7}
		got, err := ParsePosition(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c", "1;2;3"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := ParsePosition(bad)
			assert.ErrorIs(t, err, ErrInvalidPosition)
		})
	}
}

func TestSpaceEnumeration(t *testing.T) {
	s := Space{Rows: 2, Shelves: 3, Zones: 4}
	require.NoError(t, s.Validate())
	assert.Equal(t, 24, s.Size())

	positions := s.Positions()
	require.Len(t, positions, 24)

	assert.True(t, sort.SliceIsSorted(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	}), "enumeration order must follow the position order")

	for i, p := range positions {
		assert.True(t, s.Contains(p))
		assert.Equal(t, i, s.Index(p))
	}
}

func TestSpaceContains(t *testing.T) {
	s := Space{Rows: 2, Shelves: 2, Zones: 2}

	assert.True(t, s.Contains(Position{0, 0, 0}))
	assert.True(t, s.Contains(Position{1, 1, 1}))
	assert.False(t, s.Contains(Position{2, 0, 0}))
	assert.False(t, s.Contains(Position{0, 2, 0}))
	assert.False(t, s.Contains(Position{0, 0, 2}))
	assert.False(t, s.Contains(Position{-1, 0, 0}))
}

func TestSpaceValidate(t *testing.T) {
	tests := []struct {
		name    string
		space   Space
		wantErr bool
	}{
		{name: "default", space: DefaultSpace()},
		{name: "single slot", space: Space{Rows: 1, Shelves: 1, Zones: 1}},
		{name: "exactly MaxSlots", space: Space{Rows: 1 << 10, Shelves: 1 << 5, Zones: 1 << 5}},
		{name: "zero rows", space: Space{Rows: 0, Shelves: 1, Zones: 1}, wantErr: true},
		{name: "negative shelves", space: Space{Rows: 1, Shelves: -1, Zones: 1}, wantErr: true},
		{name: "missing zones", space: Space{Rows: 1, Shelves: 1}, wantErr: true},
		{name: "one past MaxSlots", space: Space{Rows: MaxSlots + 1, Shelves: 1, Zones: 1}, wantErr: true},
		{name: "product wraps to zero", space: Space{Rows: 1 << 22, Shelves: 1 << 21, Zones: 1 << 21}, wantErr: true},
		{name: "product wraps negative", space: Space{Rows: 1 << 31, Shelves: 1 << 31, Zones: 3}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.space.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpace)
				return
			}
			assert.NoError(t, err)
		})
	}
}
