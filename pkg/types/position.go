package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Position identifies one storage slot. Positions are totally ordered by
// row, then shelf, then zone.
type Position struct {
	Row   int `json:"row" yaml:"row"`
	Shelf int `json:"shelf" yaml:"shelf"`
	Zone  int `json:"zone" yaml:"zone"`
}

// Compare returns -1, 0, or +1 depending on whether p sorts before, equal to,
// or after other.
func (p Position) Compare(other Position) int {
	switch {
	case p.Row != other.Row:
		return cmpInt(p.Row, other.Row)
	case p.Shelf != other.Shelf:
		return cmpInt(p.Shelf, other.Shelf)
	default:
		return cmpInt(p.Zone, other.Zone)
	}
}

// Less reports whether p sorts before other.
func (p Position) Less(other Position) bool {
	return p.Compare(other) < 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.Row, p.Shelf, p.Zone)
}

// ParsePosition parses "row,shelf,zone". Surrounding parentheses and spaces
// are accepted so that String output round-trips.
func ParsePosition(s string) (Position, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return Position{}, fmt.Errorf("position %q: want row,shelf,zone: %w", s, ErrInvalidPosition)
	}
	var coords [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Position{}, fmt.Errorf("position %q: %w", s, ErrInvalidPosition)
		}
		coords[i] = n
	}
	return Position{Row: coords[0], Shelf: coords[1], Zone: coords[2]}, nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
