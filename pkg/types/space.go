package types

// Default space dimensions, a 10x10x10 block of slots.
const (
	DefaultRows    = 10
	DefaultShelves = 10
	DefaultZones   = 10
)

// MaxSlots bounds the number of positions in a space. The inventory keeps
// one arena entry per position.
const MaxSlots = 1 << 20

// Space is the fixed set of valid positions: every position whose row,
// shelf, and zone fall in [0, Rows), [0, Shelves), and [0, Zones).
// Enumeration order is the Position total order, so Index is monotonic.
type Space struct {
	Rows    int `json:"rows" yaml:"rows"`
	Shelves int `json:"shelves" yaml:"shelves"`
	Zones   int `json:"zones" yaml:"zones"`
}

// DefaultSpace returns the 10x10x10 space.
func DefaultSpace() Space {
	return Space{Rows: DefaultRows, Shelves: DefaultShelves, Zones: DefaultZones}
}

// Validate returns ErrInvalidSpace when any dimension is not positive or
// the space holds more than MaxSlots positions. The bound is checked by
// division so the product never overflows.
func (s Space) Validate() error {
	if s.Rows <= 0 || s.Shelves <= 0 || s.Zones <= 0 {
		return ErrInvalidSpace
	}
	if s.Rows > MaxSlots/s.Shelves {
		return ErrInvalidSpace
	}
	if s.Zones > MaxSlots/(s.Rows*s.Shelves) {
		return ErrInvalidSpace
	}
	return nil
}

// Size is the number of positions in the space.
func (s Space) Size() int {
	return s.Rows * s.Shelves * s.Zones
}

// Contains reports whether p is a valid position of s.
func (s Space) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < s.Rows &&
		p.Shelf >= 0 && p.Shelf < s.Shelves &&
		p.Zone >= 0 && p.Zone < s.Zones
}

// Index returns the enumeration index of p. The result is meaningless when
// Contains(p) is false.
func (s Space) Index(p Position) int {
	return (p.Row*s.Shelves+p.Shelf)*s.Zones + p.Zone
}

// At returns the position with enumeration index i, 0 <= i < Size().
func (s Space) At(i int) Position {
	zone := i % s.Zones
	i /= s.Zones
	return Position{Row: i / s.Shelves, Shelf: i % s.Shelves, Zone: zone}
}

// Positions returns every position in enumeration order.
func (s Space) Positions() []Position {
	out := make([]Position, s.Size())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
