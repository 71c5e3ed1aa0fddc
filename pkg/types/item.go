package types

import (
	"fmt"
	"math"
)

// NeverExpires is the expiration day for goods that do not perish. No
// realistic current day is past it.
const NeverExpires = math.MaxInt32

// Item describes one stored good. Items are values: the inventory copies them
// on insertion and hands out copies, so a stored item is never changed in
// place. Replacing an item means removing it and inserting a new one.
type Item struct {
	ItemID        string  `json:"item_id"`        // Unique among stored items; empty means inventory-assigned.
	Name          string  `json:"name"`           // Display name, not unique.
	Quantity      int     `json:"quantity"`       // Whole units held in the slot.
	Quality       Quality `json:"quality"`        // Condition label.
	ExpirationDay int     `json:"expiration_day"` // Day ordinal after which the item is expired.
}

// Validate checks the fields a caller must supply. The id is not checked
// because the inventory assigns one when it is empty.
func (it Item) Validate() error {
	if it.Name == "" {
		return ErrInvalidName
	}
	if it.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if !it.Quality.Valid() {
		return ErrInvalidQuality
	}
	return nil
}

// Expired reports whether the item has expired on currentDay. An item
// counts as expired from its expiration day on.
func (it Item) Expired(currentDay int) bool {
	return it.ExpirationDay <= currentDay
}

func (it Item) String() string {
	expires := "never"
	if it.ExpirationDay != NeverExpires {
		expires = fmt.Sprintf("day %d", it.ExpirationDay)
	}
	return fmt.Sprintf("%s - %s, quantity: %d, quality: %s, expires: %s",
		it.ItemID, it.Name, it.Quantity, it.Quality, expires)
}

// Placement pairs a stored item with the slot that holds it.
type Placement struct {
	Position Position `json:"position"`
	Item     Item     `json:"item"`
}

func (p Placement) String() string {
	return fmt.Sprintf("%s -> %s", p.Position, p.Item)
}
