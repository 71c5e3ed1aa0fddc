package types

import (
	"fmt"
	"strings"
)

// Quality is the condition label attached to an item.
type Quality string

// Recognized quality labels.
const (
	QualityNew     Quality = "new"
	QualityGood    Quality = "good"
	QualityWorn    Quality = "worn"
	QualityDamaged Quality = "damaged"
)

// Qualities lists every recognized label in display order.
var Qualities = []Quality{QualityNew, QualityGood, QualityWorn, QualityDamaged}

// validQualities is the set of recognized quality values.
var validQualities = map[Quality]bool{
	QualityNew:     true,
	QualityGood:    true,
	QualityWorn:    true,
	QualityDamaged: true,
}

// Valid reports whether q is one of the recognized labels.
func (q Quality) Valid() bool {
	return validQualities[q]
}

// ParseQuality maps a case-insensitive label to a Quality.
// Returns ErrInvalidQuality for anything outside the closed set.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	if !q.Valid() {
		return "", fmt.Errorf("quality %q: %w", s, ErrInvalidQuality)
	}
	return q, nil
}
