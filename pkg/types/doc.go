// Package types defines the value types, the allocation and storage
// contracts, and the standard error values for the Stockroom inventory.
//
// A Position names one physical slot by row, shelf, and zone. A Space bounds
// the valid positions and fixes their enumeration order. Items are the goods
// held in slots; a Strategy chooses which free slot a new item occupies.
package types
