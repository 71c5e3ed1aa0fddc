// Package inventory implements the slot inventory and its allocation
// strategies.
//
// An Inventory owns a fixed Space of positions, stores at most one item per
// position, and keeps item ids unique. Placing a new item is two explicit
// steps: AllocateNewItem asks the configured Strategy for a free position,
// and Insert stores the item there. Searches, removal, sorted listing, and
// expiration queries work on the slots directly and never consult the
// strategy.
//
// Two strategies are provided. RoundRobin scans from a cursor that advances
// past every position it hands out, spreading items across the space.
// NearestFree picks the free position closest to a fixed entry point.
//
// An Inventory is not safe for concurrent use. Callers that share one must
// hold a single lock across AllocateNewItem and the matching Insert.
package inventory
