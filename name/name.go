// Package name provides the opaque, totally-ordered identifier used
// throughout the cactus object graph, and the strategies that issue it.
//
// A Name never encodes meaning beyond "this is the same entity" / "this
// entity sorts before that one"; callers must not rely on its numeric value
// for anything other than equality and ordering.
package name

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Name is an opaque, globally-unique, totally-ordered identifier.
//
// Two Names compare equal iff they denote the same entity. Ordering exists
// (via Compare) so Names can key sorted sets, but the order itself carries
// no semantic meaning.
type Name uint64

// Compare returns -1, 0 or 1 as n is less than, equal to, or greater than o.
func (n Name) Compare(o Name) int {
	switch {
	case n < o:
		return -1
	case n > o:
		return 1
	default:
		return 0
	}
}

// Source issues fresh, process-lifetime-unique Names.
//
// Implementations must be safe for concurrent use: a Source may be shared by
// several Flowers and a MemDisk, each calling Next under its own locks (or
// none), with no lock held in common.
type Source interface {
	// Next returns a Name not previously returned by this Source (and, for
	// store-backed sources, not previously returned by any prior Source
	// sharing the same persistent counter).
	Next() Name
}

// CounterSource issues Names from a monotonic in-process counter.
//
// This is the default Source: simplest to reason about, and sufficient
// whenever a single process owns the whole NetDisk for its lifetime.
type CounterSource struct {
	next atomic.Uint64
}

// NewCounterSource returns a CounterSource whose first issued Name is start.
func NewCounterSource(start uint64) *CounterSource {
	c := &CounterSource{}
	c.next.Store(start)
	return c
}

// Next returns the next unused Name and advances the counter.
func (c *CounterSource) Next() Name {
	return Name(c.next.Add(1) - 1)
}

// UUIDSource issues Names derived from random UUIDv4 values, folding each
// UUID's low 8 bytes into a uint64.
//
// Use this when multiple independent processes issue Names against the same
// logical NetDisk without coordinating a shared counter; collision
// probability is the birthday bound on the 62 random bits those 8 bytes
// carry (byte 8 holds the 2 fixed UUID variant bits),
// acceptable for the scale (per-flower entity counts, not genome-wide) this
// package issues Names at.
type UUIDSource struct{}

// NewUUIDSource returns a ready-to-use UUIDSource.
func NewUUIDSource() *UUIDSource { return &UUIDSource{} }

// Next returns a fresh UUID-derived Name.
func (UUIDSource) Next() Name {
	id := uuid.New()
	b := id[8:16]
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return Name(v)
}
