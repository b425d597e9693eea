// Package store provides the consumed NetDisk persistence interface (Name
// issuance plus opaque string storage), an in-memory reference
// implementation of it, and a tagged, length-prefixed binary codec for the
// handful of record shapes spec.md §6 names.
//
// Per spec.md's Non-goals, this codec makes no claim of byte-compatibility
// with any real on-disk cactus format — it only has to round-trip itself.
package store
