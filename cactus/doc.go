// Package cactus implements the cactus object graph: Flowers (nested
// alignment subproblems) containing Blocks, Ends, Segments, Caps, Chains and
// Groups, plus the EventTree that labels each Segment/Cap with the genome it
// belongs to.
//
// Every cross-reference between entities (End->Block, Cap->End, parent/child
// links in the segment and cap trees) is a Name lookup into the owning
// Flower's arenas rather than a pointer, so the object graph has no reference
// cycles for the garbage collector to chase. Reverse companions — the two
// orientations of a Block, End, Segment or Cap — share one arena-owned
// record; the public handle types (Block, End, Segment, Cap) are a
// (Flower pointer, Name, orientation) triple copied by value.
//
// Flower splits its locking the way the teacher's core.Graph does: muEntities
// guards the entity arenas (blocks/ends/segments/caps), muTopo guards the
// chain/group/event indices built on top of them.
package cactus
