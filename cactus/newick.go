package cactus

import (
	"strconv"
	"strings"
)

// Newick renders the block's root segment's phylogenetic tree as a
// post-order Newick string, terminated by ";". Returns "" if the block has
// no root instance. Ported from original_source's block_makeNewickString /
// block_makeNewickStringP (spec §4.2 "Newick emission").
//
// When includeUnaryEvents is false, internal nodes with exactly one child
// collapse to that child's own rendering (S6's "skip-unary" behavior).
// includeInternalNames controls whether internal nodes carry their
// segment's Name after the closing paren.
func (b Block) Newick(includeInternalNames, includeUnaryEvents bool) string {
	root, ok := b.RootSegment()
	if !ok {
		return ""
	}
	return newickOf(root, includeInternalNames, includeUnaryEvents) + ";"
}

func newickOf(seg Segment, includeInternalNames, includeUnaryEvents bool) string {
	children := seg.Children()

	if !includeUnaryEvents && len(children) == 1 {
		return newickOf(children[0], includeInternalNames, includeUnaryEvents)
	}

	if len(children) > 0 {
		parts := make([]string, len(children))
		for i, child := range children {
			parts[i] = newickOf(child, includeInternalNames, includeUnaryEvents)
		}
		inner := "(" + strings.Join(parts, ",") + ")"
		if includeInternalNames {
			inner += strconv.FormatUint(uint64(seg.Name()), 10)
		}
		return inner
	}

	return strconv.FormatUint(uint64(seg.Name()), 10)
}
