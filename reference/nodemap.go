package reference

import (
	"github.com/comparative-genomics/cactusgraph/cactus"
	"github.com/comparative-genomics/cactusgraph/name"
)

// NodeMap is the bijective int-node-id <-> End mapping spec §4.3.1
// describes: every attached stub end and every block end sitting in a
// tangle group becomes one node; link-group ends are excluded (they're
// handled directly by addLinkAdjacenciesAndSegments).
type NodeMap struct {
	flower *cactus.Flower
	toNode map[name.Name]int
	toEnd  map[int]cactus.End
	next   int
}

// BuildNodeMap scans every End in f and assigns node ids to the ones
// eligible per §4.3.1.
func BuildNodeMap(f *cactus.Flower) *NodeMap {
	nm := &NodeMap{
		flower: f,
		toNode: make(map[name.Name]int),
		toEnd:  make(map[int]cactus.End),
	}
	for _, e := range f.AllEnds() {
		if isNodeEligible(e) {
			nm.add(e)
		}
	}
	return nm
}

func isNodeEligible(e cactus.End) bool {
	if e.IsStub() {
		return e.IsAttached()
	}
	g, ok := e.Group()
	if !ok {
		// A block end not yet assigned to any group is treated as tangle
		// by default — it will be placed in one during assignGroups.
		return true
	}
	return !g.IsLink()
}

func (nm *NodeMap) add(e cactus.End) int {
	if id, ok := nm.toNode[e.Name()]; ok {
		return id
	}
	id := nm.next
	nm.next++
	nm.toNode[e.Name()] = id
	nm.toEnd[id] = e
	return id
}

// Node returns the node id for e, adding it if not already mapped.
// BuildReference does not call it: stubs are imported before BuildNodeMap
// scans the flower.
func (nm *NodeMap) Node(e cactus.End) int {
	return nm.add(e)
}

// NodeOf returns the node id already assigned to e, if any.
func (nm *NodeMap) NodeOf(e cactus.End) (int, bool) {
	id, ok := nm.toNode[e.Name()]
	return id, ok
}

// End returns the End a node id denotes.
func (nm *NodeMap) End(id int) (cactus.End, bool) {
	e, ok := nm.toEnd[id]
	return e, ok
}

// Nodes returns every node id currently mapped.
func (nm *NodeMap) Nodes() []int {
	out := make([]int, 0, len(nm.toEnd))
	for id := range nm.toEnd {
		out = append(out, id)
	}
	return out
}
