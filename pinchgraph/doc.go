// Package pinchgraph implements the sequence-interval graph described in
// spec §4.1: vertices partition the endpoints of aligned sequence Pieces,
// black (pinch) edges carry those Pieces, and grey (adjacency) edges link
// vertices that are genomically adjacent. PinchMerge, SplitEdge and
// MergeVertices are the graph's merge/split operators; AddContig, AddVertex,
// ConnectVertices, DisconnectVertices and RemoveVertex build and edit it
// directly; everything else is read-only traversal or the consistency
// checkers CheckPinchGraph/CheckPinchGraphDegree.
//
// Concurrency follows the teacher's core.Graph: a single sync.RWMutex guards
// the whole Graph, since pinch mutation is a single-threaded, cooperative
// algorithm per spec §5 — the lock exists so a Graph may be safely read from
// other goroutines between mutation passes, not to parallelize mutation
// itself.
package pinchgraph
