// Package js builds a documented class hierarchy from loosely-structured
// documentation nodes extracted from JavaScript source comments.
//
// Nodes arrive in file order, one stream per source unit, and may
// reference classes that have not been seen yet. The aggregator merges
// duplicate class declarations, buffers orphaned members until their
// owner appears, and synthesizes placeholder classes for owners that
// are never declared.
package js

// Node is one documentation unit extracted from a comment block:
// either a class declaration or a member.
type Node interface {
	node()
}

func (*Class) node()  {}
func (*Member) node() {}

// NodeSource produces the documentation nodes of one source unit in
// file order. The sequence is finite, lazily produced and consumed
// exactly once; it is not restartable.
type NodeSource interface {
	Next() (Node, bool)
}

// SliceSource adapts an in-memory node list to a NodeSource.
type SliceSource struct {
	nodes []Node
	pos   int
}

// NewSliceSource returns a NodeSource over the given nodes.
func NewSliceSource(nodes ...Node) *SliceSource {
	return &SliceSource{nodes: nodes}
}

func (s *SliceSource) Next() (Node, bool) {
	if s.pos >= len(s.nodes) {
		return nil, false
	}
	n := s.nodes[s.pos]
	s.pos++
	return n, true
}
