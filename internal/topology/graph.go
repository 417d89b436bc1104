package topology

import (
	"gonum.org/v1/gonum/graph/simple"

	"wallplan/internal/spatial"
	"wallplan/pkg/geometry"
)

// Node is a welded graph vertex. It satisfies gonum's graph.Node.
type Node struct {
	id       int64
	Pos      geometry.Point2D
	Incident []Segment
}

// ID implements graph.Node.
func (n *Node) ID() int64 { return n.id }

// Degree returns the number of wall segments meeting at this node.
func (n *Node) Degree() int { return len(n.Incident) }

// Edge is a deduplicated undirected wall edge between two welded nodes.
type Edge struct {
	A, B *Node
	Seg  Segment
}

// Graph is the planar wall graph: welded nodes plus deduplicated
// undirected adjacency held in a gonum simple graph.
type Graph struct {
	ug    *simple.UndirectedGraph
	nodes map[int64]*Node
	order []*Node
	edges []Edge

	// CollapsedSegments counts segments whose endpoints welded to the
	// same node (true zero-length edges). DuplicateEdges counts
	// segments dropped because their welded node pair already carries
	// an edge. Kept separate so degenerate geometry stays
	// distinguishable from redundant drawing.
	CollapsedSegments int
	DuplicateEdges    int
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node { return g.order }

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id int64) *Node { return g.nodes[id] }

// Edges returns the deduplicated undirected edges.
func (g *Graph) Edges() []Edge { return g.edges }

// HasEdge reports whether an edge exists between the two node IDs.
func (g *Graph) HasEdge(a, b int64) bool {
	return g.ug.HasEdgeBetween(a, b)
}

// Underlying exposes the gonum graph for algorithms that want it.
func (g *Graph) Underlying() *simple.UndirectedGraph { return g.ug }

// BuildOptions configures vertex welding.
type BuildOptions struct {
	// FuseThreshold is the maximum distance for treating two segment
	// endpoints as the same graph vertex. Strict: a gap exactly at the
	// threshold stays open.
	FuseThreshold float64

	// CellSize for the spatial index; 0 picks a size safe for
	// FuseThreshold. Must be >= FuseThreshold or welds are missed.
	CellSize float64
}

// DefaultBuildOptions returns the default weld threshold.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{FuseThreshold: 5}
}

// BuildGraph welds segment endpoints into nodes and produces the
// undirected planar graph. Segments collapsing to a single node are
// dropped and counted.
func BuildGraph(segs []Segment, opts BuildOptions) *Graph {
	cell := opts.CellSize
	if cell < opts.FuseThreshold {
		cell = opts.FuseThreshold
	}
	if cell <= 0 {
		cell = 1
	}

	g := &Graph{
		ug:    simple.NewUndirectedGraph(),
		nodes: make(map[int64]*Node),
	}
	index := spatial.NewIndex(cell)
	nextID := int64(0)

	getOrCreate := func(p geometry.Point2D) *Node {
		if id, ok := index.FindClose(p, opts.FuseThreshold); ok {
			return g.nodes[id]
		}
		n := &Node{id: nextID, Pos: p}
		nextID++
		g.nodes[n.id] = n
		g.order = append(g.order, n)
		g.ug.AddNode(n)
		index.Insert(n.id, p)
		return n
	}

	for _, s := range segs {
		na := getOrCreate(s.Start)
		nb := getOrCreate(s.End)
		if na == nb {
			g.CollapsedSegments++
			continue
		}
		if g.ug.HasEdgeBetween(na.id, nb.id) {
			// Near-duplicate wall over an existing edge.
			g.DuplicateEdges++
			continue
		}
		g.ug.SetEdge(simple.Edge{F: na, T: nb})
		na.Incident = append(na.Incident, s)
		nb.Incident = append(nb.Incident, s)
		g.edges = append(g.edges, Edge{A: na, B: nb, Seg: s})
	}

	return g
}
