package router

// VertexID identifies a vertex of a Graph.
type VertexID int

// EdgeID identifies an edge of a Graph.
type EdgeID int

// Edge is a directed weighted edge.
type Edge struct {
	From   VertexID
	To     VertexID
	Weight float64
}

// Graph is a directed weighted multigraph with a fixed vertex set.
// Several edges may connect the same ordered pair of vertices.
type Graph struct {
	edges     []Edge
	incidence [][]EdgeID // vertex -> outgoing edges, in insertion order
}

// NewGraph creates a graph with vertexCount vertices and no edges.
func NewGraph(vertexCount int) *Graph {
	return &Graph{incidence: make([][]EdgeID, vertexCount)}
}

// AddEdge appends an edge and returns its id.
func (g *Graph) AddEdge(e Edge) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id
}

func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// OutgoingEdges returns the ids of the edges leaving v. The slice must not be modified.
func (g *Graph) OutgoingEdges(v VertexID) []EdgeID { return g.incidence[v] }

func (g *Graph) VertexCount() int { return len(g.incidence) }

func (g *Graph) EdgeCount() int { return len(g.edges) }
