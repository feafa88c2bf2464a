package router

// Path is a minimum-weight edge sequence between two vertices.
type Path struct {
	Weight float64
	Edges  []EdgeID
}

// ShortestPath runs Dijkstra's algorithm from 'from' and returns the
// minimum-weight path to 'to'. Edge weights must be non-negative.
// The search stops as soon as the target is settled.
func ShortestPath(g *Graph, from, to VertexID) (Path, bool) {
	n := g.VertexCount()
	if from < 0 || int(from) >= n || to < 0 || int(to) >= n {
		return Path{}, false
	}
	if from == to {
		return Path{Edges: []EdgeID{}}, true
	}

	dist := make([]float64, n)
	prevEdge := make([]EdgeID, n)
	for i := range prevEdge {
		prevEdge[i] = -1
	}

	h := newVertexHeap(n)
	h.push(from, 0)
	for !h.empty() {
		curr, currDist := h.pop()
		dist[curr] = currDist
		if curr == to {
			break
		}
		for _, e := range g.OutgoingEdges(curr) {
			edge := g.Edge(e)
			if h.update(edge.To, currDist+edge.Weight) {
				prevEdge[edge.To] = e
			}
		}
	}
	if h.color(to) != black {
		return Path{}, false
	}

	var edges []EdgeID
	for v := to; v != from; {
		e := prevEdge[v]
		edges = append(edges, e)
		v = g.Edge(e).From
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return Path{Weight: dist[to], Edges: edges}, true
}
