package router

import "github.com/theoremus-urban-solutions/transit-router/catalogue"

// metersPerMinutePerKMH converts a speed in km/h to m/min.
const metersPerMinutePerKMH = 1000.0 / 60.0

// EdgeData is the itinerary payload attached to a graph edge.
type EdgeData struct {
	Bus       string
	SpanCount int
}

// graphBuilder accumulates the frozen graph and its lookup tables.
type graphBuilder struct {
	cat      *catalogue.Catalogue
	settings Settings

	vertexByStop map[catalogue.StopID]VertexID
	stopNames    []string // VertexID -> stop name
	edgeData     []EdgeData
	graph        *Graph
}

func newGraphBuilder(cat *catalogue.Catalogue, settings Settings) *graphBuilder {
	return &graphBuilder{
		cat:          cat,
		settings:     settings,
		vertexByStop: map[catalogue.StopID]VertexID{},
	}
}

func (b *graphBuilder) build() {
	buses := b.cat.AllBuses()
	routes := make([][]catalogue.StopID, len(buses))
	for i, bus := range buses {
		routes[i] = bus.Route()
		b.assignVertices(routes[i])
	}

	b.graph = NewGraph(len(b.stopNames))
	for i, bus := range buses {
		b.addBusEdges(bus, routes[i])
	}
}

func (b *graphBuilder) assignVertices(route []catalogue.StopID) {
	for _, s := range route {
		if _, ok := b.vertexByStop[s]; ok {
			continue
		}
		b.vertexByStop[s] = VertexID(len(b.stopNames))
		b.stopNames = append(b.stopNames, b.cat.Stop(s).Name)
	}
}

func (b *graphBuilder) addBusEdges(bus catalogue.Bus, route []catalogue.StopID) {
	for i := 0; i+1 < len(route); i++ {
		forward := 0
		backward := 0
		for j := i + 1; j < len(route); j++ {
			forward += b.cat.DistanceBetween(route[j-1], route[j])
			b.addEdge(route[i], route[j], bus.Name, forward, j-i)

			if !bus.Circular {
				backward += b.cat.DistanceBetween(route[j], route[j-1])
				b.addEdge(route[j], route[i], bus.Name, backward, j-i)
			}
		}
	}
}

func (b *graphBuilder) addEdge(from, to catalogue.StopID, bus string, meters, span int) {
	ride := float64(meters) / (b.settings.BusVelocity * metersPerMinutePerKMH)
	b.graph.AddEdge(Edge{
		From:   b.vertexByStop[from],
		To:     b.vertexByStop[to],
		Weight: float64(b.settings.BusWaitTime) + ride,
	})
	b.edgeData = append(b.edgeData, EdgeData{Bus: bus, SpanCount: span})
}
