package router

import "github.com/theoremus-urban-solutions/transit-router/catalogue"

// Settings are the routing parameters. Both values are expected to be
// positive; they are not re-validated here.
type Settings struct {
	BusWaitTime int     // minutes spent waiting before each boarding
	BusVelocity float64 // km/h
}

// ItemType tells Wait and Bus itinerary items apart.
type ItemType int

const (
	ItemWait ItemType = iota
	ItemBus
)

func (t ItemType) String() string {
	switch t {
	case ItemWait:
		return "Wait"
	case ItemBus:
		return "Bus"
	default:
		return "Unknown"
	}
}

// Item is one itinerary segment. StopName is set for Wait items, Bus and
// SpanCount for Bus items. Time is in minutes.
type Item struct {
	Type      ItemType
	StopName  string
	Bus       string
	SpanCount int
	Time      float64
}

// Route is a fastest itinerary. TotalTime equals the sum of item times.
type Route struct {
	TotalTime float64
	Items     []Item
}

// Router resolves fastest itineraries over a frozen graph.
type Router struct {
	settings     Settings
	graph        *Graph
	edgeData     []EdgeData          // EdgeID -> payload
	stopNames    []string            // VertexID -> stop name
	vertexByName map[string]VertexID // stop name -> vertex
}

// New builds the routing graph from the current catalogue contents.
func New(cat *catalogue.Catalogue, settings Settings) *Router {
	b := newGraphBuilder(cat, settings)
	b.build()

	byName := make(map[string]VertexID, len(b.stopNames))
	for v, name := range b.stopNames {
		byName[name] = VertexID(v)
	}
	return &Router{
		settings:     settings,
		graph:        b.graph,
		edgeData:     b.edgeData,
		stopNames:    b.stopNames,
		vertexByName: byName,
	}
}

// FindRoute returns the fastest itinerary between two stops. It reports false
// when either stop is unknown, is not served by any bus, or when the
// destination cannot be reached.
func (r *Router) FindRoute(from, to string) (Route, bool) {
	src, ok := r.vertexByName[from]
	if !ok {
		return Route{}, false
	}
	dst, ok := r.vertexByName[to]
	if !ok {
		return Route{}, false
	}
	path, ok := ShortestPath(r.graph, src, dst)
	if !ok {
		return Route{}, false
	}

	wait := float64(r.settings.BusWaitTime)
	route := Route{TotalTime: path.Weight, Items: make([]Item, 0, 2*len(path.Edges))}
	for _, id := range path.Edges {
		edge := r.graph.Edge(id)
		data := r.edgeData[id]
		route.Items = append(route.Items,
			Item{Type: ItemWait, StopName: r.stopNames[edge.From], Time: wait},
			Item{Type: ItemBus, Bus: data.Bus, SpanCount: data.SpanCount, Time: edge.Weight - wait},
		)
	}
	return route, true
}

// Graph exposes the frozen routing graph. It must not be modified.
func (r *Router) Graph() *Graph { return r.graph }

// EdgeData returns the payload of a graph edge.
func (r *Router) EdgeData(id EdgeID) EdgeData { return r.edgeData[id] }

// StopName returns the stop behind a graph vertex.
func (r *Router) StopName(v VertexID) string { return r.stopNames[v] }
