package catalogue

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-router/geo"
)

// Catalogue stores stops, buses and road distances in memory.
type Catalogue struct {
	stops      []Stop                         // StopID -> stop
	stopByName map[string]StopID              // stop name -> id
	buses      []Bus                          // BusID -> bus
	busByName  map[string]BusID               // bus name -> id
	stopBuses  map[StopID]map[string]struct{} // stop -> names of buses serving it
	distances  map[stopPair]int               // (from, to) -> road meters
}

// New creates an empty catalogue.
func New() *Catalogue {
	return &Catalogue{
		stopByName: map[string]StopID{},
		busByName:  map[string]BusID{},
		stopBuses:  map[StopID]map[string]struct{}{},
		distances:  map[stopPair]int{},
	}
}

// AddStop inserts a stop unless one with the same name exists.
// It reports whether the stop was inserted.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) bool {
	if _, ok := c.stopByName[name]; ok {
		return false
	}
	id := StopID(len(c.stops))
	c.stops = append(c.stops, Stop{ID: id, Name: name, Coordinates: coords})
	c.stopByName[name] = id
	return true
}

// FindStop looks a stop up by name.
func (c *Catalogue) FindStop(name string) (Stop, bool) {
	id, ok := c.stopByName[name]
	if !ok {
		return Stop{}, false
	}
	return c.stops[id], true
}

// Stop returns the stop behind a handle obtained from this catalogue.
func (c *Catalogue) Stop(id StopID) Stop { return c.stops[id] }

// AddBus inserts a bus unless one with the same name exists, and records the
// bus as serving every stop on its route. It reports whether the bus was
// inserted. Stop handles that do not belong to this catalogue make the call a
// no-op.
func (c *Catalogue) AddBus(name string, stops []StopID, circular bool) bool {
	if _, ok := c.busByName[name]; ok {
		return false
	}
	for _, s := range stops {
		if s < 0 || int(s) >= len(c.stops) {
			return false
		}
	}
	id := BusID(len(c.buses))
	seq := make([]StopID, len(stops))
	copy(seq, stops)
	c.buses = append(c.buses, Bus{ID: id, Name: name, Stops: seq, Circular: circular})
	c.busByName[name] = id

	for _, s := range seq {
		set, ok := c.stopBuses[s]
		if !ok {
			set = map[string]struct{}{}
			c.stopBuses[s] = set
		}
		set[name] = struct{}{}
	}
	return true
}

// FindBus looks a bus up by name.
func (c *Catalogue) FindBus(name string) (Bus, bool) {
	id, ok := c.busByName[name]
	if !ok {
		return Bus{}, false
	}
	return c.buses[id], true
}

// AddDistance records the road length from one stop to another. Unknown stop
// names and already recorded pairs are ignored.
func (c *Catalogue) AddDistance(from, to string, meters int) bool {
	a, ok := c.stopByName[from]
	if !ok {
		return false
	}
	b, ok := c.stopByName[to]
	if !ok {
		return false
	}
	key := stopPair{from: a, to: b}
	if _, ok := c.distances[key]; ok {
		return false
	}
	c.distances[key] = meters
	return true
}

// DistanceBetween returns the road length from a to b, falling back to the
// b -> a entry and then to zero.
func (c *Catalogue) DistanceBetween(a, b StopID) int {
	if d, ok := c.distances[stopPair{from: a, to: b}]; ok {
		return d
	}
	if d, ok := c.distances[stopPair{from: b, to: a}]; ok {
		return d
	}
	return 0
}

// BusInfo computes statistics for the named bus.
func (c *Catalogue) BusInfo(name string) BusInfo {
	bus, ok := c.FindBus(name)
	if !ok {
		return BusInfo{}
	}
	route := bus.Route()
	info := BusInfo{Found: true, StopCount: len(route)}

	unique := make(map[StopID]struct{}, len(route))
	for _, s := range route {
		unique[s] = struct{}{}
	}
	info.UniqueStopCount = len(unique)

	geoLength := 0.0
	for i := 0; i+1 < len(route); i++ {
		from, to := route[i], route[i+1]
		geoLength += geo.Distance(c.stops[from].Coordinates, c.stops[to].Coordinates)
		info.RouteLength += c.DistanceBetween(from, to)
	}
	if geoLength > 0 {
		info.Curvature = float64(info.RouteLength) / geoLength
	}
	return info
}

// BusesServing returns the names of the buses serving a stop in
// lexicographic order. The result is empty for unknown or unserved stops.
func (c *Catalogue) BusesServing(stop StopID) []string {
	set := c.stopBuses[stop]
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AllStops returns every stop in insertion order.
func (c *Catalogue) AllStops() []Stop {
	out := make([]Stop, len(c.stops))
	copy(out, c.stops)
	return out
}

// AllBuses returns every bus in insertion order.
func (c *Catalogue) AllBuses() []Bus {
	out := make([]Bus, len(c.buses))
	copy(out, c.buses)
	return out
}

func (c *Catalogue) StopCount() int { return len(c.stops) }

func (c *Catalogue) BusCount() int { return len(c.buses) }
