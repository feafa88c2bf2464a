package gtfs

// feedIndex holds the raw rows needed to build a catalogue. It lives only for
// the duration of one load.
type feedIndex struct {
	stopOrder   []string              // stop_id in file order
	stopNames   map[string]string     // stop_id -> stop_name
	stopCoord   map[string][2]float64 // stop_id -> [lat,lon]
	routeOrder  []string              // route_id in file order
	routeNames  map[string]string     // route_id -> short name (or route_id)
	tripToRoute map[string]string     // trip_id -> route_id
	tripStopSeq map[string][]string   // trip_id -> ordered stop_ids
}

func newFeedIndex() *feedIndex {
	return &feedIndex{
		stopNames:   map[string]string{},
		stopCoord:   map[string][2]float64{},
		routeNames:  map[string]string{},
		tripToRoute: map[string]string{},
		tripStopSeq: map[string][]string{},
	}
}

// representativeTrips returns, per route_id, the trip with the most stops.
// Ties go to the lexicographically lowest trip_id.
func (f *feedIndex) representativeTrips() map[string]string {
	best := map[string]string{}
	for trip, route := range f.tripToRoute {
		seq := f.tripStopSeq[trip]
		if len(seq) == 0 {
			continue
		}
		cur, ok := best[route]
		if !ok {
			best[route] = trip
			continue
		}
		curLen := len(f.tripStopSeq[cur])
		if len(seq) > curLen || (len(seq) == curLen && trip < cur) {
			best[route] = trip
		}
	}
	return best
}
