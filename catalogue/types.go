package catalogue

import "github.com/theoremus-urban-solutions/transit-router/geo"

// StopID is a stable handle to a stop inside one Catalogue.
type StopID int

// BusID is a stable handle to a bus inside one Catalogue.
type BusID int

// Stop is a named geo-located point served by buses.
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named stop sequence.
//
// For a circular bus Stops is the loop as given. Otherwise Stops is the
// outbound leg only and the bus travels back along it, see Route.
type Bus struct {
	ID       BusID
	Name     string
	Stops    []StopID
	Circular bool
}

// Route returns the expanded stop sequence the bus actually travels.
// A line route [S1,S2,S3] expands to [S1,S2,S3,S2,S1].
func (b Bus) Route() []StopID {
	if b.Circular || len(b.Stops) == 0 {
		out := make([]StopID, len(b.Stops))
		copy(out, b.Stops)
		return out
	}
	out := make([]StopID, 0, len(b.Stops)*2-1)
	out = append(out, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}
	return out
}

// BusInfo holds aggregate statistics for a bus. All numeric fields are zero
// when Found is false.
type BusInfo struct {
	StopCount       int     // expanded route length, repeats included
	UniqueStopCount int     // distinct stops on the expanded route
	RouteLength     int     // road meters along the expanded route
	Curvature       float64 // RouteLength / great-circle length, 0 if the latter is 0
	Found           bool
}

type stopPair struct {
	from, to StopID
}
