package requests

import (
	"errors"
	"fmt"
	"sort"

	"github.com/theoremus-urban-solutions/transit-router/catalogue"
	"github.com/theoremus-urban-solutions/transit-router/geo"
)

var (
	// ErrUnknownStop is returned when a bus references a stop no request declared.
	ErrUnknownStop = errors.New("unknown stop")
	// ErrMissingRoutingSettings is returned for Route requests when neither the
	// document nor the configuration carries routing settings.
	ErrMissingRoutingSettings = errors.New("routing settings are missing")
	// ErrMissingRenderSettings is the Map request counterpart.
	ErrMissingRenderSettings = errors.New("render settings are missing")
	// ErrUnknownRequestType is returned for base or stat requests of an unknown type.
	ErrUnknownRequestType = errors.New("unknown request type")
)

// Load fills cat with the base requests: all stops first, then every road
// distance, then the buses. Distances to undeclared stops are ignored.
func Load(cat *catalogue.Catalogue, reqs []BaseRequest) error {
	for _, r := range reqs {
		switch r.Type {
		case TypeStop:
			cat.AddStop(r.Name, geo.Coordinates{Lat: r.Latitude, Lng: r.Longitude})
		case TypeBus:
		default:
			return fmt.Errorf("base request %q: %w %q", r.Name, ErrUnknownRequestType, r.Type)
		}
	}

	for _, r := range reqs {
		if r.Type != TypeStop || len(r.RoadDistances) == 0 {
			continue
		}
		to := make([]string, 0, len(r.RoadDistances))
		for name := range r.RoadDistances {
			to = append(to, name)
		}
		sort.Strings(to)
		for _, name := range to {
			cat.AddDistance(r.Name, name, r.RoadDistances[name])
		}
	}

	for _, r := range reqs {
		if r.Type != TypeBus {
			continue
		}
		ids := make([]catalogue.StopID, 0, len(r.Stops))
		for _, name := range r.Stops {
			stop, ok := cat.FindStop(name)
			if !ok {
				return fmt.Errorf("bus %q stop %q: %w", r.Name, name, ErrUnknownStop)
			}
			ids = append(ids, stop.ID)
		}
		cat.AddBus(r.Name, ids, r.IsRoundtrip)
	}
	return nil
}
