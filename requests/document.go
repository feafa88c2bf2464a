package requests

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/transit-router/config"
	"github.com/theoremus-urban-solutions/transit-router/renderer"
)

// Base and stat request types
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// Document is a full request document
type Document struct {
	BaseRequests    []BaseRequest         `json:"base_requests"`
	RoutingSettings *config.RoutingConfig `json:"routing_settings,omitempty"`
	RenderSettings  *renderer.Settings    `json:"render_settings,omitempty"`
	StatRequests    []StatRequest         `json:"stat_requests"`
}

// BaseRequest describes either a stop or a bus. Stop requests use
// Latitude, Longitude and RoadDistances; bus requests use Stops and
// IsRoundtrip.
type BaseRequest struct {
	Type          string         `json:"type"`
	Name          string         `json:"name"`
	Latitude      float64        `json:"latitude,omitempty"`
	Longitude     float64        `json:"longitude,omitempty"`
	RoadDistances map[string]int `json:"road_distances,omitempty"`
	Stops         []string       `json:"stops,omitempty"`
	IsRoundtrip   bool           `json:"is_roundtrip,omitempty"`
}

// StatRequest is one query. Name is used by Bus and Stop requests, From
// and To by Route requests.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Decode reads a request document
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode request document: %w", err)
	}
	return &doc, nil
}
