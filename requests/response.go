package requests

import (
	"github.com/theoremus-urban-solutions/transit-router/catalogue"
	"github.com/theoremus-urban-solutions/transit-router/router"
)

const notFound = "not found"

// ErrorResponse answers a query whose subject does not exist
type ErrorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// BusResponse answers a Bus query
type BusResponse struct {
	RequestID       int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse answers a Stop query
type StopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

// RouteResponse answers a Route query. Items hold WaitItem and BusItem values.
type RouteResponse struct {
	RequestID int     `json:"request_id"`
	TotalTime float64 `json:"total_time"`
	Items     []any   `json:"items"`
}

// WaitItem is a Route response item spent waiting at a stop
type WaitItem struct {
	Type     string  `json:"type"`
	StopName string  `json:"stop_name"`
	Time     float64 `json:"time"`
}

// BusItem is a Route response item spent riding a bus
type BusItem struct {
	Type      string  `json:"type"`
	Bus       string  `json:"bus"`
	SpanCount int     `json:"span_count"`
	Time      float64 `json:"time"`
}

// MapResponse answers a Map query with an SVG document
type MapResponse struct {
	RequestID int    `json:"request_id"`
	Map       string `json:"map"`
}

func newErrorResponse(id int) ErrorResponse {
	return ErrorResponse{RequestID: id, ErrorMessage: notFound}
}

func newBusResponse(id int, info catalogue.BusInfo) BusResponse {
	return BusResponse{
		RequestID:       id,
		Curvature:       info.Curvature,
		RouteLength:     info.RouteLength,
		StopCount:       info.StopCount,
		UniqueStopCount: info.UniqueStopCount,
	}
}

func newRouteResponse(id int, route router.Route) RouteResponse {
	items := make([]any, 0, len(route.Items))
	for _, it := range route.Items {
		switch it.Type {
		case router.ItemWait:
			items = append(items, WaitItem{Type: it.Type.String(), StopName: it.StopName, Time: it.Time})
		case router.ItemBus:
			items = append(items, BusItem{Type: it.Type.String(), Bus: it.Bus, SpanCount: it.SpanCount, Time: it.Time})
		}
	}
	return RouteResponse{RequestID: id, TotalTime: route.TotalTime, Items: items}
}
