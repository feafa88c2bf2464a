package requests

import (
	"github.com/bluele/gcache"
	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transit-router/catalogue"
	"github.com/theoremus-urban-solutions/transit-router/renderer"
	"github.com/theoremus-urban-solutions/transit-router/router"
)

// Options configure a Handler. Nil Routing or Render disable the matching
// queries; RouteCacheSize 0 disables route memoisation.
type Options struct {
	Routing        *router.Settings
	Render         *renderer.Settings
	RouteCacheSize int
	Logger         *slog.Logger
}

// Handler answers queries over a loaded catalogue. The router is built on the
// first Route call and never rebuilt, so the catalogue should be fully loaded
// by then.
type Handler struct {
	cat      *catalogue.Catalogue
	routing  *router.Settings
	renderer *renderer.MapRenderer
	router   *router.Router
	routes   gcache.Cache
	logger   *slog.Logger
}

// routeKey identifies a memoised Route query
type routeKey struct {
	from, to string
}

type routeResult struct {
	route router.Route
	found bool
}

// NewHandler creates a query handler over cat
func NewHandler(cat *catalogue.Catalogue, opts Options) *Handler {
	h := &Handler{cat: cat, routing: opts.Routing, logger: opts.Logger}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if opts.Render != nil {
		h.renderer = renderer.New(*opts.Render)
	}
	if opts.RouteCacheSize > 0 {
		h.routes = gcache.New(opts.RouteCacheSize).LRU().Build()
	}
	return h
}

// BusStat returns statistics for the named bus
func (h *Handler) BusStat(name string) (catalogue.BusInfo, bool) {
	info := h.cat.BusInfo(name)
	return info, info.Found
}

// BusesByStop returns the sorted bus names serving the named stop. The slice
// is empty, not nil, for a stop without buses.
func (h *Handler) BusesByStop(name string) ([]string, bool) {
	stop, ok := h.cat.FindStop(name)
	if !ok {
		return nil, false
	}
	buses := h.cat.BusesServing(stop.ID)
	if buses == nil {
		buses = []string{}
	}
	return buses, true
}

// CanRoute reports whether routing settings were provided
func (h *Handler) CanRoute() bool { return h.routing != nil }

// CanRender reports whether render settings were provided
func (h *Handler) CanRender() bool { return h.renderer != nil }

// Route returns the fastest itinerary between two stops. It reports false
// when either stop is unknown, no route exists or routing is disabled.
// Each call returns its own Items slice.
func (h *Handler) Route(from, to string) (router.Route, bool) {
	if h.routing == nil {
		return router.Route{}, false
	}
	if h.routes == nil {
		return h.findRoute(from, to)
	}
	key := routeKey{from: from, to: to}
	if v, err := h.routes.Get(key); err == nil {
		res := v.(routeResult)
		return copyRoute(res.route), res.found
	}
	route, found := h.findRoute(from, to)
	_ = h.routes.Set(key, routeResult{route: copyRoute(route), found: found})
	return route, found
}

func copyRoute(r router.Route) router.Route {
	if r.Items != nil {
		r.Items = append(make([]router.Item, 0, len(r.Items)), r.Items...)
	}
	return r
}

func (h *Handler) findRoute(from, to string) (router.Route, bool) {
	if h.router == nil {
		h.router = router.New(h.cat, *h.routing)
		h.logger.Debug("routing graph built",
			"vertices", h.router.Graph().VertexCount(),
			"edges", h.router.Graph().EdgeCount())
	}
	return h.router.FindRoute(from, to)
}

// RenderMap returns the SVG map of the catalogue, or an empty string when
// rendering is disabled.
func (h *Handler) RenderMap() string {
	if h.renderer == nil {
		return ""
	}
	return h.renderer.Render(h.cat)
}
