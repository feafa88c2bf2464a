package requests

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transit-router/catalogue"
	"github.com/theoremus-urban-solutions/transit-router/config"
)

// Processor loads request documents into a catalogue and answers them.
// Settings missing from a document fall back to the application config.
type Processor struct {
	cat    *catalogue.Catalogue
	cfg    config.AppConfig
	logger *slog.Logger
}

// NewProcessor creates a processor over cat, which may already hold data
// (e.g. a preloaded GTFS feed)
func NewProcessor(cat *catalogue.Catalogue, cfg config.AppConfig, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{cat: cat, cfg: cfg, logger: logger}
}

// Process loads the document's base requests and returns one response per
// stat request, in request order
func (p *Processor) Process(doc *Document) ([]any, error) {
	if err := Load(p.cat, doc.BaseRequests); err != nil {
		return nil, err
	}
	p.logger.Debug("base requests loaded",
		"requests", len(doc.BaseRequests),
		"stops", p.cat.StopCount(),
		"buses", p.cat.BusCount())

	opts, err := p.handlerOptions(doc)
	if err != nil {
		return nil, err
	}
	h := NewHandler(p.cat, opts)

	responses := make([]any, 0, len(doc.StatRequests))
	for _, req := range doc.StatRequests {
		resp, err := answer(h, req)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	p.logger.Debug("stat requests answered", "requests", len(doc.StatRequests))
	return responses, nil
}

// ProcessJSON decodes a document from r and writes the JSON answers to w
func (p *Processor) ProcessJSON(r io.Reader, w io.Writer, pretty bool) error {
	doc, err := Decode(r)
	if err != nil {
		return err
	}
	responses, err := p.Process(doc)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(responses)
}

func (p *Processor) handlerOptions(doc *Document) (Options, error) {
	opts := Options{RouteCacheSize: p.cfg.Cache.RouteCacheSize, Logger: p.logger}

	routing := doc.RoutingSettings
	if routing == nil {
		routing = p.cfg.Routing
	}
	if routing != nil {
		if err := config.Validate(routing); err != nil {
			return Options{}, fmt.Errorf("routing settings: %w", err)
		}
		s := routing.Settings()
		opts.Routing = &s
	}

	render := doc.RenderSettings
	if render == nil {
		render = p.cfg.Render
	}
	if render != nil {
		if err := config.Validate(render); err != nil {
			return Options{}, fmt.Errorf("render settings: %w", err)
		}
		s := *render
		opts.Render = &s
	}
	return opts, nil
}

func answer(h *Handler, req StatRequest) (any, error) {
	switch req.Type {
	case TypeBus:
		info, ok := h.BusStat(req.Name)
		if !ok {
			return newErrorResponse(req.ID), nil
		}
		return newBusResponse(req.ID, info), nil
	case TypeStop:
		buses, ok := h.BusesByStop(req.Name)
		if !ok {
			return newErrorResponse(req.ID), nil
		}
		return StopResponse{RequestID: req.ID, Buses: buses}, nil
	case TypeRoute:
		if !h.CanRoute() {
			return nil, fmt.Errorf("request %d: %w", req.ID, ErrMissingRoutingSettings)
		}
		route, ok := h.Route(req.From, req.To)
		if !ok {
			return newErrorResponse(req.ID), nil
		}
		return newRouteResponse(req.ID, route), nil
	case TypeMap:
		if !h.CanRender() {
			return nil, fmt.Errorf("request %d: %w", req.ID, ErrMissingRenderSettings)
		}
		return MapResponse{RequestID: req.ID, Map: h.RenderMap()}, nil
	default:
		return nil, fmt.Errorf("request %d: %w %q", req.ID, ErrUnknownRequestType, req.Type)
	}
}
