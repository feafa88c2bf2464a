package renderer

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-router/catalogue"
	"github.com/theoremus-urban-solutions/transit-router/geo"
)

const (
	fontFamily    = "Verdana"
	busFontWeight = "bold"
)

// MapRenderer draws a catalogue with fixed settings.
type MapRenderer struct {
	settings Settings
}

// New creates a renderer.
func New(settings Settings) *MapRenderer {
	return &MapRenderer{settings: settings}
}

type renderedBus struct {
	name  string
	route []geo.Coordinates
	// turnaround is the route index of a line route's far end, or -1
	turnaround int
}

type renderedStop struct {
	name   string
	coords geo.Coordinates
}

// Render returns the SVG document for every non-empty bus of the catalogue
// and the stops they serve. Buses and stops are drawn in name order.
func (m *MapRenderer) Render(cat *catalogue.Catalogue) string {
	buses, stops := collect(cat)
	doc := &svgDocument{}
	if len(buses) == 0 {
		return doc.String()
	}

	points := make([]geo.Coordinates, len(stops))
	for i, s := range stops {
		points[i] = s.coords
	}
	proj := newSphereProjector(points, m.settings.Width, m.settings.Height, m.settings.Padding)

	m.renderRoutes(doc, proj, buses)
	m.renderBusNames(doc, proj, buses)
	m.renderStops(doc, proj, stops)
	m.renderStopNames(doc, proj, stops)
	return doc.String()
}

// collect returns the non-empty buses sorted by name and the distinct stops
// on their routes sorted by name.
func collect(cat *catalogue.Catalogue) ([]renderedBus, []renderedStop) {
	all := cat.AllBuses()
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	buses := make([]renderedBus, 0, len(all))
	seen := map[catalogue.StopID]struct{}{}
	var stops []renderedStop
	for _, bus := range all {
		route := bus.Route()
		if len(route) == 0 {
			continue
		}
		rb := renderedBus{name: bus.Name, route: make([]geo.Coordinates, len(route)), turnaround: -1}
		for i, id := range route {
			s := cat.Stop(id)
			rb.route[i] = s.Coordinates
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				stops = append(stops, renderedStop{name: s.Name, coords: s.Coordinates})
			}
		}
		// a second label only when the far end is drawn somewhere else
		if mid := len(route) / 2; !bus.Circular && rb.route[mid] != rb.route[0] {
			rb.turnaround = mid
		}
		buses = append(buses, rb)
	}
	sort.Slice(stops, func(i, j int) bool { return stops[i].name < stops[j].name })
	return buses, stops
}

func (m *MapRenderer) renderRoutes(doc *svgDocument, proj sphereProjector, buses []renderedBus) {
	for i, bus := range buses {
		points := make([]Point, len(bus.route))
		for j, c := range bus.route {
			points[j] = proj.project(c)
		}
		props := pathProps{}.
			withStroke(m.settings.paletteColor(i)).
			withStrokeWidth(m.settings.LineWidth).
			withFill(NoneColor).
			rounded()
		doc.polyline(points, props)
	}
}

func (m *MapRenderer) renderBusNames(doc *svgDocument, proj sphereProjector, buses []renderedBus) {
	offset := Point{X: m.settings.BusLabelOffset[0], Y: m.settings.BusLabelOffset[1]}
	for i, bus := range buses {
		anchors := []geo.Coordinates{bus.route[0]}
		if bus.turnaround >= 0 {
			anchors = append(anchors, bus.route[bus.turnaround])
		}
		for _, a := range anchors {
			label := textElem{
				position:   proj.project(a),
				offset:     offset,
				fontSize:   m.settings.BusLabelFontSize,
				fontFamily: fontFamily,
				fontWeight: busFontWeight,
				data:       bus.name,
			}
			doc.text(m.underlayer(label))
			label.props = pathProps{}.withFill(m.settings.paletteColor(i))
			doc.text(label)
		}
	}
}

func (m *MapRenderer) renderStops(doc *svgDocument, proj sphereProjector, stops []renderedStop) {
	for _, s := range stops {
		doc.circle(proj.project(s.coords), m.settings.StopRadius, pathProps{}.withFill(Named("white")))
	}
}

func (m *MapRenderer) renderStopNames(doc *svgDocument, proj sphereProjector, stops []renderedStop) {
	offset := Point{X: m.settings.StopLabelOffset[0], Y: m.settings.StopLabelOffset[1]}
	for _, s := range stops {
		label := textElem{
			position:   proj.project(s.coords),
			offset:     offset,
			fontSize:   m.settings.StopLabelFontSize,
			fontFamily: fontFamily,
			data:       s.name,
		}
		doc.text(m.underlayer(label))
		label.props = pathProps{}.withFill(Named("black"))
		doc.text(label)
	}
}

// underlayer returns the halo drawn beneath a label.
func (m *MapRenderer) underlayer(t textElem) textElem {
	t.props = pathProps{}.
		withFill(m.settings.UnderlayerColor).
		withStroke(m.settings.UnderlayerColor).
		withStrokeWidth(m.settings.UnderlayerWidth).
		rounded()
	return t
}
