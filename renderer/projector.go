package renderer

import (
	"math"

	"github.com/theoremus-urban-solutions/transit-router/geo"
)

const epsilon = 1e-6

func isZero(v float64) bool { return math.Abs(v) < epsilon }

// Point is a canvas position.
type Point struct {
	X, Y float64
}

// sphereProjector maps coordinates onto a padded width x height canvas,
// keeping the aspect ratio.
type sphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

func newSphereProjector(points []geo.Coordinates, width, height, padding float64) sphereProjector {
	p := sphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}
	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, c := range points[1:] {
		minLng = math.Min(minLng, c.Lng)
		maxLng = math.Max(maxLng, c.Lng)
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
	}
	p.minLng = minLng
	p.maxLat = maxLat

	var widthZoom, heightZoom float64
	hasWidth := !isZero(maxLng - minLng)
	hasHeight := !isZero(maxLat - minLat)
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}
	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}
	return p
}

func (p sphereProjector) project(c geo.Coordinates) Point {
	return Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
