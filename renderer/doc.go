// Package renderer draws the transit network as an SVG 1.1 document.
//
// The layout is:
//   - settings.go: render settings as read from the request document or config.yml
//   - color.go: color values (named, rgb, rgba, none) and their decoding
//   - projector.go: lat/lon to canvas projection
//   - svg.go: manual SVG serialization with proper escaping
//   - renderer.go: layer composition (routes, bus labels, stops, stop labels)
package renderer
