package renderer

import (
	"strconv"
	"strings"
)

const (
	svgHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n"
	svgFooter = "</svg>"
	svgIndent = "  "
)

// pathProps are the optional presentation attributes shared by all shapes.
// Unset attributes are not written.
type pathProps struct {
	fill           *Color
	stroke         *Color
	strokeWidth    float64
	hasStrokeWidth bool
	lineCap        string
	lineJoin       string
}

func (p pathProps) withFill(c Color) pathProps   { p.fill = &c; return p }
func (p pathProps) withStroke(c Color) pathProps { p.stroke = &c; return p }

func (p pathProps) withStrokeWidth(w float64) pathProps {
	p.strokeWidth, p.hasStrokeWidth = w, true
	return p
}

func (p pathProps) rounded() pathProps {
	p.lineCap, p.lineJoin = "round", "round"
	return p
}

func (p pathProps) write(b *strings.Builder) {
	if p.fill != nil {
		writeAttr(b, "fill", p.fill.String())
	}
	if p.stroke != nil {
		writeAttr(b, "stroke", p.stroke.String())
	}
	if p.hasStrokeWidth {
		writeAttr(b, "stroke-width", formatNumber(p.strokeWidth))
	}
	if p.lineCap != "" {
		writeAttr(b, "stroke-linecap", p.lineCap)
	}
	if p.lineJoin != "" {
		writeAttr(b, "stroke-linejoin", p.lineJoin)
	}
}

type textElem struct {
	position   Point
	offset     Point
	fontSize   int
	fontFamily string
	fontWeight string
	data       string
	props      pathProps
}

// svgDocument accumulates shapes in paint order.
type svgDocument struct {
	body strings.Builder
}

func (d *svgDocument) polyline(points []Point, props pathProps) {
	b := &d.body
	b.WriteString(svgIndent)
	b.WriteString("<polyline points=\"")
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(p.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(p.Y))
	}
	b.WriteByte('"')
	props.write(b)
	b.WriteString("/>\n")
}

func (d *svgDocument) circle(center Point, radius float64, props pathProps) {
	b := &d.body
	b.WriteString(svgIndent)
	b.WriteString("<circle")
	writeAttr(b, "cx", formatNumber(center.X))
	writeAttr(b, "cy", formatNumber(center.Y))
	writeAttr(b, "r", formatNumber(radius))
	props.write(b)
	b.WriteString("/>\n")
}

func (d *svgDocument) text(t textElem) {
	b := &d.body
	b.WriteString(svgIndent)
	b.WriteString("<text")
	t.props.write(b)
	writeAttr(b, "x", formatNumber(t.position.X))
	writeAttr(b, "y", formatNumber(t.position.Y))
	writeAttr(b, "dx", formatNumber(t.offset.X))
	writeAttr(b, "dy", formatNumber(t.offset.Y))
	writeAttr(b, "font-size", strconv.Itoa(t.fontSize))
	if t.fontFamily != "" {
		writeAttr(b, "font-family", t.fontFamily)
	}
	if t.fontWeight != "" {
		writeAttr(b, "font-weight", t.fontWeight)
	}
	b.WriteByte('>')
	b.WriteString(xmlEscape(t.data))
	b.WriteString("</text>\n")
}

func (d *svgDocument) String() string {
	return svgHeader + d.body.String() + svgFooter
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(xmlEscape(value))
	b.WriteByte('"')
}

// formatNumber prints up to six significant digits.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string { return xmlReplacer.Replace(s) }
