// Package shape converts primitive SVG shapes into path-command syntax.
//
// Every later stage of the compiler works on a single geometry
// representation, so rectangles, polygons and polylines are rewritten as
// path data here. The conversions are pure functions of the shape's raw
// attribute values.
package shape

import (
	"strconv"
	"strings"

	"github.com/johnpooch/boardmap/svgdoc"
)

// Recognized shape tags.
const (
	TagPath     = "path"
	TagRect     = "rect"
	TagPolygon  = "polygon"
	TagPolyline = "polyline"
)

// Shape is a normalized shape: its source tag, its path data and the style
// attribute carried over unchanged.
type Shape struct {
	Tag   string
	Path  string
	Style string
}

// Options selects which tags are rewritten.
type Options struct {
	// ConvertPolyline rewrites polylines with Polyline. When false a
	// polyline passes its d attribute through like any other tag.
	ConvertPolyline bool
}

// DefaultOptions converts every recognized primitive.
func DefaultOptions() Options {
	return Options{ConvertPolyline: true}
}

// FromElement normalizes an element using DefaultOptions.
func FromElement(e *svgdoc.Element) Shape {
	return FromElementWithOptions(e, DefaultOptions())
}

// FromElementWithOptions normalizes an element. Missing numeric attributes
// are treated as 0 and absent geometry becomes an empty path.
func FromElementWithOptions(e *svgdoc.Element, opts Options) Shape {
	style, _ := e.Attr("style")
	s := Shape{Tag: e.Tag(), Style: style}

	switch s.Tag {
	case TagRect:
		s.Path = Rect(e.AttrFloat("x"), e.AttrFloat("y"), e.AttrFloat("width"), e.AttrFloat("height"))
	case TagPolygon:
		points, _ := e.Attr("points")
		s.Path = Polygon(points)
	case TagPolyline:
		points, _ := e.Attr("points")
		if opts.ConvertPolyline {
			s.Path = Polyline(points)
		} else {
			s.Path, _ = e.Attr("d")
		}
	default:
		s.Path, _ = e.Attr("d")
	}
	return s
}

// Rect returns the closed four-corner path of a rectangle.
func Rect(x, y, width, height float64) string {
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(pair(x, y))
	b.WriteString(" L ")
	b.WriteString(pair(x+width, y))
	b.WriteString(" L ")
	b.WriteString(pair(x+width, y+height))
	b.WriteString(" L ")
	b.WriteString(pair(x, y+height))
	b.WriteString(" Z")
	return b.String()
}

// Polygon returns a closed path through every point of a points list. A
// points list with no pairs yields an empty path.
func Polygon(points string) string {
	pairs := Points(points)
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(pairs[0])
	for _, p := range pairs[1:] {
		b.WriteString(" L ")
		b.WriteString(p)
	}
	b.WriteString(" Z")
	return b.String()
}

// Polyline returns "M" followed by the raw points list.
//
// No lineto commands are inserted between points. Points after the first
// only draw through the implicit lineto that path syntax applies after a
// moveto, and a points list that starts with whitespace or uses bare
// space-separated coordinates is passed along as written. Existing boards
// depend on this output.
func Polyline(points string) string {
	return "M" + points
}

// Points splits a points list into "x,y" pairs. Coordinates may be separated
// by commas, whitespace or both. A trailing unpaired coordinate is dropped.
func Points(points string) []string {
	fields := strings.FieldsFunc(points, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	pairs := make([]string, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		pairs = append(pairs, fields[i]+","+fields[i+1])
	}
	return pairs
}

func pair(x, y float64) string {
	return formatNumber(x) + "," + formatNumber(y)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
