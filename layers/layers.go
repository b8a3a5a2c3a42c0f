// Package layers extracts the background, border and impassable-terrain
// collections from a board document.
package layers

import (
	"github.com/johnpooch/boardmap/model"
	"github.com/johnpooch/boardmap/shape"
	"github.com/johnpooch/boardmap/style"
	"github.com/johnpooch/boardmap/svgdoc"
)

// DefaultImpassableFill is the fill value that marks a foreground shape as
// impassable terrain.
const DefaultImpassableFill = "url(#impassableStripes)"

// Kind is the classification of a foreground shape.
type Kind int

const (
	// KindBorder is a line drawn over province fills.
	KindBorder Kind = iota
	// KindImpassable is hatched, non-traversable terrain.
	KindImpassable
)

func (k Kind) String() string {
	switch k {
	case KindBorder:
		return "border"
	case KindImpassable:
		return "impassable"
	default:
		return "unknown"
	}
}

// Classified is one foreground shape with its classification.
type Classified struct {
	Kind Kind
	Path string
}

// Partition holds the two disjoint foreground collections.
type Partition struct {
	Borders    []model.Border
	Impassable []model.ImpassableRegion
}

var (
	backgroundTags = []string{shape.TagPath, shape.TagRect}
	foregroundTags = []string{shape.TagPath, shape.TagPolygon, shape.TagPolyline}
)

// Background returns every path and rect inside group, normalized and paired
// with its styles. Elements whose id is in skipIDs, such as the canvas
// rectangle, are left out. A missing group yields an empty slice.
func Background(group *svgdoc.Element, skipIDs ...string) []model.BackgroundElement {
	elements := make([]model.BackgroundElement, 0)
	for _, el := range group.Descendants(backgroundTags...) {
		if skipped(el.ID(), skipIDs) {
			continue
		}
		s := shape.FromElement(el)
		elements = append(elements, model.BackgroundElement{
			Path:   s.Path,
			Styles: style.Paths(style.Parse(s.Style)),
		})
	}
	return elements
}

func skipped(id string, skipIDs []string) bool {
	if id == "" {
		return false
	}
	for _, skip := range skipIDs {
		if id == skip {
			return true
		}
	}
	return false
}

// Classify visits the foreground group once and tags each path, polygon and
// polyline. A shape whose fill equals impassableFill is impassable; every
// other shape is a border.
func Classify(group *svgdoc.Element, impassableFill string) []Classified {
	shapes := group.Descendants(foregroundTags...)
	result := make([]Classified, 0, len(shapes))
	for _, el := range shapes {
		s := shape.FromElement(el)
		kind := KindBorder
		if style.Parse(s.Style)["fill"] == impassableFill {
			kind = KindImpassable
		}
		result = append(result, Classified{Kind: kind, Path: s.Path})
	}
	return result
}

// Split divides classified shapes into borders and impassable regions,
// keeping document order within each.
func Split(shapes []Classified) Partition {
	p := Partition{
		Borders:    make([]model.Border, 0),
		Impassable: make([]model.ImpassableRegion, 0),
	}
	for _, c := range shapes {
		switch c.Kind {
		case KindImpassable:
			p.Impassable = append(p.Impassable, model.ImpassableRegion{Path: c.Path})
		default:
			p.Borders = append(p.Borders, model.Border{Path: c.Path})
		}
	}
	return p
}

// Foreground classifies and splits the foreground group.
func Foreground(group *svgdoc.Element, impassableFill string) Partition {
	return Split(Classify(group, impassableFill))
}
