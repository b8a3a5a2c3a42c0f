package pathdata

import "github.com/johnpooch/boardmap/model"

// SegmentType defines the type of path segment
type SegmentType int

const (
	// MoveTo starts a new subpath
	MoveTo SegmentType = iota
	// LineTo draws a line to a point
	LineTo
	// QuadTo draws a quadratic Bézier curve
	QuadTo
	// CubeTo draws a cubic Bézier curve
	CubeTo
	// ClosePath closes the current subpath
	ClosePath
)

func (t SegmentType) String() string {
	switch t {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case QuadTo:
		return "Q"
	case CubeTo:
		return "C"
	case ClosePath:
		return "Z"
	default:
		return "?"
	}
}

// Segment represents a single segment of a path in absolute coordinates.
type Segment struct {
	Type SegmentType

	// For MoveTo and LineTo: end point
	// For QuadTo: control point, end point
	// For CubeTo: control point 1, control point 2, end point
	Points []model.Point
}

// Path is a sequence of absolute segments.
type Path struct {
	// Segments contains all the path segments
	Segments []Segment

	// CurrentPoint is the current point in user space
	CurrentPoint model.Point

	// SubpathStart is the start of the current subpath (for closepath)
	SubpathStart model.Point

	// HasCurrentPoint indicates if a current point has been set
	HasCurrentPoint bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{
		Segments: make([]Segment, 0),
	}
}

// MoveTo starts a new subpath at the specified point
func (p *Path) MoveTo(pt model.Point) {
	p.Segments = append(p.Segments, Segment{
		Type:   MoveTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
	p.SubpathStart = pt
	p.HasCurrentPoint = true
}

// LineTo appends a line segment from the current point
func (p *Path) LineTo(pt model.Point) {
	if !p.HasCurrentPoint {
		// Treat as moveto if no current point
		p.MoveTo(pt)
		return
	}

	p.Segments = append(p.Segments, Segment{
		Type:   LineTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
}

// QuadTo appends a quadratic Bézier curve
func (p *Path) QuadTo(ctrl, end model.Point) {
	if !p.HasCurrentPoint {
		p.MoveTo(ctrl)
	}
	p.Segments = append(p.Segments, Segment{
		Type:   QuadTo,
		Points: []model.Point{ctrl, end},
	})
	p.CurrentPoint = end
}

// CubeTo appends a cubic Bézier curve
func (p *Path) CubeTo(c1, c2, end model.Point) {
	if !p.HasCurrentPoint {
		p.MoveTo(c1)
	}
	p.Segments = append(p.Segments, Segment{
		Type:   CubeTo,
		Points: []model.Point{c1, c2, end},
	})
	p.CurrentPoint = end
}

// ClosePath closes the current subpath
func (p *Path) ClosePath() {
	if !p.HasCurrentPoint {
		return
	}

	p.Segments = append(p.Segments, Segment{
		Type: ClosePath,
	})

	// Move current point back to subpath start
	p.CurrentPoint = p.SubpathStart
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Bounds returns the box containing every end and control point. Curves may
// lie inside a smaller box than this.
func (p *Path) Bounds() model.BBox {
	var points []model.Point
	for _, seg := range p.Segments {
		points = append(points, seg.Points...)
	}
	return model.NewBBoxFromPoints(points...)
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m model.Matrix) *Path {
	out := &Path{
		Segments:        make([]Segment, len(p.Segments)),
		CurrentPoint:    m.Transform(p.CurrentPoint),
		SubpathStart:    m.Transform(p.SubpathStart),
		HasCurrentPoint: p.HasCurrentPoint,
	}
	for i, seg := range p.Segments {
		pts := make([]model.Point, len(seg.Points))
		for j, pt := range seg.Points {
			pts[j] = m.Transform(pt)
		}
		out.Segments[i] = Segment{Type: seg.Type, Points: pts}
	}
	return out
}
