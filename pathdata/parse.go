// Package pathdata parses path-command syntax into absolute segments.
//
// The compiler itself only needs the leading moveto of a center marker; this
// package serves consumers of a compiled map that need real geometry, such
// as the preview rasterizer and the extent checks of the build tool.
//
// Commands are compiled by github.com/srwiley/oksvg, which resolves relative
// coordinates, smooth control points and arcs into rasterx path commands.
// Coordinates pass through 26.6 fixed point, so they are exact to 1/64.
package pathdata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/srwiley/oksvg"
	"golang.org/x/image/math/fixed"

	"github.com/johnpooch/boardmap/model"
)

// ErrSyntax indicates path data that could not be parsed.
var ErrSyntax = errors.New("path syntax error")

// commands lists every command letter of the path grammar.
const commands = "MmLlHhVvCcSsQqTtAaZz"

// Parse parses path data. An empty string yields an empty path.
func Parse(d string) (*Path, error) {
	p := NewPath()
	d = strings.TrimSpace(d)
	if d == "" {
		return p, nil
	}
	if err := check(d); err != nil {
		return nil, err
	}

	// oksvg splits commands on letters, so an upper-case exponent must not
	// read as one.
	c := &oksvg.PathCursor{ErrorMode: oksvg.StrictErrorMode}
	if err := c.CompilePath(strings.ReplaceAll(d, "E", "e")); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	c.Path.AddTo(builder{path: p})
	return p, nil
}

// check rejects input outside the path alphabet and input that does not
// open with a moveto.
func check(d string) error {
	if d[0] != 'M' && d[0] != 'm' {
		return fmt.Errorf("%w at offset 0: path must start with a moveto, got %q", ErrSyntax, d[0])
	}
	for i, r := range d {
		switch {
		case strings.ContainsRune(commands, r):
		case r >= '0' && r <= '9':
		case strings.ContainsRune(" \t\n\r\f,.+-eE", r):
		default:
			return fmt.Errorf("%w at offset %d: unexpected %q", ErrSyntax, i, r)
		}
	}
	return nil
}

// builder receives rasterx path commands and records them as segments.
type builder struct {
	path *Path
}

func (b builder) Start(a fixed.Point26_6) {
	b.path.MoveTo(point(a))
}

func (b builder) Line(a fixed.Point26_6) {
	b.path.LineTo(point(a))
}

func (b builder) QuadBezier(ctrl, end fixed.Point26_6) {
	b.path.QuadTo(point(ctrl), point(end))
}

func (b builder) CubeBezier(c1, c2, end fixed.Point26_6) {
	b.path.CubeTo(point(c1), point(c2), point(end))
}

func (b builder) Stop(closeLoop bool) {
	if closeLoop {
		b.path.ClosePath()
	}
}

func point(p fixed.Point26_6) model.Point {
	return model.Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}
