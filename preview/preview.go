// Package preview rasterizes a compiled map into an image so that an
// authored board can be checked by eye without running the interactive
// renderer.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"

	"github.com/johnpooch/boardmap/model"
	"github.com/johnpooch/boardmap/pathdata"
)

var (
	// ErrEmptyCanvas is returned for a map whose scaled size is not positive.
	ErrEmptyCanvas = errors.New("map has no drawable area")

	// ErrCanvasTooLarge is returned when a scaled side exceeds MaxSide.
	ErrCanvasTooLarge = errors.New("map is too large to render")
)

// MaxSide is the largest image width or height Render allocates.
const MaxSide = 1 << 14

// Options controls rendering.
type Options struct {
	// Scale multiplies board coordinates. Zero means 1.
	Scale float64

	// BorderWidth is the stroke width of borders in board units. Zero means 1.
	BorderWidth float64

	// Province fills. Zero values use the defaults below.
	ProvinceFill     color.Color
	SupplyCenterFill color.Color
	ImpassableFill   color.Color
	BorderColor      color.Color

	// Logger receives a message for every path that fails to parse.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.BorderWidth <= 0 {
		o.BorderWidth = 1
	}
	if o.ProvinceFill == nil {
		o.ProvinceFill = colornames.Wheat
	}
	if o.SupplyCenterFill == nil {
		o.SupplyCenterFill = colornames.Burlywood
	}
	if o.ImpassableFill == nil {
		o.ImpassableFill = colornames.Dimgray
	}
	if o.BorderColor == nil {
		o.BorderColor = colornames.Black
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Render draws background elements, provinces, impassable regions and
// borders, in that order. Impassable regions are filled solid. Paths that do
// not parse are skipped.
func Render(m *model.Map, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()

	sw, sh := m.Width*opts.Scale, m.Height*opts.Scale
	if !(sw > 0 && sh > 0) {
		return nil, fmt.Errorf("rendering %vx%v at scale %v: %w", m.Width, m.Height, opts.Scale, ErrEmptyCanvas)
	}
	if sw > MaxSide || sh > MaxSide {
		return nil, fmt.Errorf("rendering %vx%v at scale %v: %w", m.Width, m.Height, opts.Scale, ErrCanvasTooLarge)
	}
	w, h := int(math.Ceil(sw)), int(math.Ceil(sh))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	r := &renderer{
		filler: rasterx.NewFiller(w, h, scanner),
		dasher: rasterx.NewDasher(w, h, scanner),
		width:  toFixed(opts.BorderWidth * opts.Scale),
		matrix: model.Scale(opts.Scale, opts.Scale),
		logger: opts.Logger,
	}

	for _, bg := range m.BackgroundElements {
		if c, ok := ParseColor(bg.Styles.Fill); ok {
			r.fill(bg.Path, c)
		}
	}
	for _, p := range m.Provinces {
		fill := opts.ProvinceFill
		if p.SupplyCenter {
			fill = opts.SupplyCenterFill
		}
		r.fill(p.Path, fill)
	}
	for _, region := range m.ImpassableProvinces {
		r.fill(region.Path, opts.ImpassableFill)
	}
	for _, b := range m.Borders {
		r.stroke(b.Path, opts.BorderColor)
	}
	return dst, nil
}

type renderer struct {
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	width  fixed.Int26_6
	matrix model.Matrix
	logger *slog.Logger
}

func (r *renderer) parse(d string) (*pathdata.Path, bool) {
	p, err := pathdata.Parse(d)
	if err != nil {
		r.logger.Warn("skipping unparseable path", "path", d, "error", err)
		return nil, false
	}
	if p.IsEmpty() {
		return nil, false
	}
	return p.Transform(r.matrix), true
}

func (r *renderer) fill(d string, c color.Color) {
	p, ok := r.parse(d)
	if !ok {
		return
	}
	r.filler.Clear()
	r.filler.SetColor(c)
	addTo(p, r.filler)
	r.filler.Draw()
}

func (r *renderer) stroke(d string, c color.Color) {
	p, ok := r.parse(d)
	if !ok {
		return
	}
	r.dasher.Clear()
	r.dasher.SetStroke(r.width, 0, nil, nil, nil, 0, nil, 0)
	r.dasher.SetColor(c)
	addTo(p, r.dasher)
	r.dasher.Draw()
}

// addTo replays a path into a rasterx adder. Every subpath is closed only
// where the path closes it.
func addTo(p *pathdata.Path, a rasterx.Adder) {
	open := false
	for _, seg := range p.Segments {
		switch seg.Type {
		case pathdata.MoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(fixedPoint(seg.Points[0]))
			open = true
		case pathdata.LineTo:
			a.Line(fixedPoint(seg.Points[0]))
		case pathdata.QuadTo:
			a.QuadBezier(fixedPoint(seg.Points[0]), fixedPoint(seg.Points[1]))
		case pathdata.CubeTo:
			a.CubeBezier(fixedPoint(seg.Points[0]), fixedPoint(seg.Points[1]), fixedPoint(seg.Points[2]))
		case pathdata.ClosePath:
			a.Stop(true)
			open = false
		}
	}
	if open {
		a.Stop(false)
	}
}

func fixedPoint(p model.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// ParseColor resolves a fill value: "#rgb", "#rrggbb" or a CSS colour name.
// "none", pattern references and unknown values report false.
func ParseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" || strings.HasPrefix(s, "url(") {
		return nil, false
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return nil, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}
