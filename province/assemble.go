// Package province assembles provinces from the provinces layer and the
// layers that reference it by id: supply centers, province centers and
// names.
package province

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/johnpooch/boardmap/model"
	"github.com/johnpooch/boardmap/shape"
	"github.com/johnpooch/boardmap/style"
	"github.com/johnpooch/boardmap/svgdoc"
)

// Tags lists the shape kinds recognized as provinces. Other elements in the
// provinces layer are ignored.
var Tags = []string{shape.TagPath, shape.TagPolygon, shape.TagPolyline, shape.TagRect}

// textRunTag is the element holding a label's glyph run.
const textRunTag = "tspan"

// Assembler builds provinces.
type Assembler struct {
	index  *Index
	logger *slog.Logger
}

// NewAssembler creates an assembler over a pre-built index. A nil logger
// discards diagnostics.
func NewAssembler(idx *Index, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Assembler{index: idx, logger: logger}
}

// Assemble returns one province per recognized shape in group, in document
// order. It fails on the first center marker that does not encode a
// coordinate.
func (a *Assembler) Assemble(group *svgdoc.Element) ([]model.Province, error) {
	shapes := group.Descendants(Tags...)
	provinces := make([]model.Province, 0, len(shapes))
	for _, el := range shapes {
		p, err := a.province(el)
		if err != nil {
			return nil, fmt.Errorf("province %q: %w", el.ID(), err)
		}
		provinces = append(provinces, p)
	}
	return provinces, nil
}

func (a *Assembler) province(el *svgdoc.Element) (model.Province, error) {
	id := el.ID()
	// Only rect and polygon are rewritten for provinces.
	s := shape.FromElementWithOptions(el, shape.Options{ConvertPolyline: false})

	p := model.Province{ID: id, Path: s.Path}
	entry := a.index.Lookup(id)

	marker := entry.Supply
	p.SupplyCenter = marker != nil
	if marker == nil {
		marker = entry.Center
	}
	if marker != nil {
		d, _ := marker.Attr("d")
		center, err := ParseCenter(d)
		if err != nil {
			return model.Province{}, err
		}
		p.Center = center
	} else {
		a.logger.Debug("province has no center marker", "province", id)
	}

	if entry.Label != nil {
		p.Text = label(entry.Label)
	} else {
		a.logger.Debug("province has no label", "province", id)
	}
	return p, nil
}

// label reads a names-layer element. The anchor is the offset of its first
// text run from the container; a label without a run anchors at the
// container itself.
func label(container *svgdoc.Element) *model.TextLabel {
	decl, _ := container.Attr("style")
	styles := style.Text(style.Parse(decl), func(name string) string {
		v, _ := container.Attr(name)
		return v
	})

	run := container
	if runs := container.Descendants(textRunTag); len(runs) > 0 {
		run = runs[0]
	}

	return &model.TextLabel{
		Value:  norm.NFC.String(strings.TrimSpace(run.Text())),
		Styles: styles,
		Point:  position(run).Sub(position(container)),
	}
}

func position(e *svgdoc.Element) model.Point {
	return model.Point{X: e.AttrFloat("x"), Y: e.AttrFloat("y")}
}
