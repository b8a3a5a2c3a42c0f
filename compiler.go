package boardmap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/johnpooch/boardmap/layers"
	"github.com/johnpooch/boardmap/model"
	"github.com/johnpooch/boardmap/province"
	"github.com/johnpooch/boardmap/svgdoc"
)

// Compiler provides a fluent interface for configuring map compilation.
// Each configuration method returns a new Compiler instance, making it
// safe for concurrent use and allowing method chaining.
type Compiler struct {
	options CompileOptions
	logger  *slog.Logger
}

// New returns a Compiler with the default options and a logger that
// discards output.
func New() *Compiler {
	return &Compiler{
		options: defaultOptions(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// clone creates a copy of the Compiler.
func (c *Compiler) clone() *Compiler {
	return &Compiler{
		options: c.options.clone(),
		logger:  c.logger,
	}
}

// WithLogger sets the logger that receives diagnostics such as provinces
// without a center marker. A nil logger restores the discarding default.
func (c *Compiler) WithLogger(logger *slog.Logger) *Compiler {
	newC := c.clone()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	newC.logger = logger
	return newC
}

// ImpassableFill sets the fill value that marks foreground shapes as
// impassable terrain.
func (c *Compiler) ImpassableFill(ref string) *Compiler {
	newC := c.clone()
	newC.options.impassableFill = ref
	return newC
}

// BackgroundRect sets the id of the element whose width and height size the
// canvas.
func (c *Compiler) BackgroundRect(id string) *Compiler {
	newC := c.clone()
	newC.options.backgroundRectID = id
	return newC
}

// Groups sets the names of the document groups to read. Empty fields keep
// their current value.
func (c *Compiler) Groups(names GroupNames) *Compiler {
	newC := c.clone()
	g := &newC.options.groups
	setIfNotEmpty(&g.Background, names.Background)
	setIfNotEmpty(&g.Foreground, names.Foreground)
	setIfNotEmpty(&g.Provinces, names.Provinces)
	setIfNotEmpty(&g.SupplyCenters, names.SupplyCenters)
	setIfNotEmpty(&g.ProvinceCenters, names.ProvinceCenters)
	setIfNotEmpty(&g.Names, names.Names)
	return newC
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Compile parses text and builds the map. Missing groups, markers and labels
// fall back to empty collections and zero values. The only error is a center
// marker whose path does not encode a coordinate.
func (c *Compiler) Compile(text string) (*model.Map, error) {
	doc := svgdoc.Parse(text)
	groups := c.options.groups

	width, height := c.dimensions(doc)
	background := layers.Background(doc.Group(groups.Background), c.options.backgroundRectID)
	foreground := layers.Foreground(doc.Group(groups.Foreground), c.options.impassableFill)

	idx := province.BuildIndex(province.Layers{
		SupplyCenters:   doc.Group(groups.SupplyCenters),
		ProvinceCenters: doc.Group(groups.ProvinceCenters),
		Names:           doc.Group(groups.Names),
	})
	provinces, err := province.NewAssembler(idx, c.logger).Assemble(doc.Group(groups.Provinces))
	if err != nil {
		return nil, fmt.Errorf("compiling map: %w", err)
	}

	c.logger.Debug("compiled map",
		"width", width,
		"height", height,
		"provinces", len(provinces),
		"borders", len(foreground.Borders),
		"impassable", len(foreground.Impassable),
		"background", len(background))

	return &model.Map{
		Width:               width,
		Height:              height,
		BackgroundElements:  background,
		Borders:             foreground.Borders,
		ImpassableProvinces: foreground.Impassable,
		Provinces:           provinces,
	}, nil
}

// dimensions reads the canvas size from the background rectangle.
func (c *Compiler) dimensions(doc *svgdoc.Document) (float64, float64) {
	matches := doc.Select("#" + svgdoc.EscapeID(c.options.backgroundRectID))
	if len(matches) == 0 {
		c.logger.Debug("background rectangle not found", "id", c.options.backgroundRectID)
		return 0, 0
	}
	rect := matches[0]
	return rect.AttrFloat("width"), rect.AttrFloat("height")
}
