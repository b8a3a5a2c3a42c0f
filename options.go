package boardmap

import "github.com/johnpooch/boardmap/layers"

// GroupNames names the document groups the compiler reads. Groups are
// matched on their id, then on their inkscape:label.
type GroupNames struct {
	Background      string
	Foreground      string
	Provinces       string
	SupplyCenters   string
	ProvinceCenters string
	Names           string
}

// DefaultGroupNames returns the group names produced by the board authoring
// template.
func DefaultGroupNames() GroupNames {
	return GroupNames{
		Background:      "background",
		Foreground:      "foreground",
		Provinces:       "provinces",
		SupplyCenters:   "supply-centers",
		ProvinceCenters: "province-centers",
		Names:           "names",
	}
}

// CompileOptions holds configuration for map compilation.
type CompileOptions struct {
	groups GroupNames

	// Element whose width and height size the canvas
	backgroundRectID string

	// Foreground fill that marks impassable terrain
	impassableFill string
}

// defaultOptions returns the default compile options.
func defaultOptions() CompileOptions {
	return CompileOptions{
		groups:           DefaultGroupNames(),
		backgroundRectID: "background-rect",
		impassableFill:   layers.DefaultImpassableFill,
	}
}

// clone creates a copy of CompileOptions. All fields are values.
func (o CompileOptions) clone() CompileOptions {
	return o
}
