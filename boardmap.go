// Package boardmap compiles hand-authored SVG board documents into the
// canonical map model.
//
// Basic usage:
//
//	m, err := boardmap.Compile(svgText)
//	if err != nil {
//	    // a center marker is malformed; fail the build
//	}
//	fmt.Println(len(m.Provinces))
//
// With options:
//
//	m, err := boardmap.New().
//	    WithLogger(slog.Default()).
//	    ImpassableFill("url(#hatch)").
//	    Compile(svgText)
//
// Compilation is a pure function of its input: nothing is fetched, cached or
// shared between calls, so a Compiler may be used from many goroutines.
package boardmap

import "github.com/johnpooch/boardmap/model"

// Compile compiles a board document with the default options.
//
// Example:
//
//	m, err := boardmap.Compile(svgText)
func Compile(text string) (*model.Map, error) {
	return New().Compile(text)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	m := boardmap.Must(boardmap.Compile(svgText))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
