package province

import (
	"regexp"
	"strconv"

	"github.com/johnpooch/boardmap/model"
)

const digits = `(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

// movetoPattern matches a leading relative moveto and captures its first
// coordinate pair. The second number follows a comma or whitespace, or
// directly when its sign separates it, as in "m50-60".
var movetoPattern = regexp.MustCompile(`^\s*m\s*([-+]?` + digits + `)(?:(?:\s*,\s*|\s+)([-+]?` + digits + `)|([-+]` + digits + `))`)

// ParseCenter reads the coordinate encoded by a marker path such as
// "m50,60 l1,1". It returns a *MarkerError when the path does not begin with
// a relative moveto followed by two numbers.
func ParseCenter(d string) (model.Point, error) {
	m := movetoPattern.FindStringSubmatch(d)
	if m == nil {
		return model.Point{}, &MarkerError{Path: d}
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.Point{}, &MarkerError{Path: d}
	}
	second := m[2]
	if second == "" {
		second = m[3]
	}
	y, err := strconv.ParseFloat(second, 64)
	if err != nil {
		return model.Point{}, &MarkerError{Path: d}
	}
	return model.Point{X: x, Y: y}, nil
}
