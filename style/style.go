// Package style parses inline CSS declaration strings.
package style

import (
	"strings"

	"github.com/johnpooch/boardmap/model"
)

// Parse splits a declaration string of the form "key: value; key: value"
// into a map. Keys and values are trimmed. A segment without a colon or with
// an empty key is skipped and parsing continues with the next one. Unknown
// keys are kept; a repeated key keeps its last value.
func Parse(decl string) map[string]string {
	props := make(map[string]string)
	for _, segment := range strings.Split(decl, ";") {
		key, value, ok := strings.Cut(segment, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		props[key] = strings.TrimSpace(value)
	}
	return props
}

// Paths picks the path presentation properties out of parsed declarations.
func Paths(props map[string]string) model.PathStyles {
	return model.PathStyles{
		Fill:             props["fill"],
		Stroke:           props["stroke"],
		StrokeWidth:      props["stroke-width"],
		StrokeDasharray:  props["stroke-dasharray"],
		StrokeMiterlimit: props["stroke-miterlimit"],
		StrokeOpacity:    props["stroke-opacity"],
	}
}

// Text picks the font properties out of parsed declarations. When a property
// is not declared, attr is consulted with the SVG presentation attribute of
// the same name; attr may be nil.
func Text(props map[string]string, attr func(name string) string) model.TextStyles {
	get := func(key string) string {
		if v, ok := props[key]; ok {
			return v
		}
		if attr != nil {
			return attr(key)
		}
		return ""
	}
	return model.TextStyles{
		FontSize:   get("font-size"),
		FontFamily: get("font-family"),
		FontWeight: get("font-weight"),
		Transform:  get("transform"),
	}
}
