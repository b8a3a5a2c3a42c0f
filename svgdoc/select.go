package svgdoc

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
)

// Select returns the elements matching a CSS selector group, in document
// order and without duplicates. Reserved characters in ids must be escaped
// (see EscapeID). A selector that does not compile matches nothing.
func (d *Document) Select(selector string) []*Element {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(d.root, group)
	result := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, wrap(n))
	}
	return result
}

// EscapeID escapes an identifier for use after '#' in a selector. Every byte
// outside [A-Za-z0-9_-], such as '/' or a space, is backslash-escaped. A
// leading digit becomes a hex escape, since "\1" would itself read as one.
func EscapeID(id string) string {
	var b strings.Builder
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case i == 0 && c >= '0' && c <= '9':
			fmt.Fprintf(&b, `\%x `, c)
		case isIdentByte(c) || c >= 0x80:
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
