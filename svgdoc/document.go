package svgdoc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed board document.
type Document struct {
	root *html.Node
}

// Parse parses markup text into a Document. The parser is lenient: malformed
// or empty markup still produces a Document, whose queries find nothing.
func Parse(text string) *Document {
	doc, err := ParseReader(strings.NewReader(text))
	if err != nil {
		// strings.Reader does not fail, so this is only reachable for
		// parser-internal errors.
		return &Document{root: &html.Node{Type: html.DocumentNode}}
	}
	return doc
}

// ParseReader parses markup from an io.Reader. It only fails when the reader
// itself fails.
func ParseReader(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the document root. It is never nil.
func (d *Document) Root() *Element {
	return &Element{node: d.root}
}

// ElementByID returns the first element in document order whose id attribute
// equals id, or nil.
func (d *Document) ElementByID(id string) *Element {
	return d.Root().FindByID(id)
}

// Group returns the first g element named name, matched on its id and then
// on its inkscape:label. It returns nil when no such group exists.
func (d *Document) Group(name string) *Element {
	groups := d.Root().Descendants("g")
	for _, g := range groups {
		if g.ID() == name {
			return g
		}
	}
	for _, g := range groups {
		if label, ok := g.AttrNS("inkscape", "label"); ok && label == name {
			return g
		}
	}
	return nil
}

// Element is a node of the document tree. Every method is safe on a nil
// *Element and returns the zero value, so absent layers degrade to empty
// results instead of failing.
type Element struct {
	node *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{node: n}
}

// Tag returns the lower-cased element name.
func (e *Element) Tag() string {
	if e == nil || e.node.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(e.node.Data)
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	id, _ := e.Attr("id")
	return id
}

// Attr returns the value of an attribute without a namespace.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// AttrNS returns the value of a prefixed attribute such as inkscape:label.
// The parser keeps xlink, xml and xmlns prefixes in the namespace field and
// every other prefix in the key, so both forms are checked.
func (e *Element) AttrNS(prefix, name string) (string, bool) {
	if e == nil {
		return "", false
	}
	qualified := prefix + ":" + name
	for _, attr := range e.node.Attr {
		if attr.Namespace == prefix && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
		if attr.Namespace == "" && strings.EqualFold(attr.Key, qualified) {
			return attr.Val, true
		}
	}
	return "", false
}

// AttrFloat returns a numeric attribute, or 0 when it is missing or not a
// number. Trailing units such as "px" are ignored.
func (e *Element) AttrFloat(name string) float64 {
	val, ok := e.Attr(name)
	if !ok {
		return 0
	}
	return ParseNumber(val)
}

// ParseNumber parses a leading decimal number, ignoring surrounding space and
// a trailing unit suffix. It returns 0 when no number is present.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
			end++
			continue
		}
		break
	}
	for end > 0 {
		if f, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return f
		}
		end--
	}
	return 0
}

// Descendants returns every descendant element whose tag is one of tags, in
// document order. With no tags, all descendant elements are returned.
func (e *Element) Descendants(tags ...string) []*Element {
	if e == nil {
		return nil
	}
	var result []*Element
	walk(e.node, func(n *html.Node) {
		el := wrap(n)
		if len(tags) == 0 || hasTag(el, tags) {
			result = append(result, el)
		}
	})
	return result
}

// FindByID returns the first descendant whose id equals id, or nil.
func (e *Element) FindByID(id string) *Element {
	if e == nil {
		return nil
	}
	var found *Element
	walk(e.node, func(n *html.Node) {
		if found != nil {
			return
		}
		if el := wrap(n); el.ID() == id {
			found = el
		}
	})
	return found
}

// Text returns the concatenated text content of the element and its
// descendants.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var result strings.Builder
	getTextContentRecursive(e.node, &result)
	return result.String()
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}

// walk visits every element strictly below n in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			visit(c)
		}
		walk(c, visit)
	}
}

func hasTag(e *Element, tags []string) bool {
	tag := e.Tag()
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
