// Package svgdoc loads board documents into a queryable element tree.
//
// Documents are parsed with the lenient HTML5 parser from golang.org/x/net,
// which places an <svg> root in the SVG namespace and never rejects input.
// This isolates malformed markup from later stages: a broken or empty
// document simply has no matching elements.
//
// Queries are available by id ([Document.ElementByID]), by named group
// ([Document.Group]), by tag ([Element.Descendants]) and by CSS selector
// ([Document.Select], compiled with github.com/andybalholm/cascadia). Identifiers containing reserved characters
// such as '/' must pass through [EscapeID] before being placed in a
// selector.
//
// The parser leaves foreign content when it meets an HTML-only tag such as
// <p> or <div>; board documents do not contain those.
package svgdoc
