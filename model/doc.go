// Package model defines the compiled board representation.
//
// A [Map] is the only output of the compiler. It carries the canvas size and
// four collections, all expressed in path-command syntax so that consumers
// never need the source document again:
//
//   - [BackgroundElement] - decorative fills drawn under everything else
//   - [Province] - one per ownable region, with center and optional label
//   - [Border] - lines drawn over province fills
//   - [ImpassableRegion] - hatched, non-traversable terrain
//
// A compiled Map is treated as read-only. Use [Map.Clone] before changing one.
//
// # Geometry
//
// [Point], [BBox] and [Matrix] are small value types shared by the path
// parser and the preview rasterizer.
package model
