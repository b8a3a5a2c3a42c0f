package province

import (
	"strings"

	"github.com/johnpooch/boardmap/svgdoc"
)

// MarkerSuffix is appended to a province id to name its center marker.
const MarkerSuffix = "Center"

// Entry gathers the cross-layer elements that belong to one province. Any
// field may be nil.
type Entry struct {
	Supply *svgdoc.Element // marker in the supply-centers layer
	Center *svgdoc.Element // marker in the province-centers layer
	Label  *svgdoc.Element // element in the names layer
}

// Layers names the groups the index is built from. A nil group contributes
// nothing.
type Layers struct {
	SupplyCenters   *svgdoc.Element
	ProvinceCenters *svgdoc.Element
	Names           *svgdoc.Element
}

// Index maps raw province ids to their cross-layer elements. Raw ids are
// used as keys, so ids containing reserved selector characters such as '/'
// need no escaping here.
type Index struct {
	entries map[string]*Entry
}

// BuildIndex walks the three cross-reference layers once. When several
// elements in a layer share an id, the first in document order wins.
func BuildIndex(l Layers) *Index {
	idx := &Index{entries: make(map[string]*Entry)}

	for _, el := range l.SupplyCenters.Descendants() {
		if id, ok := markerOwner(el); ok {
			e := idx.entry(id)
			if e.Supply == nil {
				e.Supply = el
			}
		}
	}
	for _, el := range l.ProvinceCenters.Descendants() {
		if id, ok := markerOwner(el); ok {
			e := idx.entry(id)
			if e.Center == nil {
				e.Center = el
			}
		}
	}
	for _, el := range l.Names.Descendants() {
		if id := el.ID(); id != "" {
			e := idx.entry(id)
			if e.Label == nil {
				e.Label = el
			}
		}
	}
	return idx
}

// Lookup returns the entry for a province id. The zero Entry is returned
// when nothing references the id.
func (idx *Index) Lookup(id string) Entry {
	if e, ok := idx.entries[id]; ok {
		return *e
	}
	return Entry{}
}

// Len returns the number of ids referenced by any layer.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func (idx *Index) entry(id string) *Entry {
	e, ok := idx.entries[id]
	if !ok {
		e = &Entry{}
		idx.entries[id] = e
	}
	return e
}

// markerOwner returns the province id a marker element belongs to.
func markerOwner(el *svgdoc.Element) (string, bool) {
	id := el.ID()
	if len(id) <= len(MarkerSuffix) || !strings.HasSuffix(id, MarkerSuffix) {
		return "", false
	}
	return strings.TrimSuffix(id, MarkerSuffix), true
}
