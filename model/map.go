package model

import "sort"

// PathStyles holds the presentation properties carried by a background shape.
// Only Fill is always present in serialized output.
type PathStyles struct {
	Fill             string `json:"fill" yaml:"fill"`
	Stroke           string `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	StrokeWidth      string `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty"`
	StrokeDasharray  string `json:"strokeDasharray,omitempty" yaml:"strokeDasharray,omitempty"`
	StrokeMiterlimit string `json:"strokeMiterlimit,omitempty" yaml:"strokeMiterlimit,omitempty"`
	StrokeOpacity    string `json:"strokeOpacity,omitempty" yaml:"strokeOpacity,omitempty"`
}

// TextStyles holds the font properties of a province label.
type TextStyles struct {
	FontSize   string `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	FontFamily string `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontWeight string `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
	Transform  string `json:"transform,omitempty" yaml:"transform,omitempty"`
}

// TextLabel is a province name and its anchor. Point is relative to the label
// container, not an absolute board coordinate.
type TextLabel struct {
	Value  string     `json:"value" yaml:"value"`
	Styles TextStyles `json:"styles" yaml:"styles"`
	Point  Point      `json:"point" yaml:"point"`
}

// BackgroundElement is a decorative fill drawn under everything else.
type BackgroundElement struct {
	Path   string     `json:"path" yaml:"path"`
	Styles PathStyles `json:"styles" yaml:"styles"`
}

// Border is a line drawn over province fills.
type Border struct {
	Path string `json:"path" yaml:"path"`
}

// ImpassableRegion is terrain rendered with a hatch pattern.
type ImpassableRegion struct {
	Path string `json:"path" yaml:"path"`
}

// Province is one ownable or traversable board region.
type Province struct {
	ID           string     `json:"id" yaml:"id"`
	Path         string     `json:"path" yaml:"path"`
	Center       Point      `json:"center" yaml:"center"`
	SupplyCenter bool       `json:"supplyCenter" yaml:"supplyCenter"`
	Text         *TextLabel `json:"text,omitempty" yaml:"text,omitempty"`
}

// Map is the compiled board.
type Map struct {
	Width               float64             `json:"width" yaml:"width"`
	Height              float64             `json:"height" yaml:"height"`
	BackgroundElements  []BackgroundElement `json:"backgroundElements" yaml:"backgroundElements"`
	Borders             []Border            `json:"borders" yaml:"borders"`
	ImpassableProvinces []ImpassableRegion  `json:"impassableProvinces" yaml:"impassableProvinces"`
	Provinces           []Province          `json:"provinces" yaml:"provinces"`
}

// Province returns the province with the given ID.
func (m *Map) Province(id string) (*Province, bool) {
	for i := range m.Provinces {
		if m.Provinces[i].ID == id {
			return &m.Provinces[i], true
		}
	}
	return nil, false
}

// SupplyCenters returns the IDs of supply-center provinces in document order.
func (m *Map) SupplyCenters() []string {
	ids := make([]string, 0)
	for _, p := range m.Provinces {
		if p.SupplyCenter {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// ProvinceIDs returns all province IDs, sorted.
func (m *Map) ProvinceIDs() []string {
	ids := make([]string, 0, len(m.Provinces))
	for _, p := range m.Provinces {
		ids = append(ids, p.ID)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	out := &Map{
		Width:               m.Width,
		Height:              m.Height,
		BackgroundElements:  append([]BackgroundElement{}, m.BackgroundElements...),
		Borders:             append([]Border{}, m.Borders...),
		ImpassableProvinces: append([]ImpassableRegion{}, m.ImpassableProvinces...),
		Provinces:           make([]Province, len(m.Provinces)),
	}
	for i, p := range m.Provinces {
		if p.Text != nil {
			text := *p.Text
			p.Text = &text
		}
		out.Provinces[i] = p
	}
	return out
}
