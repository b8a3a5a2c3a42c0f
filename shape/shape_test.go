package shape

import (
	"strings"
	"testing"

	"github.com/johnpooch/boardmap/svgdoc"
)

func TestRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		want       string
	}{
		{"origin", 0, 0, 10, 20, "M 0,0 L 10,0 L 10,20 L 0,20 Z"},
		{"offset", 5, 7, 10, 20, "M 5,7 L 15,7 L 15,27 L 5,27 Z"},
		{"fractional", 0.5, 0, 1.25, 1, "M 0.5,0 L 1.75,0 L 1.75,1 L 0.5,1 Z"},
		{"zero size", 0, 0, 0, 0, "M 0,0 L 0,0 L 0,0 L 0,0 Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rect(tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("Rect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRect_Closed(t *testing.T) {
	path := Rect(0, 0, 10, 20)

	if !strings.HasPrefix(path, "M 0,0") || !strings.HasSuffix(path, "Z") {
		t.Fatalf("Rect() = %q, want a closed path starting at the origin", path)
	}
	corners := Points(strings.NewReplacer("M", "", "L", "", "Z", "").Replace(path))
	want := []string{"0,0", "10,0", "10,20", "0,20"}
	if len(corners) != len(want) {
		t.Fatalf("corners = %v, want %v", corners, want)
	}
	for i := range want {
		if corners[i] != want[i] {
			t.Errorf("corner %d = %s, want %s", i, corners[i], want[i])
		}
	}
}

func TestPolygon(t *testing.T) {
	tests := []struct {
		points string
		want   string
	}{
		{"0,0 10,0 10,10", "M 0,0 L 10,0 L 10,10 Z"},
		{"0 0 10 0 10 10", "M 0,0 L 10,0 L 10,10 Z"},
		{"  0,0  10,0\n10,10 ", "M 0,0 L 10,0 L 10,10 Z"},
		{"1,2", "M 1,2 Z"},
		{"1,2 3", "M 1,2 Z"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Polygon(tt.points); got != tt.want {
			t.Errorf("Polygon(%q) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestPolyline(t *testing.T) {
	tests := []struct {
		points string
		want   string
	}{
		{"0,0 10,10", "M0,0 10,10"},
		{"0,0 10,10 20,0", "M0,0 10,10 20,0"},
		{"", "M"},
	}

	for _, tt := range tests {
		if got := Polyline(tt.points); got != tt.want {
			t.Errorf("Polyline(%q) = %q, want %q", tt.points, got, tt.want)
		}
	}
}

func TestFromElement(t *testing.T) {
	doc := svgdoc.Parse(`<svg>
		<rect id="r" x="1" y="2" width="3" height="4" style="fill:#abc"/>
		<rect id="bare"/>
		<polygon id="pg" points="0,0 10,0 10,10"/>
		<polyline id="pl" points="0,0 5,5" d="M9,9"/>
		<path id="p" d="M1,1 L2,2" style="stroke:red"/>
		<path id="empty"/>
		<circle id="c" r="4"/>
	</svg>`)

	tests := []struct {
		id    string
		path  string
		style string
	}{
		{"r", "M 1,2 L 4,2 L 4,6 L 1,6 Z", "fill:#abc"},
		{"bare", "M 0,0 L 0,0 L 0,0 L 0,0 Z", ""},
		{"pg", "M 0,0 L 10,0 L 10,10 Z", ""},
		{"pl", "M0,0 5,5", ""},
		{"p", "M1,1 L2,2", "stroke:red"},
		{"empty", "", ""},
		{"c", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s := FromElement(doc.ElementByID(tt.id))
			if s.Path != tt.path {
				t.Errorf("Path = %q, want %q", s.Path, tt.path)
			}
			if s.Style != tt.style {
				t.Errorf("Style = %q, want %q", s.Style, tt.style)
			}
		})
	}
}

func TestFromElementWithOptions_PolylinePassThrough(t *testing.T) {
	doc := svgdoc.Parse(`<svg><polyline id="pl" points="0,0 5,5" d="M9,9"/><polyline id="nod" points="1,1 2,2"/></svg>`)

	opts := Options{ConvertPolyline: false}
	if got := FromElementWithOptions(doc.ElementByID("pl"), opts).Path; got != "M9,9" {
		t.Errorf("Path = %q, want d attribute passed through", got)
	}
	if got := FromElementWithOptions(doc.ElementByID("nod"), opts).Path; got != "" {
		t.Errorf("Path = %q, want empty", got)
	}
}
