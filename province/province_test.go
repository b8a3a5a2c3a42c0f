package province

import (
	"errors"
	"strings"
	"testing"

	"github.com/johnpooch/boardmap/model"
	"github.com/johnpooch/boardmap/svgdoc"
)

func assemble(t *testing.T, markup string) ([]model.Province, error) {
	t.Helper()
	doc := svgdoc.Parse(markup)
	idx := BuildIndex(Layers{
		SupplyCenters:   doc.Group("supply-centers"),
		ProvinceCenters: doc.Group("province-centers"),
		Names:           doc.Group("names"),
	})
	return NewAssembler(idx, nil).Assemble(doc.Group("provinces"))
}

// ============================================================================
// ParseCenter Tests
// ============================================================================

func TestParseCenter(t *testing.T) {
	tests := []struct {
		d    string
		want model.Point
	}{
		{"m50,60 l1,1", model.Point{X: 50, Y: 60}},
		{"m 50 60", model.Point{X: 50, Y: 60}},
		{"  m50 , 60", model.Point{X: 50, Y: 60}},
		{"m-12.5,-3.25 c 1,1 2,2 3,3", model.Point{X: -12.5, Y: -3.25}},
		{"m1e2,.5", model.Point{X: 100, Y: 0.5}},
		{"m50-60", model.Point{X: 50, Y: -60}},
		{"m-1.5+2l3,3", model.Point{X: -1.5, Y: 2}},
		{"m1e-2-3", model.Point{X: 0.01, Y: -3}},
	}

	for _, tt := range tests {
		got, err := ParseCenter(tt.d)
		if err != nil {
			t.Errorf("ParseCenter(%q) failed: %v", tt.d, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCenter(%q) = %+v, want %+v", tt.d, got, tt.want)
		}
	}
}

func TestParseCenter_Malformed(t *testing.T) {
	for _, d := range []string{"", "M50,60", "l1,1", "m", "m50", "m50-", "m5.", "x m50,60"} {
		_, err := ParseCenter(d)
		if err == nil {
			t.Errorf("ParseCenter(%q) expected error", d)
			continue
		}
		if !errors.Is(err, ErrMalformedMarker) {
			t.Errorf("ParseCenter(%q) error = %v, want ErrMalformedMarker", d, err)
		}
		var me *MarkerError
		if !errors.As(err, &me) || me.Path != d {
			t.Errorf("ParseCenter(%q) error should carry the path, got %v", d, err)
		}
	}
}

// ============================================================================
// Index Tests
// ============================================================================

func TestBuildIndex(t *testing.T) {
	doc := svgdoc.Parse(`<svg>
		<g id="supply-centers"><path id="parCenter" d="m1,1"/><path id="parCenter" d="m9,9"/><path id="Center" d="m0,0"/></g>
		<g id="province-centers"><path id="parCenter" d="m2,2"/><path id="burCenter" d="m3,3"/><path id="stray" d="m4,4"/></g>
		<g id="names"><text id="bur">Burgundy</text></g>
	</svg>`)

	idx := BuildIndex(Layers{
		SupplyCenters:   doc.Group("supply-centers"),
		ProvinceCenters: doc.Group("province-centers"),
		Names:           doc.Group("names"),
	})

	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}

	par := idx.Lookup("par")
	if par.Supply == nil || par.Center == nil || par.Label != nil {
		t.Fatalf("Lookup(par) = %+v", par)
	}
	if d, _ := par.Supply.Attr("d"); d != "m1,1" {
		t.Errorf("first supply marker should win, got d=%q", d)
	}

	bur := idx.Lookup("bur")
	if bur.Supply != nil || bur.Center == nil || bur.Label == nil {
		t.Errorf("Lookup(bur) = %+v", bur)
	}

	if e := idx.Lookup("missing"); e.Supply != nil || e.Center != nil || e.Label != nil {
		t.Errorf("Lookup(missing) = %+v, want zero entry", e)
	}
}

func TestBuildIndex_NilLayers(t *testing.T) {
	idx := BuildIndex(Layers{})
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
}

// ============================================================================
// Assembler Tests
// ============================================================================

func TestAssemble_DefaultCenter(t *testing.T) {
	provinces, err := assemble(t, `<svg><g id="provinces"><path id="par" d="M0,0 L10,0 L10,10 Z"/></g></svg>`)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}
	if len(provinces) != 1 {
		t.Fatalf("Assemble() returned %d provinces, want 1", len(provinces))
	}

	p := provinces[0]
	if p.ID != "par" || p.Path != "M0,0 L10,0 L10,10 Z" {
		t.Errorf("province = %+v", p)
	}
	if p.Center != (model.Point{}) || p.SupplyCenter {
		t.Errorf("center = %+v supplyCenter = %v, want {0,0} false", p.Center, p.SupplyCenter)
	}
	if p.Text != nil {
		t.Errorf("Text = %+v, want nil", p.Text)
	}
}

func TestAssemble_SupplyCenter(t *testing.T) {
	provinces, err := assemble(t, `<svg>
		<g id="provinces"><path id="par" d="M0,0 L10,0 L10,10 Z"/></g>
		<g id="supply-centers"><path id="parCenter" d="m50,60 l1,1"/></g>
	</svg>`)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}

	p := provinces[0]
	if p.Center != (model.Point{X: 50, Y: 60}) {
		t.Errorf("Center = %+v, want {50 60}", p.Center)
	}
	if !p.SupplyCenter {
		t.Error("SupplyCenter = false, want true")
	}
}

func TestAssemble_CenterPrecedence(t *testing.T) {
	provinces, err := assemble(t, `<svg>
		<g id="provinces"><path id="par" d="M0,0"/><path id="bur" d="M1,1"/></g>
		<g id="supply-centers"><path id="parCenter" d="m50,60"/></g>
		<g id="province-centers"><path id="parCenter" d="m1,2"/><path id="burCenter" d="m7,8"/></g>
	</svg>`)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}

	if got := provinces[0]; got.Center != (model.Point{X: 50, Y: 60}) || !got.SupplyCenter {
		t.Errorf("par = %+v, want supply marker to win", got)
	}
	if got := provinces[1]; got.Center != (model.Point{X: 7, Y: 8}) || got.SupplyCenter {
		t.Errorf("bur = %+v, want province-center fallback and no supply center", got)
	}
}

func TestAssemble_MalformedMarker(t *testing.T) {
	_, err := assemble(t, `<svg>
		<g id="provinces"><path id="par" d="M0,0"/></g>
		<g id="province-centers"><path id="parCenter" d="M50,60"/></g>
	</svg>`)
	if err == nil {
		t.Fatal("Assemble() expected error for malformed marker")
	}
	if !errors.Is(err, ErrMalformedMarker) {
		t.Errorf("error = %v, want ErrMalformedMarker", err)
	}
	if !strings.Contains(err.Error(), `"par"`) || !strings.Contains(err.Error(), "M50,60") {
		t.Errorf("error %q should name the province and path", err)
	}
}

func TestAssemble_MarkerWithoutPath(t *testing.T) {
	_, err := assemble(t, `<svg>
		<g id="provinces"><path id="par" d="M0,0"/></g>
		<g id="supply-centers"><circle id="parCenter" r="2"/></g>
	</svg>`)
	if !errors.Is(err, ErrMalformedMarker) {
		t.Errorf("error = %v, want ErrMalformedMarker", err)
	}
}

func TestAssemble_Shapes(t *testing.T) {
	provinces, err := assemble(t, `<svg><g id="provinces">
		<polygon id="tyr" points="0,0 10,0 10,10"/>
		<rect id="box" x="1" y="1" width="2" height="2"/>
		<polyline id="line" points="0,0 1,1"/>
		<circle id="ignored" r="3"/>
		<text id="alsoIgnored">x</text>
	</g></svg>`)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}

	want := map[string]string{
		"tyr":  "M 0,0 L 10,0 L 10,10 Z",
		"box":  "M 1,1 L 3,1 L 3,3 L 1,3 Z",
		"line": "",
	}
	if len(provinces) != len(want) {
		t.Fatalf("Assemble() returned %d provinces, want %d", len(provinces), len(want))
	}
	for _, p := range provinces {
		if p.Path != want[p.ID] {
			t.Errorf("%s path = %q, want %q", p.ID, p.Path, want[p.ID])
		}
	}
}

func TestAssemble_Label(t *testing.T) {
	provinces, err := assemble(t, `<svg>
		<g id="provinces"><path id="par" d="M0,0"/></g>
		<g id="names">
			<text id="par" x="5" y="10" style="font-size:12px;font-family:Serif" font-weight="bold" transform="rotate(-5)">
				<tspan x="40" y="30"> Paris </tspan>
			</text>
		</g>
	</svg>`)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}

	text := provinces[0].Text
	if text == nil {
		t.Fatal("Text = nil, want label")
	}
	if text.Point != (model.Point{X: 35, Y: 20}) {
		t.Errorf("Point = %+v, want {35 20}", text.Point)
	}
	if text.Value != "Paris" {
		t.Errorf("Value = %q, want Paris", text.Value)
	}
	want := model.TextStyles{FontSize: "12px", FontFamily: "Serif", FontWeight: "bold", Transform: "rotate(-5)"}
	if text.Styles != want {
		t.Errorf("Styles = %+v, want %+v", text.Styles, want)
	}
}

func TestAssemble_LabelWithoutRun(t *testing.T) {
	provinces, err := assemble(t, `<svg>
		<g id="provinces"><path id="mos" d="M0,0"/></g>
		<g id="names"><text id="mos" x="5" y="10">Mosco&#x301;w</text></g>
	</svg>`)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}

	text := provinces[0].Text
	if text == nil {
		t.Fatal("Text = nil, want label")
	}
	if text.Point != (model.Point{}) {
		t.Errorf("Point = %+v, want {0 0}", text.Point)
	}
	if text.Value != "Mosców" {
		t.Errorf("Value = %q, want NFC-composed Mosców", text.Value)
	}
}

func TestAssemble_SlashID(t *testing.T) {
	provinces, err := assemble(t, `<svg>
		<g id="provinces"><path id="stp/nc" d="M0,0"/></g>
		<g id="supply-centers"><path id="stp/ncCenter" d="m3,4"/></g>
		<g id="names"><text id="stp/nc" x="1" y="1"><tspan x="2" y="3">St P</tspan></text></g>
	</svg>`)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}

	p := provinces[0]
	if p.Center != (model.Point{X: 3, Y: 4}) || !p.SupplyCenter {
		t.Errorf("center = %+v supply = %v, want {3 4} true", p.Center, p.SupplyCenter)
	}
	if p.Text == nil || p.Text.Point != (model.Point{X: 1, Y: 2}) {
		t.Errorf("Text = %+v, want point {1 2}", p.Text)
	}
}

func TestAssemble_MissingGroup(t *testing.T) {
	provinces, err := assemble(t, `<svg></svg>`)
	if err != nil {
		t.Fatalf("Assemble() failed: %v", err)
	}
	if provinces == nil || len(provinces) != 0 {
		t.Errorf("Assemble() = %v, want empty non-nil slice", provinces)
	}
}
