package palette

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terragen/internal/world"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"00FF00", tcell.NewRGBColor(0, 255, 0), true},
		{"#0000ff", tcell.NewRGBColor(0, 0, 255), true},
		{"#976B4B", tcell.NewRGBColor(0x97, 0x6B, 0x4B), true},
		{"invalid", tcell.ColorDefault, false},
		{"#FFF", tcell.ColorDefault, false}, // Too short
		{"#GG0000", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
			continue
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadDefaultFile(t *testing.T) {
	def, err := Load[Definition](DefaultFile)
	if err != nil {
		t.Fatalf("Failed to load %s: %v", DefaultFile, err)
	}
	if len(def.Materials) != len(world.Materials())-1 {
		t.Errorf("Expected a color for every non-air material, got %d", len(def.Materials))
	}
	if len(def.Depths) != len(world.Depths()) {
		t.Errorf("Expected a color for every depth band, got %d", len(def.Depths))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[Definition]("missing.json"); err == nil {
		t.Error("Loading a missing file should fail")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json": {Data: []byte(`{"materials": {"dirt": 5}}`)},
	}
	if _, err := loadFrom[Definition](fsys, "broken.json"); err == nil {
		t.Error("A number where a hex string belongs should fail to parse")
	}
}

func TestMustLoadPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustLoad should panic for a missing file")
		}
	}()
	MustLoad[Definition]("missing.json")
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should build the palette once")
	}
}

func TestColorPriority(t *testing.T) {
	p := Default()

	var sky world.Tile
	sky.SetDepth(world.DepthOverworld)

	walled := sky
	walled.SetWall(world.WallDirt)

	wet := walled
	wet.SetLiquid(world.LiquidWater)

	solid := wet
	solid.SetMaterial(world.MaterialGold)

	tests := []struct {
		name string
		tile world.Tile
		want string
	}{
		{"depth", sky, "#84AAF8"},
		{"wall over depth", walled, "#583D2E"},
		{"liquid over wall", wet, "#093DBF"},
		{"material over liquid", solid, "#B9A417"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, _ := ParseHexColor(tt.want)
			if got := p.Color(tt.tile); got != want {
				t.Errorf("Expected %v, got %v", want, got)
			}
		})
	}
}

func TestNewRejectsBadDefinitions(t *testing.T) {
	valid := MustLoad[Definition](DefaultFile)

	tests := []struct {
		name   string
		mutate func(d *Definition)
		errMsg string
	}{
		{"unknown material", func(d *Definition) { d.Materials["obsidian"] = "#000000" }, "unknown material"},
		{"missing depth", func(d *Definition) { delete(d.Depths, "cavern") }, "no color for depth cavern"},
		{"bad color", func(d *Definition) { d.Liquids["lava"] = "red" }, "liquid lava"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := clone(valid)
			tt.mutate(&def)
			_, err := New(def)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing %q, got %v", tt.errMsg, err)
			}
		})
	}
}

func clone(d Definition) Definition {
	cp := func(m map[string]string) map[string]string {
		out := make(map[string]string, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	}
	return Definition{
		Materials: cp(d.Materials),
		Liquids:   cp(d.Liquids),
		Walls:     cp(d.Walls),
		Depths:    cp(d.Depths),
	}
}
