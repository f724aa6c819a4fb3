package worldfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/samdwyer/terragen/internal/world"
)

// sampleWorld is a Tiny world with every facet of the tile in use.
func sampleWorld(t *testing.T) *world.World {
	t.Helper()
	width, height, _ := world.SizeTiny.Dimensions()
	g := world.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Update(x, y, func(tile *world.Tile) {
				tile.SetDepth(world.Depth(y * len(world.Depths()) / height))
				switch {
				case y < 200:
				case y < 210:
					tile.SetLiquidLevel(world.LiquidWater, float32(x%10)/10)
				default:
					tile.SetMaterial(world.Material(1 + (x+y)%(len(world.Materials())-1)))
					tile.SetWall(world.Wall(x % len(world.Walls())))
				}
			})
		}
	}
	w, err := world.New(g, world.SizeTiny)
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}
	return w
}

// rawFile compresses a header line and payload the way Write lays them out.
func rawFile(t *testing.T, h any, payload []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	hb, _ := json.Marshal(h)
	enc.Write(append(hb, '\n'))
	enc.Write(payload)
	if err := enc.Close(); err != nil {
		t.Fatalf("zstd close: %v", err)
	}
	return &buf
}

func TestRoundTrip(t *testing.T) {
	w := sampleWorld(t)

	var buf bytes.Buffer
	written, err := Write(&buf, w)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, read, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if read != written {
		t.Errorf("Header mismatch: wrote %+v, read %+v", written, read)
	}
	if !got.Equal(w) {
		t.Error("Decoded world differs from the original")
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	h, err := Write(&buf, sampleWorld(t))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if h.Version != Version || h.Size != "tiny" || h.Width != 1750 || h.Height != 900 {
		t.Errorf("Unexpected header %+v", h)
	}
	if _, err := uuid.Parse(h.WorldID); err != nil {
		t.Errorf("World ID %q is not a UUID: %v", h.WorldID, err)
	}

	var other bytes.Buffer
	h2, _ := Write(&other, sampleWorld(t))
	if h2.WorldID == h.WorldID {
		t.Error("Every write should get a fresh world ID")
	}
}

func TestSaveAndLoad(t *testing.T) {
	w := sampleWorld(t)
	path := filepath.Join(t.TempDir(), "worlds", "tiny.tgw")

	saved, err := Save(path, w)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.WorldID != saved.WorldID {
		t.Errorf("Expected world ID %s, got %s", saved.WorldID, loaded.WorldID)
	}
	if !got.Equal(w) {
		t.Error("Loaded world differs from the saved one")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.tgw")); err == nil {
		t.Error("Loading a missing file should fail")
	}
}

func TestReadRejectsBadFiles(t *testing.T) {
	good := Header{Version: Version, WorldID: uuid.NewString(), Size: "tiny", Width: 1750, Height: 900}
	tile := []byte{byte(world.MaterialStone), 0, 0, 0, 0, 0, 0, 0}

	badEnum := bytes.Repeat(tile, 1750*900)
	badEnum[0] = 0xFF

	tests := []struct {
		name    string
		header  any
		payload []byte
		wantErr error
	}{
		{"future version", Header{Version: Version + 1, Size: "tiny", Width: 1750, Height: 900}, nil, ErrVersion},
		{"unknown size", Header{Version: Version, Size: "colossal", Width: 1750, Height: 900}, nil, ErrCorrupt},
		{"wrong dimensions", Header{Version: Version, Size: "tiny", Width: 10, Height: 10}, nil, ErrCorrupt},
		{"bad header", "not a header", nil, ErrCorrupt},
		{"truncated", good, bytes.Repeat(tile, 100), ErrCorrupt},
		{"bad enum", good, badEnum, ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(rawFile(t, tt.header, tt.payload))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReadRejectsPlainData(t *testing.T) {
	if _, _, err := Read(bytes.NewReader([]byte("definitely not zstd"))); err == nil {
		t.Error("Expected an error for uncompressed input")
	}
}

func TestDecodeTileLevel(t *testing.T) {
	b := make([]byte, tileBytes)
	var want world.Tile
	want.SetLiquidLevel(world.LiquidLava, 0.25)
	encodeTile(b, want)

	got, err := decodeTile(b)
	if err != nil {
		t.Fatalf("decodeTile failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	b[4], b[5], b[6], b[7] = 0, 0, 0x80, 0x7F // +Inf
	if _, err := decodeTile(b); err == nil {
		t.Error("A liquid level above 1 should be rejected")
	}
}
