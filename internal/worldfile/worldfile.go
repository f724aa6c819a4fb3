// Package worldfile stores finished worlds as zstd-compressed files.
//
// A file is one zstd stream holding a JSON header line followed by the
// tiles in row-major order, tileBytes bytes each.
package worldfile

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/samdwyer/terragen/internal/world"
)

// Version is the current file format version.
const Version = 1

// tileBytes is the encoded size of one tile: material, liquid, wall and
// depth bytes, then the liquid level as a little-endian float32.
const tileBytes = 8

const bufferSize = 256 * 1024

var (
	// ErrVersion is returned for files written by an incompatible format version.
	ErrVersion = errors.New("unsupported world file version")
	// ErrCorrupt is returned when the header or tiles cannot describe a valid world.
	ErrCorrupt = errors.New("corrupt world file")
)

// Header describes the world stored in a file.
type Header struct {
	Version int    `json:"version"`
	WorldID string `json:"world_id"`
	Size    string `json:"size"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// Save writes w to path, creating parent directories as needed.
// It returns the header that was written.
func Save(path string, w *world.World) (Header, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Header{}, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Header{}, err
	}

	h, err := Write(f, w)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return h, err
}

// Write encodes w to out under a fresh world ID.
func Write(out io.Writer, w *world.World) (Header, error) {
	h := Header{
		Version: Version,
		WorldID: uuid.NewString(),
		Size:    w.Size().String(),
		Width:   w.Width(),
		Height:  w.Height(),
	}

	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return h, err
	}
	bw := bufio.NewWriterSize(enc, bufferSize)

	if err := writeBody(bw, h, w); err != nil {
		enc.Close()
		return h, err
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return h, err
	}
	return h, enc.Close()
}

func writeBody(bw *bufio.Writer, h Header, w *world.World) error {
	hb, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	row := make([]byte, w.Width()*tileBytes)
	for y := 0; y < w.Height(); y++ {
		for x, t := range w.Row(y) {
			encodeTile(row[x*tileBytes:], t)
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}
	return nil
}

func encodeTile(b []byte, t world.Tile) {
	b[0] = byte(t.Material())
	b[1] = byte(t.Liquid())
	b[2] = byte(t.Wall())
	b[3] = byte(t.Depth())
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(t.LiquidLevel()))
}

// Load reads the world stored at path.
func Load(path string) (*world.World, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a world written by Write.
func Read(in io.Reader) (*world.World, Header, error) {
	dec, err := zstd.NewReader(in)
	if err != nil {
		return nil, Header{}, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, bufferSize)
	h, size, err := readHeader(br)
	if err != nil {
		return nil, h, err
	}

	g := world.NewGrid(h.Width, h.Height)
	row := make([]byte, h.Width*tileBytes)
	for y := 0; y < h.Height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, h, fmt.Errorf("%w: row %d: %v", ErrCorrupt, y, err)
		}
		for x := 0; x < h.Width; x++ {
			t, err := decodeTile(row[x*tileBytes:])
			if err != nil {
				return nil, h, fmt.Errorf("%w: tile (%d,%d): %v", ErrCorrupt, x, y, err)
			}
			g.Put(x, y, t)
		}
	}

	w, err := world.New(g, size)
	if err != nil {
		return nil, h, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return w, h, nil
}

func readHeader(br *bufio.Reader) (Header, world.Size, error) {
	var h Header
	line, err := br.ReadBytes('\n')
	if err != nil {
		return h, 0, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, 0, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
	}
	if h.Version != Version {
		return h, 0, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}

	size, err := world.ParseSize(h.Size)
	if err != nil {
		return h, 0, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	width, height, _ := size.Dimensions()
	if h.Width != width || h.Height != height {
		return h, 0, fmt.Errorf("%w: %s world stored as %dx%d", ErrCorrupt, size, h.Width, h.Height)
	}
	return h, size, nil
}

func decodeTile(b []byte) (world.Tile, error) {
	var t world.Tile

	m, l, wall, d := world.Material(b[0]), world.Liquid(b[1]), world.Wall(b[2]), world.Depth(b[3])
	if int(m) >= len(world.Materials()) || int(l) >= len(world.Liquids()) ||
		int(wall) >= len(world.Walls()) || int(d) >= len(world.Depths()) {
		return t, fmt.Errorf("unknown enum value in % x", b[:4])
	}

	level := math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	if math.IsNaN(float64(level)) || level < 0 || level > 1 {
		return t, fmt.Errorf("liquid level %v out of range", level)
	}

	t.SetMaterial(m)
	t.SetWall(wall)
	t.SetDepth(d)
	t.SetLiquidLevel(l, level)
	return t, nil
}
