package gen

import (
	"testing"

	"github.com/samdwyer/terragen/internal/world"
)

func TestFixGravitatingSand(t *testing.T) {
	g := newTestGenerator(world.SizeTiny, 1, 10, &stubRandom{})
	g.grid.SetMaterial(0, 2, world.MaterialSand)
	g.grid.SetMaterial(0, 3, world.MaterialSand)
	g.grid.SetMaterial(0, 9, world.MaterialStone)

	if moved := g.FixGravitatingSand(flat(1, 5)); moved != 2 {
		t.Errorf("Expected 2 sand cells to move, got %d", moved)
	}

	want := map[int]world.Material{7: world.MaterialSand, 8: world.MaterialSand, 9: world.MaterialStone}
	for y := 0; y < 10; y++ {
		expected, ok := want[y]
		if !ok {
			expected = world.MaterialAir
		}
		if got := g.grid.Material(0, y); got != expected {
			t.Errorf("Row %d: expected %s, got %s", y, expected, got)
		}
	}

	if moved := g.FixGravitatingSand(flat(1, 5)); moved != 0 {
		t.Errorf("Settled sand should not move again, moved %d", moved)
	}
}

func TestFixGravitatingSandOnlyScansWindow(t *testing.T) {
	g := newTestGenerator(world.SizeTiny, 1, 200, &stubRandom{})
	g.grid.SetMaterial(0, 10, world.MaterialSand)

	if moved := g.FixGravitatingSand(flat(1, 150)); moved != 0 {
		t.Errorf("Sand far above the surface window should stay, moved %d", moved)
	}
	if g.grid.Material(0, 10) != world.MaterialSand {
		t.Error("Sand outside the window was moved")
	}
}

func TestFixDirtWalls(t *testing.T) {
	g := newTestGenerator(world.SizeTiny, 1, 10, &stubRandom{})
	for y := 0; y < 10; y++ {
		g.grid.SetWall(0, y, world.WallDirt)
	}
	g.grid.SetMaterial(0, 6, world.MaterialStone)

	if cleared := g.FixDirtWalls(flat(1, 5)); cleared != 6 {
		t.Errorf("Expected 6 walls cleared, got %d", cleared)
	}
	for y := 0; y < 10; y++ {
		want := world.WallAir
		if y >= 6 {
			want = world.WallDirt
		}
		if got := g.grid.Tile(0, y).Wall(); got != want {
			t.Errorf("Row %d: expected %s wall, got %s", y, want, got)
		}
	}
}

func TestFixWaterOnSand(t *testing.T) {
	g := newTestGenerator(world.SizeTiny, 1, 10, &stubRandom{})
	g.grid.SetMaterial(0, 8, world.MaterialSand)
	g.grid.SetLiquid(0, 8, world.LiquidWater)
	for _, y := range []int{3, 5, 6, 7} {
		g.grid.SetLiquid(0, y, world.LiquidWater)
	}

	if drained := g.FixWaterOnSand(flat(1, 5)); drained != 4 {
		t.Errorf("Expected 4 cells drained, got %d", drained)
	}
	for y := 5; y <= 8; y++ {
		if g.grid.Tile(0, y).Liquid() != world.LiquidNone {
			t.Errorf("Row %d should be drained", y)
		}
	}
	if g.grid.Tile(0, 3).Liquid() != world.LiquidWater {
		t.Error("Water separated from the sand by a dry cell should stay")
	}

	if drained := g.FixWaterOnSand(flat(1, 5)); drained != 0 {
		t.Errorf("Second pass should drain nothing, drained %d", drained)
	}
}

func TestTinyFixupsHold(t *testing.T) {
	g := tinyRun(t)
	grid := g.Grid()

	for x := 0; x < grid.Width; x++ {
		top, bottom := g.window(g.surface[x])
		for y := top; y < bottom; y++ {
			if grid.Material(x, y) != world.MaterialSand {
				continue
			}
			if y+1 < grid.Height && grid.Material(x, y+1) == world.MaterialAir {
				t.Fatalf("Sand at (%d,%d) is floating", x, y)
			}
			if grid.Tile(x, y).Liquid() == world.LiquidWater || grid.Tile(x, y-1).Liquid() == world.LiquidWater {
				t.Fatalf("Water rests on sand at (%d,%d)", x, y)
			}
		}
	}
}
