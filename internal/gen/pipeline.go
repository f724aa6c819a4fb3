package gen

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/terragen/internal/telemetry"
	"github.com/samdwyer/terragen/internal/world"
)

// Stage is a step of the generation pipeline. Stages only ever advance.
type Stage int

const (
	StageInitial Stage = iota
	StageDepthLevels
	StageHeightProfiles
	StageLayering
	StageTunnels
	StageDeserts
	StageAnthills
	StageBlending
	StageCaves
	StageScattered
	StageOres
	StageFixups
	StageFinished
)

var stageNames = [...]string{
	"initial", "depth_levels", "height_profiles", "layering", "tunnels", "deserts",
	"anthills", "blending", "caves", "scattered", "ores", "fixups", "finished",
}

// String returns a human-readable stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Terrain walk parameters, as offsets from the surface or cavern layer.
const (
	surfaceOffsetMin = -125
	surfaceOffsetMax = -5
	surfaceAmplitude = 5
	surfaceTimer     = 80

	dirtOffsetMin = -4
	dirtOffsetMax = 16
	dirtAmplitude = 2
	dirtTimer     = 20

	rockOffsetMin = -20
	rockOffsetMax = 20
	rockAmplitude = 3
	rockTimer     = 20

	underworldRows = 200
)

// pass is one entry of the fixed pipeline. A nil run marks a pass that is
// part of the sequence but not implemented yet.
type pass struct {
	name  string
	stage Stage
	run   func() (int, error)
}

// passes returns the pipeline in execution order. Reordering it changes the
// world produced for a given seed.
func (g *Generator) passes() []pass {
	return []pass{
		{"depth_levels", StageDepthLevels, g.runDepthLevels},
		{"height_profiles", StageHeightProfiles, g.runHeightProfiles},
		{"layers", StageLayering, func() (int, error) {
			return g.GenerateLayers(g.surface, g.rock, g.levels.Underworld), nil
		}},
		{"surface_tunnels", StageTunnels, func() (int, error) {
			return g.GenerateSurfaceTunnels(g.surface), nil
		}},
		{"sand_desert", StageDeserts, func() (int, error) {
			return g.GenerateSandDesert(g.surface), nil
		}},
		{"sand_piles", StageDeserts, func() (int, error) {
			return g.GenerateSandPiles(g.levels.Surface, g.rock), nil
		}},
		{"anthills", StageAnthills, func() (int, error) {
			return len(g.GenerateAnthills(g.surface)), nil
		}},
		{"surface_stone", StageBlending, func() (int, error) {
			return g.GenerateSurfaceStone(g.surface, g.dirt), nil
		}},
		{"underground_stone", StageBlending, func() (int, error) {
			return g.GenerateUndergroundStone(g.dirt, g.rock), nil
		}},
		{"cavern_dirt", StageBlending, func() (int, error) {
			return g.GenerateCavernDirt(g.rock, g.levels.Underworld), nil
		}},
		{"caves", StageCaves, func() (int, error) {
			return g.GenerateCaves(g.dirt, g.levels.Underworld), nil
		}},
		{"entrance_caves", StageCaves, nil},
		{"large_caves", StageCaves, func() (int, error) {
			return g.GenerateLargeCaves(g.rock, g.levels.Underworld), nil
		}},
		{"clay", StageScattered, func() (int, error) {
			return g.GenerateClay(g.surface, g.dirt, g.rock), nil
		}},
		{"grass", StageScattered, func() (int, error) {
			return g.GenerateGrass(g.surface, g.levels.Surface), nil
		}},
		{"mud", StageScattered, func() (int, error) {
			return g.GenerateMud((g.levels.Surface+g.levels.Cavern)/2, g.levels.Underworld), nil
		}},
		{"silt", StageScattered, func() (int, error) {
			return g.GenerateSilt(g.levels.Cavern, g.levels.Underworld), nil
		}},
		{"metals", StageOres, func() (int, error) {
			return g.GenerateMetals(
				g.levels.Surface+surfaceOffsetMin, g.levels.Surface+surfaceOffsetMax,
				g.levels.Cavern, g.levels.Underworld,
			), nil
		}},
		{"gems", StageOres, nil},
		{"webs", StageOres, nil},
		{"anthill_caves", StageFixups, nil},
		{"fix_gravitating_sand", StageFixups, func() (int, error) {
			return g.FixGravitatingSand(g.surface), nil
		}},
		{"fix_dirt_walls", StageFixups, func() (int, error) {
			return g.FixDirtWalls(g.surface), nil
		}},
		{"fix_water_on_sand", StageFixups, func() (int, error) {
			return g.FixWaterOnSand(g.surface), nil
		}},
		{"smooth_world", StageFixups, nil},
		{"settle_liquids", StageFixups, nil},
		{"add_waterfalls", StageFixups, nil},
	}
}

// Run executes every pass in order. A cancelled context stops the run
// between passes; nothing is materialized until Finish.
func (g *Generator) Run(ctx context.Context) error {
	if g.stage != StageInitial {
		return fmt.Errorf("generator already ran (stage %s)", g.stage)
	}

	tracer := telemetry.Tracer("gen")
	ctx, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	for _, p := range g.passes() {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, "cancelled")
			return err
		}

		g.stage = p.stage
		_, passSpan := tracer.Start(ctx, "world.pass."+p.name)
		passSpan.SetAttributes(
			attribute.String("pass.stage", p.stage.String()),
			attribute.Bool("pass.implemented", p.run != nil),
		)

		if p.run == nil {
			g.skipped = append(g.skipped, p.name)
			passSpan.End()
			continue
		}

		changes, err := p.run()
		if err != nil {
			passSpan.RecordError(err)
			passSpan.SetStatus(codes.Error, err.Error())
			passSpan.End()
			span.SetStatus(codes.Error, p.name)
			return fmt.Errorf("%s: %w", p.name, err)
		}
		passSpan.SetAttributes(attribute.Int("pass.changes", changes))
		passSpan.End()
	}

	span.SetAttributes(
		attribute.String("world.size", g.size.String()),
		attribute.Int("world.width", g.grid.Width),
		attribute.Int("world.height", g.grid.Height),
		attribute.Int("world.anthills", len(g.anthills)),
		attribute.Int("world.skipped_passes", len(g.skipped)),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// runDepthLevels picks the depth band boundaries and tags every row.
func (g *Generator) runDepthLevels() (int, error) {
	height := g.grid.Height

	space := g.RandomHeight(0.05, 0.07)
	surface := g.RandomHeight(0.25, 0.26)
	cavern := g.RandomHeight(0.36, 0.38)
	underworld := height - underworldRows

	if !(0 < space && space < surface && surface < cavern && cavern < underworld && underworld < height) {
		return 0, fmt.Errorf("depth levels out of order: space=%d surface=%d cavern=%d underworld=%d height=%d",
			space, surface, cavern, underworld, height)
	}

	g.levels = Levels{
		Space:      space,
		Surface:    surface,
		Cavern:     cavern,
		Lava:       cavern + (underworld-cavern)*2/3,
		Underworld: underworld,
	}
	g.GenerateDepthLevels(g.levels)
	return height, nil
}

// runHeightProfiles computes the surface, dirt and rock boundary lines.
func (g *Generator) runHeightProfiles() (int, error) {
	var err error
	surface, cavern := g.levels.Surface, g.levels.Cavern

	g.surface, err = g.RandomTerrain(surface+surfaceOffsetMin, surface+surfaceOffsetMax, surfaceAmplitude, surfaceTimer)
	if err != nil {
		return 0, fmt.Errorf("surface terrain: %w", err)
	}
	g.dirt, err = g.RandomTerrain(surface+dirtOffsetMin, surface+dirtOffsetMax, dirtAmplitude, dirtTimer)
	if err != nil {
		return 0, fmt.Errorf("dirt terrain: %w", err)
	}
	g.rock, err = g.RandomTerrain(cavern+rockOffsetMin, cavern+rockOffsetMax, rockAmplitude, rockTimer)
	if err != nil {
		return 0, fmt.Errorf("rock terrain: %w", err)
	}
	return 3, nil
}

// Generate builds a complete world for size from seed.
func Generate(ctx context.Context, size world.Size, seed int64) (*world.World, error) {
	g, err := New(size, seed)
	if err != nil {
		return nil, err
	}
	if err := g.Run(ctx); err != nil {
		return nil, fmt.Errorf("generate %s world: %w", size, err)
	}
	return g.Finish()
}
