package viewer

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terragen/internal/palette"
	"github.com/samdwyer/terragen/internal/telemetry"
	"github.com/samdwyer/terragen/internal/ui"
	"github.com/samdwyer/terragen/internal/world"
)

const (
	panStep     = 4  // tiles per arrow key press
	fastPanStep = 40 // tiles per page key press
)

// Viewer holds the browsing state for one world.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *world.World
	viewport *ui.Viewport
	mode     Mode
	running  bool
}

// New opens the terminal and prepares to browse w.
func New(w *world.World) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newViewer(screen, w), nil
}

func newViewer(screen *ui.Screen, w *world.World) *Viewer {
	width, height := screen.Size()
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette.Default()),
		world:    w,
		viewport: ui.NewViewport(width, max(height-1, 0), w.Width(), w.Height()),
		mode:     ModeDetail,
		running:  true,
	}
}

// Run shows the world until the user quits, then restores the terminal.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.Close()

	tracer := telemetry.Tracer("viewer")
	_, span := tracer.Start(ctx, "viewer.init")

	x := v.world.Width() / 2
	y := SurfaceAt(v.world, x)
	v.viewport.CenterOn(x, y)

	span.SetAttributes(
		attribute.String("world.size", v.world.Size().String()),
		attribute.Int("viewport.start_x", v.viewport.X),
		attribute.Int("viewport.start_y", v.viewport.Y),
	)
	span.End()

	for v.running {
		v.render()
		v.handleInput()
	}
	return nil
}

func (v *Viewer) render() {
	switch v.mode {
	case ModeOverview:
		width, height := v.screen.Size()
		v.renderer.RenderOverview(v.world, width, max(height-1, 0))
	default:
		v.renderer.Render(v.world, v.viewport)
	}
}

// handleInput processes a single input event.
func (v *Viewer) handleInput() {
	switch ev := v.screen.PollEvent().(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ev)
	case *tcell.EventResize:
		width, height := ev.Size()
		v.viewport.Resize(width, max(height-1, 0))
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.pan(0, -panStep)
	case tcell.KeyDown:
		v.pan(0, panStep)
	case tcell.KeyLeft:
		v.pan(-panStep, 0)
	case tcell.KeyRight:
		v.pan(panStep, 0)
	case tcell.KeyPgUp:
		v.pan(0, -fastPanStep)
	case tcell.KeyPgDn:
		v.pan(0, fastPanStep)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'o', 'O':
			v.toggleOverview()
		}
	}
}

// pan moves the viewport. Panning is ignored in overview mode.
func (v *Viewer) pan(dx, dy int) {
	if v.mode == ModeOverview {
		return
	}
	v.viewport.Move(dx, dy)
}

func (v *Viewer) toggleOverview() {
	if v.mode == ModeOverview {
		v.mode = ModeDetail
	} else {
		v.mode = ModeOverview
	}
}

// Close restores the terminal. Calling it again is a no-op.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
		v.screen = nil
	}
}

// SurfaceAt returns the first row of column x that holds a solid tile, or
// the bottom row when the column is open all the way down.
func SurfaceAt(w *world.World, x int) int {
	for y := 0; y < w.Height(); y++ {
		if w.Tile(x, y).Material().IsSolid() {
			return y
		}
	}
	return w.Height() - 1
}
