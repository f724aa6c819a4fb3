// Package viewer provides the interactive terminal world browser.
package viewer

// Mode is how the world is being displayed.
type Mode int

const (
	// ModeDetail shows one tile per screen cell around the viewport.
	ModeDetail Mode = iota
	// ModeOverview shrinks the whole world to fit the screen.
	ModeOverview
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeDetail:
		return "detail"
	case ModeOverview:
		return "overview"
	default:
		return "unknown"
	}
}
