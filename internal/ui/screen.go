// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal the world is drawn on.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(term)
}

// Wrap initializes term and draws on it. Tests pass a simulation screen.
func Wrap(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks until the next key, resize or interrupt event.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

// Size returns the terminal size in cells.
func (s *Screen) Size() (width, height int) { return s.term.Size() }

// Sync repaints every cell, after a resize for instance.
func (s *Screen) Sync() { s.term.Sync() }

// Begin starts a new frame on a blank buffer.
func (s *Screen) Begin() { s.term.Clear() }

// End flushes the frame to the terminal.
func (s *Screen) End() { s.term.Show() }

// Fill paints cell (x, y) as a solid block of color c.
func (s *Screen) Fill(x, y int, c tcell.Color) {
	s.term.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(c))
}

// Text writes msg from (x, y) rightwards and returns the column after its last rune.
func (s *Screen) Text(x, y int, msg string, style tcell.Style) int {
	for _, r := range msg {
		s.term.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
