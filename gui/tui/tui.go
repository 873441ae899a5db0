// This file is part of Totem.
//
// Totem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Totem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Totem.  If not, see <https://www.gnu.org/licenses/>.

// Package tui draws a focusgrid in a terminal using tcell. Terminal events
// are translated by the terminput package and are available on the Events()
// channel.
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/gui"
	"github.com/jetsetilly/totem/terminput"
	"github.com/jetsetilly/totem/userinput"
)

// Sentinal error patterns.
const (
	ScreenError = "tui: %v"
)

var background = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 26))

var styles = map[gui.CellState]tcell.Style{
	gui.CellNormal:    tcell.StyleDefault.Background(tcell.NewRGBColor(76, 76, 86)),
	gui.CellSelected:  tcell.StyleDefault.Background(tcell.NewRGBColor(50, 140, 64)),
	gui.CellFocus:     tcell.StyleDefault.Background(tcell.NewRGBColor(64, 100, 204)),
	gui.CellHighlight: tcell.StyleDefault.Background(tcell.NewRGBColor(230, 190, 50)),
	gui.CellPressed:   tcell.StyleDefault.Background(tcell.NewRGBColor(216, 76, 64)),
}

// Screen is a terminal screen in which a focusgrid is drawn.
type Screen struct {
	scr    tcell.Screen
	tr     terminput.Translator
	events chan userinput.Event
}

// NewScreen opens the terminal.
func NewScreen() (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, curated.Errorf(ScreenError, err)
	}
	return Open(scr)
}

// Open initialises the tcell screen and starts reading events from it. The
// Screen takes ownership of the tcell screen.
func Open(scr tcell.Screen) (*Screen, error) {
	if err := scr.Init(); err != nil {
		return nil, curated.Errorf(ScreenError, err)
	}
	scr.EnableMouse()
	scr.HideCursor()

	s := &Screen{
		scr:    scr,
		events: make(chan userinput.Event, 100),
	}

	go func() {
		defer close(s.events)
		for {
			// PollEvent returns nil once the screen has been finalised
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			for _, uev := range s.tr.Translate(ev) {
				s.events <- uev
			}
		}
	}()

	return s, nil
}

// Events returns the channel on which terminal events are sent. The channel
// is closed when the screen is destroyed.
func (s *Screen) Events() <-chan userinput.Event {
	return s.events
}

// ID implements the gui.Surface interface.
func (s *Screen) ID() userinput.WindowID {
	return terminput.Window
}

// Size returns the size of the terminal in cells.
func (s *Screen) Size() (int, int) {
	return s.scr.Size()
}

// Draw implements the gui.Surface interface.
func (s *Screen) Draw(g *focusgrid.Grid) error {
	w, h := s.scr.Size()
	g.SetSize(w, h)

	s.scr.SetStyle(background)
	s.scr.Clear()

	for cell := range g.Len() {
		x, y, cw, ch := g.Rect(cell)

		// leave a one character gap on the right and bottom of every cell
		cw--
		ch--
		if cw <= 0 || ch <= 0 {
			continue
		}

		st := styles[gui.State(g, cell)]
		for j := range ch {
			for i := range cw {
				s.scr.SetContent(x+i, y+j, ' ', nil, st)
			}
		}
	}

	s.scr.Show()
	return nil
}

// Destroy implements the gui.Surface interface.
func (s *Screen) Destroy() {
	s.scr.Fini()
}
