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

// Package focusgrid is a simple focus model for a grid of widgets. It
// implements the keyinput.Target interface and is used by the frontends to
// show the effect of the input pipeline.
//
// Navigation events move the focus around the grid, wrapping at the edges.
// Scan events move the focus through the grid in reading order. Positional
// events focus the cell under the pointer, which requires the size of the
// grid to have been set with a WindowResize event or with SetSize().
package focusgrid

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/totem/semantic"
)

// NoFocus is the value returned by Focus() when no cell has the focus.
const NoFocus = -1

// Grid is a rectangular arrangement of cells, one of which may have the
// focus.
type Grid struct {
	cols int
	rows int

	// dimensions of the area the grid is drawn in. used to convert
	// positional events to cells
	width  int
	height int

	focus       int
	highlighted bool
	selected    []bool

	// the cell being pressed with a pointer
	pressed int

	// the most recent event handled by the grid
	last semantic.Event

	gaze      bool
	gazeDwell bool
	quit      bool
}

// NewGrid is the preferred method of initialisation for the Grid type. The
// number of columns and rows is at least one.
func NewGrid(cols, rows int) *Grid {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return &Grid{
		cols:     cols,
		rows:     rows,
		focus:    NoFocus,
		pressed:  NoFocus,
		selected: make([]bool, cols*rows),
	}
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return g.cols * g.rows
}

// Focus returns the index of the focused cell or NoFocus.
func (g *Grid) Focus() int {
	return g.focus
}

// Highlighted returns true if the focused cell is highlighted.
func (g *Grid) Highlighted() bool {
	return g.highlighted && g.focus != NoFocus
}

// Selected returns true if the cell is selected.
func (g *Grid) Selected(cell int) bool {
	if cell < 0 || cell >= len(g.selected) {
		return false
	}
	return g.selected[cell]
}

// Pressed returns the cell that is being pressed with a pointer or NoFocus.
func (g *Grid) Pressed() int {
	return g.pressed
}

// Gaze returns the state of the eye-gaze toggles.
func (g *Grid) Gaze() (enabled bool, dwell bool) {
	return g.gaze, g.gazeDwell
}

// Quit returns true if a Quit event has been received.
func (g *Grid) Quit() bool {
	return g.quit
}

// Last returns the most recent event handled by the grid.
func (g *Grid) Last() semantic.Event {
	return g.last
}

// SetSize sets the size of the area used to draw the grid.
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// Size returns the size of the area used to draw the grid.
func (g *Grid) Size() (int, int) {
	return g.width, g.height
}

// Rect returns the area occupied by the cell, in the coordinates of the
// area set by SetSize().
func (g *Grid) Rect(cell int) (x, y, w, h int) {
	col := cell % g.cols
	row := cell / g.cols
	x = col * g.width / g.cols
	y = row * g.height / g.rows
	w = (col+1)*g.width/g.cols - x
	h = (row+1)*g.height/g.rows - y
	return x, y, w, h
}

// CellAt returns the cell at the position or NoFocus.
func (g *Grid) CellAt(x, y int) int {
	if g.width <= 0 || g.height <= 0 {
		return NoFocus
	}
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return NoFocus
	}
	col := x * g.cols / g.width
	row := y * g.rows / g.height
	return row*g.cols + col
}

func (g *Grid) setFocus(cell int) {
	if cell != g.focus {
		g.highlighted = false
	}
	g.focus = cell
}

// move the focus by a number of columns and rows, wrapping at the edges
func (g *Grid) move(dc, dr int) {
	if g.focus == NoFocus {
		g.setFocus(0)
		return
	}
	col := (g.focus%g.cols + dc + g.cols) % g.cols
	row := (g.focus/g.cols + dr + g.rows) % g.rows
	g.setFocus(row*g.cols + col)
}

// step the focus through the cells in reading order
func (g *Grid) step(d int) {
	if g.focus == NoFocus {
		g.setFocus(0)
		return
	}
	n := g.Len()
	g.setFocus((g.focus + d + n) % n)
}

func (g *Grid) toggleSelect() {
	if g.focus == NoFocus {
		return
	}
	g.selected[g.focus] = !g.selected[g.focus]
	g.highlighted = false
}

// HandleEvent implements the keyinput.Target interface.
func (g *Grid) HandleEvent(ev semantic.Event) {
	g.last = ev

	switch ev.Type {
	case semantic.Quit:
		g.quit = true

	case semantic.Back:
		if g.highlighted {
			g.highlighted = false
		} else {
			g.setFocus(NoFocus)
		}

	case semantic.WindowResize:
		g.SetSize(ev.Width, ev.Height)

	case semantic.FirstFocus, semantic.ScanFirstFocus:
		g.setFocus(0)

	case semantic.NextFocusUp:
		g.move(0, -1)
	case semantic.NextFocusDown:
		g.move(0, 1)
	case semantic.NextFocusLeft:
		g.move(-1, 0)
	case semantic.NextFocusRight:
		g.move(1, 0)

	case semantic.ScanNextFocus:
		g.step(1)
	case semantic.ScanPrevFocus:
		g.step(-1)

	case semantic.ClearFocus:
		g.setFocus(NoFocus)

	case semantic.FocusHighlight, semantic.ScanHighlightFocus:
		g.highlighted = g.focus != NoFocus

	case semantic.FocusSelectRelease, semantic.FocusSelectHold, semantic.ScanSelectFocus:
		g.toggleSelect()

	case semantic.FocusDeselect:
		if g.focus != NoFocus {
			g.selected[g.focus] = false
		}
		g.highlighted = false

	case semantic.PositionalSelect:
		g.pressed = g.CellAt(ev.X, ev.Y)
		if g.pressed != NoFocus {
			g.setFocus(g.pressed)
			g.highlighted = true
		}

	case semantic.PositionalDrag:
		if g.pressed != NoFocus {
			if c := g.CellAt(ev.X, ev.Y); c != NoFocus {
				g.setFocus(c)
				g.highlighted = true
			}
		}

	case semantic.PositionalDeselect:
		if g.pressed != NoFocus && g.CellAt(ev.X, ev.Y) == g.pressed {
			g.toggleSelect()
		}
		g.pressed = NoFocus

	case semantic.GazeToggle:
		g.gaze = !g.gaze
	case semantic.GazeDwellToggle:
		g.gazeDwell = !g.gazeDwell
	}
}

// String returns a text representation of the grid. The focused cell is
// bracketed and selected cells are marked with an asterisk. A highlighted
// focus uses braces.
func (g *Grid) String() string {
	s := strings.Builder{}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := r*g.cols + c
			mark := '.'
			if g.selected[cell] {
				mark = '*'
			}
			switch {
			case cell == g.focus && g.highlighted:
				s.WriteString(fmt.Sprintf("{%c}", mark))
			case cell == g.focus:
				s.WriteString(fmt.Sprintf("[%c]", mark))
			default:
				s.WriteString(fmt.Sprintf(" %c ", mark))
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
