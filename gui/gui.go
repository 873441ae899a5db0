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

// Package gui contains the parts common to the focusgrid frontends.
package gui

import (
	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/userinput"
)

// Surface defines the operations that can be performed on a frontend that
// draws a focusgrid.
type Surface interface {
	// the window ID given to the events originating with the surface
	ID() userinput.WindowID

	// Draw the grid and present it.
	Draw(g *focusgrid.Grid) error

	// Destroy the surface and release all resources.
	Destroy()
}

// Sentinal error patterns.
const (
	LimiterError = "gui: limiter: %v"
)

// CellState classifies a cell for drawing.
type CellState int

// List of valid CellState values. A cell is drawn with the state that has
// the highest value.
const (
	CellNormal CellState = iota
	CellSelected
	CellFocus
	CellHighlight
	CellPressed
)

func (s CellState) String() string {
	switch s {
	case CellSelected:
		return "selected"
	case CellFocus:
		return "focus"
	case CellHighlight:
		return "highlight"
	case CellPressed:
		return "pressed"
	}
	return "normal"
}

// State returns the CellState for the cell in the grid.
func State(g *focusgrid.Grid, cell int) CellState {
	if g.Pressed() == cell {
		return CellPressed
	}
	if g.Focus() == cell {
		if g.Highlighted() {
			return CellHighlight
		}
		return CellFocus
	}
	if g.Selected(cell) {
		return CellSelected
	}
	return CellNormal
}
