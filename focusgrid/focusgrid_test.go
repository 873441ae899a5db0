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

package focusgrid_test

import (
	"testing"

	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/keyinput"
	"github.com/jetsetilly/totem/semantic"
	"github.com/jetsetilly/totem/test"
)

func send(g *focusgrid.Grid, types ...semantic.EventType) {
	for _, t := range types {
		g.HandleEvent(semantic.New(t))
	}
}

func TestNavigation(t *testing.T) {
	g := focusgrid.NewGrid(3, 2)
	test.ExpectImplements[keyinput.Target](t, g)
	test.ExpectEquality(t, g.Focus(), focusgrid.NoFocus)

	// any navigation with no focus moves to the first cell
	send(g, semantic.NextFocusLeft)
	test.ExpectEquality(t, g.Focus(), 0)

	send(g, semantic.NextFocusRight, semantic.NextFocusDown)
	test.ExpectEquality(t, g.Focus(), 4)

	// wrapping
	send(g, semantic.NextFocusDown)
	test.ExpectEquality(t, g.Focus(), 1)
	send(g, semantic.NextFocusLeft, semantic.NextFocusLeft)
	test.ExpectEquality(t, g.Focus(), 2)
	send(g, semantic.NextFocusUp)
	test.ExpectEquality(t, g.Focus(), 5)

	send(g, semantic.ClearFocus)
	test.ExpectEquality(t, g.Focus(), focusgrid.NoFocus)
	send(g, semantic.FirstFocus)
	test.ExpectEquality(t, g.Focus(), 0)
}

func TestScanning(t *testing.T) {
	g := focusgrid.NewGrid(2, 2)

	send(g, semantic.ScanFirstFocus, semantic.ScanNextFocus, semantic.ScanNextFocus, semantic.ScanNextFocus)
	test.ExpectEquality(t, g.Focus(), 3)
	send(g, semantic.ScanNextFocus)
	test.ExpectEquality(t, g.Focus(), 0)
	send(g, semantic.ScanPrevFocus)
	test.ExpectEquality(t, g.Focus(), 3)

	send(g, semantic.ScanHighlightFocus)
	test.ExpectSuccess(t, g.Highlighted())
	test.ExpectEquality(t, g.String(), " .  . \n . {.}\n")

	send(g, semantic.ScanSelectFocus)
	test.ExpectSuccess(t, g.Selected(3))
	test.ExpectFailure(t, g.Highlighted())
	test.ExpectEquality(t, g.String(), " .  . \n . [*]\n")

	// moving the focus removes the highlight
	send(g, semantic.FocusHighlight, semantic.ScanNextFocus)
	test.ExpectFailure(t, g.Highlighted())
}

func TestSelection(t *testing.T) {
	g := focusgrid.NewGrid(2, 2)

	// nothing happens without a focus
	send(g, semantic.FocusSelectRelease)
	test.ExpectFailure(t, g.Selected(0))

	send(g, semantic.FirstFocus, semantic.FocusSelectRelease)
	test.ExpectSuccess(t, g.Selected(0))
	send(g, semantic.FocusSelectHold)
	test.ExpectFailure(t, g.Selected(0))
	send(g, semantic.FocusSelectHold, semantic.FocusDeselect)
	test.ExpectFailure(t, g.Selected(0))

	// back removes the highlight and then the focus
	send(g, semantic.FocusHighlight, semantic.Back)
	test.ExpectEquality(t, g.Focus(), 0)
	send(g, semantic.Back)
	test.ExpectEquality(t, g.Focus(), focusgrid.NoFocus)

	test.ExpectFailure(t, g.Selected(-1))
	test.ExpectFailure(t, g.Selected(4))
}

func TestPositional(t *testing.T) {
	g := focusgrid.NewGrid(2, 2)

	// no size yet
	g.HandleEvent(semantic.Positional(semantic.PositionalSelect, 10, 10, 0))
	test.ExpectEquality(t, g.Focus(), focusgrid.NoFocus)

	g.HandleEvent(semantic.Resize(200, 100, 0))
	w, h := g.Size()
	test.ExpectEquality(t, w, 200)
	test.ExpectEquality(t, h, 100)

	x, y, cw, ch := g.Rect(3)
	test.ExpectEquality(t, x, 100)
	test.ExpectEquality(t, y, 50)
	test.ExpectEquality(t, cw, 100)
	test.ExpectEquality(t, ch, 50)

	test.ExpectEquality(t, g.CellAt(150, 25), 1)
	test.ExpectEquality(t, g.CellAt(200, 25), focusgrid.NoFocus)

	// press and release on the same cell selects it
	g.HandleEvent(semantic.Positional(semantic.PositionalSelect, 150, 75, 0))
	test.ExpectEquality(t, g.Focus(), 3)
	test.ExpectEquality(t, g.Pressed(), 3)
	g.HandleEvent(semantic.Positional(semantic.PositionalDeselect, 160, 80, 0))
	test.ExpectSuccess(t, g.Selected(3))
	test.ExpectEquality(t, g.Pressed(), focusgrid.NoFocus)

	// drag moves the focus and release elsewhere does not select
	g.HandleEvent(semantic.Positional(semantic.PositionalSelect, 10, 10, 0))
	g.HandleEvent(semantic.Positional(semantic.PositionalDrag, 110, 10, 0))
	test.ExpectEquality(t, g.Focus(), 1)
	g.HandleEvent(semantic.Positional(semantic.PositionalDeselect, 110, 10, 0))
	test.ExpectFailure(t, g.Selected(0))
	test.ExpectFailure(t, g.Selected(1))

	// drag with no press does nothing
	g.HandleEvent(semantic.Positional(semantic.PositionalDrag, 10, 60, 0))
	test.ExpectEquality(t, g.Focus(), 1)
}

func TestMisc(t *testing.T) {
	g := focusgrid.NewGrid(0, -1)
	test.ExpectEquality(t, g.Len(), 1)

	send(g, semantic.GazeToggle, semantic.GazeDwellToggle, semantic.GazeDwellToggle)
	gaze, dwell := g.Gaze()
	test.ExpectSuccess(t, gaze)
	test.ExpectFailure(t, dwell)

	test.ExpectFailure(t, g.Quit())
	send(g, semantic.Quit)
	test.ExpectSuccess(t, g.Quit())
	test.ExpectEquality(t, g.Last().Type, semantic.Quit)
}
