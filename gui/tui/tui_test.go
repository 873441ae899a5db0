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

package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/gui/tui"
	"github.com/jetsetilly/totem/semantic"
	"github.com/jetsetilly/totem/terminput"
	"github.com/jetsetilly/totem/test"
	"github.com/jetsetilly/totem/userinput"
)

func background(sim tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, st, _ := sim.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return bg
}

func TestDraw(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	scr, err := tui.Open(sim)
	test.DemandSuccess(t, err)
	defer scr.Destroy()

	sim.SetSize(20, 10)
	test.ExpectEquality(t, scr.ID(), terminput.Window)

	g := focusgrid.NewGrid(2, 2)
	g.HandleEvent(semantic.New(semantic.FirstFocus))
	test.DemandSuccess(t, scr.Draw(g))

	w, h := g.Size()
	test.ExpectEquality(t, w, 20)
	test.ExpectEquality(t, h, 10)

	// the focused cell and the cell after it are drawn differently
	focused := background(sim, 0, 0)
	normal := background(sim, 10, 0)
	test.ExpectInequality(t, focused, normal)

	// the gap between cells uses the background
	gap := background(sim, 9, 0)
	test.ExpectInequality(t, gap, normal)
	test.ExpectInequality(t, gap, focused)
}

func TestEvents(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	scr, err := tui.Open(sim)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, sim.PostEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))

	// the simulation screen may deliver a resize event before the key
	var keys int
	for ev := range scr.Events() {
		if kev, ok := ev.(userinput.EventKeyboard); ok && kev.Key == userinput.KeyUp {
			test.ExpectEquality(t, kev.Down, keys == 0)
			keys++
		}
		if keys == 2 {
			break
		}
	}
	test.ExpectEquality(t, keys, 2)

	scr.Destroy()
}
