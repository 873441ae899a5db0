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

package main

import (
	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/gui/sdlgl"
	"github.com/jetsetilly/totem/gui/tui"
	"github.com/jetsetilly/totem/sdlinput"
	"github.com/jetsetilly/totem/serialswitch"
	"github.com/jetsetilly/totem/userinput"
)

// sdlFrontend draws the grid in an SDL window. MUST ONLY be used from the
// main thread.
type sdlFrontend struct {
	wnd *sdlgl.Window
}

func (fe *sdlFrontend) windows() []userinput.WindowID {
	return []userinput.WindowID{fe.wnd.ID()}
}

func (fe *sdlFrontend) poll(f func(userinput.Event)) {
	sdlinput.Poll(f)
}

func (fe *sdlFrontend) draw(g *focusgrid.Grid) error {
	return fe.wnd.Draw(g)
}

func (fe *sdlFrontend) destroy() {
	fe.wnd.Destroy()
}

// drain every pending event from the channel without blocking. a closed
// channel is reported as a quit event
func drain(ch <-chan userinput.Event, f func(userinput.Event)) {
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				f(userinput.EventQuit{})
				return
			}
			f(ev)
		default:
			return
		}
	}
}

// termFrontend draws the grid in the terminal. events from a serial switch
// box are also accepted if a device has been opened.
type termFrontend struct {
	scr *tui.Screen
	sw  *serialswitch.Switch
}

func (fe *termFrontend) windows() []userinput.WindowID {
	if fe.sw != nil {
		return []userinput.WindowID{fe.scr.ID(), serialswitch.Window}
	}
	return []userinput.WindowID{fe.scr.ID()}
}

func (fe *termFrontend) poll(f func(userinput.Event)) {
	drain(fe.scr.Events(), f)
	if fe.sw != nil {
		drain(fe.sw.Events(), f)
	}
}

func (fe *termFrontend) draw(g *focusgrid.Grid) error {
	return fe.scr.Draw(g)
}

func (fe *termFrontend) destroy() {
	if fe.sw != nil {
		fe.sw.Close()
	}
	fe.scr.Destroy()
}
