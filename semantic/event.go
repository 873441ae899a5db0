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

package semantic

import (
	"fmt"

	"github.com/jetsetilly/totem/userinput"
)

// Event is a single semantic event. Only the fields relevant to the Type are
// populated: X and Y for positional events, Width and Height for
// WindowResize.
type Event struct {
	Type EventType

	X, Y          int
	Width, Height int

	// the window the raw input originated in. zero for events that were
	// generated internally (by the scanner for example)
	Window userinput.WindowID
}

// New is a convenience function for creating an Event with no payload.
func New(t EventType) Event {
	return Event{Type: t}
}

// Positional creates an Event for one of the positional types.
func Positional(t EventType, x, y int, w userinput.WindowID) Event {
	return Event{Type: t, X: x, Y: y, Window: w}
}

// Resize creates a WindowResize event.
func Resize(width, height int, w userinput.WindowID) Event {
	return Event{Type: WindowResize, Width: width, Height: height, Window: w}
}

func (ev Event) String() string {
	switch {
	case ev.Type.IsPositional():
		return fmt.Sprintf("%s (%d,%d)", ev.Type, ev.X, ev.Y)
	case ev.Type == WindowResize:
		return fmt.Sprintf("%s (%dx%d)", ev.Type, ev.Width, ev.Height)
	}
	return ev.Type.String()
}
