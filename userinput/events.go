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

package userinput

import "fmt"

// WindowID identifies the platform window an event originated in. The zero
// value is used by platforms that only have one window.
type WindowID uint32

// Event is the interface for all raw input events.
type Event interface {
	isEvent()
}

// EventQuit is sent when the platform is asking the application to end.
type EventQuit struct{}

func (EventQuit) isEvent() {}

func (EventQuit) String() string {
	return "quit"
}

// EventKeyboard is sent for key down and key up. Repeated key down events
// generated by the platform should not be forwarded because the pipeline
// synthesises repeats itself.
type EventKeyboard struct {
	Key    KeyCode
	Down   bool
	Window WindowID
}

func (EventKeyboard) isEvent() {}

func (ev EventKeyboard) String() string {
	if ev.Down {
		return fmt.Sprintf("key down %s", ev.Key)
	}
	return fmt.Sprintf("key up %s", ev.Key)
}

// EventMouseMotion is sent whenever the pointer moves.
type EventMouseMotion struct {
	X, Y   int
	Window WindowID
}

func (EventMouseMotion) isEvent() {}

func (ev EventMouseMotion) String() string {
	return fmt.Sprintf("mouse motion %d,%d", ev.X, ev.Y)
}

// MouseButton identifies a mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// EventMouseButton is sent for mouse button down and up.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   int
	Window WindowID
}

func (EventMouseButton) isEvent() {}

func (ev EventMouseButton) String() string {
	if ev.Down {
		return fmt.Sprintf("mouse button %d down at %d,%d", ev.Button, ev.X, ev.Y)
	}
	return fmt.Sprintf("mouse button %d up at %d,%d", ev.Button, ev.X, ev.Y)
}

// EventWindowResize is sent when the window changes size.
type EventWindowResize struct {
	Width, Height int
	Window        WindowID
}

func (EventWindowResize) isEvent() {}

func (ev EventWindowResize) String() string {
	return fmt.Sprintf("window resize %dx%d", ev.Width, ev.Height)
}

// EventWindowExpose is sent when the contents of the window need redrawing.
type EventWindowExpose struct {
	Window WindowID
}

func (EventWindowExpose) isEvent() {}

func (EventWindowExpose) String() string {
	return "window expose"
}

// EventWindowClose is sent when the user closes the window.
type EventWindowClose struct {
	Window WindowID
}

func (EventWindowClose) isEvent() {}

func (EventWindowClose) String() string {
	return "window close"
}

// WindowOf returns the window the event originated in. The second return
// value is false for events that do not belong to a window (EventQuit).
func WindowOf(ev Event) (WindowID, bool) {
	switch ev := ev.(type) {
	case EventKeyboard:
		return ev.Window, true
	case EventMouseMotion:
		return ev.Window, true
	case EventMouseButton:
		return ev.Window, true
	case EventWindowResize:
		return ev.Window, true
	case EventWindowExpose:
		return ev.Window, true
	case EventWindowClose:
		return ev.Window, true
	}
	return 0, false
}
