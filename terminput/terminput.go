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

// Package terminput translates tcell terminal events into userinput events.
//
// Terminals do not report key releases. Every key press is translated into a
// key down event immediately followed by a key up event. With a trail time
// in the debounce settings this is enough for the press to be recognised,
// but keys held down in a terminal will not produce delay or repeat events.
package terminput

import (
	"github.com/gdamore/tcell/v2"

	"github.com/jetsetilly/totem/userinput"
)

// Window is the window ID given to all events from the terminal.
const Window userinput.WindowID = 1

var specialKeys = map[tcell.Key]userinput.KeyCode{
	tcell.KeyBackspace:  userinput.KeyBackspace,
	tcell.KeyBackspace2: userinput.KeyBackspace,
	tcell.KeyTab:        userinput.KeyTab,
	tcell.KeyEnter:      userinput.KeyReturn,
	tcell.KeyEscape:     userinput.KeyEscape,
	tcell.KeyDelete:     userinput.KeyDelete,
	tcell.KeyUp:         userinput.KeyUp,
	tcell.KeyDown:       userinput.KeyDown,
	tcell.KeyRight:      userinput.KeyRight,
	tcell.KeyLeft:       userinput.KeyLeft,
	tcell.KeyInsert:     userinput.KeyInsert,
	tcell.KeyHome:       userinput.KeyHome,
	tcell.KeyEnd:        userinput.KeyEnd,
	tcell.KeyPgUp:       userinput.KeyPageUp,
	tcell.KeyPgDn:       userinput.KeyPageDown,
	tcell.KeyF1:         userinput.KeyF1,
	tcell.KeyF2:         userinput.KeyF1 + 1,
	tcell.KeyF3:         userinput.KeyF1 + 2,
	tcell.KeyF4:         userinput.KeyF1 + 3,
	tcell.KeyF5:         userinput.KeyF1 + 4,
	tcell.KeyF6:         userinput.KeyF1 + 5,
	tcell.KeyF7:         userinput.KeyF1 + 6,
	tcell.KeyF8:         userinput.KeyF1 + 7,
	tcell.KeyF9:         userinput.KeyF1 + 8,
	tcell.KeyF10:        userinput.KeyF1 + 9,
	tcell.KeyF11:        userinput.KeyF1 + 10,
	tcell.KeyF12:        userinput.KeyF12,
}

// KeyCode converts a tcell key event. The second return value is false if
// the key has no equivalent.
func KeyCode(ev *tcell.EventKey) (userinput.KeyCode, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return userinput.KeySpace, true
		}
		if r > ' ' && r < 0x7f {
			return userinput.KeyCode(r), true
		}
		return 0, false
	}
	k, ok := specialKeys[ev.Key()]
	return k, ok
}

var buttons = []struct {
	mask   tcell.ButtonMask
	button userinput.MouseButton
}{
	{mask: tcell.ButtonPrimary, button: userinput.MouseButtonLeft},
	{mask: tcell.ButtonMiddle, button: userinput.MouseButtonMiddle},
	{mask: tcell.ButtonSecondary, button: userinput.MouseButtonRight},
}

// Translator converts tcell events. It should be used for all events from
// a single screen because mouse button state is tracked between events.
type Translator struct {
	buttons tcell.ButtonMask
	x, y    int
}

// Translate converts a single tcell event into zero or more userinput events.
// CTRL-C is translated into a quit event.
func (tr *Translator) Translate(ev tcell.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return []userinput.Event{userinput.EventQuit{}}
		}
		k, ok := KeyCode(ev)
		if !ok {
			return nil
		}
		return []userinput.Event{
			userinput.EventKeyboard{Key: k, Down: true, Window: Window},
			userinput.EventKeyboard{Key: k, Down: false, Window: Window},
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		return []userinput.Event{
			userinput.EventWindowResize{Width: w, Height: h, Window: Window},
		}

	case *tcell.EventMouse:
		var out []userinput.Event

		x, y := ev.Position()
		if x != tr.x || y != tr.y {
			tr.x = x
			tr.y = y
			out = append(out, userinput.EventMouseMotion{X: x, Y: y, Window: Window})
		}

		mask := ev.Buttons()
		for _, b := range buttons {
			was := tr.buttons&b.mask == b.mask
			is := mask&b.mask == b.mask
			if was != is {
				out = append(out, userinput.EventMouseButton{
					Button: b.button,
					Down:   is,
					X:      x,
					Y:      y,
					Window: Window,
				})
			}
		}
		tr.buttons = mask

		return out
	}

	return nil
}
