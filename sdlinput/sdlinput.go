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

package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/totem/userinput"
)

var specialKeys = map[sdl.Keycode]userinput.KeyCode{
	sdl.K_BACKSPACE: userinput.KeyBackspace,
	sdl.K_TAB:       userinput.KeyTab,
	sdl.K_RETURN:    userinput.KeyReturn,
	sdl.K_KP_ENTER:  userinput.KeyReturn,
	sdl.K_ESCAPE:    userinput.KeyEscape,
	sdl.K_SPACE:     userinput.KeySpace,
	sdl.K_DELETE:    userinput.KeyDelete,
	sdl.K_UP:        userinput.KeyUp,
	sdl.K_DOWN:      userinput.KeyDown,
	sdl.K_RIGHT:     userinput.KeyRight,
	sdl.K_LEFT:      userinput.KeyLeft,
	sdl.K_INSERT:    userinput.KeyInsert,
	sdl.K_HOME:      userinput.KeyHome,
	sdl.K_END:       userinput.KeyEnd,
	sdl.K_PAGEUP:    userinput.KeyPageUp,
	sdl.K_PAGEDOWN:  userinput.KeyPageDown,
	sdl.K_F1:        userinput.KeyF1,
	sdl.K_F2:        userinput.KeyF1 + 1,
	sdl.K_F3:        userinput.KeyF1 + 2,
	sdl.K_F4:        userinput.KeyF1 + 3,
	sdl.K_F5:        userinput.KeyF1 + 4,
	sdl.K_F6:        userinput.KeyF1 + 5,
	sdl.K_F7:        userinput.KeyF1 + 6,
	sdl.K_F8:        userinput.KeyF1 + 7,
	sdl.K_F9:        userinput.KeyF1 + 8,
	sdl.K_F10:       userinput.KeyF1 + 9,
	sdl.K_F11:       userinput.KeyF1 + 10,
	sdl.K_F12:       userinput.KeyF12,
}

// KeyCode converts an SDL keycode. The second return value is false if the
// key has no equivalent.
func KeyCode(sym sdl.Keycode) (userinput.KeyCode, bool) {
	if k, ok := specialKeys[sym]; ok {
		return k, true
	}
	if sym > sdl.K_SPACE && sym < sdl.K_DELETE {
		return userinput.KeyCode(sym), true
	}
	return 0, false
}

func mouseButton(b uint8) userinput.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return userinput.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight
	}
	return userinput.MouseButtonNone
}

// Translate converts an SDL event. The second return value is false if the
// event has no equivalent.
func Translate(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}, true

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return nil, false
		}
		k, ok := KeyCode(ev.Keysym.Sym)
		if !ok {
			return nil, false
		}
		return userinput.EventKeyboard{
			Key:    k,
			Down:   ev.Type == sdl.KEYDOWN,
			Window: userinput.WindowID(ev.WindowID),
		}, true

	case *sdl.MouseMotionEvent:
		return userinput.EventMouseMotion{
			X:      int(ev.X),
			Y:      int(ev.Y),
			Window: userinput.WindowID(ev.WindowID),
		}, true

	case *sdl.MouseButtonEvent:
		return userinput.EventMouseButton{
			Button: mouseButton(ev.Button),
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
			X:      int(ev.X),
			Y:      int(ev.Y),
			Window: userinput.WindowID(ev.WindowID),
		}, true

	case *sdl.WindowEvent:
		w := userinput.WindowID(ev.WindowID)
		switch ev.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return userinput.EventWindowResize{
				Width:  int(ev.Data1),
				Height: int(ev.Data2),
				Window: w,
			}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return userinput.EventWindowExpose{Window: w}, true
		case sdl.WINDOWEVENT_CLOSE:
			return userinput.EventWindowClose{Window: w}, true
		}
	}

	return nil, false
}

// Poll translates every pending SDL event and passes it to the supplied
// function. Events with no equivalent are discarded.
func Poll(f func(userinput.Event)) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if uev, ok := Translate(ev); ok {
			f(uev)
		}
	}
}
