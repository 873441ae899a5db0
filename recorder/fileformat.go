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

package recorder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/totem/userinput"
)

const fieldSep = ", "

// playback file header format
// ---------------------------
//
// # totem recording
// # <profile filename>

const headerMagic = "# totem recording"

const (
	lineMagic int = iota
	lineProfile
	numHeaderLines
)

func down(b bool) string {
	if b {
		return "down"
	}
	return "up"
}

// encode the event as a list of fields. the first field is the kind of event
func encode(ev userinput.Event) ([]string, error) {
	itoa := strconv.Itoa
	win := func(w userinput.WindowID) string {
		return strconv.FormatUint(uint64(w), 10)
	}

	switch ev := ev.(type) {
	case userinput.EventQuit:
		return []string{"quit"}, nil
	case userinput.EventKeyboard:
		return []string{"key", itoa(int(ev.Key)), down(ev.Down), win(ev.Window)}, nil
	case userinput.EventMouseMotion:
		return []string{"motion", itoa(ev.X), itoa(ev.Y), win(ev.Window)}, nil
	case userinput.EventMouseButton:
		return []string{"button", itoa(int(ev.Button)), down(ev.Down), itoa(ev.X), itoa(ev.Y), win(ev.Window)}, nil
	case userinput.EventWindowResize:
		return []string{"resize", itoa(ev.Width), itoa(ev.Height), win(ev.Window)}, nil
	case userinput.EventWindowExpose:
		return []string{"expose", win(ev.Window)}, nil
	case userinput.EventWindowClose:
		return []string{"close", win(ev.Window)}, nil
	}
	return nil, fmt.Errorf("unsupported event type %T", ev)
}

// the number of fields for each kind of event, not including the kind
var numFields = map[string]int{
	"quit":   0,
	"key":    3,
	"motion": 3,
	"button": 5,
	"resize": 3,
	"expose": 1,
	"close":  1,
}

// decode the list of fields created by encode()
func decode(toks []string) (userinput.Event, error) {
	if len(toks) == 0 {
		return nil, fmt.Errorf("no event")
	}

	kind := toks[0]
	n, ok := numFields[kind]
	if !ok {
		return nil, fmt.Errorf("unknown event kind %q", kind)
	}
	if len(toks)-1 != n {
		return nil, fmt.Errorf("expected %d fields for %s event", n, kind)
	}

	var err error
	num := func(s string) int {
		v, e := strconv.Atoi(strings.TrimSpace(s))
		if e != nil && err == nil {
			err = e
		}
		return v
	}
	isDown := func(s string) bool {
		switch s {
		case "down":
			return true
		case "up":
			return false
		}
		if err == nil {
			err = fmt.Errorf("expected down or up: %q", s)
		}
		return false
	}
	win := func(s string) userinput.WindowID {
		v, e := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if e != nil && err == nil {
			err = e
		}
		return userinput.WindowID(v)
	}

	var ev userinput.Event
	switch kind {
	case "quit":
		ev = userinput.EventQuit{}
	case "key":
		ev = userinput.EventKeyboard{Key: userinput.KeyCode(num(toks[1])), Down: isDown(toks[2]), Window: win(toks[3])}
	case "motion":
		ev = userinput.EventMouseMotion{X: num(toks[1]), Y: num(toks[2]), Window: win(toks[3])}
	case "button":
		ev = userinput.EventMouseButton{Button: userinput.MouseButton(num(toks[1])), Down: isDown(toks[2]),
			X: num(toks[3]), Y: num(toks[4]), Window: win(toks[5])}
	case "resize":
		ev = userinput.EventWindowResize{Width: num(toks[1]), Height: num(toks[2]), Window: win(toks[3])}
	case "expose":
		ev = userinput.EventWindowExpose{Window: win(toks[1])}
	case "close":
		ev = userinput.EventWindowClose{Window: win(toks[1])}
	}

	if err != nil {
		return nil, err
	}
	return ev, nil
}
