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

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyCode is the platform independent code for a key. Printable keys use the
// value of their (lower case) character. The navigation keys use the SDL 1.2
// numbering because that is what existing profiles refer to.
type KeyCode int

// List of named KeyCode values.
const (
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyReturn    KeyCode = 13
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyDelete    KeyCode = 127

	KeyUp       KeyCode = 273
	KeyDown     KeyCode = 274
	KeyRight    KeyCode = 275
	KeyLeft     KeyCode = 276
	KeyInsert   KeyCode = 277
	KeyHome     KeyCode = 278
	KeyEnd      KeyCode = 279
	KeyPageUp   KeyCode = 280
	KeyPageDown KeyCode = 281

	KeyF1  KeyCode = 282
	KeyF12 KeyCode = 293

	// switch box inputs. see serialswitch package
	KeySwitch1 KeyCode = 1024
	KeySwitch8 KeyCode = 1031
)

var keyNames = map[KeyCode]string{
	KeyBackspace: "Backspace",
	KeyTab:       "Tab",
	KeyReturn:    "Return",
	KeyEscape:    "Escape",
	KeySpace:     "Space",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
}

func (k KeyCode) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if k >= KeySwitch1 && k <= KeySwitch8 {
		return fmt.Sprintf("Switch%d", k-KeySwitch1+1)
	}
	if k > KeySpace && k < KeyDelete {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKeyCode converts a string to a KeyCode. The string can be a decimal
// number, the name of a key as returned by the String() function (case
// insensitive) or a single printable character.
func ParseKeyCode(s string) (KeyCode, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return KeyCode(n), true
	}

	for k, n := range keyNames {
		if strings.EqualFold(n, s) {
			return k, true
		}
	}

	u := strings.ToUpper(s)
	if strings.HasPrefix(u, "F") {
		if n, err := strconv.Atoi(u[1:]); err == nil && n >= 1 && n <= 12 {
			return KeyF1 + KeyCode(n-1), true
		}
	}
	if strings.HasPrefix(u, "SWITCH") {
		if n, err := strconv.Atoi(u[6:]); err == nil && n >= 1 && n <= 8 {
			return KeySwitch1 + KeyCode(n-1), true
		}
	}

	r := []rune(s)
	if len(r) == 1 && r[0] > rune(KeySpace) && r[0] < rune(KeyDelete) {
		return KeyCode(r[0]), true
	}

	return 0, false
}
