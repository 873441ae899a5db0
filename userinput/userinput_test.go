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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/totem/test"
	"github.com/jetsetilly/totem/userinput"
)

func TestKeyCodeNames(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyUp.String(), "Up")
	test.ExpectEquality(t, userinput.KeyCode(97).String(), "a")
	test.ExpectEquality(t, (userinput.KeyF1 + 4).String(), "F5")
	test.ExpectEquality(t, userinput.KeySwitch1.String(), "Switch1")
	test.ExpectEquality(t, userinput.KeyCode(5000).String(), "Key(5000)")
}

func TestParseKeyCode(t *testing.T) {
	k, ok := userinput.ParseKeyCode("273")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, userinput.KeyUp)

	k, ok = userinput.ParseKeyCode("pagedown")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, userinput.KeyPageDown)

	k, ok = userinput.ParseKeyCode("f12")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, userinput.KeyF12)

	k, ok = userinput.ParseKeyCode("switch2")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, userinput.KeySwitch1+1)

	k, ok = userinput.ParseKeyCode("q")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, userinput.KeyCode('q'))

	_, ok = userinput.ParseKeyCode("")
	test.ExpectFailure(t, ok)
	_, ok = userinput.ParseKeyCode("not a key")
	test.ExpectFailure(t, ok)
}

func TestWindowOf(t *testing.T) {
	w, ok := userinput.WindowOf(userinput.EventKeyboard{Key: userinput.KeyUp, Window: 3})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, userinput.WindowID(3))

	w, ok = userinput.WindowOf(userinput.EventWindowClose{Window: 7})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, userinput.WindowID(7))

	_, ok = userinput.WindowOf(userinput.EventQuit{})
	test.ExpectFailure(t, ok)
}
