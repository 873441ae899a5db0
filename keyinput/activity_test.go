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

package keyinput_test

import (
	"testing"

	"github.com/jetsetilly/totem/keyinput"
	"github.com/jetsetilly/totem/profile"
	"github.com/jetsetilly/totem/semantic"
	"github.com/jetsetilly/totem/test"
	"github.com/jetsetilly/totem/userinput"
)

func TestActivity(t *testing.T) {
	main := &recorder{}
	tools := &recorder{}

	a := keyinput.NewActivity(keyinput.NewController(parse(t, navigation), nil))
	a.AddWindow(1, main)
	a.AddWindow(2, tools)

	// no window has had an event yet so the first window added is the target
	a.Update(10 * ms)
	a.IssueEvent(userinput.EventQuit{})
	main.expect(t, semantic.Quit)
	tools.expect(t)

	// debounced events go to the window of the most recent raw event
	a.IssueEvent(userinput.EventKeyboard{Key: userinput.KeyUp, Down: true, Window: 2})
	a.Update(10 * ms)
	tools.expect(t, semantic.FirstFocus)

	a.IssueEvent(userinput.EventMouseMotion{X: 1, Y: 1, Window: 1})
	main.expect(t, semantic.PositionalDrag)

	a.IssueEvent(userinput.EventKeyboard{Key: userinput.KeyUp, Down: false, Window: 1})
	a.Update(10 * ms)
	a.Update(10 * ms)
	a.IssueEvent(userinput.EventKeyboard{Key: userinput.KeyDown, Down: true, Window: 1})
	a.Update(10 * ms)
	main.expect(t, semantic.NextFocusDown)
	tools.expect(t)

	// events from unknown windows are dropped
	a.IssueEvent(userinput.EventMouseMotion{X: 1, Y: 1, Window: 99})
	main.expect(t)
	tools.expect(t)

	// removing the current window resets the controller. the held key
	// doesn't produce a release event anywhere
	a.RemoveWindow(1)
	a.Update(10 * ms)
	a.IssueEvent(userinput.EventMouseMotion{X: 1, Y: 1, Window: 1})
	main.expect(t)

	a.IssueEvent(userinput.EventKeyboard{Key: userinput.KeyDown, Down: false, Window: 2})
	a.Update(10 * ms)
	tools.expect(t)
}

func TestActivityBeforeWindowEvents(t *testing.T) {
	prf := parse(t, scanning)
	test.DemandSuccess(t, prf.Apply(profile.ParseOverrides("keyinput.autofirstselect::true")))

	w := &recorder{}
	a := keyinput.NewActivity(keyinput.NewController(prf, nil))
	a.AddWindow(1, w)

	// the window receives the bootstrap events without having produced a
	// raw event of its own
	a.Update(10 * ms)
	w.expect(t, semantic.FirstFocus, semantic.ScanFirstFocus)
	a.Update(10 * ms)
	w.expect(t)

	a.IssueEvent(userinput.EventMouseMotion{X: 1, Y: 1, Window: 1})
	w.expect(t, semantic.PositionalDrag)
}

func TestActivityNoWindows(t *testing.T) {
	prf := parse(t, scanning)
	test.DemandSuccess(t, prf.Apply(profile.ParseOverrides("keyinput.autofirstselect::true")))

	a := keyinput.NewActivity(keyinput.NewController(prf, nil))

	// nothing to deliver to. the bootstrap events are held back until there
	// is a window
	for range 150 {
		a.Update(10 * ms)
	}

	w := &recorder{}
	a.AddWindow(1, w)
	a.Update(10 * ms)
	w.expect(t, semantic.FirstFocus, semantic.ScanFirstFocus)

	// the scan period starts from the bootstrap, not from the first Update
	a.Update(500 * ms)
	w.expect(t)
	a.Update(500 * ms)
	w.expect(t, semantic.ScanNextFocus)
}

func TestActivityRemoveLastWindow(t *testing.T) {
	w1 := &recorder{}
	w2 := &recorder{}
	a := keyinput.NewActivity(keyinput.NewController(parse(t, navigation), nil))
	a.AddWindow(1, w1)
	a.RemoveWindow(1)

	// a window added after the current window is removed becomes current
	a.AddWindow(2, w2)
	a.IssueEvent(userinput.EventQuit{})
	w1.expect(t)
	w2.expect(t, semantic.Quit)
}
