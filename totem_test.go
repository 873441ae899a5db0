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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/profile"
	"github.com/jetsetilly/totem/recorder"
	"github.com/jetsetilly/totem/test"
	"github.com/jetsetilly/totem/userinput"
)

const testProfile = `
[keyinput]
enablekeys = true

[keyinput.debounce]
trailTime = 0
suppressionTime = 0
delayTime = 10

[[keyinput.map]]
  [[keyinput.map.key]]
  code = "Right"
  pressEvent = "NextFocus_Right"
  [[keyinput.map.key]]
  code = "Escape"
  pressEvent = "Quit"
`

func writeProfile(t *testing.T, s string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "profile.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(s), 0o600))
	return fn
}

// frontend that delivers a list of events for every frame
type fakeFrontend struct {
	frames [][]userinput.Event
	frame  int
	drawn  int
}

func (fe *fakeFrontend) windows() []userinput.WindowID {
	return []userinput.WindowID{0}
}

func (fe *fakeFrontend) poll(f func(userinput.Event)) {
	if fe.frame >= len(fe.frames) {
		f(userinput.EventQuit{})
		return
	}
	for _, ev := range fe.frames[fe.frame] {
		f(ev)
	}
	fe.frame++
}

func (fe *fakeFrontend) draw(g *focusgrid.Grid) error {
	fe.drawn++
	return nil
}

func (fe *fakeFrontend) destroy() {}

func frameTime() time.Duration {
	return 16 * time.Millisecond
}

func TestSession(t *testing.T) {
	fn := writeProfile(t, testProfile)

	right := func(down bool) userinput.Event {
		return userinput.EventKeyboard{Key: userinput.KeyRight, Down: down}
	}

	fe := &fakeFrontend{
		frames: [][]userinput.Event{
			{right(true)},
			{right(false)},
			{},
			{right(true)},
			{right(false)},
		},
	}

	grid := focusgrid.NewGrid(3, 1)
	s := newSession(fn, nil, grid, nil)
	test.DemandSuccess(t, s.run(fe, frameTime, false, nil))

	// the first navigation event is replaced by FirstFocus
	test.ExpectEquality(t, grid.Focus(), 1)
	test.ExpectEquality(t, fe.drawn, 5)
	test.ExpectFailure(t, grid.Quit())
}

func TestSessionQuitEvent(t *testing.T) {
	fn := writeProfile(t, testProfile)

	fe := &fakeFrontend{
		frames: [][]userinput.Event{
			{userinput.EventKeyboard{Key: userinput.KeyEscape, Down: true}},
			{},
			{},
		},
	}

	grid := focusgrid.NewGrid(3, 1)
	s := newSession(fn, nil, grid, nil)
	test.DemandSuccess(t, s.run(fe, frameTime, false, nil))

	// the session ends in the frame the grid receives the quit event
	test.ExpectSuccess(t, grid.Quit())
	test.ExpectEquality(t, fe.frame, 1)
	test.ExpectEquality(t, fe.drawn, 0)
}

func TestSessionOverrides(t *testing.T) {
	fn := writeProfile(t, testProfile)

	fe := &fakeFrontend{
		frames: [][]userinput.Event{
			{userinput.EventKeyboard{Key: userinput.KeyRight, Down: true}},
		},
	}

	// keyboard input disabled from the command line
	grid := focusgrid.NewGrid(3, 1)
	s := newSession(fn, profile.ParseOverrides("keyinput.enablekeys::false"), grid, nil)
	test.DemandSuccess(t, s.run(fe, frameTime, false, nil))
	test.ExpectEquality(t, grid.Focus(), focusgrid.NoFocus)
}

func TestSessionNoProfile(t *testing.T) {
	grid := focusgrid.NewGrid(3, 1)
	s := newSession(filepath.Join(t.TempDir(), "missing.toml"), nil, grid, nil)
	test.ExpectFailure(t, s.run(&fakeFrontend{}, frameTime, false, nil))
}

func TestInterrupt(t *testing.T) {
	fn := writeProfile(t, testProfile)

	intChan := make(chan os.Signal, 1)
	intChan <- os.Interrupt

	fe := &fakeFrontend{
		frames: [][]userinput.Event{{}, {}},
	}
	s := newSession(fn, nil, focusgrid.NewGrid(1, 1), nil)
	test.DemandSuccess(t, s.run(fe, frameTime, false, intChan))
	test.ExpectEquality(t, fe.frame, 0)
}

func TestDrain(t *testing.T) {
	ch := make(chan userinput.Event, 4)
	ch <- userinput.EventWindowExpose{}
	ch <- userinput.EventWindowExpose{}

	var n int
	drain(ch, func(ev userinput.Event) {
		n++
	})
	test.ExpectEquality(t, n, 2)

	close(ch)
	var quit bool
	drain(ch, func(ev userinput.Event) {
		_, quit = ev.(userinput.EventQuit)
	})
	test.ExpectSuccess(t, quit)
}

func TestLaunchHelp(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-help"}, tw, nil), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: RUN, TERM, SWITCH, CHECK"))
}

func TestLaunchError(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-nothing"}, tw, nil), 10)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "* error:"))

	tw.Clear()
	test.ExpectEquality(t, launch([]string{"check"}, tw, nil), 20)
	test.ExpectSuccess(t, tw.Compare("* error in CHECK mode: profile required for CHECK mode\n"))
}

func TestCheck(t *testing.T) {
	fn := writeProfile(t, testProfile)
	dot := filepath.Join(t.TempDir(), "controller.dot")

	tw := &test.Writer{}
	r := launch([]string{"-prefs", "keyinput.shareinputs::true", "CHECK", "-dump", "-memviz", dot, fn}, tw, nil)
	test.DemandEquality(t, r, 0)

	out := tw.String()
	test.ExpectSuccess(t, strings.Contains(out, "keys enabled: yes"))
	test.ExpectSuccess(t, strings.Contains(out, "share inputs: yes"))
	test.ExpectSuccess(t, strings.Contains(out, "key 275 (Right)"))

	// the dumped profile can be parsed again
	i := strings.Index(out, "keys enabled")
	test.DemandSuccess(t, i > 0)
	prf, err := profile.Parse([]byte(out[:i]))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, prf.Flag("keyinput.shareinputs"))

	info, err := os.Stat(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 0)
}

func TestLaunchVersion(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectEquality(t, launch([]string{"-version"}, tw, nil), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Totem "))
}

func TestRecordPlayback(t *testing.T) {
	fn := writeProfile(t, testProfile)
	recfn := filepath.Join(t.TempDir(), "session.rec")

	right := func(down bool) userinput.Event {
		return userinput.EventKeyboard{Key: userinput.KeyRight, Down: down}
	}

	fe := &fakeFrontend{
		frames: [][]userinput.Event{
			{right(true)},
			{right(false)},
			{},
			{right(true)},
			{right(false)},
		},
	}

	grid := focusgrid.NewGrid(3, 1)
	s := newSession(fn, nil, grid, nil)

	var err error
	s.rec, err = recorder.NewRecorder(recfn, fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.run(fe, frameTime, false, nil))
	test.DemandSuccess(t, s.rec.End())
	test.ExpectEquality(t, grid.Focus(), 1)

	// playback of the recording gives the same result. live input is
	// ignored
	live := &fakeFrontend{
		frames: [][]userinput.Event{
			{userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true}},
		},
	}
	for range 10 {
		live.frames = append(live.frames, nil)
	}

	grid = focusgrid.NewGrid(3, 1)
	s = newSession(fn, nil, grid, nil)
	s.plb, err = recorder.NewPlayback(recfn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.run(live, frameTime, false, nil))
	test.ExpectEquality(t, grid.Focus(), 1)
	test.ExpectEquality(t, grid.Pressed(), focusgrid.NoFocus)
}
