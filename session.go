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
	"time"

	"github.com/jetsetilly/totem/cue"
	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/keyinput"
	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/profile"
	"github.com/jetsetilly/totem/recorder"
	"github.com/jetsetilly/totem/userinput"
)

// frontend is the source of raw input events and the surface on which the
// focus grid is drawn.
type frontend interface {
	// the windows that events will originate from
	windows() []userinput.WindowID

	// poll calls the function for every pending event. it should not block
	poll(f func(userinput.Event))

	draw(g *focusgrid.Grid) error
	destroy()
}

// session ties the input pipeline to a focus grid. the pipeline is rebuilt
// whenever the profile is reloaded.
type session struct {
	filename  string
	overrides profile.Overrides

	grid   *focusgrid.Grid
	player cue.Player

	// the target for all events. events are passed through the cueing
	// decorator to the grid
	target   keyinput.Target
	activity *keyinput.Activity

	// the number of frames since the session started
	frame int

	// raw input events are written to the recorder if it is not nil. if
	// playback is not nil then events come from the playback and live input
	// is ignored, except for quit events
	rec *recorder.Recorder
	plb *recorder.Playback
}

func newSession(filename string, ov profile.Overrides, grid *focusgrid.Grid, player cue.Player) *session {
	return &session{
		filename:  filename,
		overrides: ov,
		grid:      grid,
		player:    player,
	}
}

// build a new pipeline from the profile. the profile can be nil
func (s *session) build(prf *profile.Node, fe frontend) {
	var cues cue.Cues
	if prf != nil && s.player != nil {
		var err error
		cues, err = cue.Load(prf, filepath.Dir(s.filename))
		if err != nil {
			logger.Log(logger.Allow, "totem", err)
		}
	}

	s.target = cue.NewCueing(s.grid, cues, s.player)

	// a nil *profile.Node must not be passed to NewController as a non-nil
	// interface
	var ctrl *keyinput.Controller
	if prf == nil {
		ctrl = keyinput.NewController(nil, s.target)
	} else {
		ctrl = keyinput.NewController(prf, s.target)
	}

	s.activity = keyinput.NewActivity(ctrl)
	for _, id := range fe.windows() {
		s.activity.AddWindow(id, s.target)
	}
}

// tick drains the events from the frontend and advances the pipeline. returns
// false if the session should end
func (s *session) tick(fe frontend, dt time.Duration) bool {
	defer func() {
		s.frame++
	}()

	quit := false
	deliver := func(ev userinput.Event) {
		if s.rec != nil {
			if err := s.rec.Record(s.frame, ev); err != nil {
				logger.Log(logger.Allow, "totem", err)
			}
		}
		if _, ok := ev.(userinput.EventQuit); ok {
			quit = true
			return
		}
		s.activity.IssueEvent(ev)
	}

	if s.plb != nil {
		fe.poll(func(ev userinput.Event) {
			if _, ok := ev.(userinput.EventQuit); ok {
				quit = true
			}
		})
		if !quit {
			s.plb.Events(s.frame, deliver)
		}
	} else {
		fe.poll(deliver)
	}

	if quit {
		return false
	}

	s.activity.Update(dt)

	if s.plb != nil && s.plb.Finished() {
		logger.Logf(logger.Allow, "totem", "playback finished at frame %d", s.frame)
		return false
	}

	return !s.grid.Quit()
}

// run the session until the grid receives a quit event, the frontend is
// closed or an interrupt signal is received
func (s *session) run(fe frontend, wait func() time.Duration, watch bool, intChan <-chan os.Signal) error {
	prf, err := profile.Load(s.filename)
	if err != nil {
		return err
	}
	if err := prf.Apply(s.overrides); err != nil {
		logger.Log(logger.Allow, "totem", err)
	}
	s.build(prf, fe)

	var reloaded <-chan *profile.Node
	if watch {
		w, err := profile.Watch(s.filename, s.overrides)
		if err != nil {
			return err
		}
		defer w.Close()
		reloaded = w.Reloaded()
	}

	for {
		dt := wait()

		select {
		case <-intChan:
			return nil
		case prf, ok := <-reloaded:
			if ok {
				logger.Logf(logger.Allow, "totem", "reloaded %s", s.filename)
				s.build(prf, fe)
			} else {
				reloaded = nil
			}
		default:
		}

		if !s.tick(fe, dt) {
			return nil
		}

		if err := fe.draw(s.grid); err != nil {
			return err
		}
	}
}
