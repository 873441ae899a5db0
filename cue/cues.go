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

package cue

import (
	"path/filepath"

	"github.com/jetsetilly/totem/keyinput"
	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/profile"
	"github.com/jetsetilly/totem/semantic"
)

const logTag = "cue"

// Cues is the sound for each event type.
type Cues map[semantic.EventType]*Sound

// Load the sound files named in the cue section of the profile. Relative
// filenames are relative to dir.
//
// Entries with an unknown event type are skipped. A file that cannot be
// decoded is also skipped and the first such error is returned, along with
// every cue that could be loaded.
func Load(prf profile.Profile, dir string) (Cues, error) {
	cues := make(Cues)
	var first error

	for i, c := range prf.Groups("cue") {
		name, _ := c.String("event")
		t := semantic.Parse(name)
		if t == semantic.Invalid {
			logger.Logf(logger.Allow, logTag, "cue %d: unknown event type: %s", i, name)
			continue
		}

		fn, ok := c.String("file")
		if !ok {
			logger.Logf(logger.Allow, logTag, "cue %d: no file", i)
			continue
		}
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(dir, fn)
		}

		s, err := Decode(fn)
		if err != nil {
			logger.Log(logger.Allow, logTag, err)
			if first == nil {
				first = err
			}
			continue
		}

		logger.Logf(logger.Allow, logTag, "%s: %s (%v)", t, fn, s.Duration())
		cues[t] = s
	}

	return cues, first
}

// Player is the interface for sound output.
type Player interface {
	Play(s *Sound) error
}

// Cueing is a keyinput.Target that plays the cue for an event before passing
// the event to the next target.
type Cueing struct {
	next   keyinput.Target
	cues   Cues
	player Player
}

// NewCueing is the preferred method of initialisation for the Cueing type.
func NewCueing(next keyinput.Target, cues Cues, player Player) *Cueing {
	return &Cueing{
		next:   next,
		cues:   cues,
		player: player,
	}
}

// HandleEvent implements the keyinput.Target interface.
func (c *Cueing) HandleEvent(ev semantic.Event) {
	if s, ok := c.cues[ev.Type]; ok && c.player != nil {
		if err := c.player.Play(s); err != nil {
			logger.Log(logger.Allow, logTag, err)
		}
	}
	if c.next != nil {
		c.next.HandleEvent(ev)
	}
}
