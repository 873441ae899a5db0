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
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/userinput"
)

type playbackEntry struct {
	frame int
	event userinput.Event

	// the line in the recording file the playback event appears
	line int
}

// Playback delivers the events from a previously recorded file.
type Playback struct {
	// the profile named in the header of the recording
	Profile string

	sequence []playbackEntry
	seqCt    int

	// the last frame where an event occurs
	endFrame int
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%d/%d events", plb.seqCt, len(plb.sequence))
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(filename string) (*Playback, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < numHeaderLines || lines[lineMagic] != headerMagic {
		return nil, curated.Errorf(PlaybackError, "not a recording")
	}

	plb := &Playback{
		Profile: strings.TrimSpace(strings.TrimPrefix(lines[lineProfile], "#")),
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		toks := strings.Split(lines[i], fieldSep)

		frame, err := strconv.Atoi(toks[0])
		if err != nil || frame < plb.endFrame {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("invalid frame number at line %d", i+1))
		}

		ev, err := decode(toks[1:])
		if err != nil {
			return nil, curated.Errorf(PlaybackError, fmt.Errorf("line %d: %w", i+1, err))
		}

		plb.sequence = append(plb.sequence, playbackEntry{
			frame: frame,
			event: ev,
			line:  i + 1,
		})
		plb.endFrame = frame
	}

	return plb, nil
}

// EndFrame returns the last frame in which an event occurs.
func (plb *Playback) EndFrame() int {
	return plb.endFrame
}

// Finished returns true if every event has been played back.
func (plb *Playback) Finished() bool {
	return plb.seqCt >= len(plb.sequence)
}

// Events calls the function for every event recorded in the numbered frame.
// Frames must be played back in order. Events for earlier frames that were
// not collected are delivered first.
func (plb *Playback) Events(frame int, f func(userinput.Event)) {
	for plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].frame <= frame {
		f(plb.sequence[plb.seqCt].event)
		plb.seqCt++
	}
}
