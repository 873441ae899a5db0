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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/userinput"
)

// Sentinal error patterns.
const (
	RecordingError = "recording: %v"
	PlaybackError  = "playback: %v"
)

// Recorder writes raw input events to a file.
type Recorder struct {
	f *os.File
	w *bufio.Writer
}

// NewRecorder creates the recording file. The profile is the name of the
// profile the session is using and is written to the header.
func NewRecorder(filename string, profile string) (*Recorder, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	rec := &Recorder{
		f: f,
		w: bufio.NewWriter(f),
	}

	lines := make([]string, numHeaderLines)
	lines[lineMagic] = headerMagic
	lines[lineProfile] = fmt.Sprintf("# %s", profile)

	if _, err := rec.w.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		f.Close()
		return nil, curated.Errorf(RecordingError, err)
	}

	return rec, nil
}

// Record the event as occurring in the numbered frame.
func (rec *Recorder) Record(frame int, ev userinput.Event) error {
	toks, err := encode(ev)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	line := strconv.Itoa(frame) + fieldSep + strings.Join(toks, fieldSep) + "\n"
	if _, err := rec.w.WriteString(line); err != nil {
		return curated.Errorf(RecordingError, err)
	}
	return nil
}

// End the recording and close the file.
func (rec *Recorder) End() error {
	err := rec.w.Flush()
	if cerr := rec.f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	return nil
}
