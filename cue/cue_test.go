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

package cue_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/totem/cue"
	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/profile"
	"github.com/jetsetilly/totem/semantic"
	"github.com/jetsetilly/totem/test"
)

// writeWAV creates a stereo 16 bit wav file. the left channel counts up and
// the right channel is constant
func writeWAV(t *testing.T, filename string, rate int, frames int) {
	t.Helper()

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           make([]int, frames*2),
	}
	for i := 0; i < frames; i++ {
		buf.Data[i*2] = i * 100
		buf.Data[i*2+1] = -1
	}

	enc := wav.NewEncoder(f, rate, 16, 2, 1)
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestDecodeWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tick.wav")
	writeWAV(t, fn, 8000, 80)

	s, err := cue.Decode(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.SampleRate, 8000)
	test.DemandEquality(t, len(s.Data), 80)
	test.ExpectEquality(t, s.Data[0], int16(0))
	test.ExpectEquality(t, s.Data[79], int16(7900))
	test.ExpectEquality(t, s.Duration(), 10*time.Millisecond)
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := cue.Decode(filepath.Join(dir, "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, cue.DecodeError))

	fn := filepath.Join(dir, "sound.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("OggS"), 0o600))
	_, err = cue.Decode(fn)
	test.ExpectSuccess(t, curated.Is(err, cue.DecodeError))

	fn = filepath.Join(dir, "bad.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("this is not a wav file"), 0o600))
	_, err = cue.Decode(fn)
	test.ExpectSuccess(t, curated.Is(err, cue.DecodeError))

	fn = filepath.Join(dir, "bad.mp3")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 64), 0o600))
	_, err = cue.Decode(fn)
	test.ExpectSuccess(t, curated.Is(err, cue.DecodeError))
}

func TestResample(t *testing.T) {
	s := &cue.Sound{SampleRate: 100, Data: []int16{1, 2, 3, 4}}
	test.ExpectEquality(t, len(s.Resample(100)), 4)

	up := s.Resample(200)
	test.DemandEquality(t, len(up), 8)
	test.ExpectEquality(t, up[0], int16(1))
	test.ExpectEquality(t, up[1], int16(1))
	test.ExpectEquality(t, up[7], int16(4))

	down := s.Resample(50)
	test.DemandEquality(t, len(down), 2)
	test.ExpectEquality(t, down[1], int16(3))
}

type player struct {
	played []*cue.Sound
}

func (p *player) Play(s *cue.Sound) error {
	p.played = append(p.played, s)
	return nil
}

type target struct {
	events []semantic.EventType
}

func (t *target) HandleEvent(ev semantic.Event) {
	t.events = append(t.events, ev.Type)
}

func TestLoadAndCueing(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "tick.wav"), 8000, 8)

	prf, err := profile.Parse([]byte(`
[[cue]]
event = "ScanNextFocus"
file = "tick.wav"

[[cue]]
event = "NotAnEvent"
file = "tick.wav"

[[cue]]
event = "ScanSelectFocus"
file = "missing.wav"

[[cue]]
event = "ScanHighlightFocus"
`))
	test.DemandSuccess(t, err)

	cues, err := cue.Load(prf, dir)
	test.ExpectSuccess(t, curated.Is(err, cue.DecodeError))
	test.DemandEquality(t, len(cues), 1)

	p := &player{}
	tgt := &target{}
	c := cue.NewCueing(tgt, cues, p)

	c.HandleEvent(semantic.New(semantic.ScanNextFocus))
	c.HandleEvent(semantic.New(semantic.ScanSelectFocus))
	test.ExpectEquality(t, len(p.played), 1)
	test.ExpectEquality(t, len(tgt.events), 2)

	// no next target and no player
	c = cue.NewCueing(nil, cues, nil)
	c.HandleEvent(semantic.New(semantic.ScanNextFocus))
}
