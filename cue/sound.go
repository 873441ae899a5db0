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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/totem/curated"
)

// Sentinal error patterns.
const (
	DecodeError = "cue: decode: %s: %v"
	PlayerError = "cue: player: %v"
)

// Sound is mono 16 bit PCM data.
type Sound struct {
	SampleRate int
	Data       []int16
}

// Duration returns the playing time of the sound.
func (s *Sound) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(s.Data)) * time.Second / time.Duration(s.SampleRate)
}

// Resample returns the sound data at a different sample rate. No filtering
// is performed.
func (s *Sound) Resample(rate int) []int16 {
	if rate == s.SampleRate || s.SampleRate <= 0 || rate <= 0 {
		return s.Data
	}
	n := len(s.Data) * rate / s.SampleRate
	out := make([]int16, n)
	for i := range out {
		out[i] = s.Data[i*s.SampleRate/rate]
	}
	return out
}

// Decode the sound file. The format is determined by the file extension.
func Decode(filename string) (*Sound, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filename, err)
	}
	defer f.Close()

	var s *Sound
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		s, err = decodeWAV(f)
	case ".mp3":
		s, err = decodeMP3(f)
	default:
		err = errors.New("unsupported file type")
	}
	if err != nil {
		return nil, curated.Errorf(DecodeError, filename, err)
	}
	return s, nil
}

func decodeWAV(r io.ReadSeeker) (*Sound, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	return fromIntBuffer(buf), nil
}

// convert the first channel of the buffer to 16 bit samples
func fromIntBuffer(buf *audio.IntBuffer) *Sound {
	chans := 1
	s := &Sound{}
	if buf.Format != nil {
		chans = max(buf.Format.NumChannels, 1)
		s.SampleRate = buf.Format.SampleRate
	}

	s.Data = make([]int16, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		switch {
		case buf.SourceBitDepth == 8:
			// 8 bit wav data is unsigned
			v = (v - 128) << 8
		case buf.SourceBitDepth > 16:
			v >>= buf.SourceBitDepth - 16
		}
		s.Data = append(s.Data, int16(v))
	}

	return s
}

func decodeMP3(r io.Reader) (*Sound, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}

	s := &Sound{
		SampleRate: dec.SampleRate(),
	}

	// the decoded stream is always 16 bit little endian stereo. use the left
	// channel only
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			s.Data = append(s.Data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}
