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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/totem/curated"
)

// the number of samples in the device buffer. this only affects latency
const bufferLength = 512

const sampleRate = 44100

// SDLPlayer plays sounds with SDL. Playing a sound interrupts any sound
// that is still playing.
type SDLPlayer struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
}

// NewSDLPlayer is the preferred method of initialisation for the SDLPlayer
// type.
func NewSDLPlayer() (*SDLPlayer, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(PlayerError, err)
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	ply := &SDLPlayer{}

	var err error
	ply.id, err = sdl.OpenAudioDevice("", false, spec, &ply.spec, 0)
	if err != nil {
		return nil, curated.Errorf(PlayerError, err)
	}

	sdl.PauseAudioDevice(ply.id, false)

	return ply, nil
}

// Play implements the Player interface.
func (ply *SDLPlayer) Play(s *Sound) error {
	data := s.Resample(int(ply.spec.Freq))

	b := make([]byte, len(data)*2)
	for i, v := range data {
		b[i*2] = byte(v)
		b[i*2+1] = byte(uint16(v) >> 8)
	}

	sdl.ClearQueuedAudio(ply.id)
	if err := sdl.QueueAudio(ply.id, b); err != nil {
		return curated.Errorf(PlayerError, err)
	}
	return nil
}

// Close the audio device.
func (ply *SDLPlayer) Close() {
	sdl.CloseAudioDevice(ply.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
