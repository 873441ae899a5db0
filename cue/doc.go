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

// Package cue provides auditory feedback for semantic events. Switch
// scanning in particular benefits from a sound on every step of the scan.
//
// Cues are configured in the profile as an array of cue tables:
//
//	[[cue]]
//	event = "ScanNextFocus"
//	file = "tick.wav"
//
// Sound files can be in WAV or MP3 format. Only the first channel of a
// stereo file is used.
//
// The Cueing type is a keyinput.Target that plays the sound for an event
// before passing the event on to another target.
package cue
