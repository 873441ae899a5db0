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

// Package recorder writes the raw input events of a session to a file and
// plays them back. Events are recorded with the frame number in which they
// were received so that playback delivers them to the input pipeline at the
// same point.
//
// The file is plain text. The header names the profile the recording was
// made with, and every line after it is one event:
//
//	# totem recording
//	# profile.toml
//	12, key, 273, down, 0
//	15, key, 273, up, 0
//	40, motion, 120, 33, 1
package recorder
