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

// Package userinput defines the raw input events that a platform layer (SDL,
// a terminal, a serial switch box) delivers to the input pipeline.
//
// It can be thought of as a translation layer between the platform
// implementation and the keyinput package. Platform specific details are
// hidden and every event is a small immutable value. The platform layer in use
// during development was SDL and so there will be a bias towards that system,
// most noticeably in the numbering of the KeyCode values.
//
// The Event interface is closed. The concrete types are EventQuit,
// EventKeyboard, EventMouseMotion, EventMouseButton, EventWindowResize,
// EventWindowExpose and EventWindowClose.
package userinput
