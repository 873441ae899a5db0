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

// Package sdlinput translates SDL events into userinput events.
//
// SDL keycodes are converted to the userinput key numbering. Navigation keys
// use the SDL 1.2 values, which is what profiles are written with, and
// printable keys use their character code.
//
// Key repeat events generated by SDL are discarded. Repeating is the
// responsibility of the debouncer.
package sdlinput
