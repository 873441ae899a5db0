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

// Package semantic defines the UI level events produced by the input
// pipeline. A semantic event names an intent (move focus up, select the
// focused widget, start scanning) rather than the physical input that caused
// it.
//
// Event values are passed by value. There is nothing for the receiver to
// dispose of.
//
// Every EventType has a name. The names are used in profiles and can be
// converted back to an EventType with Parse(), which ignores case. The name
// of an unrecognised string is always Invalid, never a real event.
package semantic
