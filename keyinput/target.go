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

package keyinput

import "github.com/jetsetilly/totem/semantic"

// Target is the recipient of semantic events.
type Target interface {
	HandleEvent(ev semantic.Event)
}

// TargetFunc is an adapter that allows an ordinary function to be used as a
// Target.
type TargetFunc func(ev semantic.Event)

// HandleEvent implements the Target interface.
func (f TargetFunc) HandleEvent(ev semantic.Event) {
	f(ev)
}
