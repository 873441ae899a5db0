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

import (
	"fmt"

	"github.com/jetsetilly/totem/debounce"
	"github.com/jetsetilly/totem/semantic"
)

// Mapping is the group of semantic events for a single key. Each slot
// corresponds to one of the classified outputs of a Debouncer.
type Mapping struct {
	Press   semantic.EventType
	Delay   semantic.EventType
	Repeat  semantic.EventType
	Release semantic.EventType
}

// Resolve returns the event type for the Debouncer output. An output with
// no corresponding slot resolves to semantic.Invalid.
func (m Mapping) Resolve(out debounce.Output) semantic.EventType {
	switch out {
	case debounce.OutLeading:
		return m.Press
	case debounce.OutDelayed:
		return m.Delay
	case debounce.OutRepeating:
		return m.Repeat
	case debounce.OutTrailing:
		return m.Release
	}
	return semantic.Invalid
}

func (m Mapping) String() string {
	return fmt.Sprintf("press %s, delay %s, repeat %s, release %s", m.Press, m.Delay, m.Repeat, m.Release)
}
