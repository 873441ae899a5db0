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

package debounce

import (
	"fmt"
	"time"
)

// Settings for a Debouncer.
type Settings struct {
	// how long input must remain released before the release is confirmed
	TrailTime time.Duration

	// how long activations are ignored after a confirmed release
	SuppressionTime time.Duration

	// how long input must be held before the Delayed output
	DelayTime time.Duration

	// synthesise repeat outputs while input is held
	RepeatEnable bool

	// if true, repeat timing continues through the Trailing state and only
	// stops once the release is confirmed. if false, repeat timing stops as
	// soon as the input is released
	RepeatDebounced bool

	// time before the first repeat and the time between subsequent repeats
	RepeatDelay time.Duration
	RepeatRate  time.Duration
}

// DefaultSettings returns the settings used when a profile does not specify
// a value.
func DefaultSettings() Settings {
	return Settings{
		TrailTime:       50 * time.Millisecond,
		SuppressionTime: 100 * time.Millisecond,
		DelayTime:       time.Second,
		RepeatEnable:    false,
		RepeatDebounced: false,
		RepeatDelay:     500 * time.Millisecond,
		RepeatRate:      100 * time.Millisecond,
	}
}

func (s Settings) String() string {
	r := "off"
	if s.RepeatEnable {
		r = fmt.Sprintf("%v/%v", s.RepeatDelay, s.RepeatRate)
		if s.RepeatDebounced {
			r = fmt.Sprintf("%s debounced", r)
		}
	}
	return fmt.Sprintf("trail %v, suppression %v, delay %v, repeat %s",
		s.TrailTime, s.SuppressionTime, s.DelayTime, r)
}
