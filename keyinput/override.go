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
	"math"
	"strings"
	"time"

	"github.com/jetsetilly/totem/debounce"
	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/profile"
)

// Override is a set of optional debounce settings. A nil field means the
// setting is not specified and the value from the lower layer is used.
type Override struct {
	TrailTime       *time.Duration
	SuppressionTime *time.Duration
	DelayTime       *time.Duration
	RepeatEnable    *bool
	RepeatDebounced *bool
	RepeatDelay     *time.Duration
	RepeatRate      *time.Duration
}

// ReadOverride reads debounce settings from a profile group. Values that are
// missing or of the wrong type are not specified. Times are in seconds.
func ReadOverride(prf profile.Profile) Override {
	var o Override
	o.TrailTime = seconds(prf, "trailTime")
	o.SuppressionTime = seconds(prf, "suppressionTime")
	o.DelayTime = seconds(prf, "delayTime")
	o.RepeatEnable = boolean(prf, "repeatEnable")
	o.RepeatDebounced = boolean(prf, "repeatDebounced")
	o.RepeatDelay = seconds(prf, "repeatDelay")
	o.RepeatRate = seconds(prf, "repeatRate")
	return o
}

func seconds(prf profile.Profile, key string) *time.Duration {
	f, ok := prf.Float(key)
	if !ok {
		return nil
	}
	d, ok := secondsToDuration(f)
	if !ok {
		logger.Logf(logger.Allow, logTag, "%s out of range (%v). using %v", key, f, d)
	}
	return &d
}

// secondsToDuration converts seconds to a Duration, clamping the value to
// the range zero to the maximum Duration. NaN is zero. Returns false if the
// value was clamped.
func secondsToDuration(f float64) (time.Duration, bool) {
	if math.IsNaN(f) || f < 0 {
		return 0, false
	}

	// float64(math.MaxInt64) is 2^63, which doesn't fit in a Duration
	ns := math.Round(f * float64(time.Second))
	if ns >= float64(math.MaxInt64) {
		return time.Duration(math.MaxInt64), false
	}
	return time.Duration(ns), true
}

func boolean(prf profile.Profile, key string) *bool {
	b, ok := prf.Bool(key)
	if !ok {
		return nil
	}
	return &b
}

// Specified returns true if any setting is specified.
func (o Override) Specified() bool {
	return o.TrailTime != nil || o.SuppressionTime != nil || o.DelayTime != nil ||
		o.RepeatEnable != nil || o.RepeatDebounced != nil ||
		o.RepeatDelay != nil || o.RepeatRate != nil
}

// Apply returns a copy of the settings with the specified values replaced.
func (o Override) Apply(s debounce.Settings) debounce.Settings {
	if o.TrailTime != nil {
		s.TrailTime = *o.TrailTime
	}
	if o.SuppressionTime != nil {
		s.SuppressionTime = *o.SuppressionTime
	}
	if o.DelayTime != nil {
		s.DelayTime = *o.DelayTime
	}
	if o.RepeatEnable != nil {
		s.RepeatEnable = *o.RepeatEnable
	}
	if o.RepeatDebounced != nil {
		s.RepeatDebounced = *o.RepeatDebounced
	}
	if o.RepeatDelay != nil {
		s.RepeatDelay = *o.RepeatDelay
	}
	if o.RepeatRate != nil {
		s.RepeatRate = *o.RepeatRate
	}
	return s
}

func (o Override) String() string {
	if !o.Specified() {
		return "none"
	}

	var s []string
	add := func(name string, v any) {
		s = append(s, fmt.Sprintf("%s %v", name, v))
	}
	if o.TrailTime != nil {
		add("trail", *o.TrailTime)
	}
	if o.SuppressionTime != nil {
		add("suppression", *o.SuppressionTime)
	}
	if o.DelayTime != nil {
		add("delay", *o.DelayTime)
	}
	if o.RepeatEnable != nil {
		add("repeat", *o.RepeatEnable)
	}
	if o.RepeatDebounced != nil {
		add("repeat debounced", *o.RepeatDebounced)
	}
	if o.RepeatDelay != nil {
		add("repeat delay", *o.RepeatDelay)
	}
	if o.RepeatRate != nil {
		add("repeat rate", *o.RepeatRate)
	}
	return strings.Join(s, ", ")
}
