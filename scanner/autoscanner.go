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

package scanner

import (
	"time"

	"github.com/jetsetilly/totem/semantic"
)

// Autoscanner moves the focus forward once every period.
//
// The very first call to Update() returns ScanFirstFocus, whatever the value
// of dt, so that scanning always starts from a known widget. A ScanHighlight
// input pauses progression and the next Update() returns ScanHighlightFocus.
// A ScanSelect input causes the next Update() to return ScanSelectFocus,
// after which the cycle starts again from the beginning.
type Autoscanner struct {
	period time.Duration

	firstIssued bool
	running     bool
	paused      bool

	pendingHighlight bool
	pendingSelect    bool

	// time accumulated in the current cycle and the number of ScanNextFocus
	// events issued in the cycle. an event is issued whenever the cycle
	// passes a new multiple of the period
	cycle time.Duration
	count int64
}

// NewAutoscanner is the preferred method of initialisation for the
// Autoscanner type. A period of zero or less means ScanNextFocus is issued
// on every tick.
func NewAutoscanner(period time.Duration) *Autoscanner {
	return &Autoscanner{
		period:  period,
		running: true,
	}
}

// Period returns the scan period.
func (sc *Autoscanner) Period() time.Duration {
	return sc.period
}

// Running returns true if the scanner is progressing (or would be if it were
// not paused).
func (sc *Autoscanner) Running() bool {
	return sc.running
}

// Paused returns true if progression is paused by a ScanHighlight.
func (sc *Autoscanner) Paused() bool {
	return sc.paused
}

// SetInput implements the Scanner interface.
func (sc *Autoscanner) SetInput(ev semantic.EventType) {
	switch ev {
	case semantic.ScanHighlight:
		sc.paused = true
		sc.pendingHighlight = true
	case semantic.ScanSelect:
		sc.pendingSelect = true
	case semantic.ScanStart:
		sc.running = true
		sc.paused = false
	case semantic.ScanStop:
		sc.running = false
	}
}

// Update implements the Scanner interface.
func (sc *Autoscanner) Update(dt time.Duration) (bool, semantic.EventType) {
	if !sc.firstIssued {
		sc.firstIssued = true
		return true, semantic.ScanFirstFocus
	}

	if sc.pendingSelect {
		sc.pendingSelect = false
		sc.pendingHighlight = false
		sc.paused = false
		sc.cycle = 0
		sc.count = 0
		return true, semantic.ScanSelectFocus
	}

	if sc.pendingHighlight {
		sc.pendingHighlight = false
		return true, semantic.ScanHighlightFocus
	}

	if !sc.running || sc.paused {
		return false, semantic.Invalid
	}

	if sc.period <= 0 {
		return true, semantic.ScanNextFocus
	}

	if dt > 0 {
		sc.cycle += dt
	}

	n := int64(sc.cycle / sc.period)
	if n > sc.count {
		sc.count = n
		return true, semantic.ScanNextFocus
	}

	return false, semantic.Invalid
}
