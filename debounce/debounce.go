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
	"time"
)

// State of the Debouncer.
type State int

// List of valid State values.
const (
	Inactive State = iota
	Active
	Trailing
	Suppressing
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Trailing:
		return "trailing"
	case Suppressing:
		return "suppressing"
	}
	return "unknown"
}

// Output is the classification returned by Update().
type Output int

// List of valid Output values.
const (
	OutNone Output = iota
	OutLeading
	OutDelayed
	OutTrailing
	OutRepeating
)

func (o Output) String() string {
	switch o {
	case OutNone:
		return "none"
	case OutLeading:
		return "leading"
	case OutDelayed:
		return "delayed"
	case OutTrailing:
		return "trailing"
	case OutRepeating:
		return "repeating"
	}
	return "unknown"
}

// Debouncer for a single input source. The zero value is not usable, use
// NewDebouncer().
type Debouncer struct {
	settings Settings
	state    State

	trailTimer       time.Duration
	suppressionTimer time.Duration

	delayTimer time.Duration
	delayFired bool

	// the repeat sub-timer runs independently of the state
	timingRepeat bool
	firstRepeat  bool
	repeatTimer  time.Duration

	// outputs generated since the last Update(). the pending edge is the
	// highest priority edge output seen and is never OutRepeating
	pendingEdge   Output
	pendingRepeat bool
}

// NewDebouncer is the preferred method of initialisation for the Debouncer
// type.
func NewDebouncer(settings Settings) *Debouncer {
	return &Debouncer{
		settings: settings,
	}
}

// Settings returns the settings the Debouncer was created with.
func (d *Debouncer) Settings() Settings {
	return d.settings
}

// State returns the current state.
func (d *Debouncer) State() State {
	return d.state
}

// Reset returns the Debouncer to the Inactive state and discards any pending
// output.
func (d *Debouncer) Reset() {
	*d = Debouncer{settings: d.settings}
}

// edge records an edge output, keeping the highest priority of those seen
// since the last Update()
func (d *Debouncer) edge(o Output) {
	if d.pendingEdge == OutNone || o < d.pendingEdge {
		d.pendingEdge = o
	}
}

func (d *Debouncer) startRepeat() {
	d.timingRepeat = true
	d.firstRepeat = true
	d.repeatTimer = 0
}

func (d *Debouncer) stopRepeat() {
	d.timingRepeat = false
	d.firstRepeat = false
	d.repeatTimer = 0
}

// SetInput sets the raw state of the input. It can be called any number of
// times between calls to Update().
func (d *Debouncer) SetInput(active bool) {
	// activation attempts during suppression are dropped
	if d.state == Suppressing {
		active = false
	}

	switch d.state {
	case Inactive:
		if active {
			d.state = Active
			d.edge(OutLeading)
			d.delayTimer = 0
			d.delayFired = false
			if d.settings.RepeatEnable {
				d.startRepeat()
			}
		}

	case Active:
		if !active {
			d.state = Trailing
			d.trailTimer = 0
			if !d.settings.RepeatDebounced {
				d.stopRepeat()
			}
		}

	case Trailing:
		if active {
			d.state = Active
			if d.settings.RepeatEnable && !d.settings.RepeatDebounced {
				d.startRepeat()
			}
		}
	}
}

// Update advances the Debouncer's timers by dt and returns the output for
// this tick. A negative dt is treated as zero.
//
// Only one output is returned per tick, in the order of priority Leading,
// Delayed, Trailing, Repeating. Lower priority outputs of the same tick are
// lost. In particular, a press and release that both happen within one tick
// (or a TrailTime shorter than dt) report Leading only and the Trailing
// output for that activation never happens.
func (d *Debouncer) Update(dt time.Duration) Output {
	if dt < 0 {
		dt = 0
	}

	switch d.state {
	case Active:
		if !d.delayFired {
			d.delayTimer += dt
			if d.delayTimer >= d.settings.DelayTime {
				d.delayFired = true
				d.edge(OutDelayed)
			}
		}

	case Trailing:
		d.trailTimer += dt
		if d.trailTimer >= d.settings.TrailTime {
			d.state = Suppressing
			d.suppressionTimer = 0
			d.edge(OutTrailing)
			if d.settings.RepeatDebounced {
				d.stopRepeat()
			}
		}

	case Suppressing:
		d.suppressionTimer += dt
		if d.suppressionTimer >= d.settings.SuppressionTime {
			d.state = Inactive
		}
	}

	if d.timingRepeat {
		d.repeatTimer += dt

		threshold := d.settings.RepeatRate
		if d.firstRepeat {
			threshold = d.settings.RepeatDelay
		}

		if d.repeatTimer >= threshold {
			d.repeatTimer = 0
			d.firstRepeat = false
			d.pendingRepeat = true
		}
	}

	out := d.pendingEdge
	if out == OutNone && d.pendingRepeat {
		out = OutRepeating
	}

	d.pendingEdge = OutNone
	d.pendingRepeat = false

	return out
}
