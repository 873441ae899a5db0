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

package semantic

import (
	"strings"
)

// EventType enumerates every semantic event.
type EventType int

// List of valid EventType values. Invalid is the zero value and is never
// delivered to an event target.
const (
	Invalid EventType = iota

	// lifecycle
	Quit
	Back
	WindowResize

	// focus navigation
	FirstFocus
	NextFocusUp
	NextFocusDown
	NextFocusLeft
	NextFocusRight
	ClearFocus
	FocusHighlight
	FocusSelectRelease
	FocusSelectHold
	FocusDeselect

	// pointer
	PositionalSelect
	PositionalDeselect
	PositionalDrag

	// scan control
	ScanHighlight
	ScanSelect
	ScanStart
	ScanStop
	ScanFirstFocus
	ScanHighlightFocus
	ScanSelectFocus
	ScanNextFocus
	ScanPrevFocus

	// eye gaze
	GazeToggle
	GazeDwellToggle

	numEventTypes
)

// names must be in the same order as the EventType list
var names = [numEventTypes]string{
	"Invalid",
	"Quit",
	"Back",
	"WindowResize",
	"FirstFocus",
	"NextFocus_Up",
	"NextFocus_Down",
	"NextFocus_Left",
	"NextFocus_Right",
	"ClearFocus",
	"FocusHighlight",
	"FocusSelectRelease",
	"FocusSelectHold",
	"FocusDeselect",
	"PositionalSelect",
	"PositionalDeselect",
	"PositionalDrag",
	"ScanHighlight",
	"ScanSelect",
	"ScanStart",
	"ScanStop",
	"ScanFirstFocus",
	"ScanHighlightFocus",
	"ScanSelectFocus",
	"ScanNextFocus",
	"ScanPrevFocus",
	"GazeToggle",
	"GazeDwellToggle",
}

// lookup is keyed by the lower case name with underscores removed
var lookup map[string]EventType

func init() {
	lookup = make(map[string]EventType, numEventTypes)
	for i, n := range names {
		lookup[normalise(n)] = EventType(i)
	}
}

func normalise(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
}

func (t EventType) String() string {
	if t < 0 || t >= numEventTypes {
		return names[Invalid]
	}
	return names[t]
}

// Parse converts a string to an EventType. Case is ignored and so are
// underscores, so "nextfocus_up" and "NextFocusUp" are both NextFocusUp. An
// unrecognised string returns Invalid.
func Parse(s string) EventType {
	if t, ok := lookup[normalise(s)]; ok {
		return t
	}
	return Invalid
}

// Types returns every valid EventType, excluding Invalid, in order.
func Types() []EventType {
	t := make([]EventType, 0, numEventTypes-1)
	for i := Invalid + 1; i < numEventTypes; i++ {
		t = append(t, i)
	}
	return t
}

// IsNavigation returns true for the event types that move or act on the
// keyboard focus. The first of these to be issued by a controller is replaced
// with FirstFocus.
func (t EventType) IsNavigation() bool {
	switch t {
	case NextFocusUp, NextFocusDown, NextFocusLeft, NextFocusRight:
		return true
	case FocusHighlight, FocusSelectRelease, FocusSelectHold:
		return true
	}
	return false
}

// IsScan returns true for scan control events.
func (t EventType) IsScan() bool {
	return t >= ScanHighlight && t <= ScanPrevFocus
}

// IsPositional returns true for pointer events. Positional events carry a
// position in the X and Y fields of the Event.
func (t EventType) IsPositional() bool {
	return t >= PositionalSelect && t <= PositionalDrag
}
