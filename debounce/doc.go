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

// Package debounce implements the per-input debouncer. A Debouncer turns a
// noisy boolean signal from a single key or switch into a clean sequence of
// classified outputs, suppresses bounce and chatter and optionally
// synthesises key repeat.
//
// The Debouncer is in exactly one of four states:
//
//	Inactive     no input. a new activation is accepted
//	Active       input is currently asserted
//	Trailing     input released, waiting to confirm it stays released
//	Suppressing  release confirmed. activations are ignored until the
//	             suppression time has elapsed
//
// Input reasserted during Trailing returns the Debouncer to Active without
// any output, which filters out short glitches in the signal.
//
// Time is supplied by the caller through the Update() function. Nothing in
// the package reads a clock, so a Debouncer is entirely deterministic for a
// given sequence of SetInput() and Update() calls.
//
// Each call to Update() returns exactly one Output, the highest priority
// output generated since the previous call. The priority order is OutLeading,
// OutDelayed, OutTrailing, OutRepeating. Outputs that lose out to a higher priority
// output in the same tick are discarded.
package debounce
