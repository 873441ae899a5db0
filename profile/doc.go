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

// Package profile is a hierarchical, case-insensitive key/value reader. It is
// the means by which the input pipeline is configured.
//
// The Profile interface is what the rest of the program consumes. The Node
// type implements it over a tree of Go values, usually decoded from a TOML
// file with Load() or Parse(). Nodes can also be created directly with
// FromMap(), which is useful for built-in defaults and for testing.
//
// Keys are compared without regard to case. A dotted path addresses values in
// nested groups:
//
//	prf.Float("keyinput.debounce.trailTime")
//
// Arrays of tables are reached with Groups(). A path component that is a
// number indexes into an array of tables, which is mostly useful for
// overrides.
//
// Overrides are given as a string of key/value pairs, in the same way as
// preferences are given on the command line:
//
//	keyinput.shareinputs::false; keyinput.scanning.delayTime::2.0
//
// Values in an override string are always strings. The accessor functions
// of Node convert strings to the requested type where possible.
//
// Watch() monitors a profile file and sends a newly loaded Node whenever the
// file changes.
package profile
