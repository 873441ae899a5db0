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

// Package scanner implements switch-scanning. A Scanner autonomously
// produces focus traversal events over time so that a user with a single
// switch can move through the interface and confirm a selection.
//
// Scanners are driven by two functions. SetInput() receives the semantic
// events issued by the input controller, which means scan control events
// (ScanHighlight, ScanSelect, ScanStart, ScanStop) can be mapped to physical
// keys in the same way as any other event. Update() is called once per tick
// and returns the event, if any, that the scanner wants issued.
//
// The Autoscanner is the standard scanner. It moves the focus forward once
// every period. The Script scanner hands both functions to a Lua script.
package scanner
