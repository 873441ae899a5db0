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

// Package keyinput converts raw user input into semantic events.
//
// The Controller is configured from the keyinput section of a profile. Key
// events are passed through a Debouncer for each mapped key and the
// classified outputs of the Debouncer are resolved into semantic events by
// the key's Mapping. Mouse and window events are translated and forwarded
// immediately. An optional Scanner provides switch scanning.
//
// Debounce settings are layered. Global settings in keyinput.debounce apply
// to every key and settings in the debounce group of a keyinput.map entry
// apply to the keys of that entry. A key is only debounced, and therefore
// only produces semantic events, if debounce settings are given at one of
// those levels.
//
// Controller.Update() should be called once per frame with the time elapsed
// since the previous call. Nothing in the package measures time itself.
//
// The Activity type routes events for an application with more than one
// window.
package keyinput
