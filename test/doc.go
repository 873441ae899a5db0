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

// Package test bundles a small number of functions that remove common
// boilerplate from the tests in the rest of the project.
//
// The Expect functions report a test error and return false if the
// expectation is not met. The Demand functions are the same but the failure
// is fatal. Demand is useful when the value being tested is needed for further
// tests, for example the length of a slice before iterating over it.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool  -> success is true
//	error -> success is nil
//	nil   -> success
//
// The Writer type implements io.Writer and can be used to capture output for
// comparison.
package test
