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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is what identifies a curated error. Packages export their
// patterns as constants so that callers can test for them:
//
//	const LoadError = "profile: load: %v"
//
//	err := curated.Errorf(LoadError, ioErr)
//	if curated.Is(err, LoadError) {
//		...
//	}
//
// Has() is similar to Is() but checks every curated error in the chain of
// values. IsAny() answers whether an error is curated at all, which is a
// convenient way of separating expected errors from unexpected ones.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts. This means a function can wrap an error with its own
// package prefix without worrying whether the error it received already has
// the same prefix.
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library see through them to any wrapped error value.
package curated
