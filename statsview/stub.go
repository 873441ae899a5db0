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

//go:build !statsview

package statsview

import "github.com/jetsetilly/totem/logger"

// Address of the statistics server.
const Address = ""

// Launch does nothing because the program was built without the statsview
// build tag.
func Launch() string {
	logger.Log(logger.Allow, "statsview", "not available in this build")
	return ""
}

// Available returns true if the statistics server can be launched.
func Available() bool {
	return false
}
