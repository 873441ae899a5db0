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

// Package paths prepares paths to Totem resources, such as the default
// profile.
//
// The ResourcePath() function prepends the resource with the base resource
// path:
//
//	pth := paths.ResourcePath("profile.toml")
//
// If a directory called ".totem" is present in the current directory then
// that is the base path. Otherwise the base path is the "totem" directory in
// the user's config directory, as returned by os.UserConfigDir(). On a Linux
// system the path in the example above will usually be:
//
//	/home/user/.config/totem/profile.toml
package paths
