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

// Package version reports the version of the program. The version number is
// set with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/totem/version.number=v0.1.0"
//
// Otherwise the version is taken from the VCS information embedded by the Go
// toolchain, if there is any.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Totem"

// set with the linker
var number string

// Version is a description of the build.
type Version struct {
	// the version number. "unreleased" if there is no version number but
	// there is VCS information. "local" if there is neither
	Number string

	// the VCS revision. suffixed with "+dirty" if the working tree had been
	// modified
	Revision string

	// whether the version number was set with the linker
	Release bool
}

func (v Version) String() string {
	if v.Release {
		return fmt.Sprintf("%s %s", ApplicationName, v.Number)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v.Number, v.Revision)
}

var current Version

// Current returns the Version of the running program.
func Current() Version {
	return current
}

func init() {
	current = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) Version {
	var vcs bool
	var modified bool
	var revision string

	if info, ok := read(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	v := Version{
		Number:   number,
		Revision: revision,
		Release:  number != "",
	}

	if v.Revision == "" {
		v.Revision = "no revision information"
	} else if modified {
		v.Revision = fmt.Sprintf("%s+dirty", v.Revision)
	}

	if !v.Release {
		if vcs {
			v.Number = "unreleased"
		} else {
			v.Number = "local"
		}
	}

	return v
}
