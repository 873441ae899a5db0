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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/totem/test"
)

func buildInfo(settings ...debug.BuildSetting) func() (*debug.BuildInfo, bool) {
	return func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: settings}, true
	}
}

func TestRelease(t *testing.T) {
	v := fromBuildInfo("v0.1.0", buildInfo())
	test.ExpectSuccess(t, v.Release)
	test.ExpectEquality(t, v.String(), "Totem v0.1.0")
}

func TestUnreleased(t *testing.T) {
	v := fromBuildInfo("", buildInfo(
		debug.BuildSetting{Key: "vcs", Value: "git"},
		debug.BuildSetting{Key: "vcs.revision", Value: "abc123"},
		debug.BuildSetting{Key: "vcs.modified", Value: "true"},
	))
	test.ExpectFailure(t, v.Release)
	test.ExpectEquality(t, v.String(), "Totem unreleased (abc123+dirty)")
}

func TestLocal(t *testing.T) {
	v := fromBuildInfo("", func() (*debug.BuildInfo, bool) {
		return nil, false
	})
	test.ExpectEquality(t, v.String(), "Totem local (no revision information)")
}
