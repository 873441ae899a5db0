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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/totem/paths"
	"github.com/jetsetilly/totem/test"
)

func TestPaths(t *testing.T) {
	// the base resource path is in the current directory if it exists
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".totem", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".totem", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".totem", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".totem", "baz"))
	test.ExpectEquality(t, paths.ResourcePath(), ".totem")

	test.ExpectFailure(t, paths.Exists("profile.toml"))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(".totem", "profile.toml"), nil, 0o600))
	test.ExpectSuccess(t, paths.Exists("profile.toml"))
}
