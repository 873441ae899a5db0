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

package profile

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/jetsetilly/totem/curated"
)

// Sentinal error patterns.
const (
	LoadError     = "profile: %s: %v"
	OverrideError = "profile: override: %v"
	WatchError    = "profile: watch: %v"
)

// Parse decodes TOML data into a new Node.
func Parse(data []byte) (*Node, error) {
	n, err := parse(data)
	if err != nil {
		return nil, curated.Errorf(LoadError, "parse", err)
	}
	return n, nil
}

// Load reads and decodes the named TOML file.
func Load(filename string) (*Node, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, filename, err)
	}
	n, err := parse(data)
	if err != nil {
		return nil, curated.Errorf(LoadError, filename, err)
	}
	return n, nil
}

func parse(data []byte) (*Node, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return FromMap("", m), nil
}
