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
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/totem/curated"
)

// Overrides is a set of key/value pairs that take precedence over the values
// in a profile. Values are strings and are converted as required by the
// accessor functions of Node.
type Overrides map[string]string

// ParseOverrides divides an override string into key/value pairs. The pairs
// are separated by semi-colons and the key is separated from the value by a
// double colon:
//
//	keyinput.shareinputs::false; keyinput.debounce.trailTime::0.1
//
// Leading and trailing space is ignored. Pairs that can't be parsed are
// ignored. Keys are normalised to lower case and a later pair for the same
// key replaces an earlier one.
func ParseOverrides(s string) Overrides {
	ov := make(Overrides)
	for _, p := range strings.Split(s, ";") {
		kv := strings.Split(p, "::")
		if len(kv) != 2 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(kv[0]))
		if k == "" {
			continue
		}
		ov[k] = strings.TrimSpace(kv[1])
	}
	return ov
}

// String returns the overrides in sorted order, in the format accepted by
// ParseOverrides().
func (ov Overrides) String() string {
	keys := make([]string, 0, len(ov))
	for k := range ov {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, ov[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// Set adds the pairs in the override string, replacing any existing pair for
// the same key. Overrides can be used as a command line flag.Value.
func (ov *Overrides) Set(s string) error {
	if *ov == nil {
		*ov = make(Overrides)
	}
	for k, v := range ParseOverrides(s) {
		(*ov)[k] = v
	}
	return nil
}

// Apply the overrides to the Node. Every override is attempted and an error
// is returned for the first one that can't be applied.
func (n *Node) Apply(ov Overrides) error {
	keys := make([]string, 0, len(ov))
	for k := range ov {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var first error
	for _, k := range keys {
		if err := n.Set(k, ov[k]); err != nil && first == nil {
			first = curated.Errorf(OverrideError, err)
		}
	}
	return first
}
