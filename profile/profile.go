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
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Profile is the read-only interface to a hierarchy of configuration values.
type Profile interface {
	// Group returns the named sub-group. The name can be a dotted path.
	Group(name string) (Profile, bool)

	// Groups returns every entry of the named array of groups. A name that
	// refers to a single group returns a slice of length one.
	Groups(name string) []Profile

	// Has returns true if the key exists.
	Has(key string) bool

	// Flag returns true if the key exists and is not an explicit false
	// value.
	Flag(key string) bool

	String(key string) (string, bool)
	Float(key string) (float64, bool)
	Int(key string) (int, bool)
	Bool(key string) (bool, bool)
}

// Node implements the Profile interface.
type Node struct {
	name   string
	values map[string]any
}

// NewNode returns an empty, named node.
func NewNode(name string) *Node {
	return &Node{
		name:   name,
		values: make(map[string]any),
	}
}

// FromMap creates a Node tree from Go values. Nested maps become groups and
// slices of maps become arrays of groups. Keys are normalised to lower case.
func FromMap(name string, m map[string]any) *Node {
	n := NewNode(name)
	for k, v := range m {
		n.values[strings.ToLower(k)] = normalise(joinName(name, k), v)
	}
	return n
}

func joinName(parent string, key string) string {
	if parent == "" {
		return strings.ToLower(key)
	}
	return fmt.Sprintf("%s.%s", parent, strings.ToLower(key))
}

func normalise(name string, v any) any {
	switch v := v.(type) {
	case map[string]any:
		return FromMap(name, v)
	case *Node:
		return v
	case []map[string]any:
		a := make([]*Node, len(v))
		for i := range v {
			a[i] = FromMap(fmt.Sprintf("%s.%d", name, i), v[i])
		}
		return a
	case []any:
		// an array in which every element is a table is an array of groups.
		// anything else is left as it is
		a := make([]*Node, 0, len(v))
		for i := range v {
			m, ok := v[i].(map[string]any)
			if !ok {
				return v
			}
			a = append(a, FromMap(fmt.Sprintf("%s.%d", name, i), m))
		}
		if len(a) == 0 {
			return v
		}
		return a
	case int:
		return int64(v)
	case float32:
		return float64(v)
	}
	return v
}

// Name returns the dotted path of the node from the root of the tree.
func (n *Node) Name() string {
	return n.name
}

// Keys returns the keys of the node in sorted order.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.values))
	for k := range n.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// lookup walks the dotted path and returns the value at the end of it.
func (n *Node) lookup(path string) (any, bool) {
	var v any = n
	for _, p := range strings.Split(strings.ToLower(path), ".") {
		switch c := v.(type) {
		case *Node:
			var ok bool
			v, ok = c.values[p]
			if !ok {
				return nil, false
			}
		case []*Node:
			i, err := strconv.Atoi(p)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			v = c[i]
		default:
			return nil, false
		}
	}
	return v, true
}

// Group implements the Profile interface.
func (n *Node) Group(name string) (Profile, bool) {
	v, ok := n.lookup(name)
	if !ok {
		return nil, false
	}
	if g, ok := v.(*Node); ok {
		return g, true
	}
	return nil, false
}

// Groups implements the Profile interface.
func (n *Node) Groups(name string) []Profile {
	v, ok := n.lookup(name)
	if !ok {
		return nil
	}
	switch v := v.(type) {
	case *Node:
		return []Profile{v}
	case []*Node:
		g := make([]Profile, len(v))
		for i := range v {
			g[i] = v[i]
		}
		return g
	}
	return nil
}

// Has implements the Profile interface.
func (n *Node) Has(key string) bool {
	_, ok := n.lookup(key)
	return ok
}

// Flag implements the Profile interface.
func (n *Node) Flag(key string) bool {
	v, ok := n.lookup(key)
	if !ok {
		return false
	}
	if b, ok := toBool(v); ok {
		return b
	}
	return true
}

// String implements the Profile interface. Numbers and booleans are
// formatted. Groups are not strings.
func (n *Node) String(key string) (string, bool) {
	v, ok := n.lookup(key)
	if !ok {
		return "", false
	}
	return toString(v)
}

// Float implements the Profile interface.
func (n *Node) Float(key string) (float64, bool) {
	v, ok := n.lookup(key)
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// Int implements the Profile interface.
func (n *Node) Int(key string) (int, bool) {
	v, ok := n.lookup(key)
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// Bool implements the Profile interface.
func (n *Node) Bool(key string) (bool, bool) {
	v, ok := n.lookup(key)
	if !ok {
		return false, false
	}
	return toBool(v)
}

// Set the value at the dotted path. Intermediate groups are created as
// required. It is not possible to add a new entry to an array of groups but
// existing entries can be addressed by index.
func (n *Node) Set(path string, value any) error {
	parts := strings.Split(strings.ToLower(path), ".")
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("empty key in path %q", path)
		}
	}

	g := n
	groups := parts[:len(parts)-1]
	for i := 0; i < len(groups); i++ {
		p := groups[i]
		switch c := g.values[p].(type) {
		case nil:
			ng := NewNode(joinName(g.name, p))
			g.values[p] = ng
			g = ng
		case *Node:
			g = c
		case []*Node:
			i++
			if i >= len(groups) {
				return fmt.Errorf("%s requires an index", joinName(g.name, p))
			}
			idx, err := strconv.Atoi(groups[i])
			if err != nil || idx < 0 || idx >= len(c) {
				return fmt.Errorf("%s has no entry %s", joinName(g.name, p), groups[i])
			}
			g = c[idx]
		default:
			return fmt.Errorf("%s is not a group", joinName(g.name, p))
		}
	}

	last := parts[len(parts)-1]
	g.values[last] = normalise(joinName(g.name, last), value)
	return nil
}

// Map returns the node as a tree of Go values, the reverse of FromMap().
func (n *Node) Map() map[string]any {
	m := make(map[string]any, len(n.values))
	for k, v := range n.values {
		switch v := v.(type) {
		case *Node:
			m[k] = v.Map()
		case []*Node:
			a := make([]map[string]any, len(v))
			for i := range v {
				a[i] = v[i].Map()
			}
			m[k] = a
		default:
			m[k] = v
		}
	}
	return m
}

// Dump returns the node formatted as TOML. Key names are in lower case.
func (n *Node) Dump() string {
	b, err := toml.Marshal(n.Map())
	if err != nil {
		return err.Error()
	}
	return string(b)
}
