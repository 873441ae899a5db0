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

package scanner

import (
	"strings"
	"time"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/semantic"
)

// Scanner is the interface for all scan strategies.
type Scanner interface {
	// Update advances the scanner by dt. The boolean indicates whether the
	// EventType should be issued.
	Update(dt time.Duration) (bool, semantic.EventType)

	// SetInput informs the scanner of an event issued by the input
	// controller. Events that have no meaning to the scanner are ignored.
	SetInput(ev semantic.EventType)
}

// Kind identifies a scan strategy.
type Kind int

// List of valid Kind values.
const (
	KindNone Kind = iota
	KindAutoscanner
	KindScript
)

func (k Kind) String() string {
	switch k {
	case KindAutoscanner:
		return "autoscanner"
	case KindScript:
		return "script"
	}
	return "none"
}

// ParseKind converts the scanner type string found in a profile to a Kind.
// Case is ignored. Unrecognised strings return KindNone.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "autoscanner", "auto":
		return KindAutoscanner
	case "script", "lua":
		return KindScript
	}
	return KindNone
}

// Config is used to create a new Scanner.
type Config struct {
	// the scan period
	Period time.Duration

	// filename of Lua script. KindScript only
	Script string
}

// Sentinal error patterns.
const (
	UnknownKind = "scanner: unknown scanner type: %v"
	ScriptError = "scanner: script: %v"
)

// New creates a scanner of the specified kind.
func New(kind Kind, cfg Config) (Scanner, error) {
	switch kind {
	case KindAutoscanner:
		return NewAutoscanner(cfg.Period), nil
	case KindScript:
		sc, err := NewScriptFile(cfg.Script, cfg.Period)
		if err != nil {
			return nil, err
		}
		return sc, nil
	}
	return nil, curated.Errorf(UnknownKind, kind)
}
