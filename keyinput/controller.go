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

package keyinput

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jetsetilly/totem/debounce"
	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/profile"
	"github.com/jetsetilly/totem/scanner"
	"github.com/jetsetilly/totem/semantic"
	"github.com/jetsetilly/totem/userinput"
)

const logTag = "keyinput"

// the scan period used if the profile doesn't specify one
const defaultScanPeriod = time.Second

// Controller converts raw input events into semantic events. It should only
// be used from a single goroutine.
type Controller struct {
	// the shared target is used for all events when shareInputs is true
	shared Target

	enableKeys      bool
	autoFirstSelect bool
	shareInputs     bool

	// debounce settings in the keyinput.debounce group
	global Override

	// semantic events for each mapped key. not every mapped key has a
	// debouncer
	mapping    map[userinput.KeyCode]Mapping
	debouncers map[userinput.KeyCode]*debounce.Debouncer

	// the keys of the debouncers map in ascending order
	keys []userinput.KeyCode

	scanner     scanner.Scanner
	scannerKind scanner.Kind
	scanPeriod  time.Duration

	// whether a FirstFocus event has been issued
	firstFocus bool
}

// NewController is the preferred method of initialisation for the Controller
// type. A nil profile, or a profile with no keyinput section, results in a
// Controller that forwards mouse and window events only.
func NewController(prf profile.Profile, shared Target) *Controller {
	c := &Controller{
		shared:     shared,
		mapping:    make(map[userinput.KeyCode]Mapping),
		debouncers: make(map[userinput.KeyCode]*debounce.Debouncer),
	}

	if prf == nil {
		logger.Log(logger.Allow, logTag, "no profile. keyboard input disabled")
		return c
	}

	ki, ok := prf.Group("keyinput")
	if !ok {
		logger.Log(logger.Allow, logTag, "no keyinput section in profile. keyboard input disabled")
		return c
	}

	c.enableKeys = ki.Flag("enablekeys")
	c.autoFirstSelect = ki.Flag("autofirstselect")
	c.shareInputs = ki.Flag("shareinputs")

	if g, ok := ki.Group("debounce"); ok {
		c.global = ReadOverride(g)
	}

	for i, m := range ki.Groups("map") {
		c.readMapGroup(i, m)
	}

	for k := range c.debouncers {
		c.keys = append(c.keys, k)
	}
	sort.Slice(c.keys, func(i, j int) bool {
		return c.keys[i] < c.keys[j]
	})

	if g, ok := ki.Group("scanning"); ok {
		c.readScanning(g)
	}

	logger.Logf(logger.Allow, logTag, "%d keys mapped, %d debounced", len(c.mapping), len(c.debouncers))

	return c
}

func (c *Controller) readMapGroup(idx int, m profile.Profile) {
	var group Override
	if g, ok := m.Group("debounce"); ok {
		group = ReadOverride(g)
	}

	debounced := c.global.Specified() || group.Specified()
	settings := group.Apply(c.global.Apply(debounce.DefaultSettings()))

	for _, k := range m.Groups("key") {
		key, ok := readKeyCode(k)
		if !ok {
			logger.Logf(logger.Allow, logTag, "map %d: key entry without a valid code", idx)
			continue
		}

		if _, ok := c.mapping[key]; ok {
			logger.Logf(logger.Allow, logTag, "map %d: key %s already mapped. replacing", idx, key)
		}

		c.mapping[key] = Mapping{
			Press:   readEventType(k, "pressEvent"),
			Delay:   readEventType(k, "delayEvent"),
			Repeat:  readEventType(k, "repeatEvent"),
			Release: readEventType(k, "releaseEvent"),
		}

		if debounced {
			c.debouncers[key] = debounce.NewDebouncer(settings)
		} else {
			delete(c.debouncers, key)
		}
	}
}

// the key code can be given as a number or as a name
func readKeyCode(k profile.Profile) (userinput.KeyCode, bool) {
	if n, ok := k.Int("code"); ok {
		return userinput.KeyCode(n), true
	}
	if s, ok := k.String("code"); ok {
		return userinput.ParseKeyCode(s)
	}
	return 0, false
}

func readEventType(k profile.Profile, slot string) semantic.EventType {
	s, ok := k.String(slot)
	if !ok {
		return semantic.Invalid
	}
	t := semantic.Parse(s)
	if t == semantic.Invalid && !strings.EqualFold(s, semantic.Invalid.String()) {
		logger.Logf(logger.Allow, logTag, "unknown event type for %s: %s", slot, s)
	}
	return t
}

func (c *Controller) readScanning(g profile.Profile) {
	typ, _ := g.String("type")
	c.scannerKind = scanner.ParseKind(typ)
	if c.scannerKind == scanner.KindNone {
		if typ != "" {
			logger.Logf(logger.Allow, logTag, "unknown scanner type: %s", typ)
		}
		return
	}

	c.scanPeriod = defaultScanPeriod
	if f, ok := g.Float("delayTime"); ok {
		var inRange bool
		c.scanPeriod, inRange = secondsToDuration(f)
		if !inRange {
			logger.Logf(logger.Allow, logTag, "scanning delayTime out of range (%v). using %v", f, c.scanPeriod)
		}
	}

	script, _ := g.String("script")

	sc, err := scanner.New(c.scannerKind, scanner.Config{
		Period: c.scanPeriod,
		Script: script,
	})
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
		c.scannerKind = scanner.KindNone
		return
	}
	c.scanner = sc

	logger.Logf(logger.Allow, logTag, "scanner: %s (%v)", c.scannerKind, c.scanPeriod)
}

// issue the event according to the issuance policy: the scanner is informed
// of every event and the event is delivered to the shared target if inputs
// are shared, otherwise to the target argument.
func (c *Controller) issue(ev semantic.Event, target Target) {
	if c.scanner != nil {
		c.scanner.SetInput(ev.Type)
	}

	target = c.delivery(target)
	if target == nil {
		logger.Logf(logger.Allow, logTag, "no target for %s. event dropped", ev)
		return
	}

	target.HandleEvent(ev)
}

// the target events are delivered to under the issuance policy
func (c *Controller) delivery(target Target) Target {
	if c.shareInputs {
		return c.shared
	}
	return target
}

// IssueEvent handles a raw input event. Window and mouse events are
// translated and issued immediately. Keyboard events are passed to
// HandleImmediateKeys() if keyboard input is enabled.
func (c *Controller) IssueEvent(ev userinput.Event, target Target) {
	switch ev := ev.(type) {
	case userinput.EventQuit:
		c.issue(semantic.New(semantic.Quit), target)

	case userinput.EventWindowClose:
		c.issue(semantic.Event{Type: semantic.Quit, Window: ev.Window}, target)

	case userinput.EventWindowResize:
		c.issue(semantic.Resize(ev.Width, ev.Height, ev.Window), target)

	case userinput.EventMouseButton:
		if ev.Down {
			c.issue(semantic.Positional(semantic.PositionalSelect, ev.X, ev.Y, ev.Window), target)
		} else {
			c.issue(semantic.Positional(semantic.PositionalDeselect, ev.X, ev.Y, ev.Window), target)
		}

	case userinput.EventMouseMotion:
		c.issue(semantic.Positional(semantic.PositionalDrag, ev.X, ev.Y, ev.Window), target)

	case userinput.EventWindowExpose:
		// nothing to do

	case userinput.EventKeyboard:
		if c.enableKeys {
			c.HandleImmediateKeys(ev)
		}
	}
}

// HandleImmediateKeys feeds the state of the key into the debouncer for that
// key. Keys without a debouncer are ignored. Returns true if the key has a
// debouncer.
func (c *Controller) HandleImmediateKeys(ev userinput.EventKeyboard) bool {
	d, ok := c.debouncers[ev.Key]
	if !ok {
		return false
	}
	d.SetInput(ev.Down)
	return true
}

// Update advances every debouncer, and the scanner, by dt and issues the
// resulting semantic events to the target. Debouncers are polled in order
// of key code and the scanner is polled last.
//
// While there is no target to deliver to, the automatic FirstFocus event is
// held back and the scanner is not polled. Both happen on the first Update()
// that has a target.
func (c *Controller) Update(dt time.Duration, target Target) {
	deliverable := c.delivery(target) != nil

	if c.autoFirstSelect && !c.firstFocus && deliverable {
		c.firstFocus = true
		c.issue(semantic.New(semantic.FirstFocus), target)
	}

	for _, k := range c.keys {
		out := c.debouncers[k].Update(dt)
		if out == debounce.OutNone {
			continue
		}

		t := c.mapping[k].Resolve(out)
		if t == semantic.Invalid {
			continue
		}

		// the first navigation event is always a FirstFocus event. a dropped
		// event doesn't count
		if t == semantic.FirstFocus {
			c.firstFocus = c.firstFocus || deliverable
		} else if t.IsNavigation() && !c.firstFocus {
			c.firstFocus = deliverable
			t = semantic.FirstFocus
		}

		c.issue(semantic.New(t), target)
	}

	if c.scanner != nil && deliverable {
		if ok, t := c.scanner.Update(dt); ok {
			c.issue(semantic.New(t), target)
		}
	}
}

// Reset returns every debouncer to the inactive state. Keys that are held
// down at the time of the reset must be released and pressed again to
// produce events.
func (c *Controller) Reset() {
	for _, d := range c.debouncers {
		d.Reset()
	}
}

// Keys returns the debounced keys in ascending order.
func (c *Controller) Keys() []userinput.KeyCode {
	return append([]userinput.KeyCode(nil), c.keys...)
}

// Mapping returns the mapping for the key.
func (c *Controller) Mapping(key userinput.KeyCode) (Mapping, bool) {
	m, ok := c.mapping[key]
	return m, ok
}

// Settings returns the effective debounce settings for the key. Returns
// false if the key is not debounced.
func (c *Controller) Settings(key userinput.KeyCode) (debounce.Settings, bool) {
	d, ok := c.debouncers[key]
	if !ok {
		return debounce.Settings{}, false
	}
	return d.Settings(), true
}

// HasScanner returns true if a scanner has been configured.
func (c *Controller) HasScanner() bool {
	return c.scanner != nil
}

// KeysEnabled returns true if keyboard input is enabled.
func (c *Controller) KeysEnabled() bool {
	return c.enableKeys
}

// SharedInputs returns true if all events are delivered to the shared
// target.
func (c *Controller) SharedInputs() bool {
	return c.shareInputs
}

// String returns a summary of the controller's configuration.
func (c *Controller) String() string {
	s := strings.Builder{}

	flag := func(name string, v bool) {
		if v {
			s.WriteString(fmt.Sprintf("%s: yes\n", name))
		} else {
			s.WriteString(fmt.Sprintf("%s: no\n", name))
		}
	}
	flag("keys enabled", c.enableKeys)
	flag("auto first select", c.autoFirstSelect)
	flag("share inputs", c.shareInputs)
	s.WriteString(fmt.Sprintf("global debounce: %s\n", c.global))

	mapped := make([]userinput.KeyCode, 0, len(c.mapping))
	for k := range c.mapping {
		mapped = append(mapped, k)
	}
	sort.Slice(mapped, func(i, j int) bool {
		return mapped[i] < mapped[j]
	})

	for _, k := range mapped {
		s.WriteString(fmt.Sprintf("key %d (%s): %s\n", int(k), k, c.mapping[k]))
		if d, ok := c.debouncers[k]; ok {
			s.WriteString(fmt.Sprintf("  %s\n", d.Settings()))
		} else {
			s.WriteString("  not debounced\n")
		}
	}

	if c.scanner != nil {
		s.WriteString(fmt.Sprintf("scanner: %s (%v)\n", c.scannerKind, c.scanPeriod))
	} else {
		s.WriteString("scanner: none\n")
	}

	return s.String()
}
