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

package scanner_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/scanner"
	"github.com/jetsetilly/totem/semantic"
	"github.com/jetsetilly/totem/test"
)

const ms = time.Millisecond

func expectEvent(t *testing.T, sc scanner.Scanner, dt time.Duration, expected semantic.EventType) {
	t.Helper()
	ok, ev := sc.Update(dt)
	test.ExpectSuccess(t, ok, expected)
	test.ExpectEquality(t, ev, expected)
}

func expectNothing(t *testing.T, sc scanner.Scanner, dt time.Duration) {
	t.Helper()
	ok, ev := sc.Update(dt)
	test.ExpectFailure(t, ok, ev)
}

func TestAutoscannerBootstrap(t *testing.T) {
	sc := scanner.NewAutoscanner(time.Second)

	// first focus whatever the value of dt
	expectEvent(t, sc, 10*time.Second, semantic.ScanFirstFocus)

	// the very long first tick was not added to the cycle
	expectNothing(t, sc, 500*ms)
}

func TestAutoscannerProgression(t *testing.T) {
	sc := scanner.NewAutoscanner(time.Second)
	expectEvent(t, sc, 0, semantic.ScanFirstFocus)

	expectNothing(t, sc, 400*ms)
	expectNothing(t, sc, 400*ms)
	expectEvent(t, sc, 400*ms, semantic.ScanNextFocus)

	// the cycle does not drift. the next event happens at two seconds, not
	// at one second after the previous event
	expectNothing(t, sc, 400*ms)
	expectEvent(t, sc, 400*ms, semantic.ScanNextFocus)

	// a very long tick produces one event, not a backlog
	expectEvent(t, sc, 5*time.Second, semantic.ScanNextFocus)
	expectNothing(t, sc, 10*ms)
}

func TestAutoscannerHighlight(t *testing.T) {
	sc := scanner.NewAutoscanner(time.Second)
	expectEvent(t, sc, 0, semantic.ScanFirstFocus)
	expectNothing(t, sc, 900*ms)

	sc.SetInput(semantic.ScanHighlight)
	test.ExpectSuccess(t, sc.Paused())
	expectEvent(t, sc, 10*ms, semantic.ScanHighlightFocus)

	// paused. cycle time does not accumulate
	expectNothing(t, sc, 5*time.Second)
	expectNothing(t, sc, 5*time.Second)

	// select resumes from the start of a cycle
	sc.SetInput(semantic.ScanSelect)
	expectEvent(t, sc, 10*ms, semantic.ScanSelectFocus)
	test.ExpectFailure(t, sc.Paused())
	expectNothing(t, sc, 900*ms)
	expectEvent(t, sc, 100*ms, semantic.ScanNextFocus)
}

func TestAutoscannerPriority(t *testing.T) {
	sc := scanner.NewAutoscanner(time.Second)

	// first focus takes priority over everything
	sc.SetInput(semantic.ScanSelect)
	sc.SetInput(semantic.ScanHighlight)
	expectEvent(t, sc, 0, semantic.ScanFirstFocus)

	// select takes priority over highlight. the highlight is discarded
	expectEvent(t, sc, 0, semantic.ScanSelectFocus)
	expectNothing(t, sc, 0)
}

func TestAutoscannerStartStop(t *testing.T) {
	sc := scanner.NewAutoscanner(100 * ms)
	expectEvent(t, sc, 0, semantic.ScanFirstFocus)

	sc.SetInput(semantic.ScanStop)
	test.ExpectFailure(t, sc.Running())
	expectNothing(t, sc, time.Second)

	sc.SetInput(semantic.ScanStart)
	test.ExpectSuccess(t, sc.Running())
	expectEvent(t, sc, 100*ms, semantic.ScanNextFocus)

	// unrelated events are ignored
	sc.SetInput(semantic.NextFocusDown)
	sc.SetInput(semantic.ScanNextFocus)
	expectNothing(t, sc, 50*ms)
}

func TestAutoscannerZeroPeriod(t *testing.T) {
	sc := scanner.NewAutoscanner(0)
	expectEvent(t, sc, 0, semantic.ScanFirstFocus)
	expectEvent(t, sc, 0, semantic.ScanNextFocus)
	expectEvent(t, sc, 0, semantic.ScanNextFocus)
}

func TestParseKind(t *testing.T) {
	test.ExpectEquality(t, scanner.ParseKind("AutoScanner"), scanner.KindAutoscanner)
	test.ExpectEquality(t, scanner.ParseKind("script"), scanner.KindScript)
	test.ExpectEquality(t, scanner.ParseKind("rowcolumn"), scanner.KindNone)
	test.ExpectEquality(t, scanner.KindAutoscanner.String(), "autoscanner")
}

func TestNew(t *testing.T) {
	sc, err := scanner.New(scanner.KindAutoscanner, scanner.Config{Period: time.Second})
	test.DemandSuccess(t, err)
	test.ExpectImplements[*scanner.Autoscanner](t, sc)

	_, err = scanner.New(scanner.KindNone, scanner.Config{})
	test.ExpectSuccess(t, curated.Is(err, scanner.UnknownKind))

	_, err = scanner.New(scanner.KindScript, scanner.Config{Script: "does-not-exist.lua"})
	test.ExpectSuccess(t, curated.Is(err, scanner.ScriptError))
}

const reverseScript = `
local elapsed = 0
local first = true

function update(dt)
	if first then
		first = false
		return "ScanFirstFocus"
	end
	elapsed = elapsed + dt
	if elapsed >= period then
		elapsed = elapsed - period
		return "scanprevfocus"
	end
	return nil
end

function input(name)
	if name == "ScanSelect" then
		elapsed = 0
	end
end
`

func TestScript(t *testing.T) {
	sc, err := scanner.NewScript(reverseScript, 500*ms)
	test.DemandSuccess(t, err)
	defer sc.Close()

	expectEvent(t, sc, 0, semantic.ScanFirstFocus)
	expectNothing(t, sc, 250*ms)
	expectEvent(t, sc, 250*ms, semantic.ScanPrevFocus)

	expectNothing(t, sc, 250*ms)
	sc.SetInput(semantic.ScanSelect)
	expectNothing(t, sc, 250*ms)
	expectEvent(t, sc, 250*ms, semantic.ScanPrevFocus)
}

func TestScriptFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scan.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(reverseScript), 0o600))

	sc, err := scanner.New(scanner.KindScript, scanner.Config{Script: fn, Period: 500 * ms})
	test.DemandSuccess(t, err)
	defer sc.(*scanner.Script).Close()

	expectEvent(t, sc, 0, semantic.ScanFirstFocus)
}

func TestScriptErrors(t *testing.T) {
	_, err := scanner.NewScript("this is not lua", time.Second)
	test.ExpectSuccess(t, curated.Is(err, scanner.ScriptError))

	_, err = scanner.NewScript("function input(name) end", time.Second)
	test.ExpectSuccess(t, curated.Is(err, scanner.ScriptError))

	_, err = scanner.NewScript("function update(dt) end", time.Second)
	test.ExpectSuccess(t, curated.Is(err, scanner.ScriptError))

	// the os library is not available to scripts
	_, err = scanner.NewScript("os.exit(1)", time.Second)
	test.ExpectSuccess(t, curated.Is(err, scanner.ScriptError))

	// runtime errors and unknown event names produce no output
	sc, err := scanner.NewScript(`
		function update(dt) if dt > 1 then error("boom") end return "NotAnEvent" end
		function input(name) error("bang") end`, time.Second)
	test.DemandSuccess(t, err)
	defer sc.Close()
	expectNothing(t, sc, 0)
	expectNothing(t, sc, 2*time.Second)
	sc.SetInput(semantic.ScanSelect)
}
