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
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/semantic"
)

// Script is a scanner whose behaviour is defined by a Lua script. The script
// must define two global functions:
//
//	function update(dt)   -- dt in seconds. return an event name or nil
//	function input(name)  -- name of the event issued by the controller
//
// The scan period from the profile is available to the script as the global
// number "period", in seconds. Event names returned by update() are
// converted with semantic.Parse(). An unrecognised name is not issued.
//
// Only the base, table, string and math libraries are available to the
// script.
type Script struct {
	L *lua.LState

	update lua.LValue
	input  lua.LValue
}

const scriptLogTag = "scanner"

// NewScriptFile loads the script in the named file. See NewScript().
func NewScriptFile(filename string, period time.Duration) (*Script, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ScriptError, err)
	}
	return NewScript(string(src), period)
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(src string, period time.Duration) (*Script, error) {
	sc := &Script{
		L: lua.NewState(lua.Options{SkipOpenLibs: true}),
	}

	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		err := sc.L.CallByParam(lua.P{
			Fn:      sc.L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			sc.L.Close()
			return nil, curated.Errorf(ScriptError, err)
		}
	}

	sc.L.SetGlobal("period", lua.LNumber(period.Seconds()))

	if err := sc.L.DoString(src); err != nil {
		sc.L.Close()
		return nil, curated.Errorf(ScriptError, err)
	}

	sc.update = sc.L.GetGlobal("update")
	if sc.update.Type() != lua.LTFunction {
		sc.L.Close()
		return nil, curated.Errorf(ScriptError, "update() function not defined")
	}

	sc.input = sc.L.GetGlobal("input")
	if sc.input.Type() != lua.LTFunction {
		sc.L.Close()
		return nil, curated.Errorf(ScriptError, "input() function not defined")
	}

	return sc, nil
}

// Close releases the Lua state.
func (sc *Script) Close() {
	sc.L.Close()
}

// SetInput implements the Scanner interface.
func (sc *Script) SetInput(ev semantic.EventType) {
	err := sc.L.CallByParam(lua.P{
		Fn:      sc.input,
		NRet:    0,
		Protect: true,
	}, lua.LString(ev.String()))
	if err != nil {
		logger.Log(logger.Allow, scriptLogTag, curated.Errorf(ScriptError, err))
	}
}

// Update implements the Scanner interface.
func (sc *Script) Update(dt time.Duration) (bool, semantic.EventType) {
	err := sc.L.CallByParam(lua.P{
		Fn:      sc.update,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(dt.Seconds()))
	if err != nil {
		logger.Log(logger.Allow, scriptLogTag, curated.Errorf(ScriptError, err))
		return false, semantic.Invalid
	}

	ret := sc.L.Get(-1)
	sc.L.Pop(1)

	s, ok := ret.(lua.LString)
	if !ok {
		return false, semantic.Invalid
	}

	t := semantic.Parse(string(s))
	if t == semantic.Invalid {
		logger.Logf(logger.Allow, scriptLogTag, "script returned unknown event: %s", string(s))
		return false, semantic.Invalid
	}

	return true, t
}
