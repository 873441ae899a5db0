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

// Package sdlgl draws a focusgrid in an SDL window with an OpenGL context.
//
// The window must be created and drawn from the main thread.
package sdlgl

import (
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/totem/curated"
	"github.com/jetsetilly/totem/focusgrid"
	"github.com/jetsetilly/totem/gui"
	"github.com/jetsetilly/totem/logger"
	"github.com/jetsetilly/totem/userinput"
)

// Sentinal error patterns.
const (
	WindowError = "sdlgl: %v"
)

// the gap between cells, in window pixels
const cellGap = 4

type colour [3]float32

var background = colour{0.08, 0.08, 0.1}

var palette = map[gui.CellState]colour{
	gui.CellNormal:    {0.3, 0.3, 0.34},
	gui.CellSelected:  {0.2, 0.55, 0.25},
	gui.CellFocus:     {0.25, 0.4, 0.8},
	gui.CellHighlight: {0.9, 0.75, 0.2},
	gui.CellPressed:   {0.85, 0.3, 0.25},
}

// Window is an SDL window with an OpenGL context in which a focusgrid is
// drawn.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	id        userinput.WindowID
}

// NewWindow is the preferred method of initialisation for the Window type.
//
// MUST ONLY be called from the main thread.
func NewWindow(title string, width, height int) (*Window, error) {
	runtime.LockOSThread()

	err := sdl.InitSubSystem(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(WindowError, err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	wnd := &Window{}

	wnd.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		return nil, curated.Errorf(WindowError, err)
	}

	id, err := wnd.window.GetID()
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}
	wnd.id = userinput.WindowID(id)

	wnd.glContext, err = wnd.window.GLCreateContext()
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	err = wnd.window.GLMakeCurrent(wnd.glContext)
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	err = gl.Init()
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	_ = sdl.GLSetSwapInterval(1)

	logger.Logf(logger.Allow, "sdlgl", "window %d: %s", wnd.id, gl.GoStr(gl.GetString(gl.VERSION)))

	return wnd, nil
}

// ID implements the gui.Surface interface.
func (wnd *Window) ID() userinput.WindowID {
	return wnd.id
}

// Size returns the size of the window.
func (wnd *Window) Size() (int, int) {
	w, h := wnd.window.GetSize()
	return int(w), int(h)
}

// Draw implements the gui.Surface interface.
//
// MUST ONLY be called from the main thread.
func (wnd *Window) Draw(g *focusgrid.Grid) error {
	winW, winH := wnd.window.GetSize()
	fbW, fbH := wnd.window.GLGetDrawableSize()
	if winW <= 0 || winH <= 0 {
		return nil
	}

	// the grid is laid out in window coordinates because that is what mouse
	// events use. the framebuffer may be larger on high density displays
	g.SetSize(int(winW), int(winH))
	sx := float32(fbW) / float32(winW)
	sy := float32(fbH) / float32(winH)

	gl.Viewport(0, 0, fbW, fbH)
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(background[0], background[1], background[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.SCISSOR_TEST)
	for cell := range g.Len() {
		x, y, w, h := g.Rect(cell)
		x += cellGap
		y += cellGap
		w -= cellGap * 2
		h -= cellGap * 2
		if w <= 0 || h <= 0 {
			continue
		}

		// opengl places the origin at the bottom left
		gl.Scissor(int32(float32(x)*sx), fbH-int32(float32(y+h)*sy),
			int32(float32(w)*sx), int32(float32(h)*sy))

		c := palette[gui.State(g, cell)]
		gl.ClearColor(c[0], c[1], c[2], 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	gl.Disable(gl.SCISSOR_TEST)

	wnd.window.GLSwap()

	if errno := gl.GetError(); errno != gl.NO_ERROR {
		return curated.Errorf(WindowError, errno)
	}

	return nil
}

// Destroy implements the gui.Surface interface.
//
// MUST ONLY be called from the main thread.
func (wnd *Window) Destroy() {
	if wnd.glContext != nil {
		sdl.GLDeleteContext(wnd.glContext)
		wnd.glContext = nil
	}
	if wnd.window != nil {
		_ = wnd.window.Destroy()
		wnd.window = nil
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
}
