// This file is part of Rendertarget.
//
// Rendertarget is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rendertarget is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rendertarget.  If not, see <https://www.gnu.org/licenses/>.

// Package glcontext creates an OpenGL 3.2 core profile context using SDL. The
// context belongs to a hidden window and is made current on the calling
// thread. The calling thread is locked to the OS thread and is never
// unlocked.
package glcontext

import (
	"fmt"
	"runtime"

	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/logger"
	"github.com/jetsetilly/rendertarget/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error returned by New().
const (
	ContextError = "glcontext: %v"
)

// Context is an OpenGL context and the hidden window it belongs to.
type Context struct {
	window *sdl.Window
	gl     sdl.GLContext
}

// New is the preferred method of initialisation for the Context type. The
// default framebuffer of the context will be of the specified size.
func New(width, height int32) (*Context, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(ContextError, err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_STENCIL_SIZE, 8},
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf(ContextError, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	ctx := &Context{}

	v, _, _ := version.Version()
	ctx.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, v),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(ContextError, err)
	}

	ctx.gl, err = ctx.window.GLCreateContext()
	if err != nil {
		_ = ctx.Destroy()
		return nil, curated.Errorf(ContextError, err)
	}

	err = ctx.window.GLMakeCurrent(ctx.gl)
	if err != nil {
		_ = ctx.Destroy()
		return nil, curated.Errorf(ContextError, err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	return ctx, nil
}

// Size returns the size of the default framebuffer.
func (ctx *Context) Size() (int32, int32) {
	return ctx.window.GLGetDrawableSize()
}

// Swap the front and back buffers of the default framebuffer.
func (ctx *Context) Swap() {
	ctx.window.GLSwap()
}

// Destroy the context and the window. SDL is shut down.
func (ctx *Context) Destroy() error {
	if ctx.gl != nil {
		sdl.GLDeleteContext(ctx.gl)
		ctx.gl = nil
	}
	if ctx.window != nil {
		err := ctx.window.Destroy()
		ctx.window = nil
		if err != nil {
			sdl.Quit()
			return curated.Errorf(ContextError, err)
		}
	}
	sdl.Quit()
	return nil
}
