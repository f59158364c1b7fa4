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

package framebuffer

import (
	"image"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/colour"
	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/logger"
)

// Sentinal error patterns.
const (
	CreationFailed         = "framebuffer: backend could not create a framebuffer"
	BackendError           = "framebuffer: backend error: %v"
	IncompleteFramebuffer  = "framebuffer: %v is incomplete: %v"
	IncompatibleAttachment = "framebuffer: %v cannot be attached at %v"
	InvalidMipLevel        = "framebuffer: %v has no mip level %d"
	InvalidLayer           = "framebuffer: %v has no layer %d"
	MissingAttachment      = "framebuffer: %v is mapped for %v but nothing is attached"
	NoAttachments          = "framebuffer: %v has no attachments"
	InvalidClearMask       = "framebuffer: invalid clear mask: %q"
)

const logTag = "framebuffer"

// Context is the state of the graphics context as seen by the framebuffer
// package. It is a mirror of the backend state and is only accurate if the
// backend is not used directly.
type Context struct {
	be backend.Backend

	// Preferences are consulted when attaching surfaces and when logging
	Preferences *Preferences

	features [numFeatures]bool

	viewportPos  image.Point
	viewportSize image.Point

	clearMask    ClearMask
	clearColour  colour.Colour
	clearDepth   float64
	clearStencil int32

	// rgb and alpha
	blendEquation [2]BlendEquation

	// srcRGB, dstRGB, srcAlpha, dstAlpha
	blendFunction [4]BlendFunction
	blendColour   colour.Colour

	colourMask [4]bool
	depthMask  bool

	// front and back
	stencilMask [2]uint32

	// the render targets bound for each role. nil is the default target
	read *Framebuffer
	draw *Framebuffer

	// draw and read mapping of the default target
	defaultDraw []DefaultDrawAttachment
	defaultRead DefaultReadAttachment

	// framebuffers that have been created and not yet destroyed
	framebuffers map[uint32]*Framebuffer
}

// NewContext is the preferred method of initialisation for the Context type.
// The state of the backend is assumed to be the initial state of a new
// graphics context.
//
// If prefs is nil then a new instance of the default preferences is used.
func NewContext(be backend.Backend, prefs *Preferences) *Context {
	if prefs == nil {
		prefs, _ = NewPreferences("")
	}

	ctx := &Context{
		be:            be,
		Preferences:   prefs,
		clearMask:     ClearMask{}.With(ClearColor, ClearDepth, ClearStencil),
		clearColour:   colour.Black,
		clearDepth:    1.0,
		blendEquation: [2]BlendEquation{Add, Add},
		blendFunction: [4]BlendFunction{One, Zero, One, Zero},
		colourMask:    [4]bool{true, true, true, true},
		depthMask:     true,
		stencilMask:   [2]uint32{0xffffffff, 0xffffffff},
		defaultDraw:   []DefaultDrawAttachment{DrawBackLeft},
		defaultRead:   ReadBackLeft,
		framebuffers:  make(map[uint32]*Framebuffer),
	}

	// dithering is enabled by default in a new graphics context
	ctx.features[Dithering] = true

	// the preferred clear mask replaces the built in default. an invalid value
	// is logged and ignored
	if m, err := ParseClearMask(prefs.ClearMask.String()); err == nil {
		ctx.clearMask = m
	} else {
		ctx.log(err)
	}

	return ctx
}

// Backend returns the backend used by the context.
func (ctx *Context) Backend() backend.Backend {
	return ctx.be
}

func (ctx *Context) log(detail any) {
	logger.Log(ctx.Preferences, logTag, detail)
}

func (ctx *Context) logf(detail string, args ...any) {
	logger.Logf(ctx.Preferences, logTag, detail, args...)
}

// SetViewport sets the rectangle of the draw target that output is drawn to.
// The position is the bottom left corner of the rectangle.
func (ctx *Context) SetViewport(position image.Point, size image.Point) {
	ctx.be.Viewport(int32(position.X), int32(position.Y), int32(size.X), int32(size.Y))
	ctx.viewportPos = position
	ctx.viewportSize = size
}

// Viewport returns the position and size of the viewport. Both values are zero
// if SetViewport() has never been called.
func (ctx *Context) Viewport() (position image.Point, size image.Point) {
	return ctx.viewportPos, ctx.viewportSize
}

// bind the render target for the role. a nil render target is the default
// target
func (ctx *Context) bind(fb *Framebuffer, t Target) {
	var id uint32
	if fb != nil {
		id = fb.id
	}

	ctx.be.BindFramebuffer(t.enum(), id)

	// binding a destroyed framebuffer is an error in the backend and does not
	// change the binding
	if fb != nil && fb.destroyed {
		ctx.logf("binding destroyed framebuffer (%d) for %v", id, t)
		return
	}

	if t.reads() {
		ctx.read = fb
	}
	if t.draws() {
		ctx.draw = fb
	}
}

// BindDefault binds the window-system target for the role. It is the only way
// of unbinding a Framebuffer.
func (ctx *Context) BindDefault(t Target) {
	ctx.bind(nil, t)
}

// Bound returns the render target bound for the role. A nil Framebuffer is
// returned when the default target is bound.
//
// For the ReadDraw role, the ok value is false if a different target is bound
// for the Read and the Draw roles.
func (ctx *Context) Bound(t Target) (fb *Framebuffer, ok bool) {
	switch t {
	case Read:
		return ctx.read, true
	case Draw:
		return ctx.draw, true
	case ReadDraw:
		if ctx.read == ctx.draw {
			return ctx.read, true
		}
	}
	return nil, false
}

// Error drains the error channel of the backend. Returns nil if the backend
// has no error to report.
func (ctx *Context) Error() error {
	e := ctx.be.GetError()
	if e == backend.NO_ERROR {
		return nil
	}
	err := curated.Errorf(BackendError, e)
	ctx.log(err)
	return err
}
