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
	"fmt"

	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/surface"
)

// Framebuffer is a render target created by the application. Surfaces are
// attached to it at attachment points.
type Framebuffer struct {
	ctx *Context
	id  uint32

	destroyed bool

	attachments map[AttachmentPoint]surface.Attachment

	// colour attachment index for each fragment output. a Discard entry means
	// the output is not written
	drawMapping []int

	// colour attachment index that Read() and Blit() use as their source
	readMapping int
}

// NewFramebuffer creates a new render target. Nothing is bound by this
// function.
//
// The backend returning a zero identity means the graphics context is not
// usable. This is not recoverable and the function will panic.
func (ctx *Context) NewFramebuffer() *Framebuffer {
	id := ctx.be.GenFramebuffer()
	if id == 0 {
		panic(curated.Errorf(CreationFailed))
	}

	fb := &Framebuffer{
		ctx:         ctx,
		id:          id,
		attachments: make(map[AttachmentPoint]surface.Attachment),
		drawMapping: []int{0},
		readMapping: 0,
	}
	ctx.framebuffers[id] = fb
	ctx.logf("created framebuffer (%d)", id)

	return fb
}

func (fb *Framebuffer) String() string {
	return fmt.Sprintf("framebuffer (%d)", fb.id)
}

// ID returns the backend identity of the render target.
func (fb *Framebuffer) ID() uint32 {
	return fb.id
}

// Context returns the context the render target was created with.
func (fb *Framebuffer) Context() *Context {
	return fb.ctx
}

// Destroy releases the render target. The Framebuffer should not be used after
// this function has been called. Any role the Framebuffer is bound to will
// revert to the default target.
//
// Calling Destroy() more than once has no effect.
func (fb *Framebuffer) Destroy() {
	if fb.destroyed {
		return
	}

	fb.ctx.be.DeleteFramebuffer(fb.id)
	fb.destroyed = true
	delete(fb.ctx.framebuffers, fb.id)

	if fb.ctx.read == fb {
		fb.ctx.read = nil
		fb.ctx.logf("%v destroyed while bound for %v", fb, Read)
	}
	if fb.ctx.draw == fb {
		fb.ctx.draw = nil
		fb.ctx.logf("%v destroyed while bound for %v", fb, Draw)
	}
}

// returns false and logs the operation if the render target has been
// destroyed. nothing is sent to the backend for a destroyed render target
// because the backend would apply it to whatever is bound for the role
func (fb *Framebuffer) alive(op string) bool {
	if fb.destroyed {
		fb.ctx.logf("%s ignored for destroyed %v", op, fb)
		return false
	}
	return true
}

// IsDestroyed returns true if Destroy() has been called.
func (fb *Framebuffer) IsDestroyed() bool {
	return fb.destroyed
}

// Bind the render target for the role. Binding for Read or Draw leaves the
// binding of the other role unchanged.
func (fb *Framebuffer) Bind(t Target) {
	fb.ctx.bind(fb, t)
}

// IsBound returns true if the render target is bound for the role. For
// ReadDraw the render target must be bound for both roles.
func (fb *Framebuffer) IsBound(t Target) bool {
	switch t {
	case Read:
		return fb.ctx.read == fb
	case Draw:
		return fb.ctx.draw == fb
	case ReadDraw:
		return fb.ctx.read == fb && fb.ctx.draw == fb
	}
	return false
}
