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
	"strings"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/colour"
	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/maskset"
)

// ClearBuffer is a buffer that can be named in a ClearMask.
type ClearBuffer uint32

// List of valid ClearBuffer values. The values are the same as the backend
// buffer bits.
const (
	ClearColor   = ClearBuffer(backend.COLOR_BUFFER_BIT)
	ClearDepth   = ClearBuffer(backend.DEPTH_BUFFER_BIT)
	ClearStencil = ClearBuffer(backend.STENCIL_BUFFER_BIT)
)

// ClearBuffers lists every ClearBuffer.
var ClearBuffers = []ClearBuffer{ClearColor, ClearDepth, ClearStencil}

func (b ClearBuffer) String() string {
	switch b {
	case ClearColor:
		return "color"
	case ClearDepth:
		return "depth"
	case ClearStencil:
		return "stencil"
	}
	return "unknown buffer"
}

// ClearMask is a set of ClearBuffer values.
type ClearMask = maskset.Set[ClearBuffer]

// ParseClearMask converts a string of buffer names separated by the pipe
// symbol into a ClearMask. The string "none" and the empty string are both
// the empty mask.
func ParseClearMask(s string) (ClearMask, error) {
	var m ClearMask

	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return m, nil
	}

	for _, n := range strings.Split(s, "|") {
		var found bool
		n = strings.TrimSpace(n)
		for _, b := range ClearBuffers {
			if strings.EqualFold(n, b.String()) {
				m = m.With(b)
				found = true
				break
			}
		}
		if !found {
			return ClearMask{}, curated.Errorf(InvalidClearMask, s)
		}
	}

	return m, nil
}

// SetClearMask sets the mask used by Clear().
func (ctx *Context) SetClearMask(mask ClearMask) {
	ctx.clearMask = mask
}

// ClearMask returns the mask used by Clear().
func (ctx *Context) ClearMask() ClearMask {
	return ctx.clearMask
}

// Clear the buffers of the render target bound for Draw, using the clear mask.
// The clear mask is all buffers unless it has been changed with
// SetClearMask().
func (ctx *Context) Clear() {
	ctx.ClearWith(ctx.clearMask)
}

// ClearWith clears the buffers named in the mask of the render target bound
// for Draw.
//
// The depth buffer is only cleared if the DepthTest feature is enabled and the
// stencil buffer is only cleared if the StencilTest feature is enabled. If
// there is nothing left to clear then no backend call is made.
func (ctx *Context) ClearWith(mask ClearMask) {
	if !ctx.features[DepthTest] {
		mask = mask.Without(ClearDepth)
	}
	if !ctx.features[StencilTest] {
		mask = mask.Without(ClearStencil)
	}
	if mask.IsEmpty() {
		return
	}
	ctx.be.Clear(mask.Bits())
}

// SetClearColor sets the value the colour buffers are cleared to.
func (ctx *Context) SetClearColor(c colour.Colour) {
	ctx.be.ClearColor(c.R, c.G, c.B, c.A)
	ctx.clearColour = c
}

// SetClearDepth sets the value the depth buffer is cleared to.
func (ctx *Context) SetClearDepth(depth float64) {
	ctx.be.ClearDepth(depth)
	ctx.clearDepth = depth
}

// SetClearStencil sets the value the stencil buffer is cleared to.
func (ctx *Context) SetClearStencil(stencil int32) {
	ctx.be.ClearStencil(stencil)
	ctx.clearStencil = stencil
}

// ClearValues returns the values used for clearing the colour, depth and
// stencil buffers.
func (ctx *Context) ClearValues() (c colour.Colour, depth float64, stencil int32) {
	return ctx.clearColour, ctx.clearDepth, ctx.clearStencil
}
