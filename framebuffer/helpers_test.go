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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/rendertarget/backend/softgl"
	"github.com/jetsetilly/rendertarget/framebuffer"
	"github.com/jetsetilly/rendertarget/surface"
	"github.com/jetsetilly/rendertarget/test"
)

const (
	width  = 8
	height = 6
)

func newContext(t *testing.T) (*framebuffer.Context, *softgl.Backend) {
	t.Helper()
	be := softgl.New(width, height)
	p, err := framebuffer.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Logging.Set(false))
	return framebuffer.NewContext(be, p), be
}

func renderbuffer(t *testing.T, be *softgl.Backend, format surface.Format) surface.Surface {
	t.Helper()
	s, err := surface.Allocate(be, surface.Description{
		Kind:   surface.Renderbuffer,
		Format: format,
		Width:  width,
		Height: height,
	})
	test.DemandSuccess(t, err)
	return s
}

// a render target with a colour renderbuffer at colour point zero and a
// depth/stencil renderbuffer, bound for ReadDraw
func newTarget(t *testing.T, ctx *framebuffer.Context, be *softgl.Backend) *framebuffer.Framebuffer {
	t.Helper()
	fb := ctx.NewFramebuffer()
	fb.AttachRenderbuffer(framebuffer.ReadDraw, framebuffer.DepthStencil, renderbuffer(t, be, surface.Depth24Stencil8))
	fb.AttachRenderbuffer(framebuffer.ReadDraw, framebuffer.Color(0), renderbuffer(t, be, surface.RGBA32F))
	test.DemandSuccess(t, ctx.Error())
	return fb
}

// fill the depth and stencil buffers of the render target bound for Draw with
// known values. features are left disabled
func primeDepthStencil(ctx *framebuffer.Context, depth float64, stencil int32) {
	ctx.SetFeature(framebuffer.DepthTest, true)
	ctx.SetFeature(framebuffer.StencilTest, true)
	ctx.SetClearDepth(depth)
	ctx.SetClearStencil(stencil)
	ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearDepth, framebuffer.ClearStencil))
	ctx.SetFeature(framebuffer.DepthTest, false)
	ctx.SetFeature(framebuffer.StencilTest, false)
}

// expect every depth and stencil value of the render target to be the values
// specified
func expectDepthStencil(t *testing.T, be *softgl.Backend, fb *framebuffer.Framebuffer, depth float32, stencil uint8) {
	t.Helper()
	for y := range height {
		for x := range width {
			d, ok := be.Depth(fb.ID(), x, y)
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, d, depth, x, y)
			s, ok := be.Stencil(fb.ID(), x, y)
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, s, stencil, x, y)
		}
	}
}
