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

import "github.com/jetsetilly/rendertarget/backend"

// StencilFace selects which polygon faces a stencil mask applies to.
type StencilFace int

// List of valid StencilFace values.
const (
	FrontFace StencilFace = iota
	BackFace
	FrontAndBackFaces
)

func (f StencilFace) String() string {
	switch f {
	case FrontFace:
		return "front"
	case BackFace:
		return "back"
	case FrontAndBackFaces:
		return "front and back"
	}
	return "unknown face"
}

func (f StencilFace) enum() backend.Enum {
	switch f {
	case FrontFace:
		return backend.FRONT
	case BackFace:
		return backend.BACK
	case FrontAndBackFaces:
		return backend.FRONT_AND_BACK
	}
	return backend.NONE
}

// SetColorMask sets which colour components can be written.
func (ctx *Context) SetColorMask(r, g, b, a bool) {
	ctx.be.ColorMask(r, g, b, a)
	ctx.colourMask = [4]bool{r, g, b, a}
}

// ColorMask returns which colour components can be written.
func (ctx *Context) ColorMask() (r, g, b, a bool) {
	return ctx.colourMask[0], ctx.colourMask[1], ctx.colourMask[2], ctx.colourMask[3]
}

// SetDepthMask sets whether the depth buffer can be written.
func (ctx *Context) SetDepthMask(allow bool) {
	ctx.be.DepthMask(allow)
	ctx.depthMask = allow
}

// DepthMask returns whether the depth buffer can be written.
func (ctx *Context) DepthMask() bool {
	return ctx.depthMask
}

// SetStencilMask sets which bits of the stencil buffer can be written, for
// both front and back facing polygons.
func (ctx *Context) SetStencilMask(bits uint32) {
	ctx.be.StencilMask(bits)
	ctx.stencilMask = [2]uint32{bits, bits}
}

// SetStencilMaskFace sets which bits of the stencil buffer can be written for
// the polygon face.
func (ctx *Context) SetStencilMaskFace(face StencilFace, bits uint32) {
	ctx.be.StencilMaskSeparate(face.enum(), bits)
	switch face {
	case FrontFace:
		ctx.stencilMask[0] = bits
	case BackFace:
		ctx.stencilMask[1] = bits
	case FrontAndBackFaces:
		ctx.stencilMask = [2]uint32{bits, bits}
	}
}

// StencilMask returns the stencil write mask for front and back facing
// polygons.
func (ctx *Context) StencilMask() (front uint32, back uint32) {
	return ctx.stencilMask[0], ctx.stencilMask[1]
}
