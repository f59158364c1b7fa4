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

package backend

// Backend is the command-dispatch interface. Methods are named after, and
// behave like, the OpenGL function of the same name. Each method is one
// primitive call.
//
// A Backend is used from a single thread. If the implementation requires it,
// that thread must be the one that owns the graphics context.
type Backend interface {
	GenFramebuffer() uint32
	DeleteFramebuffer(fbo uint32)
	BindFramebuffer(target Enum, fbo uint32)
	FramebufferRenderbuffer(target Enum, attachment Enum, renderbufferTarget Enum, renderbuffer uint32)
	FramebufferTexture1D(target Enum, attachment Enum, textureTarget Enum, texture uint32, level int32)
	FramebufferTexture2D(target Enum, attachment Enum, textureTarget Enum, texture uint32, level int32)
	FramebufferTexture3D(target Enum, attachment Enum, textureTarget Enum, texture uint32, level int32, layer int32)
	DrawBuffers(bufs []Enum)
	ReadBuffer(src Enum)
	CheckFramebufferStatus(target Enum) Enum

	Enable(capability Enum)
	Disable(capability Enum)
	Viewport(x, y, width, height int32)

	Clear(mask uint32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	ClearStencil(s int32)

	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB Enum, modeAlpha Enum)
	BlendFunc(src Enum, dst Enum)
	BlendFuncSeparate(srcRGB Enum, dstRGB Enum, srcAlpha Enum, dstAlpha Enum)
	BlendColor(r, g, b, a float32)

	ColorMask(r, g, b, a bool)
	DepthMask(flag bool)
	StencilMask(mask uint32)
	StencilMaskSeparate(face Enum, mask uint32)

	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter Enum)

	// ReadPixels writes the pixel data into the pixels slice. The slice must
	// be large enough for the rectangle in the requested format and type.
	ReadPixels(x, y, width, height int32, format Enum, xtype Enum, pixels []byte)

	// ReadPixelsBuffer reads pixels into a buffer object. The storage of the
	// buffer is (re)specified with the size and usage hint before reading.
	ReadPixelsBuffer(x, y, width, height int32, format Enum, xtype Enum, buffer uint32, size int, usage Enum)

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)

	// GetBufferData copies the contents of the buffer object into data.
	GetBufferData(buffer uint32, data []byte)

	GetError() Enum
}

// Allocator is implemented by backends that can create storage for
// renderbuffers and textures. Allocation policy is left to the caller.
type Allocator interface {
	GenRenderbuffer(internalFormat Enum, width, height, samples int32) uint32
	DeleteRenderbuffer(renderbuffer uint32)

	// GenTexture creates a texture of the target type with the number of
	// mipmap levels specified. Height and depth are ignored for target
	// types that do not need them.
	GenTexture(target Enum, internalFormat Enum, width, height, depth, levels, samples int32) uint32
	DeleteTexture(texture uint32)
}
