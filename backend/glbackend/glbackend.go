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

// Package glbackend implements backend.Backend and backend.Allocator with
// the OpenGL 3.2 core profile bindings from go-gl.
//
// The package does not create a graphics context. A context must be current
// on the calling thread before New() is called and for as long as the
// Backend is used. The glcontext package can be used to create one.
package glbackend

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/curated"
)

// Sentinal error returned by New().
const (
	InitFailed = "glbackend: %v"
)

var _ backend.Backend = (*Backend)(nil)
var _ backend.Allocator = (*Backend)(nil)

// Backend issues each call to the current OpenGL context.
type Backend struct {
	version  string
	renderer string
}

// New is the preferred method of initialisation for the Backend type. The
// OpenGL function pointers are loaded for the current context.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, curated.Errorf(InitFailed, err)
	}
	return &Backend{
		version:  gl.GoStr(gl.GetString(gl.VERSION)),
		renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}, nil
}

// Version returns the version string of the OpenGL context.
func (be *Backend) Version() string {
	return be.version
}

// Renderer returns the renderer string of the OpenGL context.
func (be *Backend) Renderer() string {
	return be.renderer
}

func (be *Backend) GenFramebuffer() uint32 {
	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	return fbo
}

func (be *Backend) DeleteFramebuffer(fbo uint32) {
	gl.DeleteFramebuffers(1, &fbo)
}

func (be *Backend) BindFramebuffer(target backend.Enum, fbo uint32) {
	gl.BindFramebuffer(uint32(target), fbo)
}

func (be *Backend) FramebufferRenderbuffer(target backend.Enum, attachment backend.Enum, renderbufferTarget backend.Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbufferTarget), renderbuffer)
}

func (be *Backend) FramebufferTexture1D(target backend.Enum, attachment backend.Enum, textureTarget backend.Enum, texture uint32, level int32) {
	gl.FramebufferTexture1D(uint32(target), uint32(attachment), uint32(textureTarget), texture, level)
}

func (be *Backend) FramebufferTexture2D(target backend.Enum, attachment backend.Enum, textureTarget backend.Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textureTarget), texture, level)
}

// FramebufferTexture3D attaches a layer of a 3D texture. Array textures are
// attached with FramebufferTextureLayer().
func (be *Backend) FramebufferTexture3D(target backend.Enum, attachment backend.Enum, textureTarget backend.Enum, texture uint32, level int32, layer int32) {
	if textureTarget == backend.TEXTURE_3D {
		gl.FramebufferTexture3D(uint32(target), uint32(attachment), uint32(textureTarget), texture, level, layer)
		return
	}
	gl.FramebufferTextureLayer(uint32(target), uint32(attachment), texture, level, layer)
}

func (be *Backend) DrawBuffers(bufs []backend.Enum) {
	if len(bufs) == 0 {
		gl.DrawBuffers(0, nil)
		return
	}
	b := make([]uint32, len(bufs))
	for i := range bufs {
		b[i] = uint32(bufs[i])
	}
	gl.DrawBuffers(int32(len(b)), &b[0])
}

func (be *Backend) ReadBuffer(src backend.Enum) {
	gl.ReadBuffer(uint32(src))
}

func (be *Backend) CheckFramebufferStatus(target backend.Enum) backend.Enum {
	return backend.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (be *Backend) Enable(capability backend.Enum) {
	gl.Enable(uint32(capability))
}

func (be *Backend) Disable(capability backend.Enum) {
	gl.Disable(uint32(capability))
}

func (be *Backend) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (be *Backend) Clear(mask uint32) {
	gl.Clear(mask)
}

func (be *Backend) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (be *Backend) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (be *Backend) ClearStencil(s int32) {
	gl.ClearStencil(s)
}

func (be *Backend) BlendEquation(mode backend.Enum) {
	gl.BlendEquation(uint32(mode))
}

func (be *Backend) BlendEquationSeparate(modeRGB backend.Enum, modeAlpha backend.Enum) {
	gl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (be *Backend) BlendFunc(src backend.Enum, dst backend.Enum) {
	gl.BlendFunc(uint32(src), uint32(dst))
}

func (be *Backend) BlendFuncSeparate(srcRGB backend.Enum, dstRGB backend.Enum, srcAlpha backend.Enum, dstAlpha backend.Enum) {
	gl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (be *Backend) BlendColor(r, g, b, a float32) {
	gl.BlendColor(r, g, b, a)
}

func (be *Backend) ColorMask(r, g, b, a bool) {
	gl.ColorMask(r, g, b, a)
}

func (be *Backend) DepthMask(flag bool) {
	gl.DepthMask(flag)
}

func (be *Backend) StencilMask(mask uint32) {
	gl.StencilMask(mask)
}

func (be *Backend) StencilMaskSeparate(face backend.Enum, mask uint32) {
	gl.StencilMaskSeparate(uint32(face), mask)
}

func (be *Backend) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter backend.Enum) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, uint32(filter))
}

func (be *Backend) ReadPixels(x, y, width, height int32, format backend.Enum, xtype backend.Enum, pixels []byte) {
	if len(pixels) == 0 {
		return
	}

	// rows are tightly packed
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(xtype), gl.Ptr(pixels))
}

func (be *Backend) ReadPixelsBuffer(x, y, width, height int32, format backend.Enum, xtype backend.Enum, buffer uint32, size int, usage backend.Enum) {
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, buffer)
	gl.BufferData(gl.PIXEL_PACK_BUFFER, size, nil, uint32(usage))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(xtype), gl.PtrOffset(0))
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, 0)
}

func (be *Backend) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (be *Backend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (be *Backend) GetBufferData(buffer uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, buffer)
	gl.GetBufferSubData(gl.PIXEL_PACK_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.PIXEL_PACK_BUFFER, 0)
}

func (be *Backend) GetError() backend.Enum {
	return backend.Enum(gl.GetError())
}
