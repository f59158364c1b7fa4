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

// Package recorder wraps a backend.Backend and keeps a record of every call
// made to it. The record is useful when the order of calls matters, for
// example to confirm that a framebuffer is bound before anything is attached
// to it.
package recorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/rendertarget/backend"
)

// Call is a single recorded call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	s := strings.Builder{}
	s.WriteString(c.Name)
	s.WriteString("(")
	for i, a := range c.Args {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(fmt.Sprintf("%v", a))
	}
	s.WriteString(")")
	return s.String()
}

var _ backend.Backend = (*Recorder)(nil)

// Recorder is a backend.Backend that forwards each call to another Backend
// after recording it.
type Recorder struct {
	be    backend.Backend
	calls []Call

	// calls are written to echo as they are made
	echo io.Writer
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type.
func NewRecorder(be backend.Backend) *Recorder {
	return &Recorder{be: be}
}

// SetEcho sets the io.Writer to which calls are written as they are made. A
// nil value disables echoing.
func (r *Recorder) SetEcho(w io.Writer) {
	r.echo = w
}

func (r *Recorder) record(name string, args ...any) {
	c := Call{Name: name, Args: args}
	r.calls = append(r.calls, c)
	if r.echo != nil {
		io.WriteString(r.echo, c.String())
		io.WriteString(r.echo, "\n")
	}
}

// Calls returns a copy of the record.
func (r *Recorder) Calls() []Call {
	return append([]Call(nil), r.calls...)
}

// Names returns the names of the recorded calls in order.
func (r *Recorder) Names() []string {
	n := make([]string, len(r.calls))
	for i, c := range r.calls {
		n[i] = c.Name
	}
	return n
}

// Reset clears the record.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
}

func (r *Recorder) String() string {
	s := strings.Builder{}
	for _, c := range r.calls {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Inner returns the Backend that calls are forwarded to.
func (r *Recorder) Inner() backend.Backend {
	return r.be
}

func (r *Recorder) GenFramebuffer() uint32 {
	id := r.be.GenFramebuffer()
	r.record("GenFramebuffer", id)
	return id
}

func (r *Recorder) DeleteFramebuffer(fbo uint32) {
	r.record("DeleteFramebuffer", fbo)
	r.be.DeleteFramebuffer(fbo)
}

func (r *Recorder) BindFramebuffer(target backend.Enum, fbo uint32) {
	r.record("BindFramebuffer", target, fbo)
	r.be.BindFramebuffer(target, fbo)
}

func (r *Recorder) FramebufferRenderbuffer(target backend.Enum, attachment backend.Enum, renderbufferTarget backend.Enum, renderbuffer uint32) {
	r.record("FramebufferRenderbuffer", target, attachment, renderbufferTarget, renderbuffer)
	r.be.FramebufferRenderbuffer(target, attachment, renderbufferTarget, renderbuffer)
}

func (r *Recorder) FramebufferTexture1D(target backend.Enum, attachment backend.Enum, textureTarget backend.Enum, texture uint32, level int32) {
	r.record("FramebufferTexture1D", target, attachment, textureTarget, texture, level)
	r.be.FramebufferTexture1D(target, attachment, textureTarget, texture, level)
}

func (r *Recorder) FramebufferTexture2D(target backend.Enum, attachment backend.Enum, textureTarget backend.Enum, texture uint32, level int32) {
	r.record("FramebufferTexture2D", target, attachment, textureTarget, texture, level)
	r.be.FramebufferTexture2D(target, attachment, textureTarget, texture, level)
}

func (r *Recorder) FramebufferTexture3D(target backend.Enum, attachment backend.Enum, textureTarget backend.Enum, texture uint32, level int32, layer int32) {
	r.record("FramebufferTexture3D", target, attachment, textureTarget, texture, level, layer)
	r.be.FramebufferTexture3D(target, attachment, textureTarget, texture, level, layer)
}

func (r *Recorder) DrawBuffers(bufs []backend.Enum) {
	r.record("DrawBuffers", append([]backend.Enum(nil), bufs...))
	r.be.DrawBuffers(bufs)
}

func (r *Recorder) ReadBuffer(src backend.Enum) {
	r.record("ReadBuffer", src)
	r.be.ReadBuffer(src)
}

func (r *Recorder) CheckFramebufferStatus(target backend.Enum) backend.Enum {
	status := r.be.CheckFramebufferStatus(target)
	r.record("CheckFramebufferStatus", target)
	return status
}

func (r *Recorder) Enable(capability backend.Enum) {
	r.record("Enable", capability)
	r.be.Enable(capability)
}

func (r *Recorder) Disable(capability backend.Enum) {
	r.record("Disable", capability)
	r.be.Disable(capability)
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport", x, y, width, height)
	r.be.Viewport(x, y, width, height)
}

func (r *Recorder) Clear(mask uint32) {
	r.record("Clear", fmt.Sprintf("%#04x", mask))
	r.be.Clear(mask)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
	r.be.ClearColor(red, green, blue, alpha)
}

func (r *Recorder) ClearDepth(depth float64) {
	r.record("ClearDepth", depth)
	r.be.ClearDepth(depth)
}

func (r *Recorder) ClearStencil(s int32) {
	r.record("ClearStencil", s)
	r.be.ClearStencil(s)
}

func (r *Recorder) BlendEquation(mode backend.Enum) {
	r.record("BlendEquation", mode)
	r.be.BlendEquation(mode)
}

func (r *Recorder) BlendEquationSeparate(modeRGB backend.Enum, modeAlpha backend.Enum) {
	r.record("BlendEquationSeparate", modeRGB, modeAlpha)
	r.be.BlendEquationSeparate(modeRGB, modeAlpha)
}

func (r *Recorder) BlendFunc(src backend.Enum, dst backend.Enum) {
	r.record("BlendFunc", src, dst)
	r.be.BlendFunc(src, dst)
}

func (r *Recorder) BlendFuncSeparate(srcRGB backend.Enum, dstRGB backend.Enum, srcAlpha backend.Enum, dstAlpha backend.Enum) {
	r.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
	r.be.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (r *Recorder) BlendColor(red, green, blue, alpha float32) {
	r.record("BlendColor", red, green, blue, alpha)
	r.be.BlendColor(red, green, blue, alpha)
}

func (r *Recorder) ColorMask(red, green, blue, alpha bool) {
	r.record("ColorMask", red, green, blue, alpha)
	r.be.ColorMask(red, green, blue, alpha)
}

func (r *Recorder) DepthMask(flag bool) {
	r.record("DepthMask", flag)
	r.be.DepthMask(flag)
}

func (r *Recorder) StencilMask(mask uint32) {
	r.record("StencilMask", fmt.Sprintf("%#08x", mask))
	r.be.StencilMask(mask)
}

func (r *Recorder) StencilMaskSeparate(face backend.Enum, mask uint32) {
	r.record("StencilMaskSeparate", face, fmt.Sprintf("%#08x", mask))
	r.be.StencilMaskSeparate(face, mask)
}

func (r *Recorder) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter backend.Enum) {
	r.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, fmt.Sprintf("%#04x", mask), filter)
	r.be.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (r *Recorder) ReadPixels(x, y, width, height int32, format backend.Enum, xtype backend.Enum, pixels []byte) {
	r.record("ReadPixels", x, y, width, height, format, xtype, len(pixels))
	r.be.ReadPixels(x, y, width, height, format, xtype, pixels)
}

func (r *Recorder) ReadPixelsBuffer(x, y, width, height int32, format backend.Enum, xtype backend.Enum, buffer uint32, size int, usage backend.Enum) {
	r.record("ReadPixelsBuffer", x, y, width, height, format, xtype, buffer, size, usage)
	r.be.ReadPixelsBuffer(x, y, width, height, format, xtype, buffer, size, usage)
}

func (r *Recorder) GenBuffer() uint32 {
	id := r.be.GenBuffer()
	r.record("GenBuffer", id)
	return id
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer", buffer)
	r.be.DeleteBuffer(buffer)
}

func (r *Recorder) GetBufferData(buffer uint32, data []byte) {
	r.record("GetBufferData", buffer, len(data))
	r.be.GetBufferData(buffer, data)
}

func (r *Recorder) GetError() backend.Enum {
	err := r.be.GetError()
	r.record("GetError")
	return err
}
