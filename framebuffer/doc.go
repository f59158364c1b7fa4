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

// Package framebuffer describes where rendering output goes, how fragments
// are combined with what is already there and how pixel data is moved between
// render targets and host memory.
//
// All state belongs to a Context. The Context mirrors the state of the
// graphics backend it was created with: the enabled features, the clear
// values, the blend configuration, the write masks and, for each of the Read
// and Draw roles, the render target that is currently bound.
//
//	ctx := framebuffer.NewContext(be, nil)
//	ctx.SetFeature(framebuffer.DepthTest, true)
//
// A Framebuffer is a render target with a table of attachments. Surfaces are
// attached at a colour point, the depth point, the stencil point or the
// combined depth-stencil point:
//
//	fb := ctx.NewFramebuffer()
//	fb.AttachRenderbuffer(framebuffer.ReadDraw, framebuffer.DepthStencil, depth)
//	fb.AttachRenderbuffer(framebuffer.ReadDraw, framebuffer.Color(0), colour)
//	fb.MapForDraw(0)
//	ctx.Clear()
//
// Attaching a surface binds the Framebuffer for the role named in the call
// before the attachment is made. The two backend calls are made together and
// the binding is left in place afterwards.
//
// Operations do not check the result of the backend calls they make. Errors
// are reported by the backend through its own error channel, which can be
// queried with Context.Error(). The Framebuffer.Validate() and
// Framebuffer.Status() functions are available for when it is useful to check
// a render target before it is used.
//
// The window-system target is never represented by a Framebuffer. It is bound
// with Context.BindDefault() and its buffers are selected with
// Context.MapDefaultForDraw() and Context.MapDefaultForRead().
//
// A Context is not safe for concurrent use. It must only be used from the
// thread that owns the graphics context of the backend.
package framebuffer
