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
	"sort"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/surface"
)

type pointKind int

const (
	colorPoint pointKind = iota
	depthPoint
	stencilPoint
	depthStencilPoint
)

// AttachmentPoint is a location in the attachment table of a Framebuffer.
// Colour points are created with the Color() function.
type AttachmentPoint struct {
	kind  pointKind
	index int
}

// The non-colour attachment points. A surface attached at DepthStencil is used
// for both depth and stencil.
var (
	Depth        = AttachmentPoint{kind: depthPoint}
	Stencil      = AttachmentPoint{kind: stencilPoint}
	DepthStencil = AttachmentPoint{kind: depthStencilPoint}
)

// Color returns the colour attachment point with the index. The index must be
// less than the number of colour attachments supported by the backend.
func Color(index int) AttachmentPoint {
	return AttachmentPoint{kind: colorPoint, index: index}
}

// IsColor returns true if the point is a colour attachment point.
func (p AttachmentPoint) IsColor() bool {
	return p.kind == colorPoint
}

// Index returns the index of a colour attachment point. Returns -1 for other
// points.
func (p AttachmentPoint) Index() int {
	if p.kind != colorPoint {
		return -1
	}
	return p.index
}

func (p AttachmentPoint) String() string {
	switch p.kind {
	case colorPoint:
		return fmt.Sprintf("color%d", p.index)
	case depthPoint:
		return "depth"
	case stencilPoint:
		return "stencil"
	case depthStencilPoint:
		return "depth/stencil"
	}
	return "unknown attachment point"
}

func (p AttachmentPoint) enum() backend.Enum {
	switch p.kind {
	case colorPoint:
		return backend.COLOR_ATTACHMENT0 + backend.Enum(p.index)
	case depthPoint:
		return backend.DEPTH_ATTACHMENT
	case stencilPoint:
		return backend.STENCIL_ATTACHMENT
	case depthStencilPoint:
		return backend.DEPTH_STENCIL_ATTACHMENT
	}
	return backend.NONE
}

// less orders colour points by index followed by depth, stencil and
// depth/stencil.
func (p AttachmentPoint) less(q AttachmentPoint) bool {
	if p.kind != q.kind {
		return p.kind < q.kind
	}
	return p.index < q.index
}

// AttachRenderbuffer binds the render target for the role and attaches the
// renderbuffer at the attachment point.
func (fb *Framebuffer) AttachRenderbuffer(t Target, point AttachmentPoint, s surface.Surface) {
	fb.Attach(t, point, surface.Attachment{Surface: s})
}

// AttachTexture1D binds the render target for the role and attaches the mip
// level of the one dimensional texture at the attachment point.
func (fb *Framebuffer) AttachTexture1D(t Target, point AttachmentPoint, s surface.Surface, mip int32) {
	fb.Attach(t, point, surface.Attachment{Surface: s, Mip: mip})
}

// AttachTexture2D binds the render target for the role and attaches the mip
// level of the two dimensional texture at the attachment point.
func (fb *Framebuffer) AttachTexture2D(t Target, point AttachmentPoint, s surface.Surface, mip int32) {
	fb.Attach(t, point, surface.Attachment{Surface: s, Mip: mip})
}

// AttachTexture3D binds the render target for the role and attaches a single
// layer of the mip level of the three dimensional texture at the attachment
// point. Array textures are also attached with this function.
func (fb *Framebuffer) AttachTexture3D(t Target, point AttachmentPoint, s surface.Surface, mip int32, layer int32) {
	fb.Attach(t, point, surface.Attachment{Surface: s, Mip: mip, Layer: layer})
}

// AttachCubeMapTexture binds the render target for the role and attaches one
// face of the mip level of the cube map at the attachment point.
func (fb *Framebuffer) AttachCubeMapTexture(t Target, point AttachmentPoint, s surface.Surface, face surface.Face, mip int32) {
	fb.Attach(t, point, surface.Attachment{Surface: s, Mip: mip, Face: face})
}

// Attach binds the render target for the role and attaches the surface at the
// attachment point. The backend call used for the attachment is decided by the
// kind of the surface.
//
// The bind and the attachment always happen together. The render target
// remains bound for the role after the function returns.
//
// The surface replaces whatever was previously attached at the point. Other
// points are not affected. Nothing happens if the render target has been
// destroyed.
func (fb *Framebuffer) Attach(t Target, point AttachmentPoint, a surface.Attachment) {
	if !fb.alive("attach") {
		return
	}

	if fb.ctx.Preferences.Validate.Get().(bool) {
		if err := checkAttachment(point, a); err != nil {
			fb.ctx.log(err)
		}
	}

	fb.Bind(t)

	s := a.Surface
	switch s.Kind() {
	case surface.Renderbuffer:
		fb.ctx.be.FramebufferRenderbuffer(t.enum(), point.enum(), backend.RENDERBUFFER, s.ID())
	case surface.Texture1D:
		if s.TargetKind() == surface.Array {
			fb.ctx.be.FramebufferTexture3D(t.enum(), point.enum(), a.TextureTarget(), s.ID(), a.Mip, a.Layer)
		} else {
			fb.ctx.be.FramebufferTexture1D(t.enum(), point.enum(), a.TextureTarget(), s.ID(), a.Mip)
		}
	case surface.Texture2D:
		if s.TargetKind() == surface.Array {
			fb.ctx.be.FramebufferTexture3D(t.enum(), point.enum(), a.TextureTarget(), s.ID(), a.Mip, a.Layer)
		} else {
			fb.ctx.be.FramebufferTexture2D(t.enum(), point.enum(), a.TextureTarget(), s.ID(), a.Mip)
		}
	case surface.Texture3D:
		fb.ctx.be.FramebufferTexture3D(t.enum(), point.enum(), a.TextureTarget(), s.ID(), a.Mip, a.Layer)
	case surface.CubeMap:
		fb.ctx.be.FramebufferTexture2D(t.enum(), point.enum(), a.TextureTarget(), s.ID(), a.Mip)
	}

	fb.attachments[point] = a
}

// Detach binds the render target for the role and removes whatever is attached
// at the attachment point.
func (fb *Framebuffer) Detach(t Target, point AttachmentPoint) {
	if !fb.alive("detach") {
		return
	}
	fb.Bind(t)
	fb.ctx.be.FramebufferRenderbuffer(t.enum(), point.enum(), backend.RENDERBUFFER, 0)
	delete(fb.attachments, point)
}

// Attachment returns the surface attached at the attachment point. The ok
// value is false if nothing is attached.
func (fb *Framebuffer) Attachment(point AttachmentPoint) (surface.Attachment, bool) {
	a, ok := fb.attachments[point]
	return a, ok
}

// AttachedPoint is an entry in the list returned by Attachments().
type AttachedPoint struct {
	Point      AttachmentPoint
	Attachment surface.Attachment
}

func (a AttachedPoint) String() string {
	return fmt.Sprintf("%v: %v", a.Point, a.Attachment)
}

// Attachments returns every occupied attachment point. Colour points are
// listed first in index order.
func (fb *Framebuffer) Attachments() []AttachedPoint {
	l := make([]AttachedPoint, 0, len(fb.attachments))
	for p, a := range fb.attachments {
		l = append(l, AttachedPoint{Point: p, Attachment: a})
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Point.less(l[j].Point)
	})
	return l
}
