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
	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/surface"
)

// checkAttachment returns an error if the surface cannot be attached at the
// point.
func checkAttachment(point AttachmentPoint, a surface.Attachment) error {
	s := a.Surface
	f := s.Format()

	var ok bool
	switch point.kind {
	case colorPoint:
		ok = f.IsColor() && point.index >= 0 && point.index < backend.MaxColorAttachments
	case depthPoint:
		ok = f.HasDepth()
	case stencilPoint:
		ok = f.HasStencil()
	case depthStencilPoint:
		ok = f.HasDepth() && f.HasStencil()
	}
	if !ok {
		return curated.Errorf(IncompatibleAttachment, a, point)
	}

	if a.Mip < 0 || a.Mip >= s.Levels() {
		return curated.Errorf(InvalidMipLevel, s, a.Mip)
	}

	switch s.Kind() {
	case surface.Texture1D, surface.Texture2D, surface.Texture3D:
		layers := s.Layers()
		if s.Kind() == surface.Texture3D {
			layers = max(layers>>a.Mip, 1)
		}
		if a.Layer < 0 || a.Layer >= layers {
			return curated.Errorf(InvalidLayer, s, a.Layer)
		}
	}

	return nil
}

// Validate checks the attachment table of the render target without asking
// the backend. The first problem found is returned. The checks are:
//
//	1. the render target has at least one attachment
//	2. the format of each surface is suitable for its attachment point
//	3. the mip level and layer of each attachment exist
//	4. every colour attachment in the draw mapping is occupied
//	5. the colour attachment in the read mapping is occupied
//
// Validate is a convenience and is never called by any other function in the
// package. A render target that passes may still be rejected by the backend,
// for example because the attached surfaces are of different sizes. Use
// Status() to ask the backend.
func (fb *Framebuffer) Validate() error {
	l := fb.Attachments()
	if len(l) == 0 {
		return curated.Errorf(NoAttachments, fb)
	}

	for _, a := range l {
		if err := checkAttachment(a.Point, a.Attachment); err != nil {
			return err
		}
	}

	for _, idx := range fb.drawMapping {
		if idx == Discard {
			continue
		}
		if _, ok := fb.attachments[Color(idx)]; !ok {
			return curated.Errorf(MissingAttachment, Color(idx), Draw)
		}
	}

	if fb.readMapping != Discard {
		if _, ok := fb.attachments[Color(fb.readMapping)]; !ok {
			return curated.Errorf(MissingAttachment, Color(fb.readMapping), Read)
		}
	}

	return nil
}

// Status binds the render target for the role and asks the backend whether it
// is complete. Returns nil if it is.
func (fb *Framebuffer) Status(t Target) error {
	fb.Bind(t)
	st := fb.ctx.be.CheckFramebufferStatus(t.enum())
	if st == backend.FRAMEBUFFER_COMPLETE {
		return nil
	}
	return curated.Errorf(IncompleteFramebuffer, fb, st)
}
