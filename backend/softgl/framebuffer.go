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

package softgl

import (
	"slices"

	"github.com/jetsetilly/rendertarget/backend"
)

// attachment records what is attached to an attachment point.
type attachment struct {
	renderbuffer bool
	id           uint32
	target       backend.Enum
	level        int32
	layer        int32
}

type framebuffer struct {
	attachments map[backend.Enum]attachment
	drawBuffers []backend.Enum
	readBuffer  backend.Enum
}

// GenFramebuffer implements the backend.Backend interface.
func (be *Backend) GenFramebuffer() uint32 {
	id := be.genID()
	be.framebuffers[id] = &framebuffer{
		attachments: make(map[backend.Enum]attachment),
		drawBuffers: []backend.Enum{backend.COLOR_ATTACHMENT0},
		readBuffer:  backend.COLOR_ATTACHMENT0,
	}
	return id
}

// DeleteFramebuffer implements the backend.Backend interface. Deleting a
// bound framebuffer reverts the binding to the default framebuffer.
func (be *Backend) DeleteFramebuffer(fbo uint32) {
	if _, ok := be.framebuffers[fbo]; !ok {
		return
	}
	delete(be.framebuffers, fbo)
	if be.drawFBO == fbo {
		be.drawFBO = 0
	}
	if be.readFBO == fbo {
		be.readFBO = 0
	}
}

// BindFramebuffer implements the backend.Backend interface.
func (be *Backend) BindFramebuffer(target backend.Enum, fbo uint32) {
	if fbo != 0 {
		if _, ok := be.framebuffers[fbo]; !ok {
			be.setError(backend.INVALID_OPERATION)
			return
		}
	}

	switch target {
	case backend.FRAMEBUFFER:
		be.drawFBO = fbo
		be.readFBO = fbo
	case backend.DRAW_FRAMEBUFFER:
		be.drawFBO = fbo
	case backend.READ_FRAMEBUFFER:
		be.readFBO = fbo
	default:
		be.setError(backend.INVALID_ENUM)
	}
}

// framebuffer returns the framebuffer for the identity. the default
// framebuffer is returned for identity zero
func (be *Backend) framebuffer(fbo uint32) *framebuffer {
	if fbo == 0 {
		return be.def
	}
	return be.framebuffers[fbo]
}

// bound returns the identity of the framebuffer bound to the target and false
// if the target is not valid
func (be *Backend) bound(target backend.Enum) (uint32, bool) {
	switch target {
	case backend.FRAMEBUFFER, backend.DRAW_FRAMEBUFFER:
		return be.drawFBO, true
	case backend.READ_FRAMEBUFFER:
		return be.readFBO, true
	}
	return 0, false
}

func isColourAttachment(e backend.Enum) bool {
	return e >= backend.COLOR_ATTACHMENT0 && e < backend.COLOR_ATTACHMENT0+backend.MaxColorAttachments
}

func validAttachmentPoint(e backend.Enum) bool {
	switch e {
	case backend.DEPTH_ATTACHMENT, backend.STENCIL_ATTACHMENT, backend.DEPTH_STENCIL_ATTACHMENT:
		return true
	}
	return isColourAttachment(e)
}

// attach is the common part of the FramebufferRenderbuffer() and
// FramebufferTexture*() functions. a zero identity detaches
func (be *Backend) attach(target backend.Enum, point backend.Enum, a attachment) {
	fbo, ok := be.bound(target)
	if !ok || !validAttachmentPoint(point) {
		be.setError(backend.INVALID_ENUM)
		return
	}
	if fbo == 0 {
		be.setError(backend.INVALID_OPERATION)
		return
	}

	fb := be.framebuffers[fbo]

	points := []backend.Enum{point}
	if point == backend.DEPTH_STENCIL_ATTACHMENT {
		points = []backend.Enum{backend.DEPTH_ATTACHMENT, backend.STENCIL_ATTACHMENT}
	}

	for _, p := range points {
		if a.id == 0 {
			delete(fb.attachments, p)
		} else {
			fb.attachments[p] = a
		}
	}
}

// FramebufferRenderbuffer implements the backend.Backend interface.
func (be *Backend) FramebufferRenderbuffer(target backend.Enum, point backend.Enum, renderbufferTarget backend.Enum, renderbuffer uint32) {
	if renderbufferTarget != backend.RENDERBUFFER {
		be.setError(backend.INVALID_ENUM)
		return
	}
	if renderbuffer != 0 {
		if _, ok := be.renderbuffers[renderbuffer]; !ok {
			be.setError(backend.INVALID_OPERATION)
			return
		}
	}
	be.attach(target, point, attachment{
		renderbuffer: true,
		id:           renderbuffer,
		target:       backend.RENDERBUFFER,
	})
}

func cubeFace(target backend.Enum) (int32, bool) {
	if target >= backend.TEXTURE_CUBE_MAP_POSITIVE_X && target <= backend.TEXTURE_CUBE_MAP_NEGATIVE_Z {
		return int32(target - backend.TEXTURE_CUBE_MAP_POSITIVE_X), true
	}
	return 0, false
}

// attachTexture checks that the texture target agrees with the texture and
// that the level and layer exist
func (be *Backend) attachTexture(target backend.Enum, point backend.Enum, textureTarget backend.Enum, texture uint32, level int32, layer int32, allowed ...backend.Enum) {
	if !slices.Contains(allowed, textureTarget) {
		be.setError(backend.INVALID_ENUM)
		return
	}

	if texture == 0 {
		be.attach(target, point, attachment{})
		return
	}

	tex, ok := be.textures[texture]
	if !ok {
		be.setError(backend.INVALID_OPERATION)
		return
	}

	if face, ok := cubeFace(textureTarget); ok {
		if tex.target != backend.TEXTURE_CUBE_MAP {
			be.setError(backend.INVALID_OPERATION)
			return
		}
		layer = face
	} else if tex.target != textureTarget {
		be.setError(backend.INVALID_OPERATION)
		return
	}

	if tex.plane(level, layer) == nil {
		be.setError(backend.INVALID_VALUE)
		return
	}

	be.attach(target, point, attachment{
		id:     texture,
		target: textureTarget,
		level:  level,
		layer:  layer,
	})
}

// FramebufferTexture1D implements the backend.Backend interface.
func (be *Backend) FramebufferTexture1D(target backend.Enum, point backend.Enum, textureTarget backend.Enum, texture uint32, level int32) {
	be.attachTexture(target, point, textureTarget, texture, level, 0,
		backend.TEXTURE_1D)
}

// FramebufferTexture2D implements the backend.Backend interface.
func (be *Backend) FramebufferTexture2D(target backend.Enum, point backend.Enum, textureTarget backend.Enum, texture uint32, level int32) {
	be.attachTexture(target, point, textureTarget, texture, level, 0,
		backend.TEXTURE_2D, backend.TEXTURE_RECTANGLE, backend.TEXTURE_2D_MULTISAMPLE,
		backend.TEXTURE_CUBE_MAP_POSITIVE_X, backend.TEXTURE_CUBE_MAP_NEGATIVE_X,
		backend.TEXTURE_CUBE_MAP_POSITIVE_Y, backend.TEXTURE_CUBE_MAP_NEGATIVE_Y,
		backend.TEXTURE_CUBE_MAP_POSITIVE_Z, backend.TEXTURE_CUBE_MAP_NEGATIVE_Z)
}

// FramebufferTexture3D implements the backend.Backend interface. Array
// textures are also accepted, in which case the layer selects the array
// element.
func (be *Backend) FramebufferTexture3D(target backend.Enum, point backend.Enum, textureTarget backend.Enum, texture uint32, level int32, layer int32) {
	be.attachTexture(target, point, textureTarget, texture, level, layer,
		backend.TEXTURE_3D, backend.TEXTURE_1D_ARRAY, backend.TEXTURE_2D_ARRAY)
}

// plane returns the storage for the buffer of the framebuffer. Returns nil if
// there is no storage.
func (be *Backend) plane(fbo uint32, buffer backend.Enum) *plane {
	if fbo == 0 {
		switch buffer {
		case backend.FRONT, backend.LEFT, backend.FRONT_LEFT, backend.FRONT_AND_BACK:
			return be.defPlanes[backend.FRONT_LEFT]
		case backend.BACK, backend.BACK_LEFT:
			return be.defPlanes[backend.BACK_LEFT]
		case backend.DEPTH_ATTACHMENT, backend.STENCIL_ATTACHMENT:
			return be.defPlanes[buffer]
		}
		return nil
	}

	fb, ok := be.framebuffers[fbo]
	if !ok {
		return nil
	}

	a, ok := fb.attachments[buffer]
	if !ok {
		return nil
	}

	if a.renderbuffer {
		rb, ok := be.renderbuffers[a.id]
		if !ok {
			return nil
		}
		return rb.plane
	}

	tex, ok := be.textures[a.id]
	if !ok {
		return nil
	}
	return tex.plane(a.level, a.layer)
}

// colourPlane is like plane() but only returns planes with colour storage
func (be *Backend) colourPlane(fbo uint32, buffer backend.Enum) *plane {
	if buffer == backend.NONE {
		return nil
	}
	p := be.plane(fbo, buffer)
	if p == nil || p.colour == nil {
		return nil
	}
	return p
}

func validDefaultBuffer(e backend.Enum) bool {
	switch e {
	case backend.FRONT_LEFT, backend.FRONT_RIGHT, backend.BACK_LEFT, backend.BACK_RIGHT:
		return true
	}
	return false
}

// DrawBuffers implements the backend.Backend interface.
func (be *Backend) DrawBuffers(bufs []backend.Enum) {
	if len(bufs) > backend.MaxColorAttachments {
		be.setError(backend.INVALID_VALUE)
		return
	}

	for i, b := range bufs {
		if b == backend.NONE {
			continue
		}

		if be.drawFBO == 0 {
			if !validDefaultBuffer(b) {
				be.setError(backend.INVALID_OPERATION)
				return
			}
		} else if !isColourAttachment(b) {
			be.setError(backend.INVALID_OPERATION)
			return
		}

		if slices.Contains(bufs[:i], b) {
			be.setError(backend.INVALID_OPERATION)
			return
		}
	}

	be.framebuffer(be.drawFBO).drawBuffers = slices.Clone(bufs)
}

// ReadBuffer implements the backend.Backend interface.
func (be *Backend) ReadBuffer(src backend.Enum) {
	if src != backend.NONE {
		if be.readFBO == 0 {
			switch src {
			case backend.FRONT, backend.BACK, backend.LEFT, backend.RIGHT, backend.FRONT_AND_BACK:
			default:
				if !validDefaultBuffer(src) {
					be.setError(backend.INVALID_OPERATION)
					return
				}
			}
		} else if !isColourAttachment(src) {
			be.setError(backend.INVALID_OPERATION)
			return
		}
	}

	be.framebuffer(be.readFBO).readBuffer = src
}

func compatible(point backend.Enum, format backend.Enum) bool {
	switch point {
	case backend.DEPTH_ATTACHMENT:
		return hasDepth(format)
	case backend.STENCIL_ATTACHMENT:
		return hasStencil(format)
	}
	return isColourFormat(format)
}

// CheckFramebufferStatus implements the backend.Backend interface.
func (be *Backend) CheckFramebufferStatus(target backend.Enum) backend.Enum {
	fbo, ok := be.bound(target)
	if !ok {
		be.setError(backend.INVALID_ENUM)
		return 0
	}
	if fbo == 0 {
		return backend.FRAMEBUFFER_COMPLETE
	}

	fb := be.framebuffers[fbo]
	if len(fb.attachments) == 0 {
		return backend.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}

	samples := int32(-1)
	multisample := false

	for point := range fb.attachments {
		p := be.plane(fbo, point)
		if p == nil || !compatible(point, p.format) {
			return backend.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if samples >= 0 && samples != p.samples {
			multisample = true
		}
		samples = p.samples
	}

	for _, b := range fb.drawBuffers {
		if b == backend.NONE {
			continue
		}
		if _, ok := fb.attachments[b]; !ok {
			return backend.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER
		}
	}

	if fb.readBuffer != backend.NONE {
		if _, ok := fb.attachments[fb.readBuffer]; !ok {
			return backend.FRAMEBUFFER_INCOMPLETE_READ_BUFFER
		}
	}

	if multisample {
		return backend.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE
	}

	return backend.FRAMEBUFFER_COMPLETE
}

// DrawBuffersOf returns the draw buffer list of the framebuffer.
func (be *Backend) DrawBuffersOf(fbo uint32) []backend.Enum {
	fb := be.framebuffer(fbo)
	if fb == nil {
		return nil
	}
	return slices.Clone(fb.drawBuffers)
}

// ReadBufferOf returns the read buffer of the framebuffer.
func (be *Backend) ReadBufferOf(fbo uint32) backend.Enum {
	fb := be.framebuffer(fbo)
	if fb == nil {
		return backend.NONE
	}
	return fb.readBuffer
}

// Attached returns the identity of the object attached to the attachment point
// of the framebuffer.
func (be *Backend) Attached(fbo uint32, point backend.Enum) (uint32, bool) {
	fb, ok := be.framebuffers[fbo]
	if !ok {
		return 0, false
	}
	a, ok := fb.attachments[point]
	return a.id, ok
}
