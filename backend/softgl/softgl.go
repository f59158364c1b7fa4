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
	"github.com/jetsetilly/rendertarget/backend"
)

var _ backend.Backend = (*Backend)(nil)
var _ backend.Allocator = (*Backend)(nil)

// Backend is a software implementation of backend.Backend. It also
// implements backend.Allocator.
type Backend struct {
	// identities are shared between all object types
	nextID uint32

	framebuffers  map[uint32]*framebuffer
	renderbuffers map[uint32]*renderbuffer
	textures      map[uint32]*texture
	buffers       map[uint32][]byte

	// the default framebuffer always has identity zero
	def       *framebuffer
	defPlanes map[backend.Enum]*plane

	drawFBO uint32
	readFBO uint32

	capabilities map[backend.Enum]bool
	viewport     [4]int32

	clearColour  [4]float32
	clearDepth   float64
	clearStencil int32

	// rgb and alpha equations
	blendEquation [2]backend.Enum

	// srcRGB, dstRGB, srcAlpha, dstAlpha
	blendFunc   [4]backend.Enum
	blendColour [4]float32

	colourMask [4]bool
	depthMask  bool

	// front and back stencil masks
	stencilMask [2]uint32

	err backend.Enum
}

// New is the preferred method of initialisation for the Backend type. The
// default framebuffer is double buffered and has a depth and stencil buffer
// of the specified size.
func New(width, height int) *Backend {
	be := &Backend{
		framebuffers:  make(map[uint32]*framebuffer),
		renderbuffers: make(map[uint32]*renderbuffer),
		textures:      make(map[uint32]*texture),
		buffers:       make(map[uint32][]byte),
		capabilities:  make(map[backend.Enum]bool),
		viewport:      [4]int32{0, 0, int32(width), int32(height)},
		clearDepth:    1.0,
		blendEquation: [2]backend.Enum{backend.FUNC_ADD, backend.FUNC_ADD},
		blendFunc:     [4]backend.Enum{backend.ONE, backend.ZERO, backend.ONE, backend.ZERO},
		colourMask:    [4]bool{true, true, true, true},
		depthMask:     true,
		stencilMask:   [2]uint32{0xffffffff, 0xffffffff},
	}

	be.def = &framebuffer{
		attachments: make(map[backend.Enum]attachment),
		drawBuffers: []backend.Enum{backend.BACK_LEFT},
		readBuffer:  backend.BACK_LEFT,
	}

	be.defPlanes = map[backend.Enum]*plane{
		backend.FRONT_LEFT:         newPlane(backend.RGBA8, width, height, 0),
		backend.BACK_LEFT:          newPlane(backend.RGBA8, width, height, 0),
		backend.DEPTH_ATTACHMENT:   newPlane(backend.DEPTH_COMPONENT24, width, height, 0),
		backend.STENCIL_ATTACHMENT: newPlane(backend.STENCIL_INDEX8, width, height, 0),
	}

	// dithering is the only capability enabled by default
	be.capabilities[backend.DITHER] = true

	return be
}

func (be *Backend) setError(err backend.Enum) {
	if be.err == backend.NO_ERROR {
		be.err = err
	}
}

func (be *Backend) genID() uint32 {
	be.nextID++
	return be.nextID
}

// GetError implements the backend.Backend interface.
func (be *Backend) GetError() backend.Enum {
	err := be.err
	be.err = backend.NO_ERROR
	return err
}

// Enable implements the backend.Backend interface.
func (be *Backend) Enable(capability backend.Enum) {
	be.capabilities[capability] = true
}

// Disable implements the backend.Backend interface.
func (be *Backend) Disable(capability backend.Enum) {
	be.capabilities[capability] = false
}

// Viewport implements the backend.Backend interface.
func (be *Backend) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		be.setError(backend.INVALID_VALUE)
		return
	}
	be.viewport = [4]int32{x, y, width, height}
}

// ClearColor implements the backend.Backend interface.
func (be *Backend) ClearColor(r, g, b, a float32) {
	be.clearColour = [4]float32{r, g, b, a}
}

// ClearDepth implements the backend.Backend interface.
func (be *Backend) ClearDepth(depth float64) {
	be.clearDepth = min(max(depth, 0), 1)
}

// ClearStencil implements the backend.Backend interface.
func (be *Backend) ClearStencil(s int32) {
	be.clearStencil = s
}

// ColorMask implements the backend.Backend interface.
func (be *Backend) ColorMask(r, g, b, a bool) {
	be.colourMask = [4]bool{r, g, b, a}
}

// DepthMask implements the backend.Backend interface.
func (be *Backend) DepthMask(flag bool) {
	be.depthMask = flag
}

// StencilMask implements the backend.Backend interface.
func (be *Backend) StencilMask(mask uint32) {
	be.stencilMask = [2]uint32{mask, mask}
}

// StencilMaskSeparate implements the backend.Backend interface.
func (be *Backend) StencilMaskSeparate(face backend.Enum, mask uint32) {
	switch face {
	case backend.FRONT:
		be.stencilMask[0] = mask
	case backend.BACK:
		be.stencilMask[1] = mask
	case backend.FRONT_AND_BACK:
		be.stencilMask = [2]uint32{mask, mask}
	default:
		be.setError(backend.INVALID_ENUM)
	}
}

// Counts is the number of live objects of each type.
type Counts struct {
	Framebuffers  int
	Renderbuffers int
	Textures      int
	Buffers       int
}

// Live returns the number of objects that have been generated and not yet
// deleted.
func (be *Backend) Live() Counts {
	return Counts{
		Framebuffers:  len(be.framebuffers),
		Renderbuffers: len(be.renderbuffers),
		Textures:      len(be.textures),
		Buffers:       len(be.buffers),
	}
}

// Bound returns the framebuffer bound to the target. The FRAMEBUFFER target
// returns the draw binding.
func (be *Backend) Bound(target backend.Enum) uint32 {
	if target == backend.READ_FRAMEBUFFER {
		return be.readFBO
	}
	return be.drawFBO
}

// Enabled returns true if the capability is enabled.
func (be *Backend) Enabled(capability backend.Enum) bool {
	return be.capabilities[capability]
}

// ColourMask returns the current colour write mask.
func (be *Backend) ColourMask() [4]bool {
	return be.colourMask
}

// StencilMasks returns the front and back stencil write masks.
func (be *Backend) StencilMasks() (front uint32, back uint32) {
	return be.stencilMask[0], be.stencilMask[1]
}
