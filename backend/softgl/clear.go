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

const allBufferBits = backend.COLOR_BUFFER_BIT | backend.DEPTH_BUFFER_BIT | backend.STENCIL_BUFFER_BIT

// writeColour stores the colour, honouring the colour write mask
func (be *Backend) writeColour(p *plane, i int, c [4]float32) {
	old := p.colourAt(i)
	for k := range c {
		if !be.colourMask[k] {
			c[k] = old[k]
		}
	}
	p.setColour(i, c)
}

// Clear implements the backend.Backend interface. The whole of each buffer is
// cleared. Clearing is not affected by the depth or stencil tests.
func (be *Backend) Clear(mask uint32) {
	if mask&^allBufferBits != 0 {
		be.setError(backend.INVALID_VALUE)
		return
	}

	fbo := be.drawFBO

	if mask&backend.COLOR_BUFFER_BIT != 0 {
		for _, b := range be.framebuffer(fbo).drawBuffers {
			p := be.colourPlane(fbo, b)
			if p == nil {
				continue
			}
			for i := 0; i < p.width*p.height; i++ {
				be.writeColour(p, i, be.clearColour)
			}
		}
	}

	if mask&backend.DEPTH_BUFFER_BIT != 0 && be.depthMask {
		if p := be.plane(fbo, backend.DEPTH_ATTACHMENT); p != nil && p.depth != nil {
			for i := range p.depth {
				p.depth[i] = float32(be.clearDepth)
			}
		}
	}

	if mask&backend.STENCIL_BUFFER_BIT != 0 {
		if p := be.plane(fbo, backend.STENCIL_ATTACHMENT); p != nil && p.stencil != nil {
			m := uint8(be.stencilMask[0])
			v := uint8(be.clearStencil)
			for i := range p.stencil {
				p.stencil[i] = (v & m) | (p.stencil[i] &^ m)
			}
		}
	}
}
