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
	"github.com/jetsetilly/rendertarget/colour"
)

// Fill behaves as though a fragment shader had written the outputs to every
// pixel of the viewport of the draw framebuffer. Output N is written to the
// buffer named by the Nth entry of the draw buffer list. Outputs without a
// corresponding draw buffer, and draw buffers without an output, are ignored.
//
// The blending state and colour write mask are honoured. The depth and
// stencil buffers are not touched.
func (be *Backend) Fill(outputs ...colour.Colour) {
	fbo := be.drawFBO
	blending := be.capabilities[backend.BLEND]

	for n, b := range be.framebuffer(fbo).drawBuffers {
		if n >= len(outputs) {
			break
		}

		p := be.colourPlane(fbo, b)
		if p == nil {
			continue
		}

		src := p.clamp(outputs[n].Components())

		x0 := max(int(be.viewport[0]), 0)
		y0 := max(int(be.viewport[1]), 0)
		x1 := min(int(be.viewport[0]+be.viewport[2]), p.width)
		y1 := min(int(be.viewport[1]+be.viewport[3]), p.height)

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				i := p.index(x, y)
				c := src
				if blending {
					c = p.clamp(be.blend(src, p.colourAt(i)))
				}
				be.writeColour(p, i, c)
			}
		}
	}
}
