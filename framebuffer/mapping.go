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

import "github.com/jetsetilly/rendertarget/backend"

// Discard can be used in place of a colour attachment index in a draw or read
// mapping. Fragment outputs mapped to Discard are not written.
const Discard = -1

func colorBuffer(index int) backend.Enum {
	if index < 0 {
		return backend.NONE
	}
	return backend.COLOR_ATTACHMENT0 + backend.Enum(index)
}

// MapForDraw binds the render target for Draw and sets which colour attachment
// each fragment output is written to. The first index is for output zero, the
// second for output one and so on. Use Discard for outputs that should not be
// written.
//
// A new Framebuffer maps output zero to colour attachment zero.
func (fb *Framebuffer) MapForDraw(indices ...int) {
	if !fb.alive("draw mapping") {
		return
	}
	fb.Bind(Draw)

	bufs := make([]backend.Enum, len(indices))
	for i, idx := range indices {
		bufs[i] = colorBuffer(idx)
	}
	fb.ctx.be.DrawBuffers(bufs)

	fb.drawMapping = append(fb.drawMapping[:0], indices...)
}

// MapForRead binds the render target for Read and sets the colour attachment
// that reads and blits take their colour data from. Use Discard to select no
// colour attachment.
//
// A new Framebuffer reads from colour attachment zero.
func (fb *Framebuffer) MapForRead(index int) {
	if !fb.alive("read mapping") {
		return
	}
	fb.Bind(Read)
	fb.ctx.be.ReadBuffer(colorBuffer(index))
	fb.readMapping = index
}

// DrawMapping returns the colour attachment index for each fragment output.
func (fb *Framebuffer) DrawMapping() []int {
	m := make([]int, len(fb.drawMapping))
	copy(m, fb.drawMapping)
	return m
}

// ReadMapping returns the colour attachment index used as the read source.
func (fb *Framebuffer) ReadMapping() int {
	return fb.readMapping
}
