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

// plane is a single two dimensional image. Row zero is the bottom row.
type plane struct {
	width   int
	height  int
	format  backend.Enum
	samples int32

	// four components per pixel
	colour []float32

	depth   []float32
	stencil []uint8
}

func isColourFormat(format backend.Enum) bool {
	switch format {
	case backend.RGBA8, backend.RGBA32F, backend.R8:
		return true
	}
	return false
}

func hasDepth(format backend.Enum) bool {
	switch format {
	case backend.DEPTH_COMPONENT24, backend.DEPTH_COMPONENT32F, backend.DEPTH24_STENCIL8:
		return true
	}
	return false
}

func hasStencil(format backend.Enum) bool {
	switch format {
	case backend.STENCIL_INDEX8, backend.DEPTH24_STENCIL8:
		return true
	}
	return false
}

func validFormat(format backend.Enum) bool {
	return isColourFormat(format) || hasDepth(format) || hasStencil(format)
}

func newPlane(format backend.Enum, width, height int, samples int32) *plane {
	p := &plane{
		width:   width,
		height:  height,
		format:  format,
		samples: samples,
	}
	n := width * height
	if isColourFormat(format) {
		p.colour = make([]float32, n*4)
		if format == backend.R8 {
			for i := 0; i < n; i++ {
				p.colour[i*4+3] = 1.0
			}
		}
	}
	if hasDepth(format) {
		p.depth = make([]float32, n)
	}
	if hasStencil(format) {
		p.stencil = make([]uint8, n)
	}
	return p
}

func (p *plane) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

func (p *plane) index(x, y int) int {
	return y*p.width + x
}

func (p *plane) colourAt(i int) [4]float32 {
	return [4]float32(p.colour[i*4 : i*4+4])
}

// setColour stores the colour at index i, converting it to the precision of
// the storage format.
func (p *plane) setColour(i int, c [4]float32) {
	switch p.format {
	case backend.RGBA8:
		for k := range c {
			c[k] = quantise(c[k])
		}
	case backend.R8:
		c = [4]float32{quantise(c[0]), 0, 0, 1}
	}
	copy(p.colour[i*4:], c[:])
}

func quantise(v float32) float32 {
	v = min(max(v, 0), 1)
	return float32(int(v*255+0.5)) / 255
}

// clamps a value for fixed-point formats
func (p *plane) clamp(c [4]float32) [4]float32 {
	if p.format == backend.RGBA32F {
		return c
	}
	for k := range c {
		c[k] = min(max(c[k], 0), 1)
	}
	return c
}

type renderbuffer struct {
	plane *plane
}

type texture struct {
	target  backend.Enum
	format  backend.Enum
	samples int32

	// indexed by mipmap level and then by layer. cube map faces are layers
	// in the usual face order
	levels [][]*plane
}

func (tex *texture) plane(level, layer int32) *plane {
	if level < 0 || int(level) >= len(tex.levels) {
		return nil
	}
	l := tex.levels[level]
	if layer < 0 || int(layer) >= len(l) {
		return nil
	}
	return l[layer]
}

// GenRenderbuffer implements the backend.Allocator interface.
func (be *Backend) GenRenderbuffer(internalFormat backend.Enum, width, height, samples int32) uint32 {
	if !validFormat(internalFormat) {
		be.setError(backend.INVALID_ENUM)
		return 0
	}
	if width <= 0 || height <= 0 || samples < 0 {
		be.setError(backend.INVALID_VALUE)
		return 0
	}
	id := be.genID()
	be.renderbuffers[id] = &renderbuffer{
		plane: newPlane(internalFormat, int(width), int(height), samples),
	}
	return id
}

// DeleteRenderbuffer implements the backend.Allocator interface.
func (be *Backend) DeleteRenderbuffer(renderbuffer uint32) {
	delete(be.renderbuffers, renderbuffer)
}

// GenTexture implements the backend.Allocator interface.
func (be *Backend) GenTexture(target backend.Enum, internalFormat backend.Enum, width, height, depth, levels, samples int32) uint32 {
	if !validFormat(internalFormat) {
		be.setError(backend.INVALID_ENUM)
		return 0
	}
	if width <= 0 {
		be.setError(backend.INVALID_VALUE)
		return 0
	}

	tex := &texture{
		target: target,
		format: internalFormat,
	}

	levels = max(levels, 1)
	height = max(height, 1)
	depth = max(depth, 1)

	// dimensions of each level. layers is the number of planes in the level
	var size func(l int32) (w, h, layers int32)

	switch target {
	case backend.TEXTURE_1D:
		size = func(l int32) (int32, int32, int32) {
			return max(width>>l, 1), 1, 1
		}
	case backend.TEXTURE_1D_ARRAY:
		size = func(l int32) (int32, int32, int32) {
			return max(width>>l, 1), 1, height
		}
	case backend.TEXTURE_2D:
		size = func(l int32) (int32, int32, int32) {
			return max(width>>l, 1), max(height>>l, 1), 1
		}
	case backend.TEXTURE_RECTANGLE:
		levels = 1
		size = func(l int32) (int32, int32, int32) {
			return width, height, 1
		}
	case backend.TEXTURE_2D_MULTISAMPLE:
		if samples < 1 {
			be.setError(backend.INVALID_VALUE)
			return 0
		}
		levels = 1
		tex.samples = samples
		size = func(l int32) (int32, int32, int32) {
			return width, height, 1
		}
	case backend.TEXTURE_2D_ARRAY:
		size = func(l int32) (int32, int32, int32) {
			return max(width>>l, 1), max(height>>l, 1), depth
		}
	case backend.TEXTURE_3D:
		size = func(l int32) (int32, int32, int32) {
			return max(width>>l, 1), max(height>>l, 1), max(depth>>l, 1)
		}
	case backend.TEXTURE_CUBE_MAP:
		size = func(l int32) (int32, int32, int32) {
			return max(width>>l, 1), max(width>>l, 1), 6
		}
	default:
		be.setError(backend.INVALID_ENUM)
		return 0
	}

	for l := int32(0); l < levels; l++ {
		w, h, layers := size(l)
		planes := make([]*plane, layers)
		for i := range planes {
			planes[i] = newPlane(internalFormat, int(w), int(h), tex.samples)
		}
		tex.levels = append(tex.levels, planes)
	}

	id := be.genID()
	be.textures[id] = tex
	return id
}

// DeleteTexture implements the backend.Allocator interface.
func (be *Backend) DeleteTexture(texture uint32) {
	delete(be.textures, texture)
}
