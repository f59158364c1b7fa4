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
	"encoding/binary"
	"image"
	"math"

	"github.com/jetsetilly/rendertarget/backend"
	xdraw "golang.org/x/image/draw"
)

func typeSize(xtype backend.Enum) int {
	switch xtype {
	case backend.UNSIGNED_BYTE, backend.BYTE:
		return 1
	case backend.UNSIGNED_SHORT, backend.SHORT, backend.HALF_FLOAT:
		return 2
	case backend.UNSIGNED_INT, backend.INT, backend.FLOAT, backend.UNSIGNED_INT_24_8:
		return 4
	}
	return 0
}

// order of colour components for each colour format
var colourOrder = map[backend.Enum][]int{
	backend.RED:  {0},
	backend.RG:   {0, 1},
	backend.RGB:  {0, 1, 2},
	backend.BGR:  {2, 1, 0},
	backend.RGBA: {0, 1, 2, 3},
	backend.BGRA: {2, 1, 0, 3},
}

// half converts a float32 to the bits of a IEEE 754 half precision value.
// values too small to be represented become zero
func half(f float32) uint16 {
	b := math.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int((b>>23)&0xff) - 127 + 15
	mant := b & 0x7fffff

	if (b>>23)&0xff == 0xff {
		if mant != 0 {
			return sign | 0x7e00
		}
		return sign | 0x7c00
	}
	if exp <= 0 {
		return sign
	}
	if exp >= 31 {
		return sign | 0x7c00
	}
	return sign | uint16(exp)<<10 | uint16(mant>>13)
}

// encode writes the value to the buffer in the component type. normalised
// values are converted to the full range of integer types
func encode(buf []byte, xtype backend.Enum, v float32, normalised bool) {
	scale := func(limit float64, lo float32) float64 {
		if !normalised {
			return float64(v)
		}
		return math.Round(float64(min(max(v, lo), 1)) * limit)
	}

	switch xtype {
	case backend.UNSIGNED_BYTE:
		buf[0] = uint8(scale(math.MaxUint8, 0))
	case backend.BYTE:
		buf[0] = uint8(int8(scale(math.MaxInt8, -1)))
	case backend.UNSIGNED_SHORT:
		binary.NativeEndian.PutUint16(buf, uint16(scale(math.MaxUint16, 0)))
	case backend.SHORT:
		binary.NativeEndian.PutUint16(buf, uint16(int16(scale(math.MaxInt16, -1))))
	case backend.UNSIGNED_INT:
		binary.NativeEndian.PutUint32(buf, uint32(scale(math.MaxUint32, 0)))
	case backend.INT:
		binary.NativeEndian.PutUint32(buf, uint32(int32(scale(math.MaxInt32, -1))))
	case backend.FLOAT:
		binary.NativeEndian.PutUint32(buf, math.Float32bits(v))
	case backend.HALF_FLOAT:
		binary.NativeEndian.PutUint16(buf, half(v))
	}
}

// pack the rectangle of the read framebuffer into the data slice. returns
// false and sets the error state if the request cannot be satisfied
func (be *Backend) pack(x, y, width, height int32, format backend.Enum, xtype backend.Enum, data []byte) bool {
	if width < 0 || height < 0 {
		be.setError(backend.INVALID_VALUE)
		return false
	}

	size := typeSize(xtype)
	if size == 0 {
		be.setError(backend.INVALID_ENUM)
		return false
	}

	fbo := be.readFBO

	var p *plane
	var pixelSize int
	var write func(buf []byte, i int)

	if order, ok := colourOrder[format]; ok {
		if xtype == backend.UNSIGNED_INT_24_8 {
			be.setError(backend.INVALID_OPERATION)
			return false
		}
		p = be.colourPlane(fbo, be.framebuffer(fbo).readBuffer)
		pixelSize = len(order) * size
		write = func(buf []byte, i int) {
			c := p.colourAt(i)
			for n, k := range order {
				encode(buf[n*size:], xtype, c[k], true)
			}
		}
	} else {
		switch format {
		case backend.DEPTH_COMPONENT:
			if xtype == backend.UNSIGNED_INT_24_8 {
				be.setError(backend.INVALID_OPERATION)
				return false
			}
			p = be.plane(fbo, backend.DEPTH_ATTACHMENT)
			if p != nil && p.depth == nil {
				p = nil
			}
			pixelSize = size
			write = func(buf []byte, i int) {
				encode(buf, xtype, p.depth[i], true)
			}
		case backend.STENCIL_INDEX:
			if xtype == backend.UNSIGNED_INT_24_8 {
				be.setError(backend.INVALID_OPERATION)
				return false
			}
			p = be.plane(fbo, backend.STENCIL_ATTACHMENT)
			if p != nil && p.stencil == nil {
				p = nil
			}
			pixelSize = size
			write = func(buf []byte, i int) {
				encode(buf, xtype, float32(p.stencil[i]), false)
			}
		case backend.DEPTH_STENCIL:
			if xtype != backend.UNSIGNED_INT_24_8 {
				be.setError(backend.INVALID_ENUM)
				return false
			}
			dp := be.plane(fbo, backend.DEPTH_ATTACHMENT)
			sp := be.plane(fbo, backend.STENCIL_ATTACHMENT)
			if dp != nil && sp != nil && dp.depth != nil && sp.stencil != nil && dp.width == sp.width && dp.height == sp.height {
				p = dp
			}
			pixelSize = size
			write = func(buf []byte, i int) {
				d := uint32(math.Round(float64(min(max(dp.depth[i], 0), 1)) * 0xffffff))
				binary.NativeEndian.PutUint32(buf, d<<8|uint32(sp.stencil[i]))
			}
		default:
			be.setError(backend.INVALID_ENUM)
			return false
		}
	}

	if p == nil {
		be.setError(backend.INVALID_OPERATION)
		return false
	}

	if len(data) < int(width)*int(height)*pixelSize {
		be.setError(backend.INVALID_OPERATION)
		return false
	}

	// pixels outside of the buffer are left untouched
	for r := 0; r < int(height); r++ {
		py := int(y) + r
		for c := 0; c < int(width); c++ {
			px := int(x) + c
			if !p.contains(px, py) {
				continue
			}
			o := (r*int(width) + c) * pixelSize
			write(data[o:o+pixelSize], p.index(px, py))
		}
	}

	return true
}

// ReadPixels implements the backend.Backend interface.
func (be *Backend) ReadPixels(x, y, width, height int32, format backend.Enum, xtype backend.Enum, pixels []byte) {
	be.pack(x, y, width, height, format, xtype, pixels)
}

// ReadPixelsBuffer implements the backend.Backend interface.
func (be *Backend) ReadPixelsBuffer(x, y, width, height int32, format backend.Enum, xtype backend.Enum, buffer uint32, size int, usage backend.Enum) {
	if _, ok := be.buffers[buffer]; !ok {
		be.setError(backend.INVALID_OPERATION)
		return
	}
	if size < 0 {
		be.setError(backend.INVALID_VALUE)
		return
	}
	data := make([]byte, size)
	if be.pack(x, y, width, height, format, xtype, data) {
		be.buffers[buffer] = data
	}
}

// GenBuffer implements the backend.Backend interface.
func (be *Backend) GenBuffer() uint32 {
	id := be.genID()
	be.buffers[id] = []byte{}
	return id
}

// DeleteBuffer implements the backend.Backend interface.
func (be *Backend) DeleteBuffer(buffer uint32) {
	delete(be.buffers, buffer)
}

// GetBufferData implements the backend.Backend interface.
func (be *Backend) GetBufferData(buffer uint32, data []byte) {
	b, ok := be.buffers[buffer]
	if !ok {
		be.setError(backend.INVALID_OPERATION)
		return
	}
	copy(data, b)
}

// Snapshot returns a copy of a colour buffer of the framebuffer as an image
// the right way up. Returns nil if the buffer has no colour storage.
func (be *Backend) Snapshot(fbo uint32, buffer backend.Enum) *image.NRGBA64 {
	p := be.colourPlane(fbo, buffer)
	if p == nil {
		return nil
	}
	src := planeImage{p: p}
	img := image.NewNRGBA64(src.Bounds())
	xdraw.Copy(img, image.Point{}, src, src.Bounds(), xdraw.Src, nil)
	return img
}

// Depth returns the value of the depth buffer of the framebuffer at x, y. Row
// zero is the bottom row.
func (be *Backend) Depth(fbo uint32, x, y int) (float32, bool) {
	p := be.plane(fbo, backend.DEPTH_ATTACHMENT)
	if p == nil || p.depth == nil || !p.contains(x, y) {
		return 0, false
	}
	return p.depth[p.index(x, y)], true
}

// Stencil returns the value of the stencil buffer of the framebuffer at x, y.
// Row zero is the bottom row.
func (be *Backend) Stencil(fbo uint32, x, y int) (uint8, bool) {
	p := be.plane(fbo, backend.STENCIL_ATTACHMENT)
	if p == nil || p.stencil == nil || !p.contains(x, y) {
		return 0, false
	}
	return p.stencil[p.index(x, y)], true
}

// Pixel returns the colour of a colour buffer of the framebuffer at x, y. Row
// zero is the bottom row.
func (be *Backend) Pixel(fbo uint32, buffer backend.Enum, x, y int) ([4]float32, bool) {
	p := be.colourPlane(fbo, buffer)
	if p == nil || !p.contains(x, y) {
		return [4]float32{}, false
	}
	return p.colourAt(p.index(x, y)), true
}
