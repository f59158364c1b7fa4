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

package imagedata

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"

	"github.com/jetsetilly/rendertarget/curated"
)

// Sentinal error patterns.
const (
	UnsupportedConversion = "imagedata: cannot convert %v/%v"
	NoData                = "imagedata: image has no data"
)

// Image2D is a host-visible two dimensional image.
type Image2D struct {
	size       image.Point
	components Components
	xtype      ComponentType
	data       []byte
}

// NewImage2D creates a new empty image.
func NewImage2D(components Components, xtype ComponentType) *Image2D {
	return &Image2D{
		components: components,
		xtype:      xtype,
	}
}

// Size returns the dimensions of the image.
func (img *Image2D) Size() image.Point {
	return img.size
}

// Components returns the component layout of the image.
func (img *Image2D) Components() Components {
	return img.components
}

// Type returns the component type of the image.
func (img *Image2D) Type() ComponentType {
	return img.xtype
}

// Data returns the raw pixel data. Rows are bottom to top.
func (img *Image2D) Data() []byte {
	return img.data
}

// PixelSize returns the number of bytes used by one pixel.
func (img *Image2D) PixelSize() int {
	return PixelSize(img.components, img.xtype)
}

// Prepare the image for new pixel data of the specified size and layout. The
// returned slice is where the data should be written. Existing storage is
// reused if it is large enough.
func (img *Image2D) Prepare(size image.Point, components Components, xtype ComponentType) []byte {
	img.size = size
	img.components = components
	img.xtype = xtype

	n := max(size.X, 0) * max(size.Y, 0) * PixelSize(components, xtype)
	if cap(img.data) >= n {
		img.data = img.data[:n]
	} else {
		img.data = make([]byte, n)
	}
	return img.data
}

// SetData replaces the contents of the image.
func (img *Image2D) SetData(size image.Point, components Components, xtype ComponentType, data []byte) {
	img.size = size
	img.components = components
	img.xtype = xtype
	img.data = data
}

// offset of pixel in the data slice. y is measured from the bottom row.
func (img *Image2D) offset(x, y int) int {
	return (y*img.size.X + x) * img.PixelSize()
}

// Float returns component c of the pixel at x, y for images of type Float.
// The y coordinate is measured from the bottom row.
func (img *Image2D) Float(x, y, c int) float32 {
	o := img.offset(x, y) + c*4
	return math.Float32frombits(binary.NativeEndian.Uint32(img.data[o:]))
}

// Uint returns component c of the pixel at x, y for integer component types.
// The y coordinate is measured from the bottom row.
func (img *Image2D) Uint(x, y, c int) uint32 {
	o := img.offset(x, y)
	switch img.xtype {
	case UnsignedByte, Byte:
		return uint32(img.data[o+c])
	case UnsignedShort, Short, HalfFloat:
		return uint32(binary.NativeEndian.Uint16(img.data[o+c*2:]))
	}
	return binary.NativeEndian.Uint32(img.data[o+c*4:])
}

// RGBA converts the image into an *image.RGBA, flipping it so that the first
// row of the result is the top row of the image. Only colour components of
// type UnsignedByte or Float can be converted.
func (img *Image2D) RGBA() (*image.RGBA, error) {
	if len(img.data) == 0 {
		return nil, curated.Errorf(NoData)
	}

	switch img.components {
	case Red, RG, RGB, RGBA, BGR, BGRA:
	default:
		return nil, curated.Errorf(UnsupportedConversion, img.components, img.xtype)
	}

	if img.xtype != UnsignedByte && img.xtype != Float {
		return nil, curated.Errorf(UnsupportedConversion, img.components, img.xtype)
	}

	out := image.NewRGBA(image.Rect(0, 0, img.size.X, img.size.Y))

	comp := func(x, y, c int) uint8 {
		if img.xtype == UnsignedByte {
			return uint8(img.Uint(x, y, c))
		}
		v := img.Float(x, y, c)
		return uint8(min(max(v, 0), 1)*0xff + 0.5)
	}

	for y := 0; y < img.size.Y; y++ {
		for x := 0; x < img.size.X; x++ {
			c := color.RGBA{A: 0xff}
			switch img.components {
			case Red:
				c.R = comp(x, y, 0)
			case RG:
				c.R, c.G = comp(x, y, 0), comp(x, y, 1)
			case RGB:
				c.R, c.G, c.B = comp(x, y, 0), comp(x, y, 1), comp(x, y, 2)
			case BGR:
				c.B, c.G, c.R = comp(x, y, 0), comp(x, y, 1), comp(x, y, 2)
			case RGBA:
				c.R, c.G, c.B, c.A = comp(x, y, 0), comp(x, y, 1), comp(x, y, 2), comp(x, y, 3)
			case BGRA:
				c.B, c.G, c.R, c.A = comp(x, y, 0), comp(x, y, 1), comp(x, y, 2), comp(x, y, 3)
			}

			// image.RGBA is alpha premultiplied
			c.R = uint8(uint32(c.R) * uint32(c.A) / 0xff)
			c.G = uint8(uint32(c.G) * uint32(c.A) / 0xff)
			c.B = uint8(uint32(c.B) * uint32(c.A) / 0xff)

			out.SetRGBA(x, img.size.Y-1-y, c)
		}
	}

	return out, nil
}
