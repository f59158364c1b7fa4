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
	"image"

	"github.com/jetsetilly/rendertarget/backend"
)

// BufferedImage2D is a two dimensional image stored in a backend buffer
// object.
type BufferedImage2D struct {
	be         backend.Backend
	buffer     uint32
	size       image.Point
	components Components
	xtype      ComponentType
	usage      Usage
}

// NewBufferedImage2D creates a new empty buffer image. The buffer object is
// created when data is first written to the image.
func NewBufferedImage2D(components Components, xtype ComponentType) *BufferedImage2D {
	return &BufferedImage2D{
		components: components,
		xtype:      xtype,
	}
}

// Prepare the image for new pixel data, creating the buffer object if
// necessary. Returns the buffer identity and the number of bytes the buffer
// must hold.
func (img *BufferedImage2D) Prepare(be backend.Backend, size image.Point, components Components, xtype ComponentType, usage Usage) (uint32, int) {
	if img.buffer != 0 && img.be != be {
		img.Destroy()
	}
	if img.buffer == 0 {
		img.be = be
		img.buffer = be.GenBuffer()
	}
	img.size = size
	img.components = components
	img.xtype = xtype
	img.usage = usage
	return img.buffer, max(size.X, 0) * max(size.Y, 0) * PixelSize(components, xtype)
}

// Buffer returns the identity of the buffer object. Zero if no data has been
// written to the image.
func (img *BufferedImage2D) Buffer() uint32 {
	return img.buffer
}

// Size returns the dimensions of the image.
func (img *BufferedImage2D) Size() image.Point {
	return img.size
}

// Components returns the component layout of the image.
func (img *BufferedImage2D) Components() Components {
	return img.components
}

// Type returns the component type of the image.
func (img *BufferedImage2D) Type() ComponentType {
	return img.xtype
}

// Usage returns the usage hint given when the data was last written.
func (img *BufferedImage2D) Usage() Usage {
	return img.usage
}

// Data copies the contents of the buffer object to host memory.
func (img *BufferedImage2D) Data() []byte {
	if img.buffer == 0 {
		return nil
	}
	d := make([]byte, img.size.X*img.size.Y*PixelSize(img.components, img.xtype))
	img.be.GetBufferData(img.buffer, d)
	return d
}

// Image2D copies the contents of the buffer object into a new host-visible
// image.
func (img *BufferedImage2D) Image2D() *Image2D {
	h := NewImage2D(img.components, img.xtype)
	h.SetData(img.size, img.components, img.xtype, img.Data())
	return h
}

// Destroy the buffer object.
func (img *BufferedImage2D) Destroy() {
	if img.buffer != 0 {
		img.be.DeleteBuffer(img.buffer)
		img.buffer = 0
		img.be = nil
	}
}
