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
	"image"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/imagedata"
	"github.com/jetsetilly/rendertarget/maskset"
)

// BlitBuffer is a buffer that can be named in a BlitMask.
type BlitBuffer uint32

// List of valid BlitBuffer values.
const (
	BlitColor   = BlitBuffer(backend.COLOR_BUFFER_BIT)
	BlitDepth   = BlitBuffer(backend.DEPTH_BUFFER_BIT)
	BlitStencil = BlitBuffer(backend.STENCIL_BUFFER_BIT)
)

func (b BlitBuffer) String() string {
	switch b {
	case BlitColor:
		return "color"
	case BlitDepth:
		return "depth"
	case BlitStencil:
		return "stencil"
	}
	return "unknown buffer"
}

// BlitMask is a set of BlitBuffer values.
type BlitMask = maskset.Set[BlitBuffer]

// Filter is the interpolation used when a blit changes the size of the image.
type Filter int

// List of valid Filter values. Linear can only be used when the BlitMask
// contains only BlitColor.
const (
	NearestNeighbor Filter = iota
	Linear
)

func (f Filter) String() string {
	switch f {
	case NearestNeighbor:
		return "nearest neighbor"
	case Linear:
		return "linear"
	}
	return "unknown filter"
}

func (f Filter) enum() backend.Enum {
	switch f {
	case NearestNeighbor:
		return backend.NEAREST
	case Linear:
		return backend.LINEAR
	}
	return backend.Enum(0xffff)
}

// Blit copies a rectangle of the render target bound for Read to a rectangle
// of the render target bound for Draw. Only the buffers named in the mask are
// copied. Colour data is copied from the read mapping of the source to every
// buffer in the draw mapping of the destination.
//
// The rectangles are given as minimum and maximum corners and the maximum is
// exclusive. If the minimum is greater than the maximum then the image is
// flipped on that axis.
func (ctx *Context) Blit(srcMin, srcMax, dstMin, dstMax image.Point, mask BlitMask, filter Filter) {
	ctx.be.BlitFramebuffer(
		int32(srcMin.X), int32(srcMin.Y), int32(srcMax.X), int32(srcMax.Y),
		int32(dstMin.X), int32(dstMin.Y), int32(dstMax.X), int32(dstMax.Y),
		mask.Bits(), filter.enum())
}

// BlitSame copies the rectangle of the render target bound for Read to the
// same rectangle of the render target bound for Draw.
func (ctx *Context) BlitSame(minimum, maximum image.Point, mask BlitMask) {
	ctx.Blit(minimum, maximum, minimum, maximum, mask, NearestNeighbor)
}

// Read copies a rectangle of the render target bound for Read into the image.
// The offset is the bottom left corner of the rectangle. The image is resized
// as required. Rows in the image are bottom to top.
func (ctx *Context) Read(offset, size image.Point, components imagedata.Components, xtype imagedata.ComponentType, img *imagedata.Image2D) {
	data := img.Prepare(size, components, xtype)
	ctx.be.ReadPixels(int32(offset.X), int32(offset.Y), int32(size.X), int32(size.Y), components.Enum(), xtype.Enum(), data)
}

// ReadBuffered copies a rectangle of the render target bound for Read into the
// buffer object of the image. The data stays in backend memory until it is
// requested with the Data() function of the image.
func (ctx *Context) ReadBuffered(offset, size image.Point, components imagedata.Components, xtype imagedata.ComponentType, img *imagedata.BufferedImage2D, usage imagedata.Usage) {
	buffer, n := img.Prepare(ctx.be, size, components, xtype, usage)
	ctx.be.ReadPixelsBuffer(int32(offset.X), int32(offset.Y), int32(size.X), int32(size.Y), components.Enum(), xtype.Enum(), buffer, n, usage.Enum())
}
