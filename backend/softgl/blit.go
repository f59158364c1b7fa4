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
	"image"
	"math"

	"github.com/jetsetilly/rendertarget/backend"
	xdraw "golang.org/x/image/draw"
)

type rect struct {
	x0, y0, x1, y1 int32
}

func (r rect) width() int32 {
	return abs(r.x1 - r.x0)
}

func (r rect) height() int32 {
	return abs(r.y1 - r.y0)
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// nearest maps every pixel in the destination rectangle to the nearest pixel in
// the source rectangle. the mapping is made using the centre of the
// destination pixel. mirrored rectangles are handled naturally because the
// coordinates are signed
func nearest(src, dst rect, srcPlane, dstPlane *plane, f func(si, di int)) {
	dw := float64(dst.x1 - dst.x0)
	dh := float64(dst.y1 - dst.y0)
	sw := float64(src.x1 - src.x0)
	sh := float64(src.y1 - src.y0)

	for y := min(dst.y0, dst.y1); y < max(dst.y0, dst.y1); y++ {
		sy := int(math.Floor(float64(src.y0) + (float64(y)+0.5-float64(dst.y0))/dh*sh))
		for x := min(dst.x0, dst.x1); x < max(dst.x0, dst.x1); x++ {
			sx := int(math.Floor(float64(src.x0) + (float64(x)+0.5-float64(dst.x0))/dw*sw))
			if !dstPlane.contains(int(x), int(y)) || !srcPlane.contains(sx, sy) {
				continue
			}
			f(srcPlane.index(sx, sy), dstPlane.index(int(x), int(y)))
		}
	}
}

// linear scales the source rectangle to the size of the destination rectangle
// with bilinear filtering
func linear(src, dst rect, srcPlane, dstPlane *plane) {
	dw := int(dst.width())
	dh := int(dst.height())

	// source rectangle in image coordinates
	sr := image.Rect(
		int(min(src.x0, src.x1)), srcPlane.height-int(max(src.y0, src.y1)),
		int(max(src.x0, src.x1)), srcPlane.height-int(min(src.y0, src.y1)),
	)

	scaled := image.NewNRGBA64(image.Rect(0, 0, dw, dh))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), planeImage{p: srcPlane}, sr, xdraw.Src, nil)

	flipX := (src.x1 < src.x0) != (dst.x1 < dst.x0)
	flipY := (src.y1 < src.y0) != (dst.y1 < dst.y0)
	ox := int(min(dst.x0, dst.x1))
	oy := int(min(dst.y0, dst.y1))

	for ty := 0; ty < dh; ty++ {
		// first row of the scaled image is the top row
		y := oy + dh - 1 - ty
		if flipY {
			y = oy + ty
		}
		for tx := 0; tx < dw; tx++ {
			x := ox + tx
			if flipX {
				x = ox + dw - 1 - tx
			}
			if !dstPlane.contains(x, y) {
				continue
			}
			c := scaled.NRGBA64At(tx, ty)
			dstPlane.setColour(dstPlane.index(x, y), [4]float32{
				float32(c.R) / 0xffff,
				float32(c.G) / 0xffff,
				float32(c.B) / 0xffff,
				float32(c.A) / 0xffff,
			})
		}
	}
}

// copyPlane duplicates the colour data of a plane. blitting between
// overlapping regions of the same plane is undefined in OpenGL
func copyPlane(p *plane) *plane {
	c := *p
	c.colour = append([]float32(nil), p.colour...)
	return &c
}

// BlitFramebuffer implements the backend.Backend interface. The colour buffer
// named by the read buffer of the read framebuffer is copied to every buffer
// in the draw buffer list of the draw framebuffer. Buffers named in the mask
// that do not exist in both framebuffers are silently ignored.
func (be *Backend) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter backend.Enum) {
	if mask&^allBufferBits != 0 {
		be.setError(backend.INVALID_VALUE)
		return
	}
	if filter != backend.NEAREST && filter != backend.LINEAR {
		be.setError(backend.INVALID_ENUM)
		return
	}
	if filter == backend.LINEAR && mask&(backend.DEPTH_BUFFER_BIT|backend.STENCIL_BUFFER_BIT) != 0 {
		be.setError(backend.INVALID_OPERATION)
		return
	}

	src := rect{srcX0, srcY0, srcX1, srcY1}
	dst := rect{dstX0, dstY0, dstX1, dstY1}
	if src.width() == 0 || src.height() == 0 || dst.width() == 0 || dst.height() == 0 {
		return
	}

	read := be.readFBO
	draw := be.drawFBO

	if mask&backend.COLOR_BUFFER_BIT != 0 {
		if sp := be.colourPlane(read, be.framebuffer(read).readBuffer); sp != nil {
			sp = copyPlane(sp)
			scaled := src.width() != dst.width() || src.height() != dst.height()

			for _, b := range be.framebuffer(draw).drawBuffers {
				dp := be.colourPlane(draw, b)
				if dp == nil {
					continue
				}
				if filter == backend.LINEAR && scaled {
					linear(src, dst, sp, dp)
				} else {
					nearest(src, dst, sp, dp, func(si, di int) {
						dp.setColour(di, sp.colourAt(si))
					})
				}
			}
		}
	}

	if mask&backend.DEPTH_BUFFER_BIT != 0 {
		sp := be.plane(read, backend.DEPTH_ATTACHMENT)
		dp := be.plane(draw, backend.DEPTH_ATTACHMENT)
		if sp != nil && dp != nil && sp.depth != nil && dp.depth != nil {
			d := append([]float32(nil), sp.depth...)
			nearest(src, dst, sp, dp, func(si, di int) {
				dp.depth[di] = d[si]
			})
		}
	}

	if mask&backend.STENCIL_BUFFER_BIT != 0 {
		sp := be.plane(read, backend.STENCIL_ATTACHMENT)
		dp := be.plane(draw, backend.STENCIL_ATTACHMENT)
		if sp != nil && dp != nil && sp.stencil != nil && dp.stencil != nil {
			s := append([]uint8(nil), sp.stencil...)
			nearest(src, dst, sp, dp, func(si, di int) {
				dp.stencil[di] = s[si]
			})
		}
	}
}
