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
	"image/color"
)

// planeImage presents the colour storage of a plane as an image.Image. The
// image is the right way up, so the bottom row of the plane is the last row
// of the image.
type planeImage struct {
	p *plane
}

func (img planeImage) ColorModel() color.Model {
	return color.NRGBA64Model
}

func (img planeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.p.width, img.p.height)
}

func unit16(v float32) uint16 {
	return uint16(min(max(v, 0), 1)*0xffff + 0.5)
}

func (img planeImage) At(x, y int) color.Color {
	y = img.p.height - 1 - y
	if !img.p.contains(x, y) {
		return color.NRGBA64{}
	}
	c := img.p.colourAt(img.p.index(x, y))
	return color.NRGBA64{R: unit16(c[0]), G: unit16(c[1]), B: unit16(c[2]), A: unit16(c[3])}
}
