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

// Package colour defines the four component colour value used when setting
// clear and blend colours.
package colour

import (
	"fmt"
	"image/color"
)

// Colour is a straight RGBA value. Components are nominally in the range 0.0
// to 1.0 but are not clamped.
type Colour struct {
	R, G, B, A float32
}

// Commonly used colours.
var (
	Black       = Colour{0, 0, 0, 1}
	White       = Colour{1, 1, 1, 1}
	Transparent = Colour{0, 0, 0, 0}
)

// RGBA creates a new Colour from the component values.
func RGBA(r, g, b, a float32) Colour {
	return Colour{R: r, G: g, B: b, A: a}
}

// FromColor converts a color.Color from the standard library. The alpha
// premultiplication of the color.Color interface is reversed.
func FromColor(c color.Color) Colour {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Colour{
		R: float32(n.R) / 0xffff,
		G: float32(n.G) / 0xffff,
		B: float32(n.B) / 0xffff,
		A: float32(n.A) / 0xffff,
	}
}

func clamp(v float32) float32 {
	return min(max(v, 0), 1)
}

// NRGBA converts the colour to a non-premultiplied 8bit colour. Components
// are clamped.
func (c Colour) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R)*0xff + 0.5),
		G: uint8(clamp(c.G)*0xff + 0.5),
		B: uint8(clamp(c.B)*0xff + 0.5),
		A: uint8(clamp(c.A)*0xff + 0.5),
	}
}

// Components returns the components as an array, in RGBA order.
func (c Colour) Components() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

func (c Colour) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
}
