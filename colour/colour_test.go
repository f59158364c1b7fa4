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

package colour_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/rendertarget/colour"
	"github.com/jetsetilly/rendertarget/test"
)

func TestConversion(t *testing.T) {
	c := colour.FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	test.ExpectEquality(t, c, colour.RGBA(1, 0, 0, 1))
	test.ExpectEquality(t, c.NRGBA(), color.NRGBA{R: 255, A: 255})

	// out of range components are clamped when converting
	o := colour.RGBA(2, -1, 0.5, 1)
	test.ExpectEquality(t, o.NRGBA(), color.NRGBA{R: 255, G: 0, B: 128, A: 255})

	test.ExpectEquality(t, colour.Black.String(), "(0.000, 0.000, 0.000, 1.000)")
}
