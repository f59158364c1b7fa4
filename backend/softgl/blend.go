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

func validEquation(mode backend.Enum) bool {
	switch mode {
	case backend.FUNC_ADD, backend.FUNC_SUBTRACT, backend.FUNC_REVERSE_SUBTRACT, backend.MIN, backend.MAX:
		return true
	}
	return false
}

func validFactor(f backend.Enum) bool {
	switch f {
	case backend.ZERO, backend.ONE,
		backend.SRC_COLOR, backend.ONE_MINUS_SRC_COLOR,
		backend.SRC_ALPHA, backend.ONE_MINUS_SRC_ALPHA,
		backend.DST_ALPHA, backend.ONE_MINUS_DST_ALPHA,
		backend.DST_COLOR, backend.ONE_MINUS_DST_COLOR,
		backend.SRC_ALPHA_SATURATE,
		backend.CONSTANT_COLOR, backend.ONE_MINUS_CONSTANT_COLOR,
		backend.CONSTANT_ALPHA, backend.ONE_MINUS_CONSTANT_ALPHA,
		backend.SRC1_ALPHA, backend.SRC1_COLOR,
		backend.ONE_MINUS_SRC1_COLOR, backend.ONE_MINUS_SRC1_ALPHA:
		return true
	}
	return false
}

// BlendEquation implements the backend.Backend interface.
func (be *Backend) BlendEquation(mode backend.Enum) {
	be.BlendEquationSeparate(mode, mode)
}

// BlendEquationSeparate implements the backend.Backend interface.
func (be *Backend) BlendEquationSeparate(modeRGB backend.Enum, modeAlpha backend.Enum) {
	if !validEquation(modeRGB) || !validEquation(modeAlpha) {
		be.setError(backend.INVALID_ENUM)
		return
	}
	be.blendEquation = [2]backend.Enum{modeRGB, modeAlpha}
}

// BlendFunc implements the backend.Backend interface.
func (be *Backend) BlendFunc(src backend.Enum, dst backend.Enum) {
	be.BlendFuncSeparate(src, dst, src, dst)
}

// BlendFuncSeparate implements the backend.Backend interface.
func (be *Backend) BlendFuncSeparate(srcRGB backend.Enum, dstRGB backend.Enum, srcAlpha backend.Enum, dstAlpha backend.Enum) {
	for _, f := range []backend.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha} {
		if !validFactor(f) {
			be.setError(backend.INVALID_ENUM)
			return
		}
	}
	be.blendFunc = [4]backend.Enum{srcRGB, dstRGB, srcAlpha, dstAlpha}
}

// BlendColor implements the backend.Backend interface.
func (be *Backend) BlendColor(r, g, b, a float32) {
	be.blendColour = [4]float32{r, g, b, a}
}

// BlendState returns the blend equations and blend factors. The factors are
// in the order srcRGB, dstRGB, srcAlpha, dstAlpha.
func (be *Backend) BlendState() (equations [2]backend.Enum, factors [4]backend.Enum, constant [4]float32) {
	return be.blendEquation, be.blendFunc, be.blendColour
}

// factor returns the value of the blend factor for component k. there is only
// ever one source so the dual source factors use the first source
func (be *Backend) factor(f backend.Enum, s, d [4]float32, k int) float32 {
	c := be.blendColour
	switch f {
	case backend.ZERO:
		return 0
	case backend.ONE:
		return 1
	case backend.SRC_COLOR, backend.SRC1_COLOR:
		return s[k]
	case backend.ONE_MINUS_SRC_COLOR, backend.ONE_MINUS_SRC1_COLOR:
		return 1 - s[k]
	case backend.SRC_ALPHA, backend.SRC1_ALPHA:
		return s[3]
	case backend.ONE_MINUS_SRC_ALPHA, backend.ONE_MINUS_SRC1_ALPHA:
		return 1 - s[3]
	case backend.DST_ALPHA:
		return d[3]
	case backend.ONE_MINUS_DST_ALPHA:
		return 1 - d[3]
	case backend.DST_COLOR:
		return d[k]
	case backend.ONE_MINUS_DST_COLOR:
		return 1 - d[k]
	case backend.SRC_ALPHA_SATURATE:
		if k == 3 {
			return 1
		}
		return min(s[3], 1-d[3])
	case backend.CONSTANT_COLOR:
		return c[k]
	case backend.ONE_MINUS_CONSTANT_COLOR:
		return 1 - c[k]
	case backend.CONSTANT_ALPHA:
		return c[3]
	case backend.ONE_MINUS_CONSTANT_ALPHA:
		return 1 - c[3]
	}
	return 0
}

// blend combines the source colour with the destination colour
func (be *Backend) blend(s, d [4]float32) [4]float32 {
	var out [4]float32
	for k := range out {
		eq := be.blendEquation[0]
		sf, df := be.blendFunc[0], be.blendFunc[1]
		if k == 3 {
			eq = be.blendEquation[1]
			sf, df = be.blendFunc[2], be.blendFunc[3]
		}

		sv := s[k] * be.factor(sf, s, d, k)
		dv := d[k] * be.factor(df, s, d, k)

		switch eq {
		case backend.FUNC_ADD:
			out[k] = sv + dv
		case backend.FUNC_SUBTRACT:
			out[k] = sv - dv
		case backend.FUNC_REVERSE_SUBTRACT:
			out[k] = dv - sv
		case backend.MIN:
			out[k] = min(s[k], d[k])
		case backend.MAX:
			out[k] = max(s[k], d[k])
		}
	}
	return out
}
