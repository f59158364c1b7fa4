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

import "github.com/jetsetilly/rendertarget/backend"

// Feature is a capability of the graphics context that can be switched on and
// off.
type Feature int

// List of valid Feature values. Operations that depend on a feature have no
// effect unless the feature is enabled. It is the responsibility of the caller
// to enable the feature.
const (
	Blending Feature = iota
	DepthClamp
	DepthTest
	StencilTest
	Dithering
	FaceCulling
	ScissorTest
	numFeatures
)

// Features lists every Feature.
var Features = []Feature{Blending, DepthClamp, DepthTest, StencilTest, Dithering, FaceCulling, ScissorTest}

func (f Feature) String() string {
	switch f {
	case Blending:
		return "blending"
	case DepthClamp:
		return "depth clamp"
	case DepthTest:
		return "depth test"
	case StencilTest:
		return "stencil test"
	case Dithering:
		return "dithering"
	case FaceCulling:
		return "face culling"
	case ScissorTest:
		return "scissor test"
	}
	return "unknown feature"
}

func (f Feature) enum() backend.Enum {
	switch f {
	case Blending:
		return backend.BLEND
	case DepthClamp:
		return backend.DEPTH_CLAMP
	case DepthTest:
		return backend.DEPTH_TEST
	case StencilTest:
		return backend.STENCIL_TEST
	case Dithering:
		return backend.DITHER
	case FaceCulling:
		return backend.CULL_FACE
	case ScissorTest:
		return backend.SCISSOR_TEST
	}
	return backend.NONE
}

// SetFeature enables or disables the feature. Exactly one backend call is
// made each time, even if the feature is already in the requested state.
func (ctx *Context) SetFeature(f Feature, enabled bool) {
	if enabled {
		ctx.be.Enable(f.enum())
	} else {
		ctx.be.Disable(f.enum())
	}
	if f >= 0 && f < numFeatures {
		ctx.features[f] = enabled
	}
}

// Feature returns true if the feature is enabled.
func (ctx *Context) Feature(f Feature) bool {
	if f < 0 || f >= numFeatures {
		return false
	}
	return ctx.features[f]
}
