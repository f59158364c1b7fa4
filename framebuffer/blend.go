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
	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/colour"
)

// BlendEquation is how a fragment and the existing value are combined after
// blend functions have been applied.
type BlendEquation int

// List of valid BlendEquation values.
const (
	Add BlendEquation = iota
	Subtract
	ReverseSubtract
	Min
	Max
)

func (e BlendEquation) String() string {
	switch e {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case ReverseSubtract:
		return "reverse subtract"
	case Min:
		return "min"
	case Max:
		return "max"
	}
	return "unknown equation"
}

func (e BlendEquation) enum() backend.Enum {
	switch e {
	case Add:
		return backend.FUNC_ADD
	case Subtract:
		return backend.FUNC_SUBTRACT
	case ReverseSubtract:
		return backend.FUNC_REVERSE_SUBTRACT
	case Min:
		return backend.MIN
	case Max:
		return backend.MAX
	}
	return backend.NONE
}

// BlendFunction is the factor by which the source or destination value is
// scaled before blending.
type BlendFunction int

// List of valid BlendFunction values. The Second variants refer to the second
// output of a dual source fragment shader.
const (
	Zero BlendFunction = iota
	One
	ConstantColor
	OneMinusConstantColor
	ConstantAlpha
	OneMinusConstantAlpha
	SourceColor
	SecondSourceColor
	OneMinusSourceColor
	OneMinusSecondSourceColor
	SourceAlpha
	SourceAlphaSaturate
	SecondSourceAlpha
	OneMinusSourceAlpha
	OneMinusSecondSourceAlpha
	DestinationColor
	OneMinusDestinationColor
	DestinationAlpha
	OneMinusDestinationAlpha
)

var blendFunctions = []struct {
	name string
	enum backend.Enum
}{
	Zero:                      {"zero", backend.ZERO},
	One:                       {"one", backend.ONE},
	ConstantColor:             {"constant color", backend.CONSTANT_COLOR},
	OneMinusConstantColor:     {"one minus constant color", backend.ONE_MINUS_CONSTANT_COLOR},
	ConstantAlpha:             {"constant alpha", backend.CONSTANT_ALPHA},
	OneMinusConstantAlpha:     {"one minus constant alpha", backend.ONE_MINUS_CONSTANT_ALPHA},
	SourceColor:               {"source color", backend.SRC_COLOR},
	SecondSourceColor:         {"second source color", backend.SRC1_COLOR},
	OneMinusSourceColor:       {"one minus source color", backend.ONE_MINUS_SRC_COLOR},
	OneMinusSecondSourceColor: {"one minus second source color", backend.ONE_MINUS_SRC1_COLOR},
	SourceAlpha:               {"source alpha", backend.SRC_ALPHA},
	SourceAlphaSaturate:       {"source alpha saturate", backend.SRC_ALPHA_SATURATE},
	SecondSourceAlpha:         {"second source alpha", backend.SRC1_ALPHA},
	OneMinusSourceAlpha:       {"one minus source alpha", backend.ONE_MINUS_SRC_ALPHA},
	OneMinusSecondSourceAlpha: {"one minus second source alpha", backend.ONE_MINUS_SRC1_ALPHA},
	DestinationColor:          {"destination color", backend.DST_COLOR},
	OneMinusDestinationColor:  {"one minus destination color", backend.ONE_MINUS_DST_COLOR},
	DestinationAlpha:          {"destination alpha", backend.DST_ALPHA},
	OneMinusDestinationAlpha:  {"one minus destination alpha", backend.ONE_MINUS_DST_ALPHA},
}

func (f BlendFunction) String() string {
	if f < 0 || int(f) >= len(blendFunctions) {
		return "unknown function"
	}
	return blendFunctions[f].name
}

func (f BlendFunction) enum() backend.Enum {
	if f < 0 || int(f) >= len(blendFunctions) {
		// an enum the backend will reject
		return backend.Enum(0xffff)
	}
	return blendFunctions[f].enum
}

// SetBlendEquation sets the equation for both the colour and the alpha
// components. Blending only happens when the Blending feature is enabled.
func (ctx *Context) SetBlendEquation(eq BlendEquation) {
	ctx.be.BlendEquation(eq.enum())
	ctx.blendEquation = [2]BlendEquation{eq, eq}
}

// SetBlendEquationSeparate sets the equation for the colour and the alpha
// components separately.
func (ctx *Context) SetBlendEquationSeparate(rgb BlendEquation, alpha BlendEquation) {
	ctx.be.BlendEquationSeparate(rgb.enum(), alpha.enum())
	ctx.blendEquation = [2]BlendEquation{rgb, alpha}
}

// BlendEquation returns the equations for the colour and alpha components.
func (ctx *Context) BlendEquation() (rgb BlendEquation, alpha BlendEquation) {
	return ctx.blendEquation[0], ctx.blendEquation[1]
}

// SetBlendFunction sets the source and destination factors for all
// components.
func (ctx *Context) SetBlendFunction(src BlendFunction, dst BlendFunction) {
	ctx.be.BlendFunc(src.enum(), dst.enum())
	ctx.blendFunction = [4]BlendFunction{src, dst, src, dst}
}

// SetBlendFunctionSeparate sets the source and destination factors for the
// colour and the alpha components separately.
func (ctx *Context) SetBlendFunctionSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFunction) {
	ctx.be.BlendFuncSeparate(srcRGB.enum(), dstRGB.enum(), srcAlpha.enum(), dstAlpha.enum())
	ctx.blendFunction = [4]BlendFunction{srcRGB, dstRGB, srcAlpha, dstAlpha}
}

// BlendFunction returns the source and destination factors for the colour and
// the alpha components.
func (ctx *Context) BlendFunction() (srcRGB, dstRGB, srcAlpha, dstAlpha BlendFunction) {
	return ctx.blendFunction[0], ctx.blendFunction[1], ctx.blendFunction[2], ctx.blendFunction[3]
}

// SetBlendColor sets the colour used by the ConstantColor and ConstantAlpha
// blend functions.
func (ctx *Context) SetBlendColor(c colour.Colour) {
	ctx.be.BlendColor(c.R, c.G, c.B, c.A)
	ctx.blendColour = c
}

// BlendColor returns the constant blend colour.
func (ctx *Context) BlendColor() colour.Colour {
	return ctx.blendColour
}
