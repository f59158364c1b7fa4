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

package framebuffer_test

import (
	"image"
	"strings"
	"testing"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/backend/recorder"
	"github.com/jetsetilly/rendertarget/backend/softgl"
	"github.com/jetsetilly/rendertarget/colour"
	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/framebuffer"
	"github.com/jetsetilly/rendertarget/test"
)

func TestFeatures(t *testing.T) {
	ctx, be := newContext(t)

	for _, f := range framebuffer.Features {
		test.ExpectEquality(t, ctx.Feature(f), f == framebuffer.Dithering, f)
	}

	ctx.SetFeature(framebuffer.Blending, true)
	test.ExpectSuccess(t, ctx.Feature(framebuffer.Blending))
	test.ExpectSuccess(t, be.Enabled(backend.BLEND))

	ctx.SetFeature(framebuffer.Dithering, false)
	test.ExpectFailure(t, ctx.Feature(framebuffer.Dithering))
	test.ExpectFailure(t, be.Enabled(backend.DITHER))

	ctx.SetFeature(framebuffer.ScissorTest, true)
	test.ExpectSuccess(t, be.Enabled(backend.SCISSOR_TEST))
	test.ExpectSuccess(t, ctx.Error())
}

func TestFeatureCallPerSet(t *testing.T) {
	rec := recorder.NewRecorder(softgl.New(width, height))
	ctx := framebuffer.NewContext(rec, nil)

	// setting a feature to the state it is already in still makes the call
	ctx.SetFeature(framebuffer.DepthTest, true)
	ctx.SetFeature(framebuffer.DepthTest, true)
	ctx.SetFeature(framebuffer.DepthTest, false)

	test.ExpectEquality(t, rec.String(), "Enable(DEPTH_TEST)\nEnable(DEPTH_TEST)\nDisable(DEPTH_TEST)\n")
}

func TestClearMaskFiltering(t *testing.T) {
	rec := recorder.NewRecorder(softgl.New(width, height))
	ctx := framebuffer.NewContext(rec, nil)

	all := framebuffer.ClearMask{}.With(framebuffer.ClearColor, framebuffer.ClearDepth, framebuffer.ClearStencil)
	test.ExpectSuccess(t, ctx.ClearMask().Equal(all))

	// depth and stencil tests are disabled so only colour is cleared
	ctx.Clear()
	test.ExpectEquality(t, rec.String(), "Clear(0x4000)\n")

	ctx.SetFeature(framebuffer.DepthTest, true)
	rec.Reset()
	ctx.Clear()
	test.ExpectEquality(t, rec.String(), "Clear(0x4100)\n")

	ctx.SetFeature(framebuffer.StencilTest, true)
	rec.Reset()
	ctx.Clear()
	test.ExpectEquality(t, rec.String(), "Clear(0x4500)\n")

	// nothing to clear means no call
	ctx.SetFeature(framebuffer.DepthTest, false)
	rec.Reset()
	ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearDepth))
	test.ExpectEquality(t, len(rec.Calls()), 0)

	ctx.ClearWith(framebuffer.ClearMask{})
	test.ExpectEquality(t, len(rec.Calls()), 0)

	// persisted default mask
	ctx.SetClearMask(framebuffer.ClearMask{}.With(framebuffer.ClearStencil))
	ctx.Clear()
	test.ExpectEquality(t, rec.String(), "Clear(0x0400)\n")
}

func TestClearColourOnly(t *testing.T) {
	ctx, be := newContext(t)
	fb := newTarget(t, ctx, be)

	primeDepthStencil(ctx, 0.5, 9)

	// clearing colour with the depth and stencil tests enabled does not touch
	// the depth and stencil buffers
	ctx.SetFeature(framebuffer.DepthTest, true)
	ctx.SetFeature(framebuffer.StencilTest, true)
	ctx.SetClearDepth(1.0)
	ctx.SetClearStencil(0)
	ctx.SetClearColor(colour.RGBA(0.25, 0.5, 0.75, 1.0))
	ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearColor))

	expectDepthStencil(t, be, fb, 0.5, 9)
	p, ok := be.Pixel(fb.ID(), backend.COLOR_ATTACHMENT0, 3, 3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, p, [4]float32{0.25, 0.5, 0.75, 1.0})
	test.ExpectSuccess(t, ctx.Error())
}

func TestClearValues(t *testing.T) {
	ctx, _ := newContext(t)

	c, d, s := ctx.ClearValues()
	test.ExpectEquality(t, c, colour.Black)
	test.ExpectEquality(t, d, 1.0)
	test.ExpectEquality(t, s, int32(0))

	ctx.SetClearColor(colour.White)
	ctx.SetClearDepth(0.5)
	ctx.SetClearStencil(0x55)

	c, d, s = ctx.ClearValues()
	test.ExpectEquality(t, c, colour.White)
	test.ExpectEquality(t, d, 0.5)
	test.ExpectEquality(t, s, int32(0x55))
}

func TestParseClearMask(t *testing.T) {
	m, err := framebuffer.ParseClearMask("color|depth")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m.Equal(framebuffer.ClearMask{}.With(framebuffer.ClearColor, framebuffer.ClearDepth)))

	m, err = framebuffer.ParseClearMask(" Stencil ")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m.Equal(framebuffer.ClearMask{}.With(framebuffer.ClearStencil)))

	m, err = framebuffer.ParseClearMask("none")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m.IsEmpty())

	_, err = framebuffer.ParseClearMask("color|accum")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidClearMask))

	// the string form of a mask can be parsed
	m, err = framebuffer.ParseClearMask(framebuffer.ClearMask{}.With(framebuffer.ClearDepth, framebuffer.ClearColor).String())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.Len(), 2)
}

func TestClearMaskPreference(t *testing.T) {
	p, err := framebuffer.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.ClearMask.Set("color"))

	// invalid values are rejected by the preference
	test.ExpectFailure(t, p.ClearMask.Set("colour|depth"))
	test.ExpectEquality(t, p.ClearMask.String(), "color")

	ctx := framebuffer.NewContext(softgl.New(width, height), p)
	test.ExpectSuccess(t, ctx.ClearMask().Equal(framebuffer.ClearMask{}.With(framebuffer.ClearColor)))
}

func TestBlendConfiguration(t *testing.T) {
	ctx, be := newContext(t)

	rgb, alpha := ctx.BlendEquation()
	test.ExpectEquality(t, rgb, framebuffer.Add)
	test.ExpectEquality(t, alpha, framebuffer.Add)

	srcRGB, dstRGB, srcAlpha, dstAlpha := ctx.BlendFunction()
	test.ExpectEquality(t, srcRGB, framebuffer.One)
	test.ExpectEquality(t, dstRGB, framebuffer.Zero)
	test.ExpectEquality(t, srcAlpha, framebuffer.One)
	test.ExpectEquality(t, dstAlpha, framebuffer.Zero)

	ctx.SetBlendEquationSeparate(framebuffer.ReverseSubtract, framebuffer.Max)
	ctx.SetBlendFunctionSeparate(framebuffer.SourceAlpha, framebuffer.OneMinusSourceAlpha,
		framebuffer.ConstantAlpha, framebuffer.OneMinusDestinationAlpha)
	ctx.SetBlendColor(colour.RGBA(0.1, 0.2, 0.3, 0.4))

	eqs, factors, constant := be.BlendState()
	test.ExpectEquality(t, eqs, [2]backend.Enum{backend.FUNC_REVERSE_SUBTRACT, backend.MAX})
	test.ExpectEquality(t, factors, [4]backend.Enum{backend.SRC_ALPHA, backend.ONE_MINUS_SRC_ALPHA,
		backend.CONSTANT_ALPHA, backend.ONE_MINUS_DST_ALPHA})
	test.ExpectEquality(t, constant, [4]float32{0.1, 0.2, 0.3, 0.4})
	test.ExpectEquality(t, ctx.BlendColor(), colour.RGBA(0.1, 0.2, 0.3, 0.4))

	ctx.SetBlendEquation(framebuffer.Subtract)
	ctx.SetBlendFunction(framebuffer.DestinationColor, framebuffer.SecondSourceColor)
	eqs, factors, _ = be.BlendState()
	test.ExpectEquality(t, eqs, [2]backend.Enum{backend.FUNC_SUBTRACT, backend.FUNC_SUBTRACT})
	test.ExpectEquality(t, factors, [4]backend.Enum{backend.DST_COLOR, backend.SRC1_COLOR,
		backend.DST_COLOR, backend.SRC1_COLOR})

	srcRGB, dstRGB, srcAlpha, dstAlpha = ctx.BlendFunction()
	test.ExpectEquality(t, srcRGB, framebuffer.DestinationColor)
	test.ExpectEquality(t, dstRGB, framebuffer.SecondSourceColor)
	test.ExpectEquality(t, srcAlpha, framebuffer.DestinationColor)
	test.ExpectEquality(t, dstAlpha, framebuffer.SecondSourceColor)

	test.ExpectSuccess(t, ctx.Error())
}

func TestBlending(t *testing.T) {
	ctx, be := newContext(t)
	fb := newTarget(t, ctx, be)

	ctx.SetViewport(image.Point{}, image.Point{width, height})
	ctx.SetClearColor(colour.RGBA(0, 0, 1, 1))
	ctx.Clear()

	// blending is not enabled so the output replaces the existing colour
	ctx.SetBlendFunction(framebuffer.SourceAlpha, framebuffer.OneMinusSourceAlpha)
	be.Fill(colour.RGBA(1, 0, 0, 0.5))
	p, _ := be.Pixel(fb.ID(), backend.COLOR_ATTACHMENT0, 0, 0)
	test.ExpectEquality(t, p, [4]float32{1, 0, 0, 0.5})

	ctx.Clear()
	ctx.SetFeature(framebuffer.Blending, true)
	be.Fill(colour.RGBA(1, 0, 0, 0.5))
	p, _ = be.Pixel(fb.ID(), backend.COLOR_ATTACHMENT0, 0, 0)
	test.ExpectClose(t, p[0], 0.5, 0.001)
	test.ExpectClose(t, p[1], 0.0, 0.001)
	test.ExpectClose(t, p[2], 0.5, 0.001)
	test.ExpectSuccess(t, ctx.Error())
}

func TestWriteMasks(t *testing.T) {
	ctx, be := newContext(t)
	fb := newTarget(t, ctx, be)

	r, g, b, a := ctx.ColorMask()
	test.ExpectSuccess(t, r && g && b && a)
	test.ExpectSuccess(t, ctx.DepthMask())

	ctx.SetColorMask(true, false, true, false)
	test.ExpectEquality(t, be.ColourMask(), [4]bool{true, false, true, false})

	ctx.SetClearColor(colour.White)
	ctx.Clear()
	p, _ := be.Pixel(fb.ID(), backend.COLOR_ATTACHMENT0, 1, 1)
	test.ExpectEquality(t, p, [4]float32{1, 0, 1, 0})

	// depth mask prevents clearing of the depth buffer
	primeDepthStencil(ctx, 0.25, 1)
	ctx.SetDepthMask(false)
	test.ExpectFailure(t, ctx.DepthMask())
	ctx.SetFeature(framebuffer.DepthTest, true)
	ctx.SetClearDepth(1.0)
	ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearDepth))
	expectDepthStencil(t, be, fb, 0.25, 1)

	ctx.SetStencilMask(0x0f)
	front, back := ctx.StencilMask()
	test.ExpectEquality(t, front, uint32(0x0f))
	test.ExpectEquality(t, back, uint32(0x0f))

	ctx.SetStencilMaskFace(framebuffer.BackFace, 0xf0)
	front, back = ctx.StencilMask()
	test.ExpectEquality(t, front, uint32(0x0f))
	test.ExpectEquality(t, back, uint32(0xf0))
	front, back = be.StencilMasks()
	test.ExpectEquality(t, front, uint32(0x0f))
	test.ExpectEquality(t, back, uint32(0xf0))

	ctx.SetStencilMaskFace(framebuffer.FrontAndBackFaces, 0x3)
	front, back = be.StencilMasks()
	test.ExpectEquality(t, front, uint32(0x3))
	test.ExpectEquality(t, back, uint32(0x3))

	test.ExpectSuccess(t, ctx.Error())
}

func TestViewport(t *testing.T) {
	ctx, be := newContext(t)
	fb := newTarget(t, ctx, be)

	pos, size := ctx.Viewport()
	test.ExpectEquality(t, pos, image.Point{})
	test.ExpectEquality(t, size, image.Point{})

	ctx.SetViewport(image.Point{2, 1}, image.Point{3, 2})
	pos, size = ctx.Viewport()
	test.ExpectEquality(t, pos, image.Point{2, 1})
	test.ExpectEquality(t, size, image.Point{3, 2})

	be.Fill(colour.White)
	inside, _ := be.Pixel(fb.ID(), backend.COLOR_ATTACHMENT0, 2, 1)
	outside, _ := be.Pixel(fb.ID(), backend.COLOR_ATTACHMENT0, 5, 1)
	test.ExpectEquality(t, inside, [4]float32{1, 1, 1, 1})
	test.ExpectEquality(t, outside, [4]float32{0, 0, 0, 0})
}

func TestBackendError(t *testing.T) {
	ctx, _ := newContext(t)
	test.ExpectSuccess(t, ctx.Error())

	// negative viewport size is an error in the backend
	ctx.SetViewport(image.Point{}, image.Point{-1, -1})
	err := ctx.Error()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.BackendError))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "INVALID_VALUE"))

	// the error has been drained
	test.ExpectSuccess(t, ctx.Error())
}

func TestState(t *testing.T) {
	ctx, be := newContext(t)
	fb := newTarget(t, ctx, be)

	ctx.SetFeature(framebuffer.Blending, true)
	ctx.SetClearColor(colour.White)

	st := ctx.State()
	test.ExpectSuccess(t, st.Features[framebuffer.Blending])
	test.ExpectSuccess(t, st.Features[framebuffer.Dithering])
	test.ExpectFailure(t, st.Features[framebuffer.DepthTest])
	test.ExpectEquality(t, st.ClearColour, colour.White)
	test.ExpectEquality(t, st.Read, fb.ID())
	test.ExpectEquality(t, st.Draw, fb.ID())
	test.ExpectEquality(t, len(st.Framebuffers), 1)

	s := st.String()
	test.ExpectSuccess(t, strings.Contains(s, "features: blending dithering\n"))
	test.ExpectSuccess(t, strings.Contains(s, "bound: read=1 draw=1\n"))

	// state is a copy
	ctx.SetFeature(framebuffer.Blending, false)
	test.ExpectSuccess(t, st.Features[framebuffer.Blending])
}
