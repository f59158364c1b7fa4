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
	"fmt"
	"image"
	"slices"
	"strings"

	"github.com/jetsetilly/rendertarget/colour"
)

// State is a copy of the state of a Context at the time State() was called.
type State struct {
	Features map[Feature]bool

	ViewportPosition image.Point
	ViewportSize     image.Point

	ClearMask    ClearMask
	ClearColour  colour.Colour
	ClearDepth   float64
	ClearStencil int32

	BlendEquationRGB   BlendEquation
	BlendEquationAlpha BlendEquation
	BlendSourceRGB     BlendFunction
	BlendDestRGB       BlendFunction
	BlendSourceAlpha   BlendFunction
	BlendDestAlpha     BlendFunction
	BlendColour        colour.Colour

	ColourMask       [4]bool
	DepthMask        bool
	StencilMaskFront uint32
	StencilMaskBack  uint32

	// identity of the render target bound for each role. zero is the default
	// target
	Read uint32
	Draw uint32

	DefaultDraw []DefaultDrawAttachment
	DefaultRead DefaultReadAttachment

	// identities of all render targets that have not been destroyed
	Framebuffers []uint32
}

// State returns a copy of the context state.
func (ctx *Context) State() State {
	st := State{
		Features:           make(map[Feature]bool),
		ViewportPosition:   ctx.viewportPos,
		ViewportSize:       ctx.viewportSize,
		ClearMask:          ctx.clearMask,
		ClearColour:        ctx.clearColour,
		ClearDepth:         ctx.clearDepth,
		ClearStencil:       ctx.clearStencil,
		BlendEquationRGB:   ctx.blendEquation[0],
		BlendEquationAlpha: ctx.blendEquation[1],
		BlendSourceRGB:     ctx.blendFunction[0],
		BlendDestRGB:       ctx.blendFunction[1],
		BlendSourceAlpha:   ctx.blendFunction[2],
		BlendDestAlpha:     ctx.blendFunction[3],
		BlendColour:        ctx.blendColour,
		ColourMask:         ctx.colourMask,
		DepthMask:          ctx.depthMask,
		StencilMaskFront:   ctx.stencilMask[0],
		StencilMaskBack:    ctx.stencilMask[1],
		DefaultDraw:        ctx.DefaultDrawMapping(),
		DefaultRead:        ctx.defaultRead,
	}

	for _, f := range Features {
		st.Features[f] = ctx.features[f]
	}

	if ctx.read != nil {
		st.Read = ctx.read.id
	}
	if ctx.draw != nil {
		st.Draw = ctx.draw.id
	}

	for id := range ctx.framebuffers {
		st.Framebuffers = append(st.Framebuffers, id)
	}
	slices.Sort(st.Framebuffers)

	return st
}

func (st State) String() string {
	s := strings.Builder{}

	s.WriteString("features:")
	for _, f := range Features {
		if st.Features[f] {
			s.WriteString(fmt.Sprintf(" %s", f))
		}
	}
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("viewport: %v %v\n", st.ViewportPosition, st.ViewportSize))
	s.WriteString(fmt.Sprintf("clear: mask=%v colour=%v depth=%v stencil=%d\n",
		st.ClearMask, st.ClearColour, st.ClearDepth, st.ClearStencil))
	s.WriteString(fmt.Sprintf("blend: equation=%v/%v function=%v,%v/%v,%v colour=%v\n",
		st.BlendEquationRGB, st.BlendEquationAlpha,
		st.BlendSourceRGB, st.BlendDestRGB, st.BlendSourceAlpha, st.BlendDestAlpha,
		st.BlendColour))
	s.WriteString(fmt.Sprintf("write masks: colour=%v depth=%v stencil=%#08x/%#08x\n",
		st.ColourMask, st.DepthMask, st.StencilMaskFront, st.StencilMaskBack))
	s.WriteString(fmt.Sprintf("bound: read=%d draw=%d\n", st.Read, st.Draw))
	s.WriteString(fmt.Sprintf("default: draw=%v read=%v\n", st.DefaultDraw, st.DefaultRead))
	s.WriteString(fmt.Sprintf("framebuffers: %v", st.Framebuffers))

	return s.String()
}
