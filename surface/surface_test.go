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

package surface_test

import (
	"testing"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/backend/softgl"
	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/surface"
	"github.com/jetsetilly/rendertarget/test"
)

func TestAllocate(t *testing.T) {
	be := softgl.New(4, 4)

	rb, err := surface.Allocate(be, surface.Description{
		Kind:   surface.Renderbuffer,
		Format: surface.RGBA8,
		Width:  8,
		Height: 6,
		Levels: 4,
	})
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, rb.IsZero())
	test.ExpectEquality(t, rb.Levels(), int32(1))
	test.ExpectEquality(t, rb.Target(), backend.RENDERBUFFER)
	test.ExpectEquality(t, be.Live().Renderbuffers, 1)

	cube, err := surface.Allocate(be, surface.Description{
		Kind:   surface.CubeMap,
		Format: surface.RGBA8,
		Width:  16,
		Height: 4,
		Levels: 2,
	})
	test.DemandSuccess(t, err)
	w, h, d := cube.Size()
	test.ExpectEquality(t, w, int32(16))
	test.ExpectEquality(t, h, int32(16))
	test.ExpectEquality(t, d, int32(1))
	test.ExpectEquality(t, be.Live().Textures, 1)

	surface.Release(be, rb)
	surface.Release(be, cube)
	test.ExpectEquality(t, be.Live().Renderbuffers, 0)
	test.ExpectEquality(t, be.Live().Textures, 0)

	// releasing a zero surface does nothing
	surface.Release(be, surface.Surface{})
}

func TestAllocateErrors(t *testing.T) {
	be := softgl.New(4, 4)

	tests := []struct {
		d       surface.Description
		pattern string
	}{
		{surface.Description{Kind: surface.Texture2D, Format: surface.RGBA8, Width: 8}, surface.InvalidSize},
		{surface.Description{Kind: surface.Texture3D, Format: surface.RGBA8, Width: 8, Height: 8}, surface.InvalidSize},
		{surface.Description{Kind: surface.Texture1D, Format: surface.RGBA8}, surface.InvalidSize},
		{surface.Description{Kind: surface.Texture3D, Target: surface.Rectangle, Format: surface.RGBA8, Width: 8, Height: 8, Depth: 2}, surface.InvalidTarget},
		{surface.Description{Kind: surface.CubeMap, Target: surface.Array, Format: surface.RGBA8, Width: 8, Height: 8}, surface.InvalidTarget},
		{surface.Description{Kind: surface.Texture2D, Target: surface.Multisample, Format: surface.RGBA8, Width: 8, Height: 8, Levels: 2, Samples: 4}, surface.MultisampleNoMips},
		{surface.Description{Kind: surface.Texture2D, Target: surface.Multisample, Format: surface.RGBA8, Width: 8, Height: 8}, surface.MultisampleSamples},
		{surface.Description{Kind: surface.Renderbuffer, Format: surface.Format(-1), Width: 8, Height: 8}, surface.InvalidFormat},
	}

	for i, tt := range tests {
		s, err := surface.Allocate(be, tt.d)
		test.ExpectSuccess(t, curated.Is(err, tt.pattern), i, err)
		test.ExpectSuccess(t, s.IsZero(), i)
	}

	// nothing reached the backend
	test.ExpectEquality(t, be.Live().Renderbuffers, 0)
	test.ExpectEquality(t, be.Live().Textures, 0)
}

func TestLayers(t *testing.T) {
	test.ExpectEquality(t, surface.NewTexture3D(1, surface.RGBA8, 8, 8, 5, 1).Layers(), int32(5))
	test.ExpectEquality(t, surface.NewTexture1D(1, surface.Array, surface.RGBA8, 8, 1).Layers(), int32(1))
	test.ExpectEquality(t, surface.NewTexture2D(1, surface.Plain, surface.RGBA8, 8, 4, 1).Layers(), int32(1))
	test.ExpectEquality(t, surface.NewCubeMap(1, surface.RGBA8, 8, 1).Layers(), int32(1))
	test.ExpectEquality(t, surface.NewRenderbuffer(1, surface.RGBA8, 8, 8).Layers(), int32(1))

	be := softgl.New(4, 4)
	arr, err := surface.Allocate(be, surface.Description{
		Kind:   surface.Texture1D,
		Target: surface.Array,
		Format: surface.R8,
		Width:  8,
		Height: 3,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, arr.Layers(), int32(3))
	test.ExpectEquality(t, arr.Target(), backend.TEXTURE_1D_ARRAY)
}

func TestTargets(t *testing.T) {
	test.ExpectEquality(t, surface.NewTexture2D(1, surface.Multisample, surface.RGBA8, 8, 8, 1).Target(), backend.TEXTURE_2D_MULTISAMPLE)
	test.ExpectEquality(t, surface.NewTexture2D(1, surface.Rectangle, surface.RGBA8, 8, 8, 1).Target(), backend.TEXTURE_RECTANGLE)
	test.ExpectEquality(t, surface.NewTexture2D(1, surface.Array, surface.RGBA8, 8, 8, 1).Target(), backend.TEXTURE_2D_ARRAY)
	test.ExpectEquality(t, surface.NewTexture2D(1, surface.Plain, surface.RGBA8, 8, 8, 1).Target(), backend.TEXTURE_2D)
	test.ExpectEquality(t, surface.NewTexture3D(1, surface.RGBA8, 8, 8, 8, 1).Target(), backend.TEXTURE_3D)
	test.ExpectEquality(t, surface.NewCubeMap(1, surface.RGBA8, 8, 1).Target(), backend.TEXTURE_CUBE_MAP)
}

func TestAttachment(t *testing.T) {
	s := surface.NewTexture2D(1, surface.Plain, surface.RGBA8, 8, 6, 4)

	a := surface.Whole(s)
	w, h := a.Size()
	test.ExpectEquality(t, w, int32(8))
	test.ExpectEquality(t, h, int32(6))
	test.ExpectEquality(t, a.TextureTarget(), backend.TEXTURE_2D)

	a.Mip = 2
	w, h = a.Size()
	test.ExpectEquality(t, w, int32(2))
	test.ExpectEquality(t, h, int32(1))

	// dimensions never shrink to zero
	a.Mip = 3
	w, h = a.Size()
	test.ExpectEquality(t, w, int32(1))
	test.ExpectEquality(t, h, int32(1))

	cube := surface.Attachment{Surface: surface.NewCubeMap(2, surface.RGBA8, 8, 1), Face: surface.NegativeY}
	test.ExpectEquality(t, cube.TextureTarget(), backend.TEXTURE_CUBE_MAP_NEGATIVE_Y)
	test.ExpectEquality(t, cube.Face.String(), "-Y")
}

func TestFormat(t *testing.T) {
	test.ExpectSuccess(t, surface.RGBA8.IsColor())
	test.ExpectFailure(t, surface.RGBA8.HasDepth())
	test.ExpectSuccess(t, surface.Depth24Stencil8.HasDepth())
	test.ExpectSuccess(t, surface.Depth24Stencil8.HasStencil())
	test.ExpectFailure(t, surface.Depth24Stencil8.IsColor())
	test.ExpectFailure(t, surface.Stencil8.HasDepth())
	test.ExpectEquality(t, surface.Format(-1).Internal(), backend.NONE)
}
