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

package surface

import (
	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/curated"
)

// Sentinal error patterns returned by Allocate().
const (
	InvalidSize        = "surface: invalid size (%dx%dx%d)"
	InvalidTarget      = "surface: %v cannot have a %v target"
	InvalidFormat      = "surface: %v is not a valid format"
	AllocationFailed   = "surface: backend could not allocate %v"
	MultisampleNoMips  = "surface: multisample surfaces cannot have mipmap levels"
	MultisampleSamples = "surface: multisample surfaces must have at least one sample"
)

// Description of a surface to be created by Allocate().
type Description struct {
	Kind    Kind
	Target  TargetKind
	Format  Format
	Width   int32
	Height  int32
	Depth   int32
	Levels  int32
	Samples int32
}

// Allocate asks the backend to create storage for the surface. The
// description is checked for consistency before the backend is asked.
func Allocate(alloc backend.Allocator, d Description) (Surface, error) {
	if d.Format.Internal() == backend.NONE {
		return Surface{}, curated.Errorf(InvalidFormat, d.Format)
	}

	s := Surface{
		kind:    d.Kind,
		target:  d.Target,
		format:  d.Format,
		width:   one(d.Width),
		height:  one(d.Height),
		depth:   one(d.Depth),
		levels:  one(d.Levels),
		samples: d.Samples,
	}

	if d.Width <= 0 {
		return Surface{}, curated.Errorf(InvalidSize, d.Width, d.Height, d.Depth)
	}

	switch d.Kind {
	case Renderbuffer, Texture2D, CubeMap:
		if d.Height <= 0 {
			return Surface{}, curated.Errorf(InvalidSize, d.Width, d.Height, d.Depth)
		}
	case Texture3D:
		if d.Height <= 0 || d.Depth <= 0 {
			return Surface{}, curated.Errorf(InvalidSize, d.Width, d.Height, d.Depth)
		}
	}

	switch d.Target {
	case Plain:
	case Multisample, Rectangle:
		if d.Kind != Texture2D {
			return Surface{}, curated.Errorf(InvalidTarget, d.Kind, d.Target)
		}
	case Array:
		if d.Kind != Texture1D && d.Kind != Texture2D {
			return Surface{}, curated.Errorf(InvalidTarget, d.Kind, d.Target)
		}
	default:
		return Surface{}, curated.Errorf(InvalidTarget, d.Kind, d.Target)
	}

	if d.Target == Multisample {
		if d.Levels > 1 {
			return Surface{}, curated.Errorf(MultisampleNoMips)
		}
		if d.Samples < 1 {
			return Surface{}, curated.Errorf(MultisampleSamples)
		}
	} else if d.Kind != Renderbuffer {
		s.samples = 0
	}

	if d.Kind == CubeMap {
		s.height = s.width
	}

	switch d.Kind {
	case Renderbuffer:
		s.levels = 1
		s.id = alloc.GenRenderbuffer(d.Format.Internal(), s.width, s.height, s.samples)
	default:
		s.id = alloc.GenTexture(s.Target(), d.Format.Internal(), s.width, s.height, s.depth, s.levels, s.samples)
	}

	if s.id == 0 {
		return Surface{}, curated.Errorf(AllocationFailed, d.Kind)
	}

	return s, nil
}

// Release the storage of a surface created with Allocate().
func Release(alloc backend.Allocator, s Surface) {
	if s.id == 0 {
		return
	}
	if s.kind == Renderbuffer {
		alloc.DeleteRenderbuffer(s.id)
	} else {
		alloc.DeleteTexture(s.id)
	}
}
