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
	"fmt"

	"github.com/jetsetilly/rendertarget/backend"
)

// Kind is the intrinsic type of a Surface.
type Kind int

// List of valid Kind values.
const (
	Renderbuffer Kind = iota
	Texture1D
	Texture2D
	Texture3D
	CubeMap
)

func (k Kind) String() string {
	switch k {
	case Renderbuffer:
		return "renderbuffer"
	case Texture1D:
		return "texture1D"
	case Texture2D:
		return "texture2D"
	case Texture3D:
		return "texture3D"
	case CubeMap:
		return "cubemap"
	}
	return "unknown kind"
}

// TargetKind distinguishes the addressing of a texture surface.
type TargetKind int

// List of valid TargetKind values. Not all combinations of Kind and TargetKind
// are valid. Multisample and Rectangle are only valid for Texture2D. Array is
// valid for Texture1D and Texture2D.
const (
	Plain TargetKind = iota
	Multisample
	Rectangle
	Array
)

func (t TargetKind) String() string {
	switch t {
	case Plain:
		return "plain"
	case Multisample:
		return "multisample"
	case Rectangle:
		return "rectangle"
	case Array:
		return "array"
	}
	return "unknown target"
}

// Surface is a handle to a renderbuffer or texture.
type Surface struct {
	kind    Kind
	target  TargetKind
	id      uint32
	format  Format
	width   int32
	height  int32
	depth   int32
	levels  int32
	samples int32
}

func (s Surface) String() string {
	return fmt.Sprintf("%s(%d) %s %dx%dx%d", s.kind, s.id, s.format, s.width, s.height, s.depth)
}

// Kind returns the intrinsic type of the surface.
func (s Surface) Kind() Kind {
	return s.kind
}

// TargetKind returns how the texture is addressed. Always Plain for
// renderbuffers and cube maps.
func (s Surface) TargetKind() TargetKind {
	return s.target
}

// ID returns the backend identity of the surface.
func (s Surface) ID() uint32 {
	return s.id
}

// Format returns the storage format of the surface.
func (s Surface) Format() Format {
	return s.format
}

// Size returns the dimensions of the surface. Unused dimensions are one.
func (s Surface) Size() (width, height, depth int32) {
	return s.width, s.height, s.depth
}

// Levels returns the number of mipmap levels.
func (s Surface) Levels() int32 {
	return s.levels
}

// Layers returns the number of layers that can be attached individually.
// This is the depth of a 3D texture or 2D array texture and the height of a
// 1D array texture. It is one for everything else.
func (s Surface) Layers() int32 {
	switch {
	case s.kind == Texture3D:
		return s.depth
	case s.kind == Texture1D && s.target == Array:
		return s.height
	case s.kind == Texture2D && s.target == Array:
		return s.depth
	}
	return 1
}

// Samples returns the number of samples for multisample surfaces and zero
// otherwise.
func (s Surface) Samples() int32 {
	return s.samples
}

// IsZero returns true if the surface does not refer to any backend identity.
func (s Surface) IsZero() bool {
	return s.id == 0
}

// Target returns the backend target that matches the kind and target kind of
// the surface.
func (s Surface) Target() backend.Enum {
	switch s.kind {
	case Renderbuffer:
		return backend.RENDERBUFFER
	case Texture1D:
		if s.target == Array {
			return backend.TEXTURE_1D_ARRAY
		}
		return backend.TEXTURE_1D
	case Texture2D:
		switch s.target {
		case Multisample:
			return backend.TEXTURE_2D_MULTISAMPLE
		case Rectangle:
			return backend.TEXTURE_RECTANGLE
		case Array:
			return backend.TEXTURE_2D_ARRAY
		}
		return backend.TEXTURE_2D
	case Texture3D:
		return backend.TEXTURE_3D
	case CubeMap:
		return backend.TEXTURE_CUBE_MAP
	}
	return backend.NONE
}

func one(v int32) int32 {
	return max(v, 1)
}

// NewRenderbuffer wraps an existing renderbuffer identity.
func NewRenderbuffer(id uint32, format Format, width, height int32) Surface {
	return Surface{kind: Renderbuffer, id: id, format: format, width: one(width), height: one(height), depth: 1, levels: 1}
}

// NewTexture1D wraps an existing one dimensional texture identity.
func NewTexture1D(id uint32, target TargetKind, format Format, width int32, levels int32) Surface {
	return Surface{kind: Texture1D, target: target, id: id, format: format, width: one(width), height: 1, depth: 1, levels: one(levels)}
}

// NewTexture2D wraps an existing two dimensional texture identity.
func NewTexture2D(id uint32, target TargetKind, format Format, width, height int32, levels int32) Surface {
	return Surface{kind: Texture2D, target: target, id: id, format: format, width: one(width), height: one(height), depth: 1, levels: one(levels)}
}

// NewTexture3D wraps an existing three dimensional texture identity.
func NewTexture3D(id uint32, format Format, width, height, depth int32, levels int32) Surface {
	return Surface{kind: Texture3D, id: id, format: format, width: one(width), height: one(height), depth: one(depth), levels: one(levels)}
}

// NewCubeMap wraps an existing cube map texture identity. Cube map faces are
// square.
func NewCubeMap(id uint32, format Format, size int32, levels int32) Surface {
	return Surface{kind: CubeMap, id: id, format: format, width: one(size), height: one(size), depth: 1, levels: one(levels)}
}
