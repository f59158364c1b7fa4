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

// Face is the face of a cube map.
type Face int

// List of valid Face values.
const (
	PositiveX Face = iota
	NegativeX
	PositiveY
	NegativeY
	PositiveZ
	NegativeZ
)

// Faces lists every cube map face in backend order.
var Faces = []Face{PositiveX, NegativeX, PositiveY, NegativeY, PositiveZ, NegativeZ}

func (f Face) String() string {
	switch f {
	case PositiveX:
		return "+X"
	case NegativeX:
		return "-X"
	case PositiveY:
		return "+Y"
	case NegativeY:
		return "-Y"
	case PositiveZ:
		return "+Z"
	case NegativeZ:
		return "-Z"
	}
	return "unknown face"
}

// Target returns the backend texture target for the face.
func (f Face) Target() backend.Enum {
	return backend.TEXTURE_CUBE_MAP_POSITIVE_X + backend.Enum(f)
}

// Attachment is a surface together with the sub-element to attach.
type Attachment struct {
	Surface Surface

	// the mipmap level. zero for renderbuffers
	Mip int32

	// the layer of a 3D texture
	Layer int32

	// the face of a cube map
	Face Face
}

// Whole returns an Attachment for the base level of the surface.
func Whole(s Surface) Attachment {
	return Attachment{Surface: s}
}

func (a Attachment) String() string {
	switch a.Surface.kind {
	case Renderbuffer:
		return a.Surface.String()
	case Texture3D:
		return fmt.Sprintf("%s mip=%d layer=%d", a.Surface, a.Mip, a.Layer)
	case CubeMap:
		return fmt.Sprintf("%s mip=%d face=%s", a.Surface, a.Mip, a.Face)
	}
	return fmt.Sprintf("%s mip=%d", a.Surface, a.Mip)
}

// TextureTarget returns the target to use when attaching the surface. This is
// the face target for cube maps and the surface target otherwise.
func (a Attachment) TextureTarget() backend.Enum {
	if a.Surface.kind == CubeMap {
		return a.Face.Target()
	}
	return a.Surface.Target()
}

// Size returns the dimensions of the attached sub-element, taking the mipmap
// level into account.
func (a Attachment) Size() (width, height int32) {
	w, h, _ := a.Surface.Size()
	mip := max(a.Mip, 0)
	return max(w>>mip, 1), max(h>>mip, 1)
}
