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

import "github.com/jetsetilly/rendertarget/backend"

// Format is the storage format of a surface.
type Format int

// List of valid Format values.
const (
	RGBA8 Format = iota
	RGBA32F
	R8
	Depth24
	Depth32F
	Stencil8
	Depth24Stencil8
)

func (f Format) String() string {
	switch f {
	case RGBA8:
		return "RGBA8"
	case RGBA32F:
		return "RGBA32F"
	case R8:
		return "R8"
	case Depth24:
		return "Depth24"
	case Depth32F:
		return "Depth32F"
	case Stencil8:
		return "Stencil8"
	case Depth24Stencil8:
		return "Depth24Stencil8"
	}
	return "unknown format"
}

// IsColor returns true if the format stores colour values.
func (f Format) IsColor() bool {
	return f == RGBA8 || f == RGBA32F || f == R8
}

// HasDepth returns true if the format stores depth values.
func (f Format) HasDepth() bool {
	return f == Depth24 || f == Depth32F || f == Depth24Stencil8
}

// HasStencil returns true if the format stores stencil values.
func (f Format) HasStencil() bool {
	return f == Stencil8 || f == Depth24Stencil8
}

// Internal returns the backend internal format.
func (f Format) Internal() backend.Enum {
	switch f {
	case RGBA8:
		return backend.RGBA8
	case RGBA32F:
		return backend.RGBA32F
	case R8:
		return backend.R8
	case Depth24:
		return backend.DEPTH_COMPONENT24
	case Depth32F:
		return backend.DEPTH_COMPONENT32F
	case Stencil8:
		return backend.STENCIL_INDEX8
	case Depth24Stencil8:
		return backend.DEPTH24_STENCIL8
	}
	return backend.NONE
}
