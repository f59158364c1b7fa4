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

package imagedata

import "github.com/jetsetilly/rendertarget/backend"

// Components describes the layout of the components of each pixel.
type Components int

// List of valid Components values.
const (
	Red Components = iota
	RG
	RGB
	RGBA
	BGR
	BGRA
	Depth
	Stencil
	DepthStencil
)

func (c Components) String() string {
	switch c {
	case Red:
		return "Red"
	case RG:
		return "RG"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case BGR:
		return "BGR"
	case BGRA:
		return "BGRA"
	case Depth:
		return "Depth"
	case Stencil:
		return "Stencil"
	case DepthStencil:
		return "DepthStencil"
	}
	return "unknown components"
}

// Count returns the number of components per pixel.
func (c Components) Count() int {
	switch c {
	case Red, Depth, Stencil:
		return 1
	case RG, DepthStencil:
		return 2
	case RGB, BGR:
		return 3
	case RGBA, BGRA:
		return 4
	}
	return 0
}

// Enum returns the backend pixel format.
func (c Components) Enum() backend.Enum {
	switch c {
	case Red:
		return backend.RED
	case RG:
		return backend.RG
	case RGB:
		return backend.RGB
	case RGBA:
		return backend.RGBA
	case BGR:
		return backend.BGR
	case BGRA:
		return backend.BGRA
	case Depth:
		return backend.DEPTH_COMPONENT
	case Stencil:
		return backend.STENCIL_INDEX
	case DepthStencil:
		return backend.DEPTH_STENCIL
	}
	return backend.NONE
}

// ComponentType is the data type of each component.
type ComponentType int

// List of valid ComponentType values.
const (
	UnsignedByte ComponentType = iota
	Byte
	UnsignedShort
	Short
	UnsignedInt
	Int
	Float
	HalfFloat

	// packed type for DepthStencil components. 24 bits of depth and 8 bits
	// of stencil in one 32bit word
	UnsignedInt248
)

func (t ComponentType) String() string {
	switch t {
	case UnsignedByte:
		return "UnsignedByte"
	case Byte:
		return "Byte"
	case UnsignedShort:
		return "UnsignedShort"
	case Short:
		return "Short"
	case UnsignedInt:
		return "UnsignedInt"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case HalfFloat:
		return "HalfFloat"
	case UnsignedInt248:
		return "UnsignedInt248"
	}
	return "unknown type"
}

// Size returns the number of bytes of a single component.
func (t ComponentType) Size() int {
	switch t {
	case UnsignedByte, Byte:
		return 1
	case UnsignedShort, Short, HalfFloat:
		return 2
	case UnsignedInt, Int, Float, UnsignedInt248:
		return 4
	}
	return 0
}

// Enum returns the backend component type.
func (t ComponentType) Enum() backend.Enum {
	switch t {
	case UnsignedByte:
		return backend.UNSIGNED_BYTE
	case Byte:
		return backend.BYTE
	case UnsignedShort:
		return backend.UNSIGNED_SHORT
	case Short:
		return backend.SHORT
	case UnsignedInt:
		return backend.UNSIGNED_INT
	case Int:
		return backend.INT
	case Float:
		return backend.FLOAT
	case HalfFloat:
		return backend.HALF_FLOAT
	case UnsignedInt248:
		return backend.UNSIGNED_INT_24_8
	}
	return backend.NONE
}

// PixelSize returns the number of bytes used by one pixel.
func PixelSize(c Components, t ComponentType) int {
	// packed types hold all components in one word
	if t == UnsignedInt248 {
		return t.Size()
	}
	return c.Count() * t.Size()
}

// Usage is a hint for how a buffer image will be used.
type Usage int

// List of valid Usage values.
const (
	StreamRead Usage = iota
	StreamCopy
	StaticRead
	StaticCopy
	DynamicRead
	DynamicCopy
)

func (u Usage) String() string {
	switch u {
	case StreamRead:
		return "StreamRead"
	case StreamCopy:
		return "StreamCopy"
	case StaticRead:
		return "StaticRead"
	case StaticCopy:
		return "StaticCopy"
	case DynamicRead:
		return "DynamicRead"
	case DynamicCopy:
		return "DynamicCopy"
	}
	return "unknown usage"
}

// Enum returns the backend usage hint.
func (u Usage) Enum() backend.Enum {
	switch u {
	case StreamRead:
		return backend.STREAM_READ
	case StreamCopy:
		return backend.STREAM_COPY
	case StaticRead:
		return backend.STATIC_READ
	case StaticCopy:
		return backend.STATIC_COPY
	case DynamicRead:
		return backend.DYNAMIC_READ
	case DynamicCopy:
		return backend.DYNAMIC_COPY
	}
	return backend.NONE
}
