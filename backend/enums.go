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

package backend

import "fmt"

// Enum is the type of all enumerated values passed to a Backend.
type Enum uint32

// framebuffer targets.
const (
	FRAMEBUFFER      Enum = 0x8d40
	READ_FRAMEBUFFER Enum = 0x8ca8
	DRAW_FRAMEBUFFER Enum = 0x8ca9
	RENDERBUFFER     Enum = 0x8d41
)

// attachment points. colour attachment N is COLOR_ATTACHMENT0+N.
const (
	COLOR_ATTACHMENT0        Enum = 0x8ce0
	COLOR_ATTACHMENT1        Enum = 0x8ce1
	COLOR_ATTACHMENT2        Enum = 0x8ce2
	COLOR_ATTACHMENT3        Enum = 0x8ce3
	COLOR_ATTACHMENT4        Enum = 0x8ce4
	COLOR_ATTACHMENT5        Enum = 0x8ce5
	COLOR_ATTACHMENT6        Enum = 0x8ce6
	COLOR_ATTACHMENT7        Enum = 0x8ce7
	COLOR_ATTACHMENT8        Enum = 0x8ce8
	COLOR_ATTACHMENT9        Enum = 0x8ce9
	COLOR_ATTACHMENT10       Enum = 0x8cea
	COLOR_ATTACHMENT11       Enum = 0x8ceb
	COLOR_ATTACHMENT12       Enum = 0x8cec
	COLOR_ATTACHMENT13       Enum = 0x8ced
	COLOR_ATTACHMENT14       Enum = 0x8cee
	COLOR_ATTACHMENT15       Enum = 0x8cef
	DEPTH_ATTACHMENT         Enum = 0x8d00
	STENCIL_ATTACHMENT       Enum = 0x8d20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821a

	// the maximum number of colour attachments assumed by the backends
	MaxColorAttachments = 16
)

// texture targets.
const (
	TEXTURE_1D                  Enum = 0x0de0
	TEXTURE_2D                  Enum = 0x0de1
	TEXTURE_3D                  Enum = 0x806f
	TEXTURE_RECTANGLE           Enum = 0x84f5
	TEXTURE_1D_ARRAY            Enum = 0x8c18
	TEXTURE_2D_ARRAY            Enum = 0x8c1a
	TEXTURE_2D_MULTISAMPLE      Enum = 0x9100
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_CUBE_MAP_NEGATIVE_X Enum = 0x8516
	TEXTURE_CUBE_MAP_POSITIVE_Y Enum = 0x8517
	TEXTURE_CUBE_MAP_NEGATIVE_Y Enum = 0x8518
	TEXTURE_CUBE_MAP_POSITIVE_Z Enum = 0x8519
	TEXTURE_CUBE_MAP_NEGATIVE_Z Enum = 0x851a
)

// capabilities for Enable() and Disable().
const (
	BLEND        Enum = 0x0be2
	DEPTH_CLAMP  Enum = 0x864f
	DEPTH_TEST   Enum = 0x0b71
	STENCIL_TEST Enum = 0x0b90
	DITHER       Enum = 0x0bd0
	CULL_FACE    Enum = 0x0b44
	SCISSOR_TEST Enum = 0x0c11
)

// buffer bits for Clear() and BlitFramebuffer().
const (
	COLOR_BUFFER_BIT   uint32 = 0x4000
	DEPTH_BUFFER_BIT   uint32 = 0x0100
	STENCIL_BUFFER_BIT uint32 = 0x0400
)

// blend equations.
const (
	FUNC_ADD              Enum = 0x8006
	FUNC_SUBTRACT         Enum = 0x800a
	FUNC_REVERSE_SUBTRACT Enum = 0x800b
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
)

// blend factors.
const (
	ZERO                     Enum = 0x0000
	ONE                      Enum = 0x0001
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	SRC_ALPHA_SATURATE       Enum = 0x0308
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002
	CONSTANT_ALPHA           Enum = 0x8003
	ONE_MINUS_CONSTANT_ALPHA Enum = 0x8004
	SRC1_ALPHA               Enum = 0x8589
	SRC1_COLOR               Enum = 0x88f9
	ONE_MINUS_SRC1_COLOR     Enum = 0x88fa
	ONE_MINUS_SRC1_ALPHA     Enum = 0x88fb
)

// default framebuffer buffers and polygon faces.
const (
	NONE           Enum = 0x0000
	FRONT_LEFT     Enum = 0x0400
	FRONT_RIGHT    Enum = 0x0401
	BACK_LEFT      Enum = 0x0402
	BACK_RIGHT     Enum = 0x0403
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	LEFT           Enum = 0x0406
	RIGHT          Enum = 0x0407
	FRONT_AND_BACK Enum = 0x0408
)

// blit filters.
const (
	NEAREST Enum = 0x2600
	LINEAR  Enum = 0x2601
)

// pixel formats.
const (
	STENCIL_INDEX   Enum = 0x1901
	DEPTH_COMPONENT Enum = 0x1902
	RED             Enum = 0x1903
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	RG              Enum = 0x8227
	BGR             Enum = 0x80e0
	BGRA            Enum = 0x80e1
	DEPTH_STENCIL   Enum = 0x84f9
)

// pixel component types.
const (
	BYTE              Enum = 0x1400
	UNSIGNED_BYTE     Enum = 0x1401
	SHORT             Enum = 0x1402
	UNSIGNED_SHORT    Enum = 0x1403
	INT               Enum = 0x1404
	UNSIGNED_INT      Enum = 0x1405
	FLOAT             Enum = 0x1406
	HALF_FLOAT        Enum = 0x140b
	UNSIGNED_INT_24_8 Enum = 0x84fa
)

// internal formats for renderbuffer and texture storage.
const (
	R8                 Enum = 0x8229
	RGBA8              Enum = 0x8058
	RGBA32F            Enum = 0x8814
	DEPTH_COMPONENT24  Enum = 0x81a6
	DEPTH_COMPONENT32F Enum = 0x8cac
	STENCIL_INDEX8     Enum = 0x8d48
	DEPTH24_STENCIL8   Enum = 0x88f0
)

// buffer usage hints.
const (
	STREAM_DRAW  Enum = 0x88e0
	STREAM_READ  Enum = 0x88e1
	STREAM_COPY  Enum = 0x88e2
	STATIC_DRAW  Enum = 0x88e4
	STATIC_READ  Enum = 0x88e5
	STATIC_COPY  Enum = 0x88e6
	DYNAMIC_DRAW Enum = 0x88e8
	DYNAMIC_READ Enum = 0x88e9
	DYNAMIC_COPY Enum = 0x88ea
)

// framebuffer status values returned by CheckFramebufferStatus().
const (
	FRAMEBUFFER_COMPLETE                      Enum = 0x8cd5
	FRAMEBUFFER_UNDEFINED                     Enum = 0x8219
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         Enum = 0x8cd6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT Enum = 0x8cd7
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        Enum = 0x8cdb
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        Enum = 0x8cdc
	FRAMEBUFFER_UNSUPPORTED                   Enum = 0x8cdd
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        Enum = 0x8d56
)

// error values returned by GetError().
const (
	NO_ERROR                      Enum = 0x0000
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
)

var names = map[Enum]string{
	FRAMEBUFFER:                 "FRAMEBUFFER",
	READ_FRAMEBUFFER:            "READ_FRAMEBUFFER",
	DRAW_FRAMEBUFFER:            "DRAW_FRAMEBUFFER",
	DEPTH_ATTACHMENT:            "DEPTH_ATTACHMENT",
	STENCIL_ATTACHMENT:          "STENCIL_ATTACHMENT",
	DEPTH_STENCIL_ATTACHMENT:    "DEPTH_STENCIL_ATTACHMENT",
	RENDERBUFFER:                "RENDERBUFFER",
	TEXTURE_1D:                  "TEXTURE_1D",
	TEXTURE_2D:                  "TEXTURE_2D",
	TEXTURE_3D:                  "TEXTURE_3D",
	TEXTURE_CUBE_MAP_POSITIVE_X: "TEXTURE_CUBE_MAP_POSITIVE_X",
	TEXTURE_CUBE_MAP_NEGATIVE_X: "TEXTURE_CUBE_MAP_NEGATIVE_X",
	TEXTURE_CUBE_MAP_POSITIVE_Y: "TEXTURE_CUBE_MAP_POSITIVE_Y",
	TEXTURE_CUBE_MAP_NEGATIVE_Y: "TEXTURE_CUBE_MAP_NEGATIVE_Y",
	TEXTURE_CUBE_MAP_POSITIVE_Z: "TEXTURE_CUBE_MAP_POSITIVE_Z",
	TEXTURE_CUBE_MAP_NEGATIVE_Z: "TEXTURE_CUBE_MAP_NEGATIVE_Z",
	BLEND:                       "BLEND",
	DEPTH_TEST:                  "DEPTH_TEST",
	STENCIL_TEST:                "STENCIL_TEST",
	NEAREST:                     "NEAREST",
	LINEAR:                      "LINEAR",
	FRAMEBUFFER_COMPLETE:        "FRAMEBUFFER_COMPLETE",
	FRAMEBUFFER_UNDEFINED:       "FRAMEBUFFER_UNDEFINED",
	FRAMEBUFFER_UNSUPPORTED:     "FRAMEBUFFER_UNSUPPORTED",

	FRAMEBUFFER_INCOMPLETE_ATTACHMENT:         "FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT: "FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:        "FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER",
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER:        "FRAMEBUFFER_INCOMPLETE_READ_BUFFER",
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:        "FRAMEBUFFER_INCOMPLETE_MULTISAMPLE",

	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
}

// String returns the name of the more commonly used values. Other values are
// printed in hexadecimal. Note that some values are shared by more than one
// constant, in which case the more common name is used. NONE and NO_ERROR
// share the zero value and will print as 0x0000.
func (e Enum) String() string {
	if e >= COLOR_ATTACHMENT0 && e < COLOR_ATTACHMENT0+MaxColorAttachments {
		return fmt.Sprintf("COLOR_ATTACHMENT%d", e-COLOR_ATTACHMENT0)
	}
	if n, ok := names[e]; ok {
		return n
	}
	return fmt.Sprintf("%#04x", uint32(e))
}
