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

package glbackend

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/rendertarget/backend"
)

// the pixel format and type to use when specifying storage with no data. the
// values must be acceptable for the internal format even though no data is
// transferred
func transfer(internalFormat backend.Enum) (uint32, uint32) {
	switch internalFormat {
	case backend.DEPTH_COMPONENT24, backend.DEPTH_COMPONENT32F:
		return gl.DEPTH_COMPONENT, gl.FLOAT
	case backend.STENCIL_INDEX8:
		return gl.STENCIL_INDEX, gl.UNSIGNED_BYTE
	case backend.DEPTH24_STENCIL8:
		return gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8
	case backend.R8:
		return gl.RED, gl.UNSIGNED_BYTE
	case backend.RGBA32F:
		return gl.RGBA, gl.FLOAT
	}
	return gl.RGBA, gl.UNSIGNED_BYTE
}

func (be *Backend) GenRenderbuffer(internalFormat backend.Enum, width, height, samples int32) uint32 {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rb)
	if samples > 0 {
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, uint32(internalFormat), width, height)
	} else {
		gl.RenderbufferStorage(gl.RENDERBUFFER, uint32(internalFormat), width, height)
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	return rb
}

func (be *Backend) DeleteRenderbuffer(renderbuffer uint32) {
	gl.DeleteRenderbuffers(1, &renderbuffer)
}

func (be *Backend) GenTexture(target backend.Enum, internalFormat backend.Enum, width, height, depth, levels, samples int32) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)

	t := uint32(target)
	f := int32(internalFormat)
	format, xtype := transfer(internalFormat)
	levels = max(levels, 1)

	gl.BindTexture(t, tex)

	switch target {
	case backend.TEXTURE_2D_MULTISAMPLE:
		gl.TexImage2DMultisample(t, samples, uint32(internalFormat), width, height, true)
		gl.BindTexture(t, 0)
		return tex
	case backend.TEXTURE_RECTANGLE:
		levels = 1
	}

	gl.TexParameteri(t, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(t, gl.TEXTURE_MAX_LEVEL, levels-1)

	for l := int32(0); l < levels; l++ {
		w := max(width>>l, 1)
		h := max(height>>l, 1)
		switch target {
		case backend.TEXTURE_1D:
			gl.TexImage1D(t, l, f, w, 0, format, xtype, nil)
		case backend.TEXTURE_1D_ARRAY:
			gl.TexImage2D(t, l, f, w, height, 0, format, xtype, nil)
		case backend.TEXTURE_2D, backend.TEXTURE_RECTANGLE:
			gl.TexImage2D(t, l, f, w, h, 0, format, xtype, nil)
		case backend.TEXTURE_2D_ARRAY:
			gl.TexImage3D(t, l, f, w, h, depth, 0, format, xtype, nil)
		case backend.TEXTURE_3D:
			gl.TexImage3D(t, l, f, w, h, max(depth>>l, 1), 0, format, xtype, nil)
		case backend.TEXTURE_CUBE_MAP:
			for face := uint32(gl.TEXTURE_CUBE_MAP_POSITIVE_X); face <= gl.TEXTURE_CUBE_MAP_NEGATIVE_Z; face++ {
				gl.TexImage2D(face, l, f, w, w, 0, format, xtype, nil)
			}
		}
	}

	gl.BindTexture(t, 0)
	return tex
}

func (be *Backend) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}
