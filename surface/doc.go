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

// Package surface describes the graphics surfaces that can be attached to a
// framebuffer: renderbuffers and the four texture kinds (1D, 2D, 3D and cube
// map).
//
// A Surface is a closed tagged variant. The Kind() of the surface decides
// which backend call is used to attach it and the TargetKind() decides how
// texture surfaces are addressed (plain, multisample, rectangle or array).
//
// Surfaces are handles only. They are created either by wrapping an existing
// backend identity with one of the New functions, or by asking a backend that
// implements backend.Allocator to create the storage with Allocate().
//
// An Attachment pairs a Surface with the sub-element that is to be attached:
// the mipmap level and, for 3D textures the layer and for cube maps the face.
package surface
