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

// Package softgl is a software implementation of the backend.Backend and
// backend.Allocator interfaces. It keeps every framebuffer, renderbuffer and
// texture in host memory and emulates the framebuffer operations of the
// OpenGL core profile closely enough that the behaviour of the framebuffer
// package can be tested without a graphics context.
//
// Rasterisation is not emulated. In its place, the Fill() function behaves as
// though a fragment shader had written the supplied outputs to every pixel
// in the viewport. Fill() honours the draw buffer mapping, the colour write
// mask and the blending state in the same way as a real draw call would.
//
// Errors are recorded in the same way as OpenGL records them. The first
// error is kept until it is collected with GetError() and a command that
// raises an error has no other effect.
//
// Multisample storage is accepted but stored with one sample per pixel.
package softgl
