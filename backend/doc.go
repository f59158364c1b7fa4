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

// Package backend defines the command-dispatch interface between the
// framebuffer package and the graphics API.
//
// Every method of the Backend interface corresponds to one primitive call of
// the underlying API. The constants in this package use the same values as
// the OpenGL enumerations so that an OpenGL implementation can pass them
// through without translation. Other implementations are free to interpret
// the values as they see fit.
//
// Backend implementations are not expected to validate arguments. Errors are
// reported through the GetError() side channel, in the manner of OpenGL.
//
// Implementations are found in the subpackages: glbackend for OpenGL 3.2 core,
// softgl for a software emulation suitable for testing and recorder for a
// decorator that records the sequence of calls made.
package backend
