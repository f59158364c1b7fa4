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

// Package imagedata contains the image containers that pixel data is read
// into.
//
// Image2D is a host-visible container. The pixel data is a plain byte slice in
// the layout described by the Components and ComponentType of the image.
// Rows are stored bottom to top, which is the order in which the graphics
// backend writes them. The RGBA() function converts the data into a standard
// library image, flipping the rows so that the image is the right way up.
//
// BufferedImage2D is a container whose storage is a buffer object owned by
// the backend. The data stays GPU-visible until Data() is called.
package imagedata
