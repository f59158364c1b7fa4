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

// Package statsview runs a local HTTP server showing runtime statistics of the
// rendertarget process. It is useful for watching allocations while large
// numbers of render targets and images are created and destroyed.
//
// The server is only available when the program is built with the statsview
// build tag. Without the tag Launch() does nothing and Available() returns
// false.
//
//	go build -tags statsview
//
// Charts are served from:
//
//	localhost:12600/debug/statsview
//
// And the standard pprof pages from:
//
//	localhost:12600/debug/pprof/
package statsview
