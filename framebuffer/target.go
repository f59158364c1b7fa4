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

package framebuffer

import "github.com/jetsetilly/rendertarget/backend"

// Target is the role for which a render target is bound.
type Target int

// List of valid Target values. Binding for ReadDraw binds for both the Read
// and the Draw roles. The Read and Draw roles are otherwise independent.
const (
	Read Target = iota
	Draw
	ReadDraw
)

func (t Target) String() string {
	switch t {
	case Read:
		return "read"
	case Draw:
		return "draw"
	case ReadDraw:
		return "read/draw"
	}
	return "unknown target"
}

func (t Target) enum() backend.Enum {
	switch t {
	case Read:
		return backend.READ_FRAMEBUFFER
	case Draw:
		return backend.DRAW_FRAMEBUFFER
	case ReadDraw:
		return backend.FRAMEBUFFER
	}
	return backend.NONE
}

func (t Target) reads() bool {
	return t == Read || t == ReadDraw
}

func (t Target) draws() bool {
	return t == Draw || t == ReadDraw
}
