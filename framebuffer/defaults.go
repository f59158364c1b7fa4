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

// DefaultDrawAttachment is a buffer of the default target that fragment
// outputs can be written to.
type DefaultDrawAttachment int

// List of valid DefaultDrawAttachment values.
const (
	DrawNone DefaultDrawAttachment = iota
	DrawBackLeft
	DrawBackRight
	DrawFrontLeft
	DrawFrontRight
)

func (a DefaultDrawAttachment) String() string {
	switch a {
	case DrawNone:
		return "none"
	case DrawBackLeft:
		return "back left"
	case DrawBackRight:
		return "back right"
	case DrawFrontLeft:
		return "front left"
	case DrawFrontRight:
		return "front right"
	}
	return "unknown draw attachment"
}

func (a DefaultDrawAttachment) enum() backend.Enum {
	switch a {
	case DrawNone:
		return backend.NONE
	case DrawBackLeft:
		return backend.BACK_LEFT
	case DrawBackRight:
		return backend.BACK_RIGHT
	case DrawFrontLeft:
		return backend.FRONT_LEFT
	case DrawFrontRight:
		return backend.FRONT_RIGHT
	}
	// an enum the backend will reject
	return backend.Enum(0xffff)
}

// DefaultReadAttachment is a buffer of the default target that can be used as
// the source of reads and blits.
type DefaultReadAttachment int

// List of valid DefaultReadAttachment values. The values that name more than
// one buffer select the first of those buffers that exists.
const (
	ReadFrontLeft DefaultReadAttachment = iota
	ReadFrontRight
	ReadBackLeft
	ReadBackRight
	ReadLeft
	ReadRight
	ReadFront
	ReadBack
	ReadFrontAndBack
)

func (a DefaultReadAttachment) String() string {
	switch a {
	case ReadFrontLeft:
		return "front left"
	case ReadFrontRight:
		return "front right"
	case ReadBackLeft:
		return "back left"
	case ReadBackRight:
		return "back right"
	case ReadLeft:
		return "left"
	case ReadRight:
		return "right"
	case ReadFront:
		return "front"
	case ReadBack:
		return "back"
	case ReadFrontAndBack:
		return "front and back"
	}
	return "unknown read attachment"
}

func (a DefaultReadAttachment) enum() backend.Enum {
	switch a {
	case ReadFrontLeft:
		return backend.FRONT_LEFT
	case ReadFrontRight:
		return backend.FRONT_RIGHT
	case ReadBackLeft:
		return backend.BACK_LEFT
	case ReadBackRight:
		return backend.BACK_RIGHT
	case ReadLeft:
		return backend.LEFT
	case ReadRight:
		return backend.RIGHT
	case ReadFront:
		return backend.FRONT
	case ReadBack:
		return backend.BACK
	case ReadFrontAndBack:
		return backend.FRONT_AND_BACK
	}
	return backend.Enum(0xffff)
}

// MapDefaultForDraw binds the default target for Draw and sets which buffer
// each fragment output is written to.
func (ctx *Context) MapDefaultForDraw(attachments ...DefaultDrawAttachment) {
	ctx.BindDefault(Draw)

	bufs := make([]backend.Enum, len(attachments))
	for i, a := range attachments {
		bufs[i] = a.enum()
	}
	ctx.be.DrawBuffers(bufs)

	ctx.defaultDraw = append(ctx.defaultDraw[:0], attachments...)
}

// MapDefaultForRead binds the default target for Read and sets the buffer
// that reads and blits take their colour data from.
func (ctx *Context) MapDefaultForRead(attachment DefaultReadAttachment) {
	ctx.BindDefault(Read)
	ctx.be.ReadBuffer(attachment.enum())
	ctx.defaultRead = attachment
}

// DefaultDrawMapping returns the buffer of the default target for each
// fragment output.
func (ctx *Context) DefaultDrawMapping() []DefaultDrawAttachment {
	m := make([]DefaultDrawAttachment, len(ctx.defaultDraw))
	copy(m, ctx.defaultDraw)
	return m
}

// DefaultReadMapping returns the buffer of the default target used as the
// read source.
func (ctx *Context) DefaultReadMapping() DefaultReadAttachment {
	return ctx.defaultRead
}
