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

package recorder_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/backend/recorder"
	"github.com/jetsetilly/rendertarget/backend/softgl"
	"github.com/jetsetilly/rendertarget/test"
)

func TestRecording(t *testing.T) {
	rec := recorder.NewRecorder(softgl.New(4, 4))

	fbo := rec.GenFramebuffer()
	rec.BindFramebuffer(backend.DRAW_FRAMEBUFFER, fbo)
	rec.Clear(backend.COLOR_BUFFER_BIT)

	names := rec.Names()
	test.DemandEquality(t, len(names), 3)
	test.ExpectEquality(t, names[0], "GenFramebuffer")
	test.ExpectEquality(t, names[1], "BindFramebuffer")
	test.ExpectEquality(t, names[2], "Clear")

	test.ExpectEquality(t, rec.Calls()[1].String(), "BindFramebuffer(DRAW_FRAMEBUFFER, 1)")
	test.ExpectEquality(t, rec.Calls()[2].String(), "Clear(0x4000)")

	// calls are forwarded
	sw := rec.Inner().(*softgl.Backend)
	test.ExpectEquality(t, sw.Bound(backend.DRAW_FRAMEBUFFER), fbo)

	rec.Reset()
	test.ExpectEquality(t, len(rec.Calls()), 0)
}

func TestEcho(t *testing.T) {
	rec := recorder.NewRecorder(softgl.New(4, 4))

	w := &test.CompareWriter{}
	rec.SetEcho(w)
	rec.Enable(backend.BLEND)
	rec.DepthMask(false)
	test.ExpectSuccess(t, w.Compare("Enable(BLEND)\nDepthMask(false)\n"))

	rec.SetEcho(nil)
	rec.Disable(backend.BLEND)
	test.ExpectSuccess(t, w.Compare("Enable(BLEND)\nDepthMask(false)\n"))
	test.ExpectSuccess(t, strings.HasSuffix(rec.String(), "Disable(BLEND)\n"))
}
