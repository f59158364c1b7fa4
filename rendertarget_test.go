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

package main

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/backend/softgl"
	"github.com/jetsetilly/rendertarget/colour"
	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/framebuffer"
	"github.com/jetsetilly/rendertarget/imagedata"
	"github.com/jetsetilly/rendertarget/surface"
	"github.com/jetsetilly/rendertarget/test"
)

const (
	width  = 16
	height = 12
)

func newSession(t *testing.T) *session {
	t.Helper()
	be := softgl.New(width, height)
	p, err := framebuffer.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Logging.Set(false))
	return &session{
		ctx:   framebuffer.NewContext(be, p),
		alloc: be,
		prefs: p,
		end:   func() {},
	}
}

func TestProbe(t *testing.T) {
	s := newSession(t)
	for _, pc := range probeChecks {
		test.ExpectSuccess(t, pc.check(s, width, height), pc.name)
	}

	// every target created by the checks has been released
	sw := s.ctx.Backend().(*softgl.Backend)
	live := sw.Live()
	test.ExpectEquality(t, live.Framebuffers, 0)
	test.ExpectEquality(t, live.Renderbuffers, 0)
}

// an allocator that can create only a limited number of renderbuffers
type limited struct {
	*softgl.Backend
	renderbuffers int
}

func (l *limited) GenRenderbuffer(internalFormat backend.Enum, width, height, samples int32) uint32 {
	if l.renderbuffers == 0 {
		return 0
	}
	l.renderbuffers--
	return l.Backend.GenRenderbuffer(internalFormat, width, height, samples)
}

func TestTargetAllocationFailure(t *testing.T) {
	s := newSession(t)
	sw := s.ctx.Backend().(*softgl.Backend)

	// no depth/stencil renderbuffer, a colour renderbuffer fails after the
	// depth/stencil renderbuffer, and the second colour renderbuffer fails
	for _, n := range []int{0, 1, 2} {
		s.alloc = &limited{Backend: sw, renderbuffers: n}
		fb, err := s.target(width, height, 2)
		test.ExpectFailure(t, err, n)
		test.ExpectSuccess(t, fb == nil, n)
		test.ExpectSuccess(t, curated.Is(err, surface.AllocationFailed), n)

		live := sw.Live()
		test.ExpectEquality(t, live.Framebuffers, 0, n)
		test.ExpectEquality(t, live.Renderbuffers, 0, n)
	}

	// enough renderbuffers for the target
	s.alloc = &limited{Backend: sw, renderbuffers: 3}
	fb, err := s.target(width, height, 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sw.Live().Renderbuffers, 3)
	s.release(fb)
	test.ExpectEquality(t, sw.Live().Renderbuffers, 0)
}

func TestScene(t *testing.T) {
	s := newSession(t)
	fb, release, err := scene(s, width, height)
	defer release()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fb.IsBound(framebuffer.ReadDraw))

	// the scene is upside-down so the lower-left quadrant of the result is
	// the upper-left quadrant of the unflipped image
	expected := []struct {
		pt  image.Point
		col colour.Colour
	}{
		{image.Pt(1, 1), colour.RGBA(0, 0, 1, 1)},
		{image.Pt(width-2, 1), colour.RGBA(1, 1, 1, 1)},
		{image.Pt(1, height-2), colour.RGBA(1, 0, 0, 1)},
		{image.Pt(width-2, height-2), colour.RGBA(0, 1, 0, 1)},
	}

	for _, e := range expected {
		px, err := s.pixel(fb, e.pt.X, e.pt.Y)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, expectPixel(px, e.col), e.pt)
	}
}

func TestSnapshotPNG(t *testing.T) {
	s := newSession(t)
	_, release, err := scene(s, width, height)
	defer release()
	test.DemandSuccess(t, err)

	img := imagedata.NewImage2D(imagedata.RGBA, imagedata.UnsignedByte)
	s.ctx.Read(image.Point{}, image.Pt(width, height), imagedata.RGBA, imagedata.UnsignedByte, img)
	test.DemandSuccess(t, s.ctx.Error())

	fn := filepath.Join(t.TempDir(), "snapshot.png")
	test.ExpectSuccess(t, writePNG(fn, img))

	fi, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)
}

func TestStateDot(t *testing.T) {
	s := newSession(t)
	_, release, err := scene(s, width, height)
	defer release()
	test.DemandSuccess(t, err)

	st := s.ctx.State()
	fn := filepath.Join(t.TempDir(), "state.dot")
	test.ExpectSuccess(t, writeDot(fn, &st))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "digraph"))
}

func TestVersion(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectSuccess(t, writeVersion(w, false))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Rendertarget "))

	w.Clear()
	test.ExpectSuccess(t, writeVersion(w, true))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "Rendertarget "))
}
