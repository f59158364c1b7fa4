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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"runtime"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/backend/glbackend"
	"github.com/jetsetilly/rendertarget/backend/recorder"
	"github.com/jetsetilly/rendertarget/backend/softgl"
	"github.com/jetsetilly/rendertarget/colour"
	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/framebuffer"
	"github.com/jetsetilly/rendertarget/glcontext"
	"github.com/jetsetilly/rendertarget/imagedata"
	"github.com/jetsetilly/rendertarget/logger"
	"github.com/jetsetilly/rendertarget/modalflag"
	"github.com/jetsetilly/rendertarget/paths"
	"github.com/jetsetilly/rendertarget/performance"
	"github.com/jetsetilly/rendertarget/prefs"
	"github.com/jetsetilly/rendertarget/statsview"
	"github.com/jetsetilly/rendertarget/surface"
	"github.com/jetsetilly/rendertarget/version"
	"golang.org/x/term"
)

// the name of the preferences file in the resource directory
const prefsFile = "preferences"

// #mainthread
//
// a GL context is current only on the thread that created it. every mode
// runs on the main thread so that the gl backend can be used throughout.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PROBE", "STATE", "SNAPSHOT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PROBE":
		err = probe(md)

	case "STATE":
		err = state(md)

	case "SNAPSHOT":
		err = snapshot(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// the flags common to every mode that creates a render context
type common struct {
	backend   *string
	width     *int
	height    *int
	prefs     *string
	saveprefs *bool
	trace     *bool
	log       *bool
	statsview *bool
}

func addCommon(md *modalflag.Modes) common {
	c := common{
		backend:   md.AddString("backend", "soft", "graphics backend: soft, gl"),
		width:     md.AddInt("width", 64, "width of the default framebuffer"),
		height:    md.AddInt("height", 48, "height of the default framebuffer"),
		prefs:     md.AddString("prefs", "", "preference values to use instead of those in the preferences file"),
		saveprefs: md.AddBool("saveprefs", false, "save preferences on successful completion"),
		trace:     md.AddBool("trace", false, "echo every backend call to stdout"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// renderer is a backend that can also allocate surfaces
type renderer interface {
	backend.Backend
	backend.Allocator
}

// session is the render context and the backend it issues calls to
type session struct {
	ctx   *framebuffer.Context
	alloc backend.Allocator
	prefs *framebuffer.Preferences
	end   func()
}

// start a session with the backend named by the common flags
func (c common) start() (*session, error) {
	if *c.log {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stdout), false)
		} else {
			logger.SetEcho(os.Stdout, false)
		}
	} else {
		logger.SetEcho(nil, false)
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(os.Stdout)
	}

	if *c.width <= 0 || *c.height <= 0 {
		return nil, fmt.Errorf("invalid size (%dx%d)", *c.width, *c.height)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}
	p, err := framebuffer.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	s := &session{prefs: p, end: func() {}}

	var r renderer

	switch *c.backend {
	case "soft":
		r = softgl.New(*c.width, *c.height)

	case "gl":
		glctx, err := glcontext.New(int32(*c.width), int32(*c.height))
		if err != nil {
			return nil, err
		}
		gl, err := glbackend.New()
		if err != nil {
			glctx.Destroy()
			return nil, err
		}
		logger.Logf(logger.Allow, "gl", "%s (%s)", gl.Version(), gl.Renderer())
		r = gl
		s.end = func() {
			if err := glctx.Destroy(); err != nil {
				logger.Log(logger.Allow, "gl", err)
			}
		}

	default:
		return nil, fmt.Errorf("unknown backend (%s)", *c.backend)
	}

	s.alloc = r

	var be backend.Backend = r
	if *c.trace {
		rec := recorder.NewRecorder(r)
		rec.SetEcho(os.Stdout)
		be = rec
	}

	s.ctx = framebuffer.NewContext(be, p)
	s.ctx.SetViewport(image.Point{}, image.Pt(*c.width, *c.height))

	return s, nil
}

// finish the session. preferences are saved if requested
func (s *session) finish(c common) error {
	defer s.end()
	if *c.prefs != "" {
		prefs.PopCommandLineStack()
	}
	if *c.saveprefs {
		return s.prefs.Save()
	}
	return nil
}

// a render target of the specified size with a colour renderbuffer at each of
// the colour points and a depth/stencil renderbuffer. the target is left
// bound for ReadDraw. nothing is left allocated if a surface can't be
// allocated
func (s *session) target(width, height int, colours int) (*framebuffer.Framebuffer, error) {
	fb := s.ctx.NewFramebuffer()

	ds, err := surface.Allocate(s.alloc, surface.Description{
		Kind:   surface.Renderbuffer,
		Format: surface.Depth24Stencil8,
		Width:  int32(width),
		Height: int32(height),
	})
	if err != nil {
		fb.Destroy()
		return nil, err
	}
	fb.AttachRenderbuffer(framebuffer.ReadDraw, framebuffer.DepthStencil, ds)

	for i := range colours {
		c, err := surface.Allocate(s.alloc, surface.Description{
			Kind:   surface.Renderbuffer,
			Format: surface.RGBA8,
			Width:  int32(width),
			Height: int32(height),
		})
		if err != nil {
			s.release(fb)
			return nil, err
		}
		fb.AttachRenderbuffer(framebuffer.ReadDraw, framebuffer.Color(i), c)
	}

	return fb, s.ctx.Error()
}

// release the target and the surfaces attached to it
func (s *session) release(fb *framebuffer.Framebuffer) {
	att := fb.Attachments()
	fb.Destroy()
	for _, a := range att {
		surface.Release(s.alloc, a.Attachment.Surface)
	}
}

// read the pixel from the colour buffer mapped for reading by the framebuffer
func (s *session) pixel(fb *framebuffer.Framebuffer, x, y int) (color.RGBA, error) {
	fb.Bind(framebuffer.Read)
	img := imagedata.NewImage2D(imagedata.RGBA, imagedata.UnsignedByte)
	s.ctx.Read(image.Pt(x, y), image.Pt(1, 1), imagedata.RGBA, imagedata.UnsignedByte, img)
	if err := s.ctx.Error(); err != nil {
		return color.RGBA{}, err
	}
	rgba, err := img.RGBA()
	if err != nil {
		return color.RGBA{}, err
	}
	return rgba.RGBAAt(0, 0), nil
}

func expectPixel(got color.RGBA, expected colour.Colour) error {
	if got != color.RGBA(expected.NRGBA()) {
		return fmt.Errorf("pixel is %v not %v", got, expected)
	}
	return nil
}

// probe checks are run in order and each returns an error if the backend does
// not behave as expected
type probeCheck struct {
	name  string
	check func(s *session, width, height int) error
}

var probeChecks = []probeCheck{
	{name: "clear", check: probeClear},
	{name: "blit", check: probeBlit},
	{name: "draw mapping", check: probeMapping},
	{name: "validate", check: probeValidate},
}

func probe(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Checks that the backend supports each render target operation.")
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := c.start()
	if err != nil {
		return err
	}

	var failed int
	for _, pc := range probeChecks {
		err := pc.check(s, *c.width, *c.height)
		if err != nil {
			failed++
			fmt.Printf("%-14s FAIL: %v\n", pc.name, err)
		} else {
			fmt.Printf("%-14s ok\n", pc.name)
		}
	}

	err = s.finish(c)
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(probeChecks))
	}
	return nil
}

func probeClear(s *session, width, height int) error {
	fb, err := s.target(width, height, 1)
	if err != nil {
		return err
	}
	defer s.release(fb)

	c := colour.RGBA(1, 0, 1, 1)
	s.ctx.SetClearColor(c)
	s.ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearColor))
	if err := s.ctx.Error(); err != nil {
		return err
	}

	for _, pt := range []image.Point{{0, 0}, {width - 1, height - 1}} {
		px, err := s.pixel(fb, pt.X, pt.Y)
		if err != nil {
			return err
		}
		if err := expectPixel(px, c); err != nil {
			return curated.Errorf("at %v: %v", pt, err)
		}
	}

	return nil
}

func probeBlit(s *session, width, height int) error {
	src, err := s.target(width, height, 1)
	if err != nil {
		return err
	}
	defer s.release(src)

	red := colour.RGBA(1, 0, 0, 1)
	s.ctx.SetClearColor(red)
	s.ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearColor))

	dst, err := s.target(width, height, 1)
	if err != nil {
		return err
	}
	defer s.release(dst)

	blue := colour.RGBA(0, 0, 1, 1)
	s.ctx.SetClearColor(blue)
	s.ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearColor))

	// copy the left half of the source to the destination
	src.Bind(framebuffer.Read)
	dst.Bind(framebuffer.Draw)
	s.ctx.BlitSame(image.Point{}, image.Pt(width/2, height), framebuffer.BlitMask{}.With(framebuffer.BlitColor))
	if err := s.ctx.Error(); err != nil {
		return err
	}

	px, err := s.pixel(dst, 0, 0)
	if err != nil {
		return err
	}
	if err := expectPixel(px, red); err != nil {
		return curated.Errorf("inside blit region: %v", err)
	}

	px, err = s.pixel(dst, width-1, 0)
	if err != nil {
		return err
	}
	if err := expectPixel(px, blue); err != nil {
		return curated.Errorf("outside blit region: %v", err)
	}

	return nil
}

func probeMapping(s *session, width, height int) error {
	fb, err := s.target(width, height, 2)
	if err != nil {
		return err
	}
	defer s.release(fb)

	black := colour.RGBA(0, 0, 0, 1)
	green := colour.RGBA(0, 1, 0, 1)

	fb.MapForDraw(0, 1)
	s.ctx.SetClearColor(black)
	s.ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearColor))

	// only colour point one is cleared
	fb.MapForDraw(framebuffer.Discard, 1)
	s.ctx.SetClearColor(green)
	s.ctx.ClearWith(framebuffer.ClearMask{}.With(framebuffer.ClearColor))

	fb.MapForRead(1)
	px, err := s.pixel(fb, 0, 0)
	if err != nil {
		return err
	}
	if err := expectPixel(px, green); err != nil {
		return curated.Errorf("%v: %v", framebuffer.Color(1), err)
	}

	fb.MapForRead(0)
	px, err = s.pixel(fb, 0, 0)
	if err != nil {
		return err
	}
	if err := expectPixel(px, black); err != nil {
		return curated.Errorf("%v: %v", framebuffer.Color(0), err)
	}

	return nil
}

func probeValidate(s *session, width, height int) error {
	fb, err := s.target(width, height, 1)
	if err != nil {
		return err
	}
	defer s.release(fb)

	if err := fb.Validate(); err != nil {
		return err
	}
	if err := fb.Status(framebuffer.ReadDraw); err != nil {
		return err
	}

	empty := s.ctx.NewFramebuffer()
	defer empty.Destroy()
	if err := empty.Validate(); !curated.Is(err, framebuffer.NoAttachments) {
		return curated.Errorf("empty framebuffer validated: %v", err)
	}

	return nil
}

// the scene used by the STATE and SNAPSHOT modes. four 1x1 targets, each
// cleared to a different colour, are stretched into the quadrants of a target
// of the full size. the result is blitted upside-down with linear filtering
// into a second target, which is returned bound for ReadDraw
func scene(s *session, width, height int) (*framebuffer.Framebuffer, func(), error) {
	var targets []*framebuffer.Framebuffer
	release := func() {
		for _, fb := range targets {
			s.release(fb)
		}
	}

	out, err := s.target(width, height, 1)
	if err != nil {
		return nil, release, err
	}
	targets = append(targets, out)
	s.ctx.SetClearColor(colour.RGBA(0, 0, 0, 1))
	s.ctx.Clear()

	quadrants := []struct {
		col      colour.Colour
		min, max image.Point
	}{
		{colour.RGBA(1, 0, 0, 1), image.Pt(0, 0), image.Pt(width/2, height/2)},
		{colour.RGBA(0, 1, 0, 1), image.Pt(width/2, 0), image.Pt(width, height/2)},
		{colour.RGBA(0, 0, 1, 1), image.Pt(0, height/2), image.Pt(width/2, height)},
		{colour.RGBA(1, 1, 1, 1), image.Pt(width/2, height/2), image.Pt(width, height)},
	}

	for _, q := range quadrants {
		fb, err := s.target(1, 1, 1)
		if err != nil {
			return nil, release, err
		}
		targets = append(targets, fb)
		s.ctx.SetClearColor(q.col)
		s.ctx.Clear()

		out.Bind(framebuffer.Draw)
		s.ctx.Blit(image.Point{}, image.Pt(1, 1), q.min, q.max, framebuffer.BlitMask{}.With(framebuffer.BlitColor), framebuffer.NearestNeighbor)
	}

	flipped, err := s.target(width, height, 1)
	if err != nil {
		return nil, release, err
	}
	targets = append(targets, flipped)

	out.Bind(framebuffer.Read)
	s.ctx.Blit(image.Point{}, image.Pt(width, height), image.Pt(0, height), image.Pt(width, 0), framebuffer.BlitMask{}.With(framebuffer.BlitColor), framebuffer.Linear)
	flipped.Bind(framebuffer.ReadDraw)

	return flipped, release, s.ctx.Error()
}

func state(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Prints the state of the render context after drawing the snapshot scene.")
	c := addCommon(md)
	dot := md.AddString("dot", "", "write a graphviz diagram of the state to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := c.start()
	if err != nil {
		return err
	}

	_, release, err := scene(s, *c.width, *c.height)
	if err != nil {
		release()
		s.finish(c)
		return err
	}

	st := s.ctx.State()
	fmt.Print(st.String())

	if *dot != "" {
		err = writeDot(*dot, &st)
	}

	release()

	if err != nil {
		s.finish(c)
		return err
	}
	return s.finish(c)
}

func writeDot(filename string, st *framebuffer.State) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	memviz.Map(f, st)
	return nil
}

func snapshot(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Draws the snapshot scene and saves it as a PNG file.")
	c := addCommon(md)
	out := md.AddString("out", "", "output file (default is a unique filename in the current directory)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	filename := *out
	if filename == "" {
		filename = paths.UniqueFilename("snapshot", "png")
	}

	s, err := c.start()
	if err != nil {
		return err
	}

	_, release, err := scene(s, *c.width, *c.height)
	if err == nil {
		img := imagedata.NewImage2D(imagedata.RGBA, imagedata.UnsignedByte)
		s.ctx.Read(image.Point{}, image.Pt(*c.width, *c.height), imagedata.RGBA, imagedata.UnsignedByte, img)
		err = s.ctx.Error()
		if err == nil {
			err = writePNG(filename, img)
		}
	}
	release()

	if err != nil {
		s.finish(c)
		return err
	}

	fmt.Printf("! snapshot saved to %s\n", filename)
	return s.finish(c)
}

func writePNG(filename string, img *imagedata.Image2D) (rerr error) {
	rgba, err := img.RGBA()
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	return png.Encode(f, rgba)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Draws the snapshot scene repeatedly and reports the number of scenes drawn per second.")
	c := addCommon(md)
	duration := md.AddString("duration", "5s", "run duration (not including a one second lead time)")
	profile := md.AddString("profile", "none", "run performance check with profiling: cpu, mem, trace, all (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	s, err := c.start()
	if err != nil {
		return err
	}

	err = performance.Check(os.Stdout, prf, *duration, func() error {
		_, release, err := scene(s, *c.width, *c.height)
		release()
		return err
	})
	if err != nil {
		s.finish(c)
		return err
	}

	return s.finish(c)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	return writeVersion(os.Stdout, *revision)
}

func writeVersion(output io.Writer, revision bool) error {
	if revision {
		_, err := fmt.Fprintln(output, version.Describe())
		return err
	}
	v, _, _ := version.Version()
	_, err := fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	return err
}
