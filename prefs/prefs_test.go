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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/rendertarget/curated"
	"github.com/jetsetilly/rendertarget/prefs"
	"github.com/jetsetilly/rendertarget/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "rendertarget_prefs_test")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading prefs file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
	test.ExpectSuccess(t, v.Set("-3"))
	test.ExpectEquality(t, v.String(), "-3")

	err := v.Set("ten")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.BadValue))

	err = v.Set(1.5)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set(0.25))
	test.ExpectEquality(t, v.String(), "0.25")
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get(), prefs.Value(1.5))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get(), prefs.Value(0.0))
}

func TestGeneric(t *testing.T) {
	var w, h int

	v := prefs.NewGeneric(
		func(s prefs.Value) error {
			if s.(string) == "" {
				w, h = 320, 240
				return nil
			}
			_, err := fmt.Sscanf(s.(string), "%d,%d", &w, &h)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, v.Set("640,480"))
	test.ExpectEquality(t, v.String(), "640,480")
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "320,240")
}

func TestHooks(t *testing.T) {
	var v prefs.Bool
	var post bool

	v.SetHookPre(func(value prefs.Value) error {
		if value.(bool) {
			return nil
		}
		return fmt.Errorf("refusing false")
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(bool)
		return nil
	})

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, post)

	// pre hook prevents the update
	test.ExpectFailure(t, v.Set(false))
	test.ExpectEquality(t, v.Get(), prefs.Value(true))
}

func TestSharedFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.Bool
	test.ExpectSuccess(t, dskA.Add("test", &a))
	test.ExpectSuccess(t, a.Set(true))
	test.DemandSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.String
	test.ExpectSuccess(t, dskB.Add("foo", &b))
	test.ExpectSuccess(t, b.Set("bar"))
	test.DemandSuccess(t, dskB.Save())

	// the file contains the entries set by both disks
	cmpPrefFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("name", &s))

	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, v.Set(42))
	test.ExpectSuccess(t, s.Set("render target"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get(), prefs.Value(0))

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get(), prefs.Value(42))
	test.ExpectEquality(t, s.String(), "render target")

	// command line takes precedence over the file
	prefs.PushCommandLineStack("number::7")
	defer prefs.PopCommandLineStack()
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get(), prefs.Value(7))
}

func TestInvalidKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("ok", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("ok", &v), prefs.DuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("not ok", &v), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &v), prefs.InvalidKey))
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the limit does not restore the cropped information
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
