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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/rendertarget/paths"
	"github.com/jetsetilly/rendertarget/test"
)

func TestLocalResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".rendertarget", 0700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".rendertarget", "foo", "bar", "baz"))

	// directory has been created
	fi, err := os.Stat(filepath.Join(".rendertarget", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	// file has not
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".rendertarget", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rendertarget")
}

func TestUniqueFilename(t *testing.T) {
	m := regexp.MustCompile(`^snapshot_\d{8}_\d{6}\.png$`)
	test.ExpectSuccess(t, m.MatchString(paths.UniqueFilename("snapshot", "png")))
	test.ExpectSuccess(t, m.MatchString(paths.UniqueFilename("snapshot", ".png")))

	m = regexp.MustCompile(`^state_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, m.MatchString(paths.UniqueFilename("state", "")))
}
