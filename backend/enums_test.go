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

package backend_test

import (
	"testing"

	"github.com/jetsetilly/rendertarget/backend"
	"github.com/jetsetilly/rendertarget/test"
)

func TestColorAttachments(t *testing.T) {
	test.ExpectEquality(t, backend.COLOR_ATTACHMENT3, backend.COLOR_ATTACHMENT0+3)
	test.ExpectEquality(t, backend.COLOR_ATTACHMENT15, backend.COLOR_ATTACHMENT0+backend.MaxColorAttachments-1)
	test.ExpectEquality(t, backend.COLOR_ATTACHMENT1.String(), "COLOR_ATTACHMENT1")
	test.ExpectEquality(t, backend.COLOR_ATTACHMENT15.String(), "COLOR_ATTACHMENT15")

	// one past the last colour attachment is not named as one
	test.ExpectEquality(t, (backend.COLOR_ATTACHMENT15 + 1).String(), "0x8cf0")
	test.ExpectEquality(t, backend.TEXTURE_2D.String(), "TEXTURE_2D")
}
