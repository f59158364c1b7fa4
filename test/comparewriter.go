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

package test

import "strings"

// CompareWriter collects everything written to it. Tests give it to
// logger.Write(), to the echo of a backend recorder or to any other writer
// output and then check the collected text.
type CompareWriter struct {
	out strings.Builder
}

// Write implements the io.Writer interface. It never fails.
func (w *CompareWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

// Clear forgets everything written so far.
func (w *CompareWriter) Clear() {
	w.out.Reset()
}

// Compare returns true if the collected text is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.out.String() == s
}

func (w *CompareWriter) String() string {
	return w.out.String()
}
