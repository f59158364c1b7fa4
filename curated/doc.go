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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is retained and is used
// to identify the error later:
//
//	e := curated.Errorf("attachment: %v not compatible with %v", point, format)
//
//	if curated.Is(e, "attachment: %v not compatible with %v") {
//		fmt.Println("true")
//	}
//
// It is good practice to declare the pattern as an exported constant in the
// package that creates the error so that callers can test for it.
//
// The Has() function is similar to Is() but checks whether the pattern occurs
// anywhere in the error chain. Curated errors placed in the values list of
// another curated error are part of the chain. Uncurated errors in the values
// list are available to the standard errors.Is() and errors.As() functions
// through Unwrap().
//
// The Error() function implementation ensures that the error chain is
// normalised. Specifically, that the chain does not contain duplicate adjacent
// parts. For example:
//
//	e := curated.Errorf("framebuffer: %v", curated.Errorf("framebuffer: incomplete"))
//	fmt.Println(e)
//
// Will print "framebuffer: incomplete" and not "framebuffer: framebuffer:
// incomplete".
package curated
