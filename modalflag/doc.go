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

// Package modalflag is a wrapper for the flag package in the standard
// library. It adds the idea of modes to command line parsing. A mode is a
// leading argument that selects which set of flags applies to the remaining
// arguments. Modes can be nested.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PROBE", "STATE", "VERSION")
//	backend := md.AddString("backend", "soft", "graphics backend")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PROBE":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode added is the default mode. It is selected if the first
// argument is not one of the sub-modes. Mode names are not case sensitive.
//
// The flags added before a call to Parse() only apply to that call. A new set
// of flags can be added after NewMode() for the next layer of arguments.
package modalflag
