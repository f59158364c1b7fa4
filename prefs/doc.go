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

// Package prefs holds typed preference values and stores them on disk.
//
// A preference value is one of the Bool, Int, Float or String types, or a
// Generic type for values that need their own conversion. Values are
// registered with a Disk under a unique key:
//
//	dsk, err := prefs.NewDisk(path)
//	var validate prefs.Bool
//	err = dsk.Add("framebuffer.validate", &validate)
//
// Disk.Load() sets every registered value from the file and Disk.Save()
// writes every registered value to the file. Entries in the file that have
// not been registered with the Disk are preserved when the file is saved.
// This means that more than one Disk can share a file.
//
// Values can also be set from the command line. A string of the form
//
//	"key::value; key::value"
//
// is pushed onto the command line stack with PushCommandLineStack(). Values
// on the top of the stack take precedence over the values in the file the
// next time the file is loaded.
//
// Preference values can be read and written from more than one goroutine.
package prefs
