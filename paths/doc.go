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

// Package paths prepares paths to the files used by rendertarget, such as
// the preferences file.
//
// ResourcePath() prepends the resource with the base resource path. If a
// directory named ".rendertarget" exists in the current directory then that
// is the base path. Otherwise the base path is a "rendertarget" directory in
// the configuration directory of the user, as returned by os.UserConfigDir().
// On a modern Linux system that would be:
//
//	/home/user/.config/rendertarget/
//
// Directories are created as required. Files are never touched.
package paths
