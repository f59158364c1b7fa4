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

// Package logger is the central log for the application. Entries are tagged
// and consecutive duplicate entries are folded into a single entry with a
// repeat count.
//
// The package level functions log to the central logger. Separate instances
// can be created with NewLogger(), which is useful for testing and for
// components that want to keep a private history.
//
// Logging is gated by a Permission. The Allow value always permits logging.
// Other implementations of the Permission interface can decide at the moment
// of logging whether the entry should be recorded. For example, the
// framebuffer package uses its Preferences type as a Permission.
package logger
