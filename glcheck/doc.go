// This file is part of Framediag.
//
// Framediag is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framediag is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framediag.  If not, see <https://www.gnu.org/licenses/>.

// Package glcheck drains the error queue of the current OpenGL context and
// logs every pending error along with the location in the source code that
// requested the check.
//
// The Check() function is intended to be called after any GL call of
// interest:
//
//	gl.Clear(gl.COLOR_BUFFER_BIT)
//	glcheck.Check(gldriver.Source)
//
// Check() only does anything when the program is built with the "gldebug"
// build tag. Otherwise it is an empty function that does not touch the error
// queue and which the compiler will inline away to nothing. The Enabled
// constant indicates which version of Check() has been compiled.
//
// The Drain() function is always available and can be used when the caller
// wants to report errors regardless of the build tag, or when it wants to
// specify the source location explicitly.
//
// The error queue of an OpenGL context belongs to the thread that owns the
// context. Check() and Drain() must be called from that thread.
package glcheck
