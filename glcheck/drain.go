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

package glcheck

import (
	"github.com/jetsetilly/framediag/logger"
)

// tag used for all log entries made by the package
const logTag = "gl"

// Drain reads and logs every pending error in the error queue, in the order
// they are returned by the ErrorSource. The file and line arguments identify
// where in the program the check was requested.
//
// The central logger collapses consecutive identical entries, so the same
// error reported more than once at the same location appears as a single log
// line with a repeat count. For example:
//
//	error: gl: INVALID_VALUE | render.go (42) (repeat x3)
//
// Drain returns the final value returned by the ErrorSource, which will always
// be NoError. Drain will not return if the ErrorSource never returns NoError.
func Drain(src ErrorSource, file string, line int) ErrorCode {
	code := ErrorCode(src.GetError())
	for code != NoError {
		logger.Errorf(logger.Allow, logTag, "%s | %s (%d)", code, file, line)
		code = ErrorCode(src.GetError())
	}
	return code
}
