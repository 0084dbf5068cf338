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

package performance

import (
	"fmt"
	"time"

	"github.com/jetsetilly/framediag/logger"
)

// FormatDuration returns a human readable representation of the duration.
// The units are chosen according to the size of the duration and the result
// is padded so that successive values line up in a column.
//
//	1.5  s
//	999 ms
//	12.3 ms
//	 45 µs
//	2.50 µs
//
// Negative durations are treated as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	nanos := d % time.Second
	ms := float64(nanos) / 1_000_000.0

	if d >= time.Second {
		secs := float64(d/time.Second) + ms/1000.0
		return fmt.Sprintf("%-4.1f s", secs)
	}

	switch {
	case ms >= 20.0:
		return fmt.Sprintf("%3.0f ms", ms)
	case ms >= 1.0:
		return fmt.Sprintf("%3.1f ms", ms)
	}

	micros := float64(nanos) / 1000.0
	if micros >= 10.0 {
		return fmt.Sprintf("%3.0f µs", micros)
	}
	return fmt.Sprintf("%3.2f µs", micros)
}

// Elapsed returns the time since start as a string formatted by
// FormatDuration().
func Elapsed(start time.Time) string {
	return FormatDuration(time.Since(start))
}

// LogElapsed adds an entry to the central logger with the label and the time
// elapsed since start.
func LogElapsed(perm logger.Permission, label string, start time.Time) {
	logger.Logf(perm, logTag, "%-25s%s", label, Elapsed(start))
}

// tag used for all log entries made by the package
const logTag = "timing"
