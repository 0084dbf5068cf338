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
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jetsetilly/framediag/logger"
)

// ErrWindowSize is returned by NewFrameTimer() if the averaging window is
// less than one frame.
var ErrWindowSize = errors.New("averaging window must be at least one frame")

// FrameTimer measures the duration of frames and logs a summary every time
// the number of frames measured reaches the size of the averaging window.
//
// A FrameTimer is not safe for concurrent use. Each timed activity should have
// its own FrameTimer.
type FrameTimer struct {
	label      string
	windowSize int

	// frame durations collected since the last summary. the length of the
	// batch will never be more than windowSize
	batch []time.Duration

	frameStart time.Time

	perm logger.Permission

	// source of the current time. replaced during testing
	now func() time.Time
}

// NewFrameTimer is the preferred method of initialisation for the FrameTimer
// type. The label is used to identify the log entries made by the timer.
func NewFrameTimer(label string, windowSize int) (*FrameTimer, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("performance: %w (%d)", ErrWindowSize, windowSize)
	}

	ft := &FrameTimer{
		label:      label,
		windowSize: windowSize,
		batch:      make([]time.Duration, 0, windowSize),
		perm:       logger.Allow,
		now:        time.Now,
	}
	ft.frameStart = ft.now()

	return ft, nil
}

// Label returns the label given to NewFrameTimer().
func (ft *FrameTimer) Label() string {
	return ft.label
}

// WindowSize returns the number of frames in each summary.
func (ft *FrameTimer) WindowSize() int {
	return ft.windowSize
}

// Len returns the number of frames measured since the last summary.
func (ft *FrameTimer) Len() int {
	return len(ft.batch)
}

// SetPermission changes the permission used when logging the summary. The
// default permission is logger.Allow.
func (ft *FrameTimer) SetPermission(perm logger.Permission) {
	ft.perm = perm
}

// Start the measurement of a frame.
func (ft *FrameTimer) Start() {
	ft.frameStart = ft.now()
}

// End the measurement of a frame. If the averaging window is now full the
// summary is logged and the measurements are discarded.
func (ft *FrameTimer) End() {
	ft.batch = append(ft.batch, ft.now().Sub(ft.frameStart))
	if len(ft.batch) == ft.windowSize {
		ft.PrintAndReset()
	}
}

// Summary returns the average, minimum and maximum durations of the frames
// measured since the last summary. The ok value is false if no frames have
// been measured.
func (ft *FrameTimer) Summary() (avg, fastest, slowest time.Duration, ok bool) {
	if len(ft.batch) == 0 {
		return 0, 0, 0, false
	}

	var sum time.Duration
	for _, d := range ft.batch {
		sum += d
	}
	avg = sum / time.Duration(len(ft.batch))

	return avg, slices.Min(ft.batch), slices.Max(ft.batch), true
}

// PrintAndReset logs the summary of the frames measured so far and then
// discards the measurements. It is called automatically by End() but can be
// called at any time to flush a partial window. Nothing is logged if no frames
// have been measured.
func (ft *FrameTimer) PrintAndReset() {
	if avg, fastest, slowest, ok := ft.Summary(); ok {
		logger.Logf(ft.perm, logTag, "%-15s%s (min: %s, max: %s)", ft.label,
			FormatDuration(avg), FormatDuration(fastest), FormatDuration(slowest))
	}
	ft.batch = ft.batch[:0]
}
