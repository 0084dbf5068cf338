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

// Package performance contains helper functions relating to performance.
//
// FormatDuration() formats a time.Duration in a fixed width suitable for log
// entries that should line up. Elapsed() and LogElapsed() are convenience
// functions for timing something from a start time.
//
// FrameTimer accumulates the duration of a fixed number of frames and then
// logs the average, minimum and maximum duration of the batch. For example:
//
//	ft, _ := performance.NewFrameTimer("render", 60)
//	for {
//		ft.Start()
//		render()
//		ft.End()
//	}
//
// CalcFPS() calculates frames-per-second in aggregate along with an accuracy
// value (as compared to the display's refresh rate). Probably not suitable
// for "live" FPS monitoring.
//
// RunProfiler() can be used to generate the various profile types around a
// function.
package performance
