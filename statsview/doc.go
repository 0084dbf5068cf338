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

// Package statsview offers a HTTP server running locally with graphs of the
// Go runtime statistics. Useful for watching the allocation behaviour of a
// render loop alongside the FrameTimer summaries in the log.
//
// The server is only available when the program is built with the statsview
// build tag. Otherwise Launch() does nothing and Available() returns false.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12600/debug/pprof/
//
// Underlying functionality provided by "github.com/go-echarts/statsview"
package statsview
