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

package main

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/framediag/glcheck"
	"github.com/jetsetilly/framediag/glcheck/gldriver"
	"github.com/jetsetilly/framediag/logger"
	"github.com/jetsetilly/framediag/performance"
	"github.com/jetsetilly/framediag/version"
	"github.com/veandco/go-sdl2/sdl"
)

type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode
}

// newPlatform creates a window with a GL 3.2 core context. must be called from
// the main thread.
func newPlatform(vsync bool) (*platform, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	for _, a := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
	} {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(plt.mode.W)*0.5), int32(float32(plt.mode.H)*0.5),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	swap := 0
	if vsync {
		swap = 1
	}
	err = sdl.GLSetSwapInterval(swap)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", swap, err.Error())
	}

	err = gldriver.Init()
	if err != nil {
		plt.destroy()
		return nil, err
	}

	return plt, nil
}

// destroy cleans up the resources.
func (plt *platform) destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		plt.window = nil
	}

	sdl.Quit()
}

// loop renders frames until the window is closed, until the number of frames
// has been rendered or until the duration has elapsed. zero values mean no
// limit. returns the number of frames rendered.
func (plt *platform) loop(ft *performance.FrameTimer, limit int, duration time.Duration) int {
	var n int
	start := time.Now()

	for limit == 0 || n < limit {
		if duration > 0 && time.Since(start) >= duration {
			return n
		}

		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if _, ok := ev.(*sdl.QuitEvent); ok {
				return n
			}
		}

		ft.Start()

		// cycle the clear colour so there is something to look at
		c := float32(0.5 + 0.5*math.Sin(float64(n)/60.0))
		gl.ClearColor(c*0.2, c*0.3, c, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		glcheck.Check(gldriver.Source)

		plt.window.GLSwap()

		ft.End()
		n++
	}

	return n
}
