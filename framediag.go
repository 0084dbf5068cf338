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
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/framediag/glcheck"
	"github.com/jetsetilly/framediag/logger"
	"github.com/jetsetilly/framediag/modalflag"
	"github.com/jetsetilly/framediag/performance"
	"github.com/jetsetilly/framediag/statsview"
	"github.com/jetsetilly/framediag/version"
)

func init() {
	// SDL and the GL context must be serviced from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "FORMAT")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "FORMAT":
		err = format(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	window := md.AddInt("window", 60, "number of frames in each timing summary")
	frames := md.AddInt("frames", 600, "number of frames to render (0 for no limit)")
	duration := md.AddDuration("duration", 0, "maximum time to render for (0 for no limit)")
	profile := md.AddString("profile", "none", "create profile: CPU, MEM, TRACE, ALL (comma separated)")
	vsync := md.AddBool("vsync", true, "synchronise with the vertical retrace")
	stats := md.AddBool("statsview", false, "launch statsview server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	logger.SetEcho(os.Stdout, true)

	ver, rev := version.Version()
	logger.Logf(logger.Allow, "version", "%s %s (%s)", version.ApplicationName, ver, rev)
	if tags := version.BuildTags(); len(tags) > 0 {
		logger.Logf(logger.Allow, "version", "build tags: %s", strings.Join(tags, ", "))
	}
	if !glcheck.Enabled {
		logger.Log(logger.Allow, "gl", "error checking disabled (build with the gldebug tag to enable)")
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch()
		} else {
			logger.Log(logger.Allow, "statsview", "not available in this build")
		}
	}

	ft, err := performance.NewFrameTimer("frame", *window)
	if err != nil {
		return err
	}

	plt, err := newPlatform(*vsync)
	if err != nil {
		return err
	}
	defer plt.destroy()

	return performance.RunProfiler(prf, "framediag", func() error {
		start := time.Now()
		n := plt.loop(ft, *frames, *duration)
		ft.PrintAndReset()

		performance.LogElapsed(logger.Allow, fmt.Sprintf("%d frames", n), start)
		fps, accuracy := performance.CalcFPS(n, time.Since(start), float64(plt.mode.RefreshRate))
		logger.Logf(logger.Allow, "timing", "%.2f fps (%.1f%% of %dHz)", fps, accuracy, plt.mode.RefreshRate)

		return nil
	})
}

func format(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one duration required for %s mode", md)
	}

	for _, a := range md.RemainingArgs() {
		d, err := time.ParseDuration(a)
		if err != nil {
			return err
		}
		fmt.Printf("%-15s%s\n", a, performance.FormatDuration(d))
	}

	return nil
}
