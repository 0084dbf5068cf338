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

// Package version reports the version of the program and the options it was
// built with.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// The name to use when referring to the application
const ApplicationName = "Framediag"

// number is set by the linker for release builds
var number string

var (
	version   string
	revision  string
	buildTags []string
)

// Version returns the version string and the revision string. The version is
// "unreleased" if there is vcs information but no version number, and "local"
// if there is neither.
func Version() (string, string) {
	return version, revision
}

// BuildTags returns the build tags the program was compiled with.
func BuildTags() []string {
	return buildTags
}

func init() {
	var vcs bool
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			case "-tags":
				buildTags = strings.Split(v.Value, ",")
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if vcsModified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
