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

package performance_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/framediag/performance"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// every formatted duration must match one of the five unit and precision
// combinations
var formatPattern = regexp.MustCompile(`^(\d+\.\d +s| *\d+ ms| *\d+\.\d ms| *\d+ µs| *\d+\.\d\d µs)$`)

func TestFormatDuration_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("format matches a known pattern", prop.ForAll(
		func(n int64) bool {
			return formatPattern.MatchString(performance.FormatDuration(time.Duration(n)))
		},
		gen.Int64Range(0, int64(time.Hour)),
	))

	properties.Property("durations of at least one second use the seconds unit", prop.ForAll(
		func(n int64) bool {
			s := performance.FormatDuration(time.Duration(n))
			return strings.HasSuffix(s, " s") == (time.Duration(n) >= time.Second)
		},
		gen.Int64Range(0, int64(10*time.Second)),
	))

	properties.Property("sub-millisecond durations use the microsecond unit", prop.ForAll(
		func(n int64) bool {
			return strings.HasSuffix(performance.FormatDuration(time.Duration(n)), " µs")
		},
		gen.Int64Range(0, int64(time.Millisecond)-1),
	))

	properties.Property("numeric field is at least three characters wide", prop.ForAll(
		func(n int64) bool {
			s := performance.FormatDuration(time.Duration(n))
			return strings.Index(s, " ") >= 3 || strings.HasPrefix(s, " ")
		},
		gen.Int64Range(0, int64(time.Minute)),
	))

	properties.TestingRun(t)
}
