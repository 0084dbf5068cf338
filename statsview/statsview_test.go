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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/framediag/logger"
	"github.com/jetsetilly/framediag/statsview"
	"github.com/jetsetilly/framediag/test"
)

func TestUnavailable(t *testing.T) {
	logger.Clear()
	test.ExpectFailure(t, statsview.Available())

	statsview.Launch()

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectEquality(t, len(w.Lines()), 0)
}
