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

//go:build !gldebug

package glcheck_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jetsetilly/framediag/glcheck"
	"github.com/jetsetilly/framediag/glcheck/mocks"
	"github.com/jetsetilly/framediag/logger"
	"github.com/jetsetilly/framediag/test"
)

// without the gldebug tag the error source must never be consulted
func TestCheckDisabled(t *testing.T) {
	logger.Clear()
	test.ExpectFailure(t, glcheck.Enabled)

	ctrl := gomock.NewController(t)
	src := mocks.NewMockErrorSource(ctrl)
	src.EXPECT().GetError().Times(0)

	code := glcheck.Check(src)
	test.ExpectEquality(t, code, glcheck.NoError)
	test.ExpectEquality(t, len(logLines(t)), 0)
}
