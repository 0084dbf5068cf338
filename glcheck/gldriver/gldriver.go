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

// Package gldriver connects the glcheck package to the OpenGL 3.2 core
// bindings provided by go-gl.
//
// Init() must be called once a GL context has been made current and before
// the Source is used. Both must be used from the thread that owns the context.
package gldriver

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/framediag/glcheck"
	"github.com/jetsetilly/framediag/logger"
)

// Source is the error queue of the current GL context.
var Source glcheck.ErrorSource = glcheck.SourceFunc(gl.GetError)

// Init loads the GL function pointers for the current context and logs
// information about the driver.
func Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("gldriver: %w", err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "gl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return nil
}
