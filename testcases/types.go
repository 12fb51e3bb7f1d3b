// seehuhn.de/go/primewalk - draw walks along the prime numbers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases lists named prime walks used by the tests and by the
// reference generators in the subdirectories.
package testcases

import (
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/primewalk"
)

// TestCase defines a single walk.
type TestCase struct {
	Name    string  // lowercase a-z, 0-9 and _ only
	Limit   int     // largest number tested for primality
	Heading float64 // initial heading in degrees
	Turn    float64 // turn after every step, in degrees
	Size    int     // canvas width and height in pixels
	Scale   float64 // walk units per pixel

	// Stroke parameters.  Zero values mean one pixel wide, square caps.
	Width float64
	Cap   graphics.LineCapStyle

	Start primewalk.Color
}

// Config returns the render configuration for tc.  Test cases are sized to
// fit their canvas, but the fit policy is used so that small differences
// between platforms cannot cause an overflow error.
func (tc TestCase) Config() primewalk.Config {
	cfg := primewalk.DefaultConfig()
	cfg.Limit = tc.Limit
	cfg.Heading = tc.Heading
	cfg.Turn = tc.Turn
	cfg.Size = tc.Size
	cfg.Scale = tc.Scale
	if tc.Width > 0 {
		cfg.LineWidth = tc.Width
		cfg.Cap = tc.Cap
	}
	cfg.StartColor = tc.Start
	cfg.Overflow = primewalk.OverflowFit
	return cfg
}
