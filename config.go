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

package primewalk

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/primewalk/primes"
)

// ErrInvalidConfig is wrapped by all errors returned from [Config.Validate].
var ErrInvalidConfig = errors.New("invalid configuration")

// MaxSize is the largest supported canvas edge length, in pixels.
const MaxSize = 1 << 15

// Backend selects how segments are rasterised.
type Backend int

// These are the supported backends.
const (
	// BackendCoverage uses the exact-area rasteriser in package raster.
	BackendCoverage Backend = iota

	// BackendVector fills segment outlines with golang.org/x/image/vector.
	BackendVector
)

func (b Backend) String() string {
	switch b {
	case BackendCoverage:
		return "coverage"
	case BackendVector:
		return "vector"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend converts "coverage" or "vector" to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coverage":
		return BackendCoverage, nil
	case "vector":
		return BackendVector, nil
	}
	return 0, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, s)
}

// Overflow determines what happens when the walk is larger than the
// canvas at the requested scale.
type Overflow int

// These are the supported overflow policies.
const (
	// OverflowError aborts the render with ErrOverflow.
	OverflowError Overflow = iota

	// OverflowFit increases the scale until the walk fits.
	OverflowFit

	// OverflowClip draws at the requested scale and discards
	// everything outside the canvas.
	OverflowClip
)

func (o Overflow) String() string {
	switch o {
	case OverflowError:
		return "error"
	case OverflowFit:
		return "fit"
	case OverflowClip:
		return "clip"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// ParseOverflow converts "error", "fit" or "clip" to an Overflow policy.
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return OverflowError, nil
	case "fit":
		return OverflowFit, nil
	case "clip":
		return OverflowClip, nil
	}
	return 0, fmt.Errorf("%w: unknown overflow policy %q", ErrInvalidConfig, s)
}

// ParseCap converts "butt", "round" or "square" to a line cap style.
func ParseCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	for _, c := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare} {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown line cap %q", ErrInvalidConfig, s)
}

// Config holds the parameters of a render.
type Config struct {
	// Limit is the largest number tested for primality.
	Limit int

	// Heading is the initial direction of travel, in degrees.
	Heading float64

	// Turn is the angle added to the heading after every step.
	Turn float64

	// StartColor is the color of the first segment.
	StartColor Color

	// Size is the width and height of the square canvas, in pixels.
	Size int

	// Scale is the number of walk units per pixel.
	Scale float64

	// LineWidth is the stroke width, in pixels.
	LineWidth float64

	// Cap is the line cap used at both ends of every segment.
	Cap graphics.LineCapStyle

	Backend  Backend
	Overflow Overflow
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Limit:      1_000_000,
		Heading:    North,
		Turn:       Right,
		StartColor: Red,
		Size:       5400,
		Scale:      25,
		LineWidth:  1,
		Cap:        graphics.LineCapSquare,
		Backend:    BackendCoverage,
		Overflow:   OverflowError,
	}
}

// Validate checks that all fields of c are usable.
func (c *Config) Validate() error {
	if err := primes.CheckLimit(c.Limit); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := ValidateHeading(c.Heading); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := ValidateTurn(c.Turn); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.StartColor > White {
		return fmt.Errorf("%w: start color %d out of range", ErrInvalidConfig, uint32(c.StartColor))
	}
	if c.Size < 2 || c.Size > MaxSize {
		return fmt.Errorf("%w: size %d not in [2, %d]", ErrInvalidConfig, c.Size, MaxSize)
	}
	if !isPositive(c.Scale) {
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidConfig, c.Scale)
	}
	if !isPositive(c.LineWidth) {
		return fmt.Errorf("%w: line width must be positive, got %g", ErrInvalidConfig, c.LineWidth)
	}
	switch c.Cap {
	case graphics.LineCapButt, graphics.LineCapRound, graphics.LineCapSquare:
	default:
		return fmt.Errorf("%w: unknown line cap %d", ErrInvalidConfig, int(c.Cap))
	}
	switch c.Backend {
	case BackendCoverage, BackendVector:
	default:
		return fmt.Errorf("%w: unknown backend %s", ErrInvalidConfig, c.Backend)
	}
	switch c.Overflow {
	case OverflowError, OverflowFit, OverflowClip:
	default:
		return fmt.Errorf("%w: unknown overflow policy %s", ErrInvalidConfig, c.Overflow)
	}
	return nil
}

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
