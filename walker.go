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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// A Sink receives the segments of a walk during the drawing pass.
// Coordinates are translated so that the bounding box of the walk
// starts at the origin.
type Sink interface {
	Segment(from, to vec.Vec2, c Color)
}

// Mode is the phase a [Walker] is in.
type Mode int

// These are the two phases of a walk.
const (
	Measuring Mode = iota
	Drawing
)

func (m Mode) String() string {
	switch m {
	case Measuring:
		return "measuring"
	case Drawing:
		return "drawing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Walker is the turtle which moves along the primes.
//
// For every prime p the walker moves forward by the gap between p and the
// previous prime (the walk starts at 1) and then turns by a fixed angle.
// In measuring mode only the bounding box is recorded.  In drawing mode
// every step is passed to a [Sink] as a colored segment.
type Walker struct {
	initialHeading float64
	turn           float64
	startColor     Color

	pos       vec.Vec2 // untranslated
	heading   float64
	lastPrime int
	steps     int
	color     Color

	mode   Mode
	bounds rect.Rect
	origin vec.Vec2
	sink   Sink
}

// NewWalker returns a walker at the origin, in measuring mode.
// The heading and turn must be valid; see [ValidateHeading] and
// [ValidateTurn].
func NewWalker(heading, turn float64, start Color) *Walker {
	w := &Walker{
		initialHeading: heading,
		turn:           turn,
		startColor:     start,
	}
	w.reset()
	return w
}

func (w *Walker) reset() {
	w.pos = vec.Vec2{}
	w.heading = w.initialHeading
	w.lastPrime = 1
	w.steps = 0
	w.color = w.startColor
}

// Advance moves the walker forward by prime-lastPrime units along the
// current heading, then turns.
//
// The caller must pass primes in strictly increasing order.
func (w *Walker) Advance(prime int) {
	distance := float64(prime - w.lastPrime)
	angle := w.heading * (math.Pi / 180)
	next := vec.Vec2{
		X: w.pos.X + distance*math.Cos(angle),
		Y: w.pos.Y + distance*math.Sin(angle),
	}

	switch w.mode {
	case Measuring:
		w.bounds.LLx = min(w.bounds.LLx, next.X)
		w.bounds.LLy = min(w.bounds.LLy, next.Y)
		w.bounds.URx = max(w.bounds.URx, next.X)
		w.bounds.URy = max(w.bounds.URy, next.Y)
	case Drawing:
		if w.sink != nil {
			w.sink.Segment(w.pos.Sub(w.origin), next.Sub(w.origin), w.color)
		}
		w.color = w.color.Next()
	}

	w.pos = next
	w.lastPrime = prime
	w.steps++
	w.heading = normalizeHeading(w.heading + w.turn)
}

// StartDrawing switches the walker to drawing mode and rewinds it to the
// start of the walk.  The bounding box recorded while measuring is used
// to translate all segments into the positive quadrant.
func (w *Walker) StartDrawing(sink Sink) {
	w.reset()
	w.mode = Drawing
	w.origin = vec.Vec2{X: w.bounds.LLx, Y: w.bounds.LLy}
	w.sink = sink
}

// Mode returns the current phase of the walk.
func (w *Walker) Mode() Mode {
	return w.mode
}

// Bounds returns the bounding box of all points visited while measuring,
// including the origin.
func (w *Walker) Bounds() rect.Rect {
	return w.bounds
}

// Position returns the current position.  In drawing mode the position
// is translated in the same way as the segments passed to the sink.
func (w *Walker) Position() vec.Vec2 {
	if w.mode == Drawing {
		return w.pos.Sub(w.origin)
	}
	return w.pos
}

// Heading returns the current heading in degrees, in (-360, 360).
func (w *Walker) Heading() float64 {
	return w.heading
}

// LastPrime returns the most recent prime passed to Advance,
// or 1 before the first step.
func (w *Walker) LastPrime() int {
	return w.lastPrime
}

// Steps returns the number of calls to Advance since the start of the
// current pass.
func (w *Walker) Steps() int {
	return w.steps
}

// Color returns the color of the next segment.
func (w *Walker) Color() Color {
	return w.color
}

func (w *Walker) String() string {
	b := w.bounds
	return fmt.Sprintf("walker{%s step %d at (%g, %g) heading %g last %d color %s bounds [%g,%g]x[%g,%g]}",
		w.mode, w.steps, w.pos.X, w.pos.Y, w.heading, w.lastPrime, w.color,
		b.LLx, b.URx, b.LLy, b.URy)
}
