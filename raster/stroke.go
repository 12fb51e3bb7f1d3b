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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeSegment renders the straight segment from a to b, given in user
// space, using Width and Cap.  The coverage slice passed to emit is only
// valid for the duration of the call.
func (r *Rasteriser) StrokeSegment(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	poly := r.Outline(a, b)
	if len(poly) < 3 {
		return
	}
	r.FillNonZero(poly, emit)
}

// Outline returns the boundary of the stroked segment from a to b as a
// closed polygon in user space.  The result is only valid until the next
// call to Outline or StrokeSegment.
//
// A segment of zero length has no direction.  With round caps it is drawn
// as a dot, with square caps as an axis-aligned square, and with butt caps
// not at all.
func (r *Rasteriser) Outline(a, b vec.Vec2) []vec.Vec2 {
	d := r.Width / 2
	r.outline = r.outline[:0]

	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(a, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.outline = append(r.outline,
				vec.Vec2{X: a.X + d, Y: a.Y + d},
				vec.Vec2{X: a.X + d, Y: a.Y - d},
				vec.Vec2{X: a.X - d, Y: a.Y - d},
				vec.Vec2{X: a.X - d, Y: a.Y + d},
			)
		}
		return r.outline
	}

	T := delta.Mul(1 / length)     // unit tangent
	N := vec.Vec2{X: -T.Y, Y: T.X} // unit normal, 90° CCW from T

	switch r.Cap {
	case graphics.LineCapRound:
		r.outline = append(r.outline, a.Add(N.Mul(d)))
		r.addArc(b, d, N, -math.Pi, true)
		r.addArc(a, d, N.Mul(-1), -math.Pi, true)
		// the last arc ends where the polygon started
		r.outline = r.outline[:len(r.outline)-1]

	case graphics.LineCapSquare:
		a = a.Sub(T.Mul(d))
		b = b.Add(T.Mul(d))
		fallthrough

	default:
		r.outline = append(r.outline,
			a.Add(N.Mul(d)),
			b.Add(N.Mul(d)),
			b.Sub(N.Mul(d)),
			a.Sub(N.Mul(d)),
		)
	}
	return r.outline
}

// addArc appends points on a circular arc to the outline.
// startDir is the unit vector from center to the start of the arc, and
// sweep is the angle in radians (positive means counter-clockwise).
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	// A chord spanning angle θ deviates from the circle by r(1-cos(θ/2)).
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = int(math.Ceil(math.Abs(sweep) / step))
		} else {
			n = 8
		}
	}
	n = max(n, 2)

	first := 1
	if includeStart {
		first = 0
	}
	dt := sweep / float64(n)
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
