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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/primewalk/primes"
)

type segment struct {
	From, To vec.Vec2
	Color    Color
}

// recorder is a Sink which keeps all segments.
type recorder struct {
	segs []segment
}

func (r *recorder) Segment(a, b vec.Vec2, c Color) {
	r.segs = append(r.segs, segment{a, b, c})
}

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestWalkerTen(t *testing.T) {
	w := NewWalker(North, Right, Red)
	want := []vec.Vec2{
		{X: 0, Y: -1},
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
	}
	for i, p := range []int{2, 3, 5, 7} {
		w.Advance(p)
		if d := cmp.Diff(want[i], w.Position(), approx); d != "" {
			t.Errorf("after %d: position mismatch (-want +got):\n%s", p, d)
		}
	}

	if w.Heading() != 270 {
		t.Errorf("heading %g, want 270", w.Heading())
	}
	if w.Steps() != 4 || w.LastPrime() != 7 {
		t.Errorf("steps %d, last prime %d", w.Steps(), w.LastPrime())
	}
	wantBounds := rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}
	if d := cmp.Diff(wantBounds, w.Bounds(), approx); d != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", d)
	}
	if w.Color() != Red {
		t.Errorf("color changed while measuring: %s", w.Color())
	}
}

func TestWalkerDrawing(t *testing.T) {
	w := NewWalker(North, Right, Red)
	ps := []int{2, 3, 5, 7}
	for _, p := range ps {
		w.Advance(p)
	}

	rec := &recorder{}
	w.StartDrawing(rec)
	if w.Mode() != Drawing || w.Steps() != 0 || w.LastPrime() != 1 || w.Heading() != North {
		t.Fatalf("walker not reset: %s", w)
	}
	if d := cmp.Diff(vec.Vec2{X: 1, Y: 1}, w.Position(), approx); d != "" {
		t.Errorf("start position mismatch (-want +got):\n%s", d)
	}
	for _, p := range ps {
		w.Advance(p)
	}

	want := []segment{
		{vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 0}, Red},
		{vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 2, Y: 0}, Red + 1},
		{vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 2, Y: 2}, Red + 2},
		{vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 0, Y: 2}, Red + 3},
	}
	if d := cmp.Diff(want, rec.segs, approx); d != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", d)
	}
	if w.Color() != Red+4 {
		t.Errorf("next color %s, want %s", w.Color(), Red+4)
	}
}

// TestDrawnPointsInBounds checks that the translated walk stays inside
// the measured bounding box.
func TestDrawnPointsInBounds(t *testing.T) {
	ps, err := primes.Sieve(20000)
	if err != nil {
		t.Fatal(err)
	}
	for _, turn := range []float64{Right, Left, 60, 1, 137.5, -359} {
		t.Run(fmt.Sprint(turn), func(t *testing.T) {
			w := NewWalker(North, turn, Black)
			for _, p := range ps {
				w.Advance(p)
			}
			b := w.Bounds()
			width, height := b.URx-b.LLx, b.URy-b.LLy

			rec := &recorder{}
			w.StartDrawing(rec)
			for _, p := range ps {
				w.Advance(p)
			}
			if len(rec.segs) != len(ps) {
				t.Fatalf("got %d segments, want %d", len(rec.segs), len(ps))
			}
			for i, s := range rec.segs {
				for _, q := range []vec.Vec2{s.From, s.To} {
					if q.X < 0 || q.Y < 0 || q.X > width || q.Y > height {
						t.Fatalf("segment %d: point %v outside [0,%g]x[0,%g]", i, q, width, height)
					}
				}
			}
		})
	}
}

func TestHeadingStaysNormalized(t *testing.T) {
	for _, c := range []struct{ heading, turn float64 }{
		{North, Right},
		{East, Left},
		{West, 359.9},
		{-359, -359},
		{17.25, 100.5},
	} {
		w := NewWalker(c.heading, c.turn, Black)
		for k := 1; k <= 500; k++ {
			w.Advance(2 * k)
			h := w.Heading()
			if !(h > -360 && h < 360) {
				t.Fatalf("heading %g after %d steps", h, k)
			}
			want := c.heading + float64(k)*c.turn
			diff := math.Mod(h-want, 360)
			if math.Abs(diff) > 1e-6 && math.Abs(math.Abs(diff)-360) > 1e-6 {
				t.Fatalf("heading %g after %d steps, want %g mod 360", h, k, want)
			}
		}
	}
}

func TestNormalizeHeading(t *testing.T) {
	cases := []struct{ in, out float64 }{
		{0, 0},
		{359, 359},
		{360, 0},
		{-360, 0},
		{450, 90},
		{-450, -90},
		{719, 359},
		{-359.5, -359.5},
	}
	for _, c := range cases {
		if got := normalizeHeading(c.in); got != c.out {
			t.Errorf("normalizeHeading(%g) = %g, want %g", c.in, got, c.out)
		}
	}
}

func TestWalkerString(t *testing.T) {
	w := NewWalker(North, Right, Red)
	w.Advance(2)
	s := w.String()
	for _, part := range []string{"measuring", "step 1", "last 2", "#ff0000"} {
		if !strings.Contains(s, part) {
			t.Errorf("%q does not contain %q", s, part)
		}
	}
}
