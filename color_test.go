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
	"image/color"
	"testing"
)

func TestColorNext(t *testing.T) {
	if got := White.Next(); got != Black {
		t.Errorf("white is followed by %s", got)
	}
	if got := Red.Next(); got != 0xFF0001 {
		t.Errorf("red is followed by %s", got)
	}
	if got := RGB(0x12, 0xFF, 0xFF).Next(); got != RGB(0x13, 0, 0) {
		t.Errorf("carry: got %s", got)
	}
}

func TestColorCycle(t *testing.T) {
	if testing.Short() {
		t.Skip("long cycle")
	}
	start := RGB(0x12, 0x34, 0x56)
	c := start.Next()
	n := 1
	for c != start {
		if c > White {
			t.Fatalf("color %d out of range", uint32(c))
		}
		c = c.Next()
		n++
	}
	if n != 1<<24 {
		t.Errorf("cycle length %d, want %d", n, 1<<24)
	}
}

func TestColorComponents(t *testing.T) {
	c := RGB(1, 2, 3)
	if c != 0x010203 {
		t.Errorf("RGB(1, 2, 3) = %s", c)
	}
	if r, g, b := c.Components(); r != 1 || g != 2 || b != 3 {
		t.Errorf("components %d %d %d", r, g, b)
	}
	if got := c.ToRGBA(); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("ToRGBA = %v", got)
	}
	if s := c.String(); s != "#010203" {
		t.Errorf("String = %q", s)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#ff0000", Red},
		{"FF0000", Red},
		{"0x00ff00", 0x00FF00},
		{" #123abc ", 0x123ABC},
		{"red", Red},
		{"White", White},
		{"cornflowerblue", RGB(100, 149, 237)},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %s, want %s", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "#fff", "#1234567", "nocolor", "0xgg0000"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("%q: got error %v, want ErrInvalidColor", in, err)
		}
	}
}
