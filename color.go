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
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a stroke color, stored as the 24-bit integer 0xRRGGBB.
type Color uint32

// Some frequently used colors.
const (
	Black Color = 0x000000
	Red   Color = 0xFF0000
	White Color = 0xFFFFFF
)

// ErrInvalidColor is returned by [ParseColor] for unrecognised input.
var ErrInvalidColor = errors.New("invalid color")

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Components returns the red, green and blue components of c.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToRGBA converts c to an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Next returns the color used for the segment after one drawn in c.
// The 24-bit value is incremented by one, and white is followed by black.
// This visits all 2^24 colors before repeating.
func (c Color) Next() Color {
	return (c + 1) & White
}

// String returns c in the form "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c&White))
}

// ParseColor converts a string to a Color.  Accepted forms are "#rrggbb",
// "rrggbb", "0xrrggbb" and the SVG color names (for example "red" or
// "cornflowerblue").
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[key]; ok {
		return RGB(c.R, c.G, c.B), nil
	}

	hex := key
	switch {
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	case strings.HasPrefix(hex, "0x"):
		hex = hex[2:]
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(v), nil
}
