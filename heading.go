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
	"strconv"
	"strings"
)

// Headings of the four compass directions, in degrees.
//
// Angles are measured from the positive x-axis towards the positive
// y-axis.  Image rows grow downwards, so North (pointing to the top of
// the image) has a negative angle.
const (
	North = -90.0
	East  = 0.0
	South = 90.0
	West  = 180.0
)

// Turn angles of the two named turns, in degrees.  With image rows
// growing downwards, a positive turn is clockwise on the image.
const (
	Right = 90.0
	Left  = -90.0
)

var (
	// ErrInvalidTurn indicates a turn angle of ±180° or a turn outside
	// the open interval (-360°, 360°).
	ErrInvalidTurn = errors.New("invalid turn angle")

	// ErrInvalidHeading indicates a heading outside (-360°, 360°).
	ErrInvalidHeading = errors.New("invalid heading")
)

var headingNames = map[string]float64{
	"north": North,
	"east":  East,
	"south": South,
	"west":  West,
}

var turnNames = map[string]float64{
	"right": Right,
	"left":  Left,
}

// ParseHeading converts a compass direction ("north", "east", "south",
// "west") or an angle in degrees to a heading.
func ParseHeading(s string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if h, ok := headingNames[key]; ok {
		return h, nil
	}
	h, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeading, s)
	}
	if err := ValidateHeading(h); err != nil {
		return 0, err
	}
	return h, nil
}

// ParseTurn converts "right", "left" or an angle in degrees to a turn
// angle.
func ParseTurn(s string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if t, ok := turnNames[key]; ok {
		return t, nil
	}
	t, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
	}
	if err := ValidateTurn(t); err != nil {
		return 0, err
	}
	return t, nil
}

// ValidateHeading checks that h lies in the open interval (-360, 360).
func ValidateHeading(h float64) error {
	if !(h > -360 && h < 360) {
		return fmt.Errorf("%w: %g not in (-360, 360)", ErrInvalidHeading, h)
	}
	return nil
}

// ValidateTurn checks that t lies in (-360, 360) and is not ±180.
// A half turn would make the walk retrace its own steps.
func ValidateTurn(t float64) error {
	if !(t > -360 && t < 360) {
		return fmt.Errorf("%w: %g not in (-360, 360)", ErrInvalidTurn, t)
	}
	if t == 180 || t == -180 {
		return fmt.Errorf("%w: %g", ErrInvalidTurn, t)
	}
	return nil
}

// normalizeHeading maps a finite angle into (-360, 360) by adding or
// subtracting full turns.
func normalizeHeading(h float64) float64 {
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return h
	}
	for h <= -360 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
