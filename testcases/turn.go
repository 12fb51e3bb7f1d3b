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

package testcases

import "seehuhn.de/go/primewalk"

var turnCases = []TestCase{
	turning("right", primewalk.Right),
	turning("left", primewalk.Left),
	turning("sixty", 60),
	turning("hundred_twenty", 120),
	// slowly curving spiral
	turning("small", 1),
	turning("irrational", 137.50776405003785),
	turning("almost_half", 179.5),
	turning("large_negative", -359),
}

func turning(name string, turn float64) TestCase {
	return TestCase{
		Name:    name,
		Limit:   3000,
		Heading: primewalk.North,
		Turn:    turn,
		Size:    160,
		Scale:   4,
		Start:   primewalk.Red,
	}
}
