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

// headingCases run the same walk in different initial directions.
// The pictures are rotated copies of each other.
var headingCases = []TestCase{
	cardinal("north", primewalk.North),
	cardinal("east", primewalk.East),
	cardinal("south", primewalk.South),
	cardinal("west", primewalk.West),
	cardinal("diagonal", 45),
	cardinal("negative", -135),
	cardinal("odd", 17.5),
}

func cardinal(name string, heading float64) TestCase {
	return TestCase{
		Name:    name,
		Limit:   2000,
		Heading: heading,
		Turn:    primewalk.Right,
		Size:    128,
		Scale:   2,
		Start:   primewalk.Red,
	}
}
