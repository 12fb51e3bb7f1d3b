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

var basicCases = []TestCase{
	// no primes at all: an empty canvas
	{
		Name:    "empty",
		Limit:   1,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    16,
		Scale:   1,
		Start:   primewalk.Red,
	},

	// a single step from 1 to 2
	{
		Name:    "single",
		Limit:   2,
		Heading: primewalk.East,
		Turn:    primewalk.Right,
		Size:    16,
		Scale:   0.25,
		Start:   primewalk.Red,
	},

	// primes 2, 3, 5, 7: a small hook
	{
		Name:    "ten",
		Limit:   10,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    32,
		Scale:   0.1,
		Start:   primewalk.Red,
	},
	{
		Name:    "hundred",
		Limit:   100,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    64,
		Scale:   0.5,
		Start:   primewalk.Red,
	},
	{
		Name:    "thousand",
		Limit:   1000,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    128,
		Scale:   1,
		Start:   primewalk.Red,
	},

	// the color counter wraps from white to black after the first step
	{
		Name:    "color_wrap",
		Limit:   100,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    64,
		Scale:   0.5,
		Start:   primewalk.White,
	},
}
