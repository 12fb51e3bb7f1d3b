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

import (
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/primewalk"
)

var strokeCases = []TestCase{
	{
		Name:    "line_butt",
		Limit:   200,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    64,
		Scale:   0.5,
		Width:   3,
		Cap:     graphics.LineCapButt,
		Start:   primewalk.Red,
	},
	{
		Name:    "line_round",
		Limit:   200,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    64,
		Scale:   0.5,
		Width:   3,
		Cap:     graphics.LineCapRound,
		Start:   primewalk.Red,
	},
	{
		Name:    "line_square",
		Limit:   200,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    64,
		Scale:   0.5,
		Width:   3,
		Cap:     graphics.LineCapSquare,
		Start:   primewalk.Red,
	},
	{
		Name:    "hairline",
		Limit:   5000,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    96,
		Scale:   4,
		Width:   0.25,
		Cap:     graphics.LineCapButt,
		Start:   primewalk.Red,
	},
	{
		Name:    "thick_diagonal",
		Limit:   300,
		Heading: 45,
		Turn:    primewalk.Right,
		Size:    96,
		Scale:   0.5,
		Width:   6,
		Cap:     graphics.LineCapRound,
		Start:   primewalk.Red,
	},
}
