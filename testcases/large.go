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

// largeCases contain segments with device bounding boxes of more than
// 65536 pixels, to exercise the active edge list in the rasteriser.
var largeCases = []TestCase{
	// the first steps, magnified so that each segment spans the canvas
	{
		Name:    "magnified",
		Limit:   10,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    512,
		Scale:   1.0 / 200,
		Width:   160,
		Cap:     graphics.LineCapSquare,
		Start:   primewalk.Red,
	},
	{
		Name:    "magnified_diagonal",
		Limit:   12,
		Heading: 30,
		Turn:    60,
		Size:    512,
		Scale:   1.0 / 80,
		Width:   150,
		Cap:     graphics.LineCapRound,
		Start:   primewalk.Red,
	},

	// a walk which is much larger than the canvas and gets scaled down
	{
		Name:    "fit",
		Limit:   100_000,
		Heading: primewalk.North,
		Turn:    primewalk.Right,
		Size:    256,
		Scale:   1,
		Start:   primewalk.Red,
	},
}
