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

// Package raster converts polygons and stroked line segments into
// anti-aliased pixel coverage.
//
// Coverage is the fraction of a pixel's area covered by the shape, from
// 0 (outside) to 1 (inside).  It is delivered one scanline at a time to an
// emit callback, which blends it into whatever pixel buffer the caller
// uses.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser computes coverage values for polygons and stroked segments.
// Internal buffers grow as needed and are reused between calls, so a
// single Rasteriser should be used for all segments of a drawing.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal deviation, in device pixels, allowed when
	// approximating round caps by polygons.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at both ends of a stroked segment.
	Cap graphics.LineCapStyle

	// smallPathThreshold is the largest bounding box area (in pixels)
	// for which 2D accumulation buffers are used.  Larger shapes are
	// processed one scanline at a time using an active edge list.
	smallPathThreshold int

	cover       []float32 // signed vertical extent per pixel; reused as output
	area        []float32 // area to the right of the edge, per pixel
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool
	outline     []vec.Vec2

	bboxEmpty bool
	devXMin   float64
	devXMax   float64
	devYMin   float64
	devYMax   float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle,
// with identity CTM, unit width and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapButt,

		smallPathThreshold: smallPathThreshold,
	}
}

// ToDevice maps a point from user space to device space.
func (r *Rasteriser) ToDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// transformLinear applies the 2×2 linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// FillNonZero fills the closed polygon poly, given in user space, using
// the nonzero winding rule.  The coverage slice passed to emit is only
// valid for the duration of the call.
func (r *Rasteriser) FillNonZero(poly []vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	r.addPolygon(poly)
	r.fillEdges(emit)
}

// addPolygon adds the edges of a closed polygon to the edge list.
func (r *Rasteriser) addPolygon(poly []vec.Vec2) {
	if len(poly) < 2 {
		return
	}
	prev := r.ToDevice(poly[len(poly)-1])
	for _, p := range poly {
		cur := r.ToDevice(p)
		r.addEdge(prev, cur)
		prev = cur
	}
}

// addEdge appends a device-space edge and updates the bounding box.
// Horizontal edges do not contribute to coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	xLo, xHi := min(p0.X, p1.X), max(p0.X, p1.X)
	yLo, yHi := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	if r.bboxEmpty {
		r.devXMin, r.devXMax = xLo, xHi
		r.devYMin, r.devYMax = yLo, yHi
		r.bboxEmpty = false
	} else {
		r.devXMin = min(r.devXMin, xLo)
		r.devXMax = max(r.devXMax, xHi)
		r.devYMin = min(r.devYMin, yLo)
		r.devYMax = max(r.devYMax, yHi)
	}
}

// fillEdges rasterises the current edge list.
func (r *Rasteriser) fillEdges(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// For every pixel we accumulate two values:
//
//	cover: the signed vertical extent of all edge pieces inside the pixel
//	area:  cover weighted by the fraction of the pixel right of the edge
//
// Scanning a row from left to right, the coverage of pixel i is the sum
// of cover over all pixels left of i, plus area[i].  Clamping the
// absolute value to [0, 1] implements the nonzero winding rule.

// accumulateEdge adds the contribution of e within scanline y to the
// cover and area buffers, which are indexed by x-bboxXMin.
func (r *Rasteriser) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	if pixRight < bboxXMin {
		// everything is left of the clip region: full cover for the row
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		addPiece(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// The edge crosses several pixel columns; split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		yA := e.y0 + dydx*(float64(pix)-e.x0)
		yB := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(yA, yB), yTop)
		segBot := min(max(yA, yB), yBot)
		if segBot <= segTop {
			continue
		}
		addPiece(e, segTop, segBot, sign, pix, cover, area, bboxXMin, bboxXMax)
	}
}

// addPiece records the part of e between yTop and yBot, which lies
// inside pixel column pix.
func addPiece(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < bboxXMin:
		cover[0] += c
		area[0] += c
	case pix < bboxXMax:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		xFrac := xMid - float64(pix)
		idx := pix - bboxXMin
		cover[idx] += c
		area[idx] += c * float32(1-xFrac)
	}
}

// integrateNonZero turns accumulated cover/area values into coverage,
// in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillSmall rasterises the edge list using buffers which cover the whole
// bounding box.
func (r *Rasteriser) fillSmall(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		hi := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// fillLarge rasterises the edge list one scanline at a time, keeping
// a list of the edges which intersect the current scanline.
func (r *Rasteriser) fillLarge(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, lo := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+lo, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default tolerance for polygonal
	// approximation of arcs, in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent for an
	// edge to be kept.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default switch-over area between the two
	// fill strategies.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the length below which a segment has no
	// usable direction.
	zeroLengthThreshold = 1e-10
)
