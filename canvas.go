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
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/primewalk/raster"
)

// Canvas is a square raster image which implements [Sink].
// Segments are given in walk units and converted to pixels by dividing
// by the scale.  The walk point (0, 0) lands on the centre of the top-left
// pixel.
type Canvas struct {
	img     *image.RGBA
	backend Backend

	r   *raster.Rasteriser
	cur Color
	pix func(y, xMin int, coverage []float32)

	z   *vector.Rasterizer
	src *image.Uniform
	dev []vec.Vec2
}

// NewCanvas allocates a black canvas of cfg.Size×cfg.Size pixels.
// The scale argument overrides cfg.Scale, so that the scale chosen by
// the overflow policy can be used.
func NewCanvas(cfg Config, scale float64) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	s := float64(cfg.Size)
	r := raster.NewRasteriser(rect.Rect{URx: s, URy: s})
	r.CTM = matrix.Matrix{1 / scale, 0, 0, 1 / scale, 0.5, 0.5}
	r.Width = cfg.LineWidth * scale
	r.Cap = cfg.Cap

	c := &Canvas{
		img:     img,
		backend: cfg.Backend,
		r:       r,
	}
	c.pix = c.blendRow
	if cfg.Backend == BackendVector {
		c.z = vector.NewRasterizer(0, 0)
		c.src = image.NewUniform(Black.ToRGBA())
	}
	return c
}

// Image returns the canvas image.  The image is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Segment draws the segment from a to b in the given color.
func (c *Canvas) Segment(a, b vec.Vec2, col Color) {
	switch c.backend {
	case BackendVector:
		c.vectorSegment(a, b, col)
	default:
		c.cur = col
		c.r.StrokeSegment(a, b, c.pix)
	}
}

// blendRow composites the current color over one row of pixels,
// using the coverage values as alpha.
func (c *Canvas) blendRow(y, xMin int, coverage []float32) {
	r, g, b := c.cur.Components()
	row := c.img.Pix[c.img.PixOffset(xMin, y):]
	for i, a := range coverage {
		if a <= 0 {
			continue
		}
		a = min(a, 1)
		p := row[4*i : 4*i+4 : 4*i+4]
		p[0] = blend(p[0], r, a)
		p[1] = blend(p[1], g, a)
		p[2] = blend(p[2], b, a)
		p[3] = 255
	}
}

func blend(dst, src uint8, a float32) uint8 {
	return uint8(float32(dst) + (float32(src)-float32(dst))*a + 0.5)
}

// vectorSegment fills the outline of one segment using x/image/vector.
// The vector rasteriser works on the device-space bounding box of the
// outline only.
func (c *Canvas) vectorSegment(a, b vec.Vec2, col Color) {
	poly := c.r.Outline(a, b)
	if len(poly) < 3 {
		return
	}

	c.dev = c.dev[:0]
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		q := c.r.ToDevice(p)
		c.dev = append(c.dev, q)
		xMin = min(xMin, q.X)
		yMin = min(yMin, q.Y)
		xMax = max(xMax, q.X)
		yMax = max(yMax, q.Y)
	}

	bbox := image.Rect(
		int(math.Floor(xMin)), int(math.Floor(yMin)),
		int(math.Ceil(xMax)), int(math.Ceil(yMax)),
	).Intersect(c.img.Bounds())
	if bbox.Empty() {
		return
	}

	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
	c.z.Reset(bbox.Dx(), bbox.Dy())
	c.z.MoveTo(float32(c.dev[0].X-ox), float32(c.dev[0].Y-oy))
	for _, q := range c.dev[1:] {
		c.z.LineTo(float32(q.X-ox), float32(q.Y-oy))
	}
	c.z.ClosePath()

	c.src.C = col.ToRGBA()
	c.z.Draw(c.img, bbox, c.src, image.Point{})
}
