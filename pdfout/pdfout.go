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

// Package pdfout writes prime walks as single-page vector PDF files.
//
// The page has the same size as the raster canvas, with one PDF point per
// pixel, and uses the same mapping from walk units to the page.
package pdfout

import (
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/primewalk"
)

// Writer is a [primewalk.Sink] which strokes every segment onto a PDF page.
type Writer struct {
	page *document.Page
}

// Create starts a new PDF file for a walk drawn with cfg at the given
// scale.  The caller must call [Writer.Close] to complete the file.
func Create(fname string, cfg primewalk.Config, scale float64) (*Writer, error) {
	size := float64(cfg.Size)
	paper := &pdf.Rectangle{URx: size, URy: size}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, size, size)
	page.Fill()

	// PDF origin is bottom-left, image rows grow downwards.
	page.Transform(matrix.Matrix{1 / scale, 0, 0, -1 / scale, 0.5, size - 0.5})
	page.SetLineWidth(cfg.LineWidth * scale)
	page.SetLineCap(cfg.Cap)

	return &Writer{page: page}, nil
}

// Segment strokes the segment from a to b in the given color.
func (w *Writer) Segment(a, b vec.Vec2, c primewalk.Color) {
	r, g, bl := c.Components()
	w.page.SetStrokeColor(color.DeviceRGB{float64(r) / 255, float64(g) / 255, float64(bl) / 255})
	w.page.MoveTo(a.X, a.Y)
	w.page.LineTo(b.X, b.Y)
	w.page.Stroke()
}

// Close finishes the page and closes the file.
func (w *Writer) Close() error {
	return w.page.Close()
}

// Render measures the walk, then writes it to fname.
// The scale is chosen in the same way as for raster output.
//
// The PDF is written to a temporary file in the same directory, which is
// renamed to fname only after the walk has been drawn completely.  If
// drawing fails, no file is left behind.
func Render(fname string, cfg primewalk.Config, src primewalk.Source) (*primewalk.Measurement, error) {
	m, err := primewalk.Measure(cfg, src)
	if err != nil {
		return nil, err
	}
	scale, err := m.ChooseScale(cfg)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fname), ".primewalk-*.pdf")
	if err != nil {
		return nil, err
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, err
	}

	err = draw(tmpName, cfg, scale, src, m)
	if err == nil {
		err = os.Chmod(tmpName, 0o644)
	}
	if err == nil {
		err = os.Rename(tmpName, fname)
	}
	if err != nil {
		os.Remove(tmpName)
		return nil, err
	}
	return m, nil
}

func draw(fname string, cfg primewalk.Config, scale float64, src primewalk.Source, m *primewalk.Measurement) error {
	w, err := Create(fname, cfg, scale)
	if err != nil {
		return err
	}
	err = primewalk.Draw(cfg, src, m, w)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	return err
}
