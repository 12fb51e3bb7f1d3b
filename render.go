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
	"image"
	"iter"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/primewalk/internal/logger"
)

var (
	// ErrNotIncreasing indicates a prime source which yielded a value not
	// larger than its predecessor.
	ErrNotIncreasing = errors.New("primes not strictly increasing")

	// ErrDrift indicates that the drawing pass saw a different sequence
	// than the measurement pass.
	ErrDrift = errors.New("prime sequence changed between passes")

	// ErrOverflow indicates that the walk does not fit on the canvas.
	ErrOverflow = errors.New("walk does not fit on the canvas")

	// ErrNonFinite indicates that the walk left the range of float64.
	ErrNonFinite = errors.New("walk coordinates are not finite")
)

// Source provides the primes up to a limit, in increasing order.
// Both [primes.Cache] and [primes.Memory] implement this interface.
type Source interface {
	Primes(limit int) iter.Seq2[int, error]
}

// Measurement is the result of the first pass over the primes.
type Measurement struct {
	// Bounds is the bounding box of the walk, including the origin.
	Bounds rect.Rect

	// Steps is the number of primes consumed.
	Steps int

	// LastPrime is the last prime consumed, or 1 if there were none.
	LastPrime int

	// End is the final position of the walker.
	End vec.Vec2
}

// Extent returns the width and height of the bounding box, in walk units.
func (m *Measurement) Extent() (w, h float64) {
	return m.Bounds.URx - m.Bounds.LLx, m.Bounds.URy - m.Bounds.LLy
}

// ChooseScale returns the scale at which the walk is drawn, taking the overflow
// policy of cfg into account.
//
// The walk fits if the centre line of the path spans at most Size-1 pixels
// in both directions.  The stroke width is not included: the extreme points
// of the path lie on the centres of the edge pixels, so strokes touching the
// boundary lose up to half their width (plus the cap extension) there.
func (m *Measurement) ChooseScale(cfg Config) (float64, error) {
	w, h := m.Extent()
	pixels := float64(cfg.Size - 1)
	need := max(w, h)
	if need/cfg.Scale <= pixels {
		return cfg.Scale, nil
	}

	switch cfg.Overflow {
	case OverflowFit:
		s := need / pixels
		for need/s > pixels {
			s = math.Nextafter(s, math.Inf(1))
		}
		return s, nil
	case OverflowClip:
		return cfg.Scale, nil
	default:
		return 0, fmt.Errorf("%w: extent %gx%g needs %.1f pixels at scale %g, canvas has %d",
			ErrOverflow, w, h, need/cfg.Scale+1, cfg.Scale, cfg.Size)
	}
}

// Measure runs the first pass: it walks along all primes up to cfg.Limit
// and records the bounding box of the path.
func Measure(cfg Config, src Source) (*Measurement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := NewWalker(cfg.Heading, cfg.Turn, cfg.StartColor)
	if err := replay(w, src, cfg.Limit); err != nil {
		return nil, err
	}

	b := w.Bounds()
	for _, x := range []float64{b.LLx, b.LLy, b.URx, b.URy} {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: bounds %v", ErrNonFinite, b)
		}
	}

	m := &Measurement{
		Bounds:    b,
		Steps:     w.Steps(),
		LastPrime: w.LastPrime(),
		End:       w.pos,
	}
	return m, nil
}

// Draw runs the second pass: it replays the walk and sends every step to
// the sink, translated by the lower-left corner of m.Bounds.
// If the primes differ from the ones seen by [Measure], ErrDrift is
// returned.
func Draw(cfg Config, src Source, m *Measurement, sink Sink) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	w := NewWalker(cfg.Heading, cfg.Turn, cfg.StartColor)
	w.bounds = m.Bounds
	w.StartDrawing(sink)
	if err := replay(w, src, cfg.Limit); err != nil {
		return err
	}

	if w.Steps() != m.Steps || w.LastPrime() != m.LastPrime || w.pos != m.End {
		return fmt.Errorf("%w: %d steps ending at %d, measured %d steps ending at %d",
			ErrDrift, w.Steps(), w.LastPrime(), m.Steps, m.LastPrime)
	}
	return nil
}

// replay feeds the primes from src into w.
func replay(w *Walker, src Source, limit int) error {
	prev := w.LastPrime()
	for p, err := range src.Primes(limit) {
		if err != nil {
			return err
		}
		if p <= prev {
			return fmt.Errorf("%w: %d after %d", ErrNotIncreasing, p, prev)
		}
		w.Advance(p)
		prev = p
	}
	return nil
}

// Result is the outcome of [Render].
type Result struct {
	Image *image.RGBA
	*Measurement

	// Scale is the scale actually used for drawing.
	Scale float64
}

// Render measures the walk, chooses the scale and draws the walk onto a
// new canvas.  Progress is reported to log, which may be nil.
func Render(cfg Config, src Source, log logrus.FieldLogger) (*Result, error) {
	log = logger.OrDiscard(log)

	log.WithFields(logrus.Fields{
		"limit":   cfg.Limit,
		"heading": cfg.Heading,
		"turn":    cfg.Turn,
	}).Info("measuring walk")
	start := time.Now()
	m, err := Measure(cfg, src)
	if err != nil {
		return nil, err
	}
	w, h := m.Extent()
	log.WithFields(logrus.Fields{
		"steps":   m.Steps,
		"min":     fmt.Sprintf("(%g, %g)", m.Bounds.LLx, m.Bounds.LLy),
		"max":     fmt.Sprintf("(%g, %g)", m.Bounds.URx, m.Bounds.URy),
		"width":   w,
		"height":  h,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("measurement finished")

	scale, err := m.ChooseScale(cfg)
	if err != nil {
		return nil, err
	}
	if scale != cfg.Scale {
		log.WithFields(logrus.Fields{
			"requested": cfg.Scale,
			"used":      scale,
		}).Warn("scale enlarged to fit the canvas")
	} else if max(w, h)/scale > float64(cfg.Size-1) {
		log.WithField("scale", scale).Warn("walk is clipped at the canvas edge")
	}

	log.WithFields(logrus.Fields{
		"size":    cfg.Size,
		"scale":   scale,
		"backend": cfg.Backend,
	}).Info("drawing walk")
	start = time.Now()
	canvas := NewCanvas(cfg, scale)
	if err := Draw(cfg, src, m, canvas); err != nil {
		return nil, err
	}
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).
		Info("drawing finished")

	res := &Result{
		Image:       canvas.Image(),
		Measurement: m,
		Scale:       scale,
	}
	return res, nil
}
