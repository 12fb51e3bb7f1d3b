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
	"math"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/primewalk/primes"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
		target error
	}{
		{"limit_zero", func(c *Config) { c.Limit = 0 }, primes.ErrLimit},
		{"limit_huge", func(c *Config) { c.Limit = primes.MaxLimit + 1 }, primes.ErrLimit},
		{"heading", func(c *Config) { c.Heading = 360 }, ErrInvalidHeading},
		{"heading_nan", func(c *Config) { c.Heading = math.NaN() }, ErrInvalidHeading},
		{"turn_180", func(c *Config) { c.Turn = 180 }, ErrInvalidTurn},
		{"turn_minus_180", func(c *Config) { c.Turn = -180 }, ErrInvalidTurn},
		{"turn_360", func(c *Config) { c.Turn = 360 }, ErrInvalidTurn},
		{"turn_inf", func(c *Config) { c.Turn = math.Inf(-1) }, ErrInvalidTurn},
		{"color", func(c *Config) { c.StartColor = 1 << 24 }, ErrInvalidConfig},
		{"size", func(c *Config) { c.Size = 1 }, ErrInvalidConfig},
		{"size_huge", func(c *Config) { c.Size = MaxSize + 1 }, ErrInvalidConfig},
		{"scale", func(c *Config) { c.Scale = 0 }, ErrInvalidConfig},
		{"scale_inf", func(c *Config) { c.Scale = math.Inf(1) }, ErrInvalidConfig},
		{"width", func(c *Config) { c.LineWidth = -1 }, ErrInvalidConfig},
		{"cap", func(c *Config) { c.Cap = 7 }, ErrInvalidConfig},
		{"backend", func(c *Config) { c.Backend = 5 }, ErrInvalidConfig},
		{"overflow", func(c *Config) { c.Overflow = -1 }, ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, c.target) {
				t.Errorf("got error %v, want %v", err, c.target)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseHeading(t *testing.T) {
	cases := map[string]float64{
		"north":  North,
		"EAST":   East,
		" south": South,
		"West":   West,
		"45":     45,
		"-359.5": -359.5,
	}
	for in, want := range cases {
		got, err := ParseHeading(in)
		if err != nil || got != want {
			t.Errorf("ParseHeading(%q) = %g, %v, want %g", in, got, err, want)
		}
	}
	for _, in := range []string{"up", "360", "-400", "NaN", ""} {
		if _, err := ParseHeading(in); !errors.Is(err, ErrInvalidHeading) {
			t.Errorf("ParseHeading(%q): got error %v", in, err)
		}
	}
}

func TestParseTurn(t *testing.T) {
	cases := map[string]float64{
		"right": Right,
		"Left":  Left,
		"60":    60,
		"-1.5":  -1.5,
		"179.9": 179.9,
	}
	for in, want := range cases {
		got, err := ParseTurn(in)
		if err != nil || got != want {
			t.Errorf("ParseTurn(%q) = %g, %v, want %g", in, got, err, want)
		}
	}
	for _, in := range []string{"around", "180", "-180", "360", "1e400"} {
		if _, err := ParseTurn(in); !errors.Is(err, ErrInvalidTurn) {
			t.Errorf("ParseTurn(%q): got error %v", in, err)
		}
	}
}

func TestParseEnums(t *testing.T) {
	for _, b := range []Backend{BackendCoverage, BackendVector} {
		got, err := ParseBackend(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBackend(%q) = %v, %v", b.String(), got, err)
		}
	}
	for _, o := range []Overflow{OverflowError, OverflowFit, OverflowClip} {
		got, err := ParseOverflow(o.String())
		if err != nil || got != o {
			t.Errorf("ParseOverflow(%q) = %v, %v", o.String(), got, err)
		}
	}
	caps := map[string]graphics.LineCapStyle{
		"butt":   graphics.LineCapButt,
		"Round":  graphics.LineCapRound,
		"square": graphics.LineCapSquare,
	}
	for in, want := range caps {
		got, err := ParseCap(in)
		if err != nil || got != want {
			t.Errorf("ParseCap(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseBackend("gpu"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseBackend: got error %v", err)
	}
}
