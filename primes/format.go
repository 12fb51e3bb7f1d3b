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

package primes

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// ParseError reports a line of a prime file which is not a decimal integer.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid entry %q: %v", e.Path, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Write stores the numbers in ps, one decimal integer per line.
func Write(w io.Writer, ps []int) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	var buf []byte
	for _, p := range ps {
		buf = strconv.AppendInt(buf[:0], int64(p), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read returns the numbers stored in r by [Write].
// The name is used in error messages.  Each line must hold exactly one
// decimal integer; only a trailing carriage return is ignored.  Reading
// stops at the first malformed line, which is reported as a [*ParseError].
func Read(r io.Reader, name string) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		sc := bufio.NewScanner(r)
		ln := 0
		for sc.Scan() {
			ln++
			text := sc.Text()
			p, err := strconv.Atoi(strings.TrimSuffix(text, "\r"))
			if err != nil {
				yield(0, &ParseError{Path: name, Line: ln, Text: text, Err: err})
				return
			}
			if !yield(p, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(0, fmt.Errorf("%s:%d: %w", name, ln, err))
		}
	}
}
