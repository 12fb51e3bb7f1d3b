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

// Package primes supplies the prime numbers up to a limit, in increasing
// order.
//
// Sequences are computed with a sieve of Eratosthenes.  A [Cache] keeps
// one text file per limit, so that a sequence is computed only once and
// later requests (including the second pass of a walk, and later runs of
// the program) just read the file.
package primes

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// MaxLimit is the largest limit accepted by [Sieve].
// The sieve needs one bit for every odd number up to the limit,
// i.e. 128MiB at MaxLimit.
const MaxLimit = math.MaxInt32

// ErrLimit is returned for limits outside the range 1, ..., MaxLimit.
var ErrLimit = errors.New("prime limit out of range")

// CheckLimit returns an error wrapping [ErrLimit] if limit cannot be sieved.
func CheckLimit(limit int) error {
	if limit < 1 || limit > MaxLimit {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrLimit, limit, MaxLimit)
	}
	return nil
}

// Sieve returns all primes p <= limit in increasing order.
// For limit 1 the result is empty.
func Sieve(limit int) ([]int, error) {
	if err := CheckLimit(limit); err != nil {
		return nil, err
	}
	if limit < 2 {
		return nil, nil
	}

	// Bit i of composite refers to the odd number 2i+1.
	n := (limit-1)/2 + 1
	composite := make([]uint64, (n+63)/64)
	for i := 1; ; i++ {
		p := 2*i + 1
		if p*p > limit {
			break
		}
		if composite[i>>6]&(1<<(i&63)) != 0 {
			continue
		}
		// odd multiples of p, starting at p², are p apart in index space
		for j := p * p / 2; j < n; j += p {
			composite[j>>6] |= 1 << (j & 63)
		}
	}

	res := make([]int, 0, countBound(limit))
	res = append(res, 2)
	for i := 1; i < n; i++ {
		if composite[i>>6]&(1<<(i&63)) == 0 {
			res = append(res, 2*i+1)
		}
	}
	return res, nil
}

// countBound returns an upper bound for the number of primes <= x,
// using the Rosser-Schoenfeld bound π(x) < 1.25506 x/ln x.
func countBound(x int) int {
	if x < 17 {
		return 7
	}
	xf := float64(x)
	return int(1.25506*xf/math.Log(xf)) + 1
}

// Memory is a prime source which sieves on every request and never
// touches the file system.
type Memory struct{}

// Primes returns the primes up to limit in increasing order.
// An invalid limit is reported as the only element of the sequence.
func (Memory) Primes(limit int) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		ps, err := Sieve(limit)
		if err != nil {
			yield(0, err)
			return
		}
		for _, p := range ps {
			if !yield(p, nil) {
				return
			}
		}
	}
}
