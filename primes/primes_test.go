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
	"bytes"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func collect(t *testing.T, seq iter.Seq2[int, error]) []int {
	t.Helper()
	var res []int
	for p, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		res = append(res, p)
	}
	return res
}

func TestSieveSmall(t *testing.T) {
	for limit := 1; limit <= 500; limit++ {
		var want []int
		for n := 2; n <= limit; n++ {
			if isPrime(n) {
				want = append(want, n)
			}
		}

		got, err := Sieve(limit)
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Fatalf("limit %d (-want +got):\n%s", limit, d)
		}
	}
}

func TestSieveCounts(t *testing.T) {
	cases := []struct {
		limit int
		count int
		last  int
	}{
		{2, 1, 2},
		{10, 4, 7},
		{100, 25, 97},
		{1000, 168, 997},
		{7919, 1000, 7919},
		{1_000_000, 78498, 999983},
	}
	for _, c := range cases {
		ps, err := Sieve(c.limit)
		if err != nil {
			t.Fatal(err)
		}
		if len(ps) != c.count {
			t.Errorf("π(%d) = %d, want %d", c.limit, len(ps), c.count)
			continue
		}
		if ps[len(ps)-1] != c.last {
			t.Errorf("largest prime <= %d is %d, want %d", c.limit, ps[len(ps)-1], c.last)
		}
		if len(ps) > countBound(c.limit) {
			t.Errorf("count bound %d too small for %d", countBound(c.limit), c.limit)
		}
	}
}

func TestSieveOrdered(t *testing.T) {
	ps, err := Sieve(200_000)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range ps {
		if i > 0 && p <= ps[i-1] {
			t.Fatalf("not strictly increasing at %d: %d, %d", i, ps[i-1], p)
		}
		if p > 200_000 {
			t.Fatalf("%d exceeds the limit", p)
		}
	}
	for _, i := range []int{0, 1, 17, 1000, len(ps) - 1} {
		if !isPrime(ps[i]) {
			t.Errorf("%d is not prime", ps[i])
		}
	}
}

func TestSieveLimit(t *testing.T) {
	for _, limit := range []int{0, -5, MaxLimit + 1} {
		_, err := Sieve(limit)
		if !errors.Is(err, ErrLimit) {
			t.Errorf("limit %d: got %v, want ErrLimit", limit, err)
		}
	}
	ps, err := Sieve(1)
	if err != nil || len(ps) != 0 {
		t.Errorf("limit 1: got %v, %v", ps, err)
	}
}

func TestWriteRead(t *testing.T) {
	ps := []int{2, 3, 5, 7, 11}
	buf := &bytes.Buffer{}
	if err := Write(buf, ps); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "2\n3\n5\n7\n11\n" {
		t.Errorf("unexpected file contents %q", buf.String())
	}

	got := collect(t, Read(buf, "mem"))
	if d := cmp.Diff(ps, got); d != "" {
		t.Error(d)
	}
}

func TestReadMalformed(t *testing.T) {
	in := strings.NewReader("2\n3\nfive\n7\n")
	var got []int
	var err error
	for p, e := range Read(in, "broken.txt") {
		if e != nil {
			err = e
			break
		}
		got = append(got, p)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want *ParseError", err)
	}
	if perr.Line != 3 || perr.Path != "broken.txt" || perr.Text != "five" {
		t.Errorf("wrong error details: %+v", perr)
	}
	if d := cmp.Diff([]int{2, 3}, got); d != "" {
		t.Error(d)
	}
}

func TestReadStrict(t *testing.T) {
	got, err := drain(Read(strings.NewReader("2\r\n3\r\n"), "crlf.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]int{2, 3}, got); d != "" {
		t.Error(d)
	}

	for _, line := range []string{" 7", "7 ", "\t7", "+7x"} {
		_, err := drain(Read(strings.NewReader("2\n"+line+"\n"), "padded.txt"))
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Line != 2 {
			t.Errorf("line %q: got %v, want parse error on line 2", line, err)
		}
	}
}

func drain(seq iter.Seq2[int, error]) ([]int, error) {
	var ps []int
	for p, err := range seq {
		if err != nil {
			return ps, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func TestCacheCreatesFile(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, nil)

	got := collect(t, c.Primes(100))
	want, _ := Sieve(100)
	if d := cmp.Diff(want, got); d != "" {
		t.Fatal(d)
	}

	fname := filepath.Join(dir, "primes_100.txt")
	if c.Path(100) != fname {
		t.Errorf("Path() = %q, want %q", c.Path(100), fname)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "2\n3\n5\n7\n") || !strings.HasSuffix(string(data), "\n97\n") {
		t.Errorf("unexpected cache file contents %q", data)
	}

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly one file, found %d", len(entries))
	}
}

func TestCacheIsReused(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, nil)

	// A pre-existing file is trusted and not recomputed.
	fname := c.Path(50)
	if err := os.WriteFile(fname, []byte("2\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	created, err := c.Ensure(50)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("existing cache file was replaced")
	}
	if d := cmp.Diff([]int{2, 3}, collect(t, c.Primes(50))); d != "" {
		t.Error(d)
	}
}

func TestCacheIdempotent(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	a := collect(t, NewCache(dirA, nil).Primes(10_000))
	b := collect(t, NewCache(dirA, nil).Primes(10_000)) // reads the file
	c := collect(t, NewCache(dirB, nil).Primes(10_000)) // computes afresh

	if d := cmp.Diff(a, b); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(a, c); d != "" {
		t.Error(d)
	}

	dataA, err := os.ReadFile(filepath.Join(dirA, "primes_10000.txt"))
	if err != nil {
		t.Fatal(err)
	}
	dataB, err := os.ReadFile(filepath.Join(dirB, "primes_10000.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dataA, dataB) {
		t.Error("cache files differ between runs")
	}
}

func TestCacheCorrupt(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, nil)
	if err := os.WriteFile(c.Path(20), []byte("2\n3\n\n7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var err error
	n := 0
	for _, e := range c.Primes(20) {
		if e != nil {
			err = e
			break
		}
		n++
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Line != 3 {
		t.Errorf("got %v after %d values, want parse error on line 3", err, n)
	}
}

func TestCacheBadLimit(t *testing.T) {
	c := NewCache(t.TempDir(), nil)
	for _, err := range c.Primes(0) {
		if !errors.Is(err, ErrLimit) {
			t.Errorf("got %v, want ErrLimit", err)
		}
	}
}

func TestCacheEarlyStop(t *testing.T) {
	c := NewCache(t.TempDir(), nil)
	var got []int
	for p, err := range c.Primes(1000) {
		if err != nil {
			t.Fatal(err)
		}
		if p > 10 {
			break
		}
		got = append(got, p)
	}
	if d := cmp.Diff([]int{2, 3, 5, 7}, got); d != "" {
		t.Error(d)
	}
}

func TestMemory(t *testing.T) {
	got := collect(t, Memory{}.Primes(30))
	want := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestCacheDirUnusable(t *testing.T) {
	// the cache directory is a regular file
	dir := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(dir, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCache(dir, nil)

	created, err := c.Ensure(100)
	var pathErr *fs.PathError
	if created || !errors.As(err, &pathErr) {
		t.Errorf("Ensure: got %t, %v, want a path error", created, err)
	}

	got, err := drain(c.Primes(100))
	if len(got) != 0 {
		t.Errorf("got %d values from an unusable cache", len(got))
	}
	if !errors.As(err, &pathErr) {
		t.Errorf("Primes: got %v, want a path error", err)
	}
}
