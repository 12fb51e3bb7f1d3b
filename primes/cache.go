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
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/primewalk/internal/logger"
)

// Cache stores prime sequences as text files, one file per limit.
//
// Files are written once and never modified.  An existing file is trusted
// without checking it against the sieve.
type Cache struct {
	// Dir is the directory holding the files.  The empty string
	// means the current working directory.
	Dir string

	// Log receives progress messages.  Nil discards them.
	Log logrus.FieldLogger
}

// NewCache returns a cache which keeps its files in dir.
func NewCache(dir string, log logrus.FieldLogger) *Cache {
	return &Cache{Dir: dir, Log: log}
}

// Path returns the name of the file holding the primes up to limit.
func (c *Cache) Path(limit int) string {
	return filepath.Join(c.dir(), fmt.Sprintf("primes_%d.txt", limit))
}

func (c *Cache) dir() string {
	if c.Dir == "" {
		return "."
	}
	return c.Dir
}

// Ensure makes sure that the file for the given limit exists,
// computing and writing it if necessary.  The return value created
// indicates whether a new file was written.
func (c *Cache) Ensure(limit int) (created bool, err error) {
	if err := CheckLimit(limit); err != nil {
		return false, err
	}

	fname := c.Path(limit)
	_, err = os.Stat(fname)
	if err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking prime cache: %w", err)
	}

	log := logger.OrDiscard(c.Log).WithFields(logrus.Fields{
		"limit": limit,
		"file":  fname,
	})
	log.Info("prime cache missing, creating it")
	start := time.Now()

	ps, err := Sieve(limit)
	if err != nil {
		return false, err
	}
	if err := writeFileAtomic(fname, ps); err != nil {
		return false, fmt.Errorf("writing prime cache: %w", err)
	}

	log.WithFields(logrus.Fields{
		"count":   len(ps),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("prime cache written")
	return true, nil
}

// Primes returns the primes up to limit in increasing order, reading them
// from the cache file.  The file is created on first use.
//
// Errors (an invalid limit, I/O errors, and malformed lines in the file)
// are reported as the last element of the sequence.  Every call
// re-opens the file, so the sequence can be iterated more than once.
func (c *Cache) Primes(limit int) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if _, err := c.Ensure(limit); err != nil {
			yield(0, err)
			return
		}

		fname := c.Path(limit)
		fd, err := os.Open(fname)
		if err != nil {
			yield(0, err)
			return
		}
		defer fd.Close()

		for p, err := range Read(fd, fname) {
			if !yield(p, err) || err != nil {
				return
			}
		}
	}
}

// writeFileAtomic writes ps to a temporary file in the target directory
// and renames it into place, so that no partial file is ever visible
// under the final name.
func writeFileAtomic(fname string, ps []int) (err error) {
	dir := filepath.Dir(fname)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".primes-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Write(tmp, ps); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fname)
}
