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

// Command genpdf generates reference images for the walk tests.
// It writes every test case as a PDF file and renders it to PNG using
// Ghostscript, next to the PNG produced by our own rasteriser.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/primewalk"
	"seehuhn.de/go/primewalk/imageio"
	"seehuhn.de/go/primewalk/pdfout"
	"seehuhn.de/go/primewalk/primes"
	"seehuhn.de/go/primewalk/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0o755); err != nil {
		panic(err)
	}

	src := primes.Memory{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			refPath := filepath.Join(refDir, name+"_gs.png")
			ownPath := filepath.Join(refDir, name+".png")

			cfg := tc.Config()
			if _, err := pdfout.Render(pdfPath, cfg, src); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, refPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			res, err := primewalk.Render(cfg, src, nil)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := imageio.Save(ownPath, res.Image, imageio.PNG); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 1 point = 1 pixel
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
