// Command export writes the segments of all test case walks to JSON, for
// comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/primewalk"
	"seehuhn.de/go/primewalk/primes"
	"seehuhn.de/go/primewalk/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/walks.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Limit    int           `json:"limit"`
	Heading  float64       `json:"heading"`
	Turn     float64       `json:"turn"`
	Bounds   [4]float64    `json:"bounds"`
	Segments []jsonSegment `json:"segments"`
}

type jsonSegment struct {
	From  [2]float64 `json:"from"`
	To    [2]float64 `json:"to"`
	Color string     `json:"color"`
}

// recorder is a primewalk.Sink which keeps all segments.
type recorder struct {
	segs []jsonSegment
}

func (r *recorder) Segment(a, b vec.Vec2, c primewalk.Color) {
	r.segs = append(r.segs, jsonSegment{
		From:  [2]float64{a.X, a.Y},
		To:    [2]float64{b.X, b.Y},
		Color: c.String(),
	})
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	cfg := tc.Config()
	src := primes.Memory{}
	m, err := primewalk.Measure(cfg, src)
	if err != nil {
		return jsonTestCase{}, err
	}
	rec := &recorder{}
	if err := primewalk.Draw(cfg, src, m, rec); err != nil {
		return jsonTestCase{}, err
	}

	b := m.Bounds
	return jsonTestCase{
		Name:     category + "_" + tc.Name,
		Limit:    tc.Limit,
		Heading:  tc.Heading,
		Turn:     tc.Turn,
		Bounds:   [4]float64{b.LLx, b.LLy, b.URx, b.URy},
		Segments: rec.segs,
	}, nil
}
