// Package primewalk draws walks along the prime numbers.
//
// A walker starts at the origin, facing in a given direction.  For every
// prime p it moves forward by the distance from the previous prime to p
// (the walk starts at 1) and then turns by a fixed angle.  The resulting
// path is drawn as a sequence of straight segments, each in a different
// color.
//
// Rendering takes two passes over the primes.  The first pass, [Measure],
// only records the bounding box of the walk.  The second pass, [Draw],
// replays the walk translated into the positive quadrant and sends every
// segment to a [Sink], typically a [Canvas].  [Render] combines both.
package primewalk

//go:generate go run ./testcases/export
