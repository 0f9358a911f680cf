// Package mazegen builds reproducible maze layouts for the solvers.
//
// Two generators are provided:
//
//   - Random scatters walls independently with a fixed probability. The
//     result may have no route from start to goal.
//   - Carved runs a randomized depth-first backtracker over the cells with
//     even coordinates, producing a perfect maze where every free cell is
//     reachable from every other.
//
// Both place the start at (0,0) and the goal at (rows-1, cols-1) and force
// those cells Free.
//
// Randomness:
//
//   - WithSeed(seed) gives a private, reproducible stream.
//   - WithRand(r) shares a caller-owned *rand.Rand.
//   - With neither, a fixed default seed is used, so calls are deterministic.
//
// Option constructors panic on meaningless input (nil RNG, density outside
// [0,1)). Generators themselves never panic; they return ErrTooSmall.
package mazegen
