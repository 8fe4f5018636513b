// SPDX-License-Identifier: MIT

package geom

// splitmix64 constants (Steele, Lea, Flood 2014).
const (
	golden = 0x9E3779B97F4A7C15
	mixA   = 0xBF58476D1CE4E5B9
	mixB   = 0x94D049BB133111EB
)

// DeriveSeed mixes a master seed with a stream number and returns a seed for an
// independent generator. Equal inputs always give equal outputs; neighbouring
// streams give uncorrelated seeds.
// Complexity: O(1).
func DeriveSeed(master int64, stream uint64) int64 {
	z := uint64(master) + golden*(stream+1)
	z = (z ^ (z >> 30)) * mixA
	z = (z ^ (z >> 27)) * mixB
	z ^= z >> 31

	return int64(z)
}
