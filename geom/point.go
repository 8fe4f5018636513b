// SPDX-License-Identifier: MIT

package geom

import "fmt"

// Point is an immutable coordinate pair drawn from [0,1)².
// A Point has no identity of its own; it is identified by its index in a PointSet.
type Point struct {
	X float64
	Y float64
}

// QDistance returns the squared Euclidean distance between p and q.
// The result lies in [0,2) for points of the unit square.
// Complexity: O(1).
func (p Point) QDistance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y

	return dx*dx + dy*dy
}

// String renders the point with four decimals, e.g. "(0.3730, 0.6681)".
func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}
