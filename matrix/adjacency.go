// SPDX-License-Identifier: MIT
// Package: geograph/matrix
//
// adjacency.go - Adjacency, an n×n atomic weight matrix.
//
// Contract:
//   - NewAdjacency(n) accepts n ≥ 0; n == 0 is a valid empty matrix.
//   - Checked accessors (At, Row, SetSymmetric) validate and return sentinels.
//   - Unchecked accessors (Load, Store, Claim, CountLower) require 0 ≤ i,j < n
//     and are meant for hot loops that already own the indices.
//
// Concurrency:
//   - Every single-cell read or write is atomic.
//   - Nothing here spans two cells atomically.

package matrix

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// Adjacency is a square, row-major matrix of float64 edge weights.
// data holds n*n cells; cell (i,j) lives at data[i*n+j].
type Adjacency struct {
	n    int
	data []atomic.Uint64
}

// NewAdjacency creates an n×n matrix with every cell 0.0 (no edges).
// Complexity: O(n²) time and memory.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacency(%d): %w", n, ErrBadShape)
	}

	// The zero uint64 is the bit pattern of +0.0, so no initialization pass is needed.
	return &Adjacency{n: n, data: make([]atomic.Uint64, n*n)}, nil
}

// N returns the side length of the matrix.
func (m *Adjacency) N() int {
	return m.n
}

func (m *Adjacency) check(method string, i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}

	return nil
}

// At returns the weight stored at (i,j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Adjacency) At(i, j int) (float64, error) {
	if err := m.check("At", i, j); err != nil {
		return 0, err
	}

	return m.Load(i, j), nil
}

// Load atomically reads cell (i,j). Precondition: indices in range.
func (m *Adjacency) Load(i, j int) float64 {
	return math.Float64frombits(m.data[i*m.n+j].Load())
}

// Store atomically writes v into cell (i,j). Precondition: indices in range.
// Store does not touch the mirror cell.
func (m *Adjacency) Store(i, j int, v float64) {
	m.data[i*m.n+j].Store(math.Float64bits(v))
}

// Claim atomically replaces an empty cell (i,j) with v.
// It reports false if the cell already held an edge; in that case nothing is written.
// Precondition: indices in range.
func (m *Adjacency) Claim(i, j int, v float64) bool {
	return m.data[i*m.n+j].CompareAndSwap(0, math.Float64bits(v))
}

// SetSymmetric writes w into both (i,j) and (j,i).
//
// Steps:
//  1. Bounds-check both indices.
//  2. Reject i == j (ErrDiagonal) unless w == 0.
//  3. Reject negative, NaN and infinite weights (ErrInvalidWeight).
//  4. Store (i,j) then (j,i).
//
// The two stores are individually atomic but not jointly; concurrent readers may
// briefly see one side only.
func (m *Adjacency) SetSymmetric(i, j int, w float64) error {
	if err := m.check("SetSymmetric", i, j); err != nil {
		return err
	}
	if i == j && w != 0 {
		return fmt.Errorf("Adjacency.SetSymmetric(%d,%d): %w", i, j, ErrDiagonal)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("Adjacency.SetSymmetric(%d,%d): w=%g: %w", i, j, w, ErrInvalidWeight)
	}
	m.Store(i, j, w)
	m.Store(j, i, w)

	return nil
}

// CountLower returns how many cells (i,j) with j < i hold an edge.
// Summing CountLower over all rows counts every unordered edge once.
// Precondition: 0 ≤ i < n.
// Complexity: O(i).
func (m *Adjacency) CountLower(i int) int {
	row := m.data[i*m.n : i*m.n+i]
	count := 0
	for k := range row {
		if math.Float64frombits(row[k].Load()) > 0.0 {
			count++
		}
	}

	return count
}

// Row returns a snapshot copy of row i.
// Complexity: O(n).
func (m *Adjacency) Row(i int) ([]float64, error) {
	if err := m.check("Row", i, 0); err != nil {
		return nil, err
	}
	out := make([]float64, m.n)
	for j := range out {
		out[j] = m.Load(i, j)
	}

	return out, nil
}

// Snapshot returns a copy of the whole matrix as n rows.
// Each cell is read atomically; the snapshot as a whole is not a consistent cut
// if writers are active.
// Complexity: O(n²).
func (m *Adjacency) Snapshot() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = make([]float64, m.n)
		for j := range out[i] {
			out[i][j] = m.Load(i, j)
		}
	}

	return out
}

// String renders the matrix row-major with one decimal per cell, each cell
// followed by two spaces and each row by a newline. Diagnostic only.
// Complexity: O(n²).
func (m *Adjacency) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			fmt.Fprintf(&sb, "%.1f  ", m.Load(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
