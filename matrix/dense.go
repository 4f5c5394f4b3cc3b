// Package matrix: Dense, the concrete row-major Matrix implementation. One
// flat slice backs the whole matrix so kernels can run contiguous fast paths
// over it.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf tags err with the failing Dense method and element position.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense stores a rows×cols matrix in one flat float64 slice, row-major.
// Element (i,j) lives at data[i*c+j]; the slice length is always r*c.
type Dense struct {
	r, c int       // shape: row count and column count
	data []float64 // row-major backing storage, length r*c
}

// NewDense allocates a zeroed rows×cols matrix, rejecting non-positive
// dimensions with ErrInvalidDimensions before touching memory.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// flat returns the backing slice when m is a *Dense.
// Kernels call it to gate their contiguous fast paths.
func flat(m Matrix) ([]float64, bool) {
	d, ok := m.(*Dense)
	if !ok {
		return nil, false
	}

	return d.data, true
}

// indexOf maps (row, col) to the flat offset, or reports ErrOutOfRange tagged
// with the calling method's name.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At reads the element at (row, col) after an indexOf bounds check.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v at (row, col) after an indexOf bounds check.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; the copy shares no storage with the receiver.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	dup := make([]float64, len(m.data))
	copy(dup, m.data)

	return &Dense{r: m.r, c: m.c, data: dup}
}

// String implements fmt.Stringer: one "[a, b, c]" line per row, values in %g
// form, every row terminated with a newline.
// Complexity: O(r*c) for the rendered text.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
