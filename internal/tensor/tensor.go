// Package tensor implements the fixed-shape float32 containers used by the
// inference runtime.
//
// Every container is allocated once with a statically known shape and is
// never resized afterwards. All per-sample operations write into
// caller-provided destination slices so the audio hot path performs no heap
// allocation.
package tensor

import "fmt"

// Vector is a dense float32 vector with a fixed length.
type Vector []float32

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// Zero sets every element to 0.
func (v Vector) Zero() {
	for i := range v {
		v[i] = 0
	}
}

// Fill sets every element to x.
func (v Vector) Fill(x float32) {
	for i := range v {
		v[i] = x
	}
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	clone := make(Vector, len(v))
	copy(clone, v)
	return clone
}

// Shape returns the vector's shape.
func (v Vector) Shape() Shape {
	return Shape{len(v)}
}

// Matrix is a dense rows×cols float32 matrix in row-major layout.
//
// The backing slice is allocated at construction and its dimensions never
// change for the lifetime of the matrix. Data exposes the backing slice so
// callers that own the matrix (randomization, weight loading) can overwrite
// elements in place.
type Matrix struct {
	rows int
	cols int
	data []float32
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	shape := Shape{rows, cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid matrix shape: %w", err)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns the matrix's shape as {rows, cols}.
func (m *Matrix) Shape() Shape {
	return Shape{m.rows, m.cols}
}

// Data returns the row-major backing slice.
func (m *Matrix) Data() []float32 {
	return m.data
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float32 {
	return m.data[i*m.cols+j]
}

// Set stores x at row i, column j.
func (m *Matrix) Set(i, j int, x float32) {
	m.data[i*m.cols+j] = x
}

// MulVec computes dst = M·x, overwriting dst.
//
// len(x) must equal Cols and len(dst) must equal Rows; both are fixed at
// model construction, so the hot path does not re-check them.
func (m *Matrix) MulVec(dst, x []float32) {
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		var acc float32
		for j, w := range row {
			acc += w * x[j]
		}
		dst[i] = acc
	}
}

// MulVecAdd computes dst += M·x.
func (m *Matrix) MulVecAdd(dst, x []float32) {
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		var acc float32
		for j, w := range row {
			acc += w * x[j]
		}
		dst[i] += acc
	}
}
