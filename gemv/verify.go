package gemv

import (
	"errors"
	"fmt"
	"unsafe"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// ErrMismatch is returned by Verify when an output element differs from the
// reference product.
var ErrMismatch = errors.New("gemv: output does not match reference")

// Relative tolerances for floating-point element types. Integer types must
// match exactly.
const (
	float32Tolerance = 1e-3
	float64Tolerance = 1e-9
)

// Verify checks c against a float64 reference of a * b computed with gonum.
// The error wraps ErrMismatch and names the first row that differs.
func Verify[T Element](a, b, c []T, rows, cols int) error {
	if len(a) < rows*cols || len(b) < cols || len(c) < rows {
		return fmt.Errorf("gemv: verify %dx%d: buffers too small (a=%d b=%d c=%d)",
			rows, cols, len(a), len(b), len(c))
	}
	if rows == 0 {
		return nil
	}

	want := make([]float64, rows)
	if cols > 0 {
		am := mat.NewDense(rows, cols, toFloat64(a[:rows*cols]))
		bv := mat.NewVecDense(cols, toFloat64(b[:cols]))
		var cv mat.VecDense
		cv.MulVec(am, bv)
		for r := range want {
			want[r] = cv.AtVec(r)
		}
	}

	tol := 0.0
	if isFloat[T]() {
		var zero T
		if unsafe.Sizeof(zero) == 4 {
			tol = float32Tolerance
		} else {
			tol = float64Tolerance
		}
	}

	for r, w := range want {
		got := float64(c[r])
		if tol == 0 {
			if got != w {
				return fmt.Errorf("%w: row %d: got %v, want %v", ErrMismatch, r, got, w)
			}
			continue
		}
		if !scalar.EqualWithinRel(got, w, tol) && !scalar.EqualWithinAbs(got, w, tol) {
			return fmt.Errorf("%w: row %d: got %v, want %v", ErrMismatch, r, got, w)
		}
	}
	return nil
}

func toFloat64[T Element](s []T) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
