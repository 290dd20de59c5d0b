package gemv

// Rows computes the product rows [start, start+count) of a * b into c.
//
// Parameters:
//   - a: matrix in row-major order with cols columns
//   - b: input vector of length cols
//   - c: output vector; only c[start:start+count] is written
//   - cols: number of columns of a
//   - start, count: the row range of one worker
//
// Each c[r] is reset to zero and then accumulates a[r*cols+k] * b[k] for
// every k, so previous contents of c never leak into the result. A zero
// count writes nothing.
//
// Panics if:
//   - len(a) < (start+count) * cols
//   - len(b) < cols
//   - len(c) < start+count
func Rows[T Element](a, b, c []T, cols, start, count int) {
	if count <= 0 {
		return
	}
	end := start + count
	if len(a) < end*cols {
		panic("matrix slice too small")
	}
	if len(b) < cols {
		panic("vector slice too small")
	}
	if len(c) < end {
		panic("result slice too small")
	}

	b = b[:cols]
	for r := start; r < end; r++ {
		row := a[r*cols : (r+1)*cols]
		var acc T
		for k, v := range row {
			acc += v * b[k]
		}
		c[r] = acc
	}
}

// Gemv computes c = a * b for a rows x cols matrix on the calling goroutine.
// It is the single-worker form of the benchmark kernel.
//
// Example:
//
//	// 2x2 matrix:
//	//   [1 2]
//	//   [3 4]
//	a := []int32{1, 2, 3, 4}
//	b := []int32{5, 6}
//	c := make([]int32, 2)
//	Gemv(a, b, c, 2, 2)  // c = [17, 39]
func Gemv[T Element](a, b, c []T, rows, cols int) {
	Rows(a, b, c, cols, 0, rows)
}
