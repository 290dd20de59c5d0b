// Copyright 2026 go-pimbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gemv implements a statically partitioned matrix-vector product
// benchmark for processing-in-memory simulation.
//
// # Matrix-Vector Product
//
// The benchmark computes C = A * B where:
//   - A is a matrix of shape [M, N] in row-major order
//   - B is a vector of length N
//   - C is a vector of length M
//
// Each output element C[r] is the dot product of row r of A with B.
//
// # Work Assignment
//
// The M rows are split across T workers by Partition. Every worker gets
// M/T rows and the first M%T workers get one more, so no two workers
// differ by more than one row. Worker w owns the contiguous rows
// [Start[w], Start[w]+Count[w]) and writes only those slots of C, so the
// workers of one repetition need no synchronization beyond the final join.
//
// # Benchmark Phases
//
// A Benchmark runs Config.Warmup untimed repetitions, then Config.Reps
// repetitions inside the region of interest. Every worker task of every
// repetition is bracketed by PIM function markers. Markers are delivered to
// a region.Hooks, see package region.
//
// # Example Usage
//
//	bm, err := gemv.New[uint32](gemv.Config{
//	    Rows: 1024, Cols: 1024, Warmup: 1, Reps: 3, Workers: 4,
//	})
//	if err != nil {
//	    return err
//	}
//	defer bm.Close()
//
//	bm.Run()
//	if err := bm.Verify(); err != nil {
//	    return err
//	}
package gemv
