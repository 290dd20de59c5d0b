package gemv

import (
	"fmt"

	"github.com/samber/lo"
)

// Table is the per-worker row assignment of a benchmark.
// Worker w owns rows [Start[w], Start[w]+Count[w]).
type Table struct {
	Start []int
	Count []int
}

// RowCount returns the number of rows assigned to worker when rows rows are
// split across workers workers: rows/workers, plus one for the first
// rows%workers workers.
func RowCount(rows, workers, worker int) int {
	checkPartition(rows, workers)
	count := rows / workers
	if worker < rows%workers {
		count++
	}
	return count
}

// StartRow returns the first row assigned to worker. It is the prefix sum
// of the counts of workers [0, worker), computed in closed form so that a
// worker's range depends only on (rows, workers, worker).
func StartRow(rows, workers, worker int) int {
	checkPartition(rows, workers)
	base, rem := rows/workers, rows%workers
	return worker*base + min(worker, rem)
}

// Partition computes the assignment of rows rows to workers workers.
//
// Panics if workers < 1 or rows < 0. When workers > rows, the workers with
// index >= rows get no rows.
func Partition(rows, workers int) Table {
	checkPartition(rows, workers)
	t := Table{
		Start: make([]int, workers),
		Count: make([]int, workers),
	}
	for w := range workers {
		t.Start[w] = StartRow(rows, workers, w)
		t.Count[w] = RowCount(rows, workers, w)
	}
	return t
}

func checkPartition(rows, workers int) {
	if workers < 1 {
		panic(fmt.Sprintf("gemv: worker count %d must be positive", workers))
	}
	if rows < 0 {
		panic(fmt.Sprintf("gemv: row count %d must not be negative", rows))
	}
}

// Workers returns the number of workers in the table.
func (t Table) Workers() int {
	return len(t.Count)
}

// Range returns the half-open row range [start, end) of worker.
func (t Table) Range(worker int) (start, end int) {
	start = t.Start[worker]
	return start, start + t.Count[worker]
}

// Rows returns the total number of rows assigned.
func (t Table) Rows() int {
	return lo.Sum(t.Count)
}

// Spread returns the difference between the largest and the smallest
// worker row count. For tables built by Partition it is 0 or 1.
func (t Table) Spread() int {
	if len(t.Count) == 0 {
		return 0
	}
	return lo.Max(t.Count) - lo.Min(t.Count)
}
