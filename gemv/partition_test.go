package gemv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		workers   int
		wantStart []int
		wantCount []int
	}{
		{
			name:      "even split",
			rows:      8,
			workers:   4,
			wantStart: []int{0, 2, 4, 6},
			wantCount: []int{2, 2, 2, 2},
		},
		{
			name:      "remainder goes to first workers",
			rows:      10,
			workers:   4,
			wantStart: []int{0, 3, 6, 8},
			wantCount: []int{3, 3, 2, 2},
		},
		{
			name:      "single worker",
			rows:      7,
			workers:   1,
			wantStart: []int{0},
			wantCount: []int{7},
		},
		{
			name:      "more workers than rows",
			rows:      2,
			workers:   4,
			wantStart: []int{0, 1, 2, 2},
			wantCount: []int{1, 1, 0, 0},
		},
		{
			name:      "no rows",
			rows:      0,
			workers:   3,
			wantStart: []int{0, 0, 0},
			wantCount: []int{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.rows, tt.workers)
			if diff := cmp.Diff(tt.wantStart, got.Start); diff != "" {
				t.Errorf("Partition(%d, %d).Start mismatch (-want +got):\n%s", tt.rows, tt.workers, diff)
			}
			if diff := cmp.Diff(tt.wantCount, got.Count); diff != "" {
				t.Errorf("Partition(%d, %d).Count mismatch (-want +got):\n%s", tt.rows, tt.workers, diff)
			}
		})
	}
}

func TestPartitionInvariants(t *testing.T) {
	for rows := 0; rows <= 67; rows++ {
		for workers := 1; workers <= 17; workers++ {
			table := Partition(rows, workers)

			if table.Workers() != workers {
				t.Fatalf("Partition(%d, %d): %d workers", rows, workers, table.Workers())
			}
			if table.Rows() != rows {
				t.Errorf("Partition(%d, %d): counts sum to %d", rows, workers, table.Rows())
			}
			if s := table.Spread(); s > 1 {
				t.Errorf("Partition(%d, %d): spread %d > 1", rows, workers, s)
			}
			if table.Start[0] != 0 {
				t.Errorf("Partition(%d, %d): Start[0] = %d", rows, workers, table.Start[0])
			}

			prefix := 0
			for w := range workers {
				if table.Start[w] != prefix {
					t.Errorf("Partition(%d, %d): Start[%d] = %d, want prefix sum %d",
						rows, workers, w, table.Start[w], prefix)
				}
				if w+1 < workers && table.Start[w]+table.Count[w] != table.Start[w+1] {
					t.Errorf("Partition(%d, %d): worker %d ends at %d, next starts at %d",
						rows, workers, w, table.Start[w]+table.Count[w], table.Start[w+1])
				}
				if w >= rows && table.Count[w] != 0 {
					t.Errorf("Partition(%d, %d): worker %d has %d rows, want 0", rows, workers, w, table.Count[w])
				}
				prefix += table.Count[w]
			}
		}
	}
}

func TestPartitionOrderIndependent(t *testing.T) {
	// Computing a single worker's range must agree with the full table.
	table := Partition(1001, 7)
	for w := 6; w >= 0; w-- {
		start, end := table.Range(w)
		if got := StartRow(1001, 7, w); got != start {
			t.Errorf("StartRow(1001, 7, %d) = %d, want %d", w, got, start)
		}
		if got := RowCount(1001, 7, w); got != end-start {
			t.Errorf("RowCount(1001, 7, %d) = %d, want %d", w, got, end-start)
		}
	}
}

func TestPartitionPanics(t *testing.T) {
	t.Run("zero workers", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic for zero workers")
			}
		}()
		Partition(10, 0)
	})

	t.Run("negative rows", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic for negative rows")
			}
		}()
		Partition(-1, 2)
	})
}

func TestTableSpreadEmpty(t *testing.T) {
	var table Table
	if table.Spread() != 0 {
		t.Errorf("Spread() of empty table = %d, want 0", table.Spread())
	}
}
