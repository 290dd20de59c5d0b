package main

import (
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-pimbench/gemv"
	"github.com/ajroetker/go-pimbench/region"
)

// writeReport prints the timings collected by timer for a finished run.
// Task timings include the warmup repetitions; the region of interest
// covers the timed ones only.
func writeReport(w io.Writer, table gemv.Table, reps int, timer *region.Timer) {
	title := cases.Title(language.English, cases.NoLower)

	roi := lo.Sum(timer.Regions())
	fmt.Fprintf(w, "%s: %d repetitions in %v", title.String(region.ROIName), reps, roi)
	if reps > 0 {
		fmt.Fprintf(w, " (%v per repetition)", roi/time.Duration(reps))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Rows per worker: %d to %d\n", lo.Min(table.Count), lo.Max(table.Count))

	stats := lo.Times(timer.Workers(), timer.Task)
	fmt.Fprintf(w, "%s per worker:\n", title.String(region.TaskName))
	for worker, s := range stats {
		fmt.Fprintf(w, "  worker %3d: rows %8d  tasks %3d  mean %12v  max %12v\n",
			worker, table.Count[worker], s.Count, s.Mean(), s.Max)
	}

	if len(stats) > 0 {
		slowest := lo.MaxBy(stats, func(a, b region.TaskStats) bool { return a.Max > b.Max })
		fmt.Fprintf(w, "Slowest task: %v\n", slowest.Max)
	}
}
