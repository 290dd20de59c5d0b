// Copyright 2026 go-pimbench Authors. SPDX-License-Identifier: Apache-2.0

package region

import (
	"time"
)

// TaskStats accumulates the PIM function durations of one worker.
type TaskStats struct {
	Count int
	Total time.Duration
	Max   time.Duration
}

// Mean returns the average task duration, or 0 if no task ran.
func (s TaskStats) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// timerSlot is padded to a cache line so concurrent workers do not share one.
type timerSlot struct {
	start time.Time
	stats TaskStats
	_     [64]byte
}

// Timer is a Hooks implementation that measures wall-clock time.
//
// Every completed region of interest is appended to Regions. Task timings
// are kept per worker in fixed slots, so tasks of different workers never
// touch the same memory. Read the results only after the benchmark's
// fork-join has completed.
type Timer struct {
	now      func() time.Time
	roiStart time.Time
	regions  []time.Duration
	slots    []timerSlot
}

// NewTimer returns a Timer with slots for workers workers.
// A TaskBegin for a worker index outside [0, workers) panics.
func NewTimer(workers int) *Timer {
	return &Timer{
		now:   time.Now,
		slots: make([]timerSlot, workers),
	}
}

func (t *Timer) RegionBegin() {
	t.roiStart = t.now()
}

func (t *Timer) RegionEnd() {
	t.regions = append(t.regions, t.now().Sub(t.roiStart))
}

func (t *Timer) TaskBegin(worker int) {
	t.slots[worker].start = t.now()
}

func (t *Timer) TaskEnd(worker int) {
	s := &t.slots[worker]
	d := t.now().Sub(s.start)
	s.stats.Count++
	s.stats.Total += d
	s.stats.Max = max(s.stats.Max, d)
}

// Regions returns the duration of each completed region of interest, in
// the order they ended.
func (t *Timer) Regions() []time.Duration {
	return t.regions
}

// Workers returns the number of task slots.
func (t *Timer) Workers() int {
	return len(t.slots)
}

// Task returns the accumulated task timings of worker.
func (t *Timer) Task(worker int) TaskStats {
	return t.slots[worker].stats
}
