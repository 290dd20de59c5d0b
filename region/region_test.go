// Copyright 2026 go-pimbench Authors. SPDX-License-Identifier: Apache-2.0

package region

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs markers as strings.
type recorder struct {
	name string
	log  *[]string
}

func (r recorder) RegionBegin()         { *r.log = append(*r.log, r.name+" roi begin") }
func (r recorder) RegionEnd()           { *r.log = append(*r.log, r.name+" roi end") }
func (r recorder) TaskBegin(worker int) { *r.log = append(*r.log, fmt.Sprintf("%s task %d begin", r.name, worker)) }
func (r recorder) TaskEnd(worker int)   { *r.log = append(*r.log, fmt.Sprintf("%s task %d end", r.name, worker)) }

func TestMultiNesting(t *testing.T) {
	var log []string
	h := Multi(recorder{"a", &log}, recorder{"b", &log})

	h.RegionBegin()
	h.TaskBegin(3)
	h.TaskEnd(3)
	h.RegionEnd()

	want := []string{
		"a roi begin",
		"b roi begin",
		"a task 3 begin",
		"b task 3 begin",
		"b task 3 end",
		"a task 3 end",
		"b roi end",
		"a roi end",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("marker order mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiDegenerate(t *testing.T) {
	assert.Equal(t, Nop{}, Multi())

	var log []string
	single := recorder{"only", &log}
	assert.Equal(t, Hooks(single), Multi(single))
}

func TestNop(t *testing.T) {
	var h Hooks = Nop{}
	h.RegionBegin()
	h.TaskBegin(0)
	h.TaskEnd(0)
	h.RegionEnd()
}

// fakeClock advances by step on every reading.
type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

func TestTimer(t *testing.T) {
	timer := NewTimer(2)
	clock := &fakeClock{step: time.Millisecond}
	timer.now = clock.now

	timer.RegionBegin()
	timer.TaskBegin(0)
	timer.TaskEnd(0) // 1ms
	timer.TaskBegin(0)
	timer.TaskEnd(0) // 1ms
	timer.RegionEnd()

	require.Len(t, timer.Regions(), 1)
	assert.Equal(t, 5*time.Millisecond, timer.Regions()[0])
	assert.Equal(t, 2, timer.Workers())

	s := timer.Task(0)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 2*time.Millisecond, s.Total)
	assert.Equal(t, time.Millisecond, s.Max)
	assert.Equal(t, time.Millisecond, s.Mean())

	assert.Equal(t, TaskStats{}, timer.Task(1))
	assert.Zero(t, timer.Task(1).Mean())
}

func TestTimerConcurrentWorkers(t *testing.T) {
	const workers = 8
	timer := NewTimer(workers)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Go(func() {
			for range 10 {
				timer.TaskBegin(w)
				timer.TaskEnd(w)
			}
		})
	}
	wg.Wait()

	for w := range workers {
		assert.Equal(t, 10, timer.Task(w).Count, "worker %d", w)
	}
}

func TestTimerWorkerOutOfRange(t *testing.T) {
	timer := NewTimer(1)
	assert.Panics(t, func() { timer.TaskBegin(1) })
}

func TestTrace(t *testing.T) {
	// Without an active trace the regions are inert but must still pair up.
	tr := NewTrace(context.Background(), 2)
	tr.RegionBegin()
	tr.TaskBegin(1)
	tr.TaskEnd(1)
	tr.TaskEnd(1) // unmatched end is ignored
	tr.RegionEnd()
	tr.RegionEnd()

	assert.Nil(t, tr.roi)
	assert.Nil(t, tr.tasks[1])
}
