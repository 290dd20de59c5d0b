// Copyright 2026 go-pimbench Authors. SPDX-License-Identifier: Apache-2.0

package region

import (
	"context"
	"runtime/trace"
)

// Trace is a Hooks implementation that emits runtime/trace regions named
// ROIName and TaskName. The regions show up in `go tool trace` whenever an
// execution trace is being collected and cost almost nothing otherwise.
type Trace struct {
	ctx   context.Context
	roi   *trace.Region
	tasks []*trace.Region
}

// NewTrace returns a Trace with room for workers concurrent tasks. The
// regions are attached to ctx, which may carry a trace.Task.
func NewTrace(ctx context.Context, workers int) *Trace {
	return &Trace{
		ctx:   ctx,
		tasks: make([]*trace.Region, workers),
	}
}

func (t *Trace) RegionBegin() {
	t.roi = trace.StartRegion(t.ctx, ROIName)
}

func (t *Trace) RegionEnd() {
	if t.roi != nil {
		t.roi.End()
		t.roi = nil
	}
}

func (t *Trace) TaskBegin(worker int) {
	t.tasks[worker] = trace.StartRegion(t.ctx, TaskName)
}

func (t *Trace) TaskEnd(worker int) {
	if r := t.tasks[worker]; r != nil {
		r.End()
		t.tasks[worker] = nil
	}
}
