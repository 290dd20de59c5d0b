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

// Package region defines the markers a benchmark emits for an external
// profiling or simulation harness.
//
// There are two granularities:
//
//   - the region of interest (ROI), which brackets the whole timed phase and
//     is opened and closed on the driver's goroutine;
//   - the PIM function, which brackets one worker's unit of work inside a
//     repetition and is opened and closed on the goroutine running that task.
//
// A benchmark depends only on the Hooks interface, so it runs unchanged
// without any harness (Nop), under the Go execution tracer (Trace), with
// wall-clock accounting (Timer), or with several of these at once (Multi).
package region

// Marker names, as the simulation harness reports them.
const (
	ROIName  = "region of interest"
	TaskName = "PIM function"
)

// Hooks receives region markers.
//
// RegionBegin and RegionEnd are called in pairs from a single goroutine.
// TaskBegin and TaskEnd are called in pairs from the goroutine executing
// the task; calls for different workers may be concurrent, calls for the
// same worker never are.
type Hooks interface {
	RegionBegin()
	RegionEnd()
	TaskBegin(worker int)
	TaskEnd(worker int)
}

// Nop ignores all markers.
type Nop struct{}

func (Nop) RegionBegin()  {}
func (Nop) RegionEnd()    {}
func (Nop) TaskBegin(int) {}
func (Nop) TaskEnd(int)   {}

type multi []Hooks

// Multi returns Hooks that forwards every marker to each of hooks. Begin
// markers are delivered in argument order and end markers in reverse
// order, so the regions of the individual hooks nest.
func Multi(hooks ...Hooks) Hooks {
	switch len(hooks) {
	case 0:
		return Nop{}
	case 1:
		return hooks[0]
	}
	return multi(hooks)
}

func (m multi) RegionBegin() {
	for _, h := range m {
		h.RegionBegin()
	}
}

func (m multi) RegionEnd() {
	for i := len(m) - 1; i >= 0; i-- {
		m[i].RegionEnd()
	}
}

func (m multi) TaskBegin(worker int) {
	for _, h := range m {
		h.TaskBegin(worker)
	}
}

func (m multi) TaskEnd(worker int) {
	for i := len(m) - 1; i >= 0; i-- {
		m[i].TaskEnd(worker)
	}
}
