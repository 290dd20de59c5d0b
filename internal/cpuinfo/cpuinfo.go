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

// Package cpuinfo describes the host a benchmark runs on, using the CPU
// features detected by golang.org/x/sys/cpu.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Feature is one named CPU capability.
type Feature struct {
	Name    string
	Present bool
}

// Info is a snapshot of the host.
type Info struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	MaxProcs int
	// Level is the widest SIMD instruction set available, e.g. "avx512",
	// "avx2", "neon" or "scalar".
	Level    string
	Features []Feature
}

// Detect returns the description of the current host.
func Detect() Info {
	return Info{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		MaxProcs: runtime.GOMAXPROCS(0),
		Level:    level(),
		Features: features(),
	}
}

// Present returns the names of the features the host has.
func (i Info) Present() []string {
	var names []string
	for _, f := range i.Features {
		if f.Present {
			names = append(names, f.Name)
		}
	}
	return names
}

// Write prints a short multi-line banner.
func (i Info) Write(w io.Writer) {
	fmt.Fprintf(w, "GOOS/GOARCH: %s/%s\n", i.GOOS, i.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d, GOMAXPROCS: %d\n", i.NumCPU, i.MaxProcs)
	fmt.Fprintf(w, "SIMD level: %s\n", i.Level)
	if present := i.Present(); len(present) > 0 {
		fmt.Fprintf(w, "CPU features: %s\n", strings.Join(present, " "))
	}
}
