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

// Command gemv runs the statically partitioned matrix-vector product
// benchmark.
//
// Usage:
//
//	gemv -m 8192 -n 8192 -w 1 -e 3 -t 4
//	gemv -t 16 --dtype float32 --verify
//	gemv -h
//
// The timed repetitions run inside the region of interest and every worker
// task inside a PIM function region. Both are reported as runtime/trace
// regions and summarized by wall-clock time on stdout.
//
// An unrecognized option prints the usage text and exits with status 0, as
// the simulation harness scripts expect.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-pimbench/gemv"
	"github.com/ajroetker/go-pimbench/internal/cpuinfo"
	"github.com/ajroetker/go-pimbench/region"
)

var (
	// errUnrecognized marks a command line that failed to parse.
	errUnrecognized = errors.New("unrecognized option")

	// errMalformed marks a command line that parsed but cannot run.
	errMalformed = errors.New("malformed option")
)

// params is the parsed command line.
type params struct {
	cfg       gemv.Config
	dtype     string
	scheduler string
	verify    bool
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	p := &params{cfg: gemv.DefaultConfig()}
	cmd := newRootCommand(p, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUnrecognized):
		fmt.Fprintf(stderr, "\nUnrecognized option!\n")
		writeUsage(stderr)
		return 0
	case errors.Is(err, errMalformed):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		writeUsage(stderr)
		return 0
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCommand(p *params, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gemv [options]",
		Short:         "Statically partitioned matrix-vector product benchmark",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd.Context(), p, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	bindFlags(cmd.Flags(), p)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUnrecognized, err)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		writeUsage(c.ErrOrStderr())
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		writeUsage(c.ErrOrStderr())
		return nil
	})
	return cmd
}

// bindFlags registers the options. The single-letter flags are those of
// the simulation harness scripts.
func bindFlags(f *pflag.FlagSet, p *params) {
	f.SortFlags = false
	f.IntVarP(&p.cfg.Warmup, "warmup", "w", p.cfg.Warmup, "untimed warmup iterations")
	f.IntVarP(&p.cfg.Reps, "reps", "e", p.cfg.Reps, "timed repetition iterations")
	f.IntVarP(&p.cfg.Workers, "threads", "t", p.cfg.Workers, "worker threads")
	f.IntVarP(&p.cfg.Rows, "m-size", "m", p.cfg.Rows, "matrix rows")
	f.IntVarP(&p.cfg.Cols, "n-size", "n", p.cfg.Cols, "matrix columns")
	f.StringVar(&p.dtype, "dtype", "uint32", "element type")
	f.StringVar(&p.scheduler, "scheduler", "pool", "pool or spawn")
	f.BoolVar(&p.verify, "verify", false, "check the result against a reference product")
	f.BoolVar(&p.verbose, "verbose", false, "print host CPU information")
}

func writeUsage(w io.Writer) {
	fmt.Fprint(w,
		"\nUsage:  gemv [options]"+
			"\n"+
			"\nGeneral options:"+
			"\n    -h        help"+
			"\n    -w <W>    # of untimed warmup iterations (default=1)"+
			"\n    -e <E>    # of timed repetition iterations (default=3)"+
			"\n    -t <T>    # of threads (default=4)"+
			"\n"+
			"\nBenchmark-specific options:"+
			"\n    -m <I>    m_size (default=8192 elements)"+
			"\n    -n <I>    n_size (default=8192 elements)"+
			"\n"+
			"\nAdditional options:"+
			"\n    --dtype <D>      element type: int32, int64, uint32, uint64, float32, float64 (default=uint32)"+
			"\n    --scheduler <S>  pool (persistent workers) or spawn (goroutines per repetition) (default=pool)"+
			"\n    --verify         check the result against a reference product"+
			"\n    --verbose        print host CPU information"+
			"\n")
}

// execute validates p and runs the benchmark for the selected element type.
func execute(ctx context.Context, p *params, stdout io.Writer) error {
	if err := p.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}

	var sched gemv.Scheduler
	switch p.scheduler {
	case "pool":
		// The benchmark creates and owns a pool of cfg.Workers workers.
	case "spawn":
		sched = gemv.Spawn()
	default:
		return fmt.Errorf("%w: unknown scheduler %q", errMalformed, p.scheduler)
	}

	switch p.dtype {
	case "int32":
		return runTyped[int32](ctx, p, sched, stdout)
	case "int64":
		return runTyped[int64](ctx, p, sched, stdout)
	case "uint32":
		return runTyped[uint32](ctx, p, sched, stdout)
	case "uint64":
		return runTyped[uint64](ctx, p, sched, stdout)
	case "float32":
		return runTyped[float32](ctx, p, sched, stdout)
	case "float64":
		return runTyped[float64](ctx, p, sched, stdout)
	}
	return fmt.Errorf("%w: unknown element type %q", errMalformed, p.dtype)
}

func runTyped[T gemv.Element](ctx context.Context, p *params, sched gemv.Scheduler, stdout io.Writer) error {
	if p.verbose {
		cpuinfo.Detect().Write(stdout)
	}
	fmt.Fprintf(stdout, "Number of threads %d\n", p.cfg.Workers)

	timer := region.NewTimer(p.cfg.Workers)
	opts := []gemv.Option{
		gemv.WithHooks(region.Multi(timer, region.NewTrace(ctx, p.cfg.Workers))),
	}
	if sched != nil {
		opts = append(opts, gemv.WithScheduler(sched))
	}

	bm, err := gemv.New[T](p.cfg, opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	defer bm.Close()

	bm.Run()
	writeReport(stdout, bm.Table(), p.cfg.Reps, timer)

	if p.verify {
		if err := bm.Verify(); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "Verification: OK")
	}
	return nil
}
