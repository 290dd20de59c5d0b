package gemv

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-pimbench/region"
	"github.com/ajroetker/go-pimbench/workerpool"
)

// ErrInvalidConfig is wrapped by the errors of Config.Validate, New and
// NewWithData.
var ErrInvalidConfig = errors.New("gemv: invalid configuration")

// Config describes one benchmark run.
type Config struct {
	Rows    int // M, rows of A and length of C
	Cols    int // N, columns of A and length of B
	Warmup  int // untimed repetitions
	Reps    int // repetitions inside the region of interest
	Workers int // T, parallel workers
}

// DefaultConfig returns the default benchmark size: an 8192x8192 matrix,
// one warmup and three timed repetitions on four workers.
func DefaultConfig() Config {
	return Config{
		Rows:    8192,
		Cols:    8192,
		Warmup:  1,
		Reps:    3,
		Workers: 4,
	}
}

// Validate reports whether c describes a runnable benchmark.
func (c Config) Validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("%w: worker count %d must be positive", ErrInvalidConfig, c.Workers)
	case c.Rows < 0:
		return fmt.Errorf("%w: row count %d must not be negative", ErrInvalidConfig, c.Rows)
	case c.Cols < 0:
		return fmt.Errorf("%w: column count %d must not be negative", ErrInvalidConfig, c.Cols)
	case c.Warmup < 0:
		return fmt.Errorf("%w: warmup count %d must not be negative", ErrInvalidConfig, c.Warmup)
	case c.Reps < 0:
		return fmt.Errorf("%w: repetition count %d must not be negative", ErrInvalidConfig, c.Reps)
	}
	return nil
}

// Option customizes a Benchmark.
type Option func(*options)

type options struct {
	hooks region.Hooks
	sched Scheduler
	seed  uint64
}

// WithHooks delivers the benchmark's region markers to h.
func WithHooks(h region.Hooks) Option {
	return func(o *options) { o.hooks = h }
}

// WithScheduler runs repetitions on s instead of a pool owned by the
// benchmark. The caller keeps ownership of s.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.sched = s }
}

// WithSeed generates the input data from seed instead of Seed. It has no
// effect on NewWithData.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// Benchmark owns the buffers of one GEMV benchmark and runs its phases.
//
// A and B are read-only once the benchmark exists. Worker tasks receive
// views of A and B and write only their own rows of C.
type Benchmark[T Element] struct {
	cfg   Config
	a     []T
	b     []T
	c     []T
	table Table
	hooks region.Hooks
	sched Scheduler
	pool  *workerpool.Pool // non-nil when owned
}

// New generates a benchmark's input data and prepares it to run.
func New[T Element](cfg Config, opts ...Option) (*Benchmark[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	a, b := GenerateSeeded[T](cfg.Rows, cfg.Cols, o.seed)
	return newBenchmark(cfg, a, b, o), nil
}

// NewWithData prepares a benchmark over caller-supplied data. The benchmark
// takes ownership of a (cfg.Rows x cfg.Cols, row-major) and b (cfg.Cols);
// the caller must not modify them afterwards.
func NewWithData[T Element](cfg Config, a, b []T, opts ...Option) (*Benchmark[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(a) != cfg.Rows*cfg.Cols {
		return nil, fmt.Errorf("%w: matrix has %d elements, want %dx%d", ErrInvalidConfig, len(a), cfg.Rows, cfg.Cols)
	}
	if len(b) != cfg.Cols {
		return nil, fmt.Errorf("%w: vector has %d elements, want %d", ErrInvalidConfig, len(b), cfg.Cols)
	}
	return newBenchmark(cfg, a, b, buildOptions(opts)), nil
}

func buildOptions(opts []Option) options {
	o := options{hooks: region.Nop{}, seed: Seed}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newBenchmark[T Element](cfg Config, a, b []T, o options) *Benchmark[T] {
	bm := &Benchmark[T]{
		cfg:   cfg,
		a:     a,
		b:     b,
		c:     make([]T, cfg.Rows),
		table: Partition(cfg.Rows, cfg.Workers),
		hooks: o.hooks,
		sched: o.sched,
	}
	if bm.sched == nil {
		bm.pool = workerpool.New(cfg.Workers)
		bm.sched = bm.pool
	}
	return bm
}

// Step runs one repetition: every worker computes its rows, and Step
// returns once all of them are done.
func (bm *Benchmark[T]) Step() {
	bm.sched.ForEach(bm.table.Workers(), bm.task)
}

// task is the unit of work of one worker in one repetition.
func (bm *Benchmark[T]) task(worker int) {
	bm.hooks.TaskBegin(worker)
	Rows(bm.a, bm.b, bm.c, bm.cfg.Cols, bm.table.Start[worker], bm.table.Count[worker])
	bm.hooks.TaskEnd(worker)
}

// Run executes the warmup repetitions, then the timed repetitions inside the
// region of interest.
func (bm *Benchmark[T]) Run() {
	for range bm.cfg.Warmup {
		bm.Step()
	}

	bm.hooks.RegionBegin()
	for range bm.cfg.Reps {
		bm.Step()
	}
	bm.hooks.RegionEnd()
}

// Verify checks the current output against a reference product.
func (bm *Benchmark[T]) Verify() error {
	return Verify(bm.a, bm.b, bm.c, bm.cfg.Rows, bm.cfg.Cols)
}

// Close releases the worker pool if the benchmark owns one. It is safe to
// call more than once; a closed benchmark still runs, sequentially.
func (bm *Benchmark[T]) Close() {
	if bm.pool != nil {
		bm.pool.Close()
	}
}

// Config returns the benchmark's configuration.
func (bm *Benchmark[T]) Config() Config { return bm.cfg }

// Table returns the row assignment. It must not be modified.
func (bm *Benchmark[T]) Table() Table { return bm.table }

// Matrix returns A. It must not be modified.
func (bm *Benchmark[T]) Matrix() []T { return bm.a }

// Vector returns B. It must not be modified.
func (bm *Benchmark[T]) Vector() []T { return bm.b }

// Output returns C as of the last completed repetition. It is overwritten
// by the next one.
func (bm *Benchmark[T]) Output() []T { return bm.c }
