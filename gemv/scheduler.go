package gemv

import (
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-pimbench/workerpool"
)

// Scheduler runs one fork-join round: fn(i) for every i in [0, n), returning
// only after all calls have returned. Calls may run concurrently.
//
// *workerpool.Pool implements Scheduler.
type Scheduler interface {
	ForEach(n int, fn func(i int))
}

var _ Scheduler = (*workerpool.Pool)(nil)

type spawner struct{}

// Spawn returns a Scheduler that starts a fresh goroutine per task on every
// round instead of reusing persistent workers. It exists to measure what a
// persistent pool saves.
func Spawn() Scheduler {
	return spawner{}
}

func (spawner) ForEach(n int, fn func(i int)) {
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}
