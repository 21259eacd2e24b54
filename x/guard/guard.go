package guard

import (
	"sync/atomic"

	"github.com/iov-one/quorum/errors"
)

// Guard is a reentrancy flag. The zero value is idle and ready to use.
type Guard struct {
	active atomic.Bool
}

// Enter marks the guard active. It fails if the guard is already active.
func (g *Guard) Enter() error {
	if !g.active.CompareAndSwap(false, true) {
		return errors.Wrap(errors.ErrReentrant, "guarded operation in progress")
	}
	return nil
}

// Exit returns the guard to idle.
func (g *Guard) Exit() {
	g.active.Store(false)
}

// Active returns true while a guarded operation runs.
func (g *Guard) Active() bool {
	return g.active.Load()
}

// Run executes fn while holding the guard. The guard is released on every
// exit path of fn, including a panic.
func (g *Guard) Run(fn func() error) error {
	if err := g.Enter(); err != nil {
		return err
	}
	defer g.Exit()
	return fn()
}
