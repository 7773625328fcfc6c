package script

import (
	"sync"
	"time"
)

// delayedWork is a one-shot timer-driven work item. Firings are serialized:
// a firing runs to completion before the next one may start.
type delayedWork struct {
	locker    sync.Locker
	runLocker sync.Locker

	fn      func()
	timer   *time.Timer
	pending bool
}

// Schedule arms the work item unless a firing is already pending, in which
// case the earlier schedule wins and the call is a no-op. Reports whether
// the work item was armed.
func (w *delayedWork) Schedule(delay time.Duration) bool {
	w.locker.Lock()
	defer w.locker.Unlock()

	if w.pending {
		return false
	}
	w.pending = true
	w.timer = time.AfterFunc(delay, w.run)
	return true
}

// Reschedule arms the work item, replacing any pending firing. Only the
// firing cycle itself uses this, to re-arm with a wait or event-period
// delay that must not be overridden.
func (w *delayedWork) Reschedule(delay time.Duration) {
	w.locker.Lock()
	defer w.locker.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = true
	w.timer = time.AfterFunc(delay, w.run)
}

// Cancel stops a pending firing. A firing already started runs to
// completion. Safe to call repeatedly.
func (w *delayedWork) Cancel() {
	w.locker.Lock()
	defer w.locker.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.pending = false
}

func (w *delayedWork) run() {
	w.locker.Lock()
	w.pending = false
	w.timer = nil
	w.locker.Unlock()

	w.runLocker.Lock()
	defer w.runLocker.Unlock()
	w.fn()
}

func newDelayedWork(fn func()) *delayedWork {
	return &delayedWork{
		locker:    &sync.Mutex{},
		runLocker: &sync.Mutex{},
		fn:        fn,
	}
}
