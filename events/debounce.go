package events

import (
	"sync"
	"time"
)

type pendingTask struct {
	timer *time.Timer
	gen   uint64
}

// Debouncer runs only the last of a burst of tasks scheduled under the same key.
// Scheduling a key again cancels the pending task of that key.
type Debouncer struct {
	mu      sync.Mutex
	pending map[string]*pendingTask
	gen     map[string]uint64
	stopped bool
}

func NewDebouncer() *Debouncer {
	return &Debouncer{
		pending: make(map[string]*pendingTask),
		gen:     make(map[string]uint64),
	}
}

func (d *Debouncer) Schedule(key string, delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.cancel(key)
	gen := d.gen[key]
	d.pending[key] = &pendingTask{
		gen: gen,
		timer: time.AfterFunc(delay, func() {
			d.mu.Lock()
			// A timer that fired after being superseded must not run.
			if d.stopped || d.gen[key] != gen {
				d.mu.Unlock()
				return
			}
			delete(d.pending, key)
			d.mu.Unlock()
			fn()
		}),
	}
}

func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancel(key)
}

func (d *Debouncer) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Stop cancels everything pending. Later Schedule calls are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for key := range d.pending {
		d.cancel(key)
	}
}

// caller holds d.mu
func (d *Debouncer) cancel(key string) {
	d.gen[key]++
	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
		delete(d.pending, key)
	}
}
