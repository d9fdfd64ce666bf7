package tracker

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("tracker: dispatcher closed")

type job struct {
	fn   func(*Tracker)
	done chan struct{}
}

// Dispatcher confines every access to a Tracker to one goroutine, so events
// from concurrent callers apply one at a time and run to completion.
type Dispatcher struct {
	tracker *Tracker
	jobs    chan job
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewDispatcher(t *Tracker) *Dispatcher {
	d := &Dispatcher{
		tracker: t,
		jobs:    make(chan job),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go d.loop()
	return d
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for {
		select {
		case j := <-d.jobs:
			j.fn(d.tracker)
			close(j.done)
		case <-d.quit:
			return
		}
	}
}

// Do runs fn on the dispatcher goroutine and waits for it. Once fn has been
// accepted it always runs to completion, even if ctx is cancelled meanwhile.
func (d *Dispatcher) Do(ctx context.Context, fn func(*Tracker)) error {
	j := job{fn: fn, done: make(chan struct{})}
	select {
	case d.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.quit:
		return ErrClosed
	}
	<-j.done
	return nil
}

// Close stops the loop after the running job. Held notes are released first.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		_ = d.Do(context.Background(), func(t *Tracker) { t.Release() })
		close(d.quit)
	})
	<-d.done
}
