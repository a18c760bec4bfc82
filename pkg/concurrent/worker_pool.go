package concurrent

import (
	"errors"
	"time"
)

// ErrScheduleTimeout is returned by ScheduleTimeout when no worker picks the
// task up within the given delay.
var ErrScheduleTimeout = errors.New("schedule error: timed out")

// Pool is a bounded goroutine pool. Request handlers schedule CPU-bound work
// (inference, core engine calls) on it so a slow task cannot stall the
// accept loop or the event loop that feeds it.
type Pool struct {
	sem  chan struct{}
	work chan func()
}

// NewPool builds a pool with at most size goroutines, queue pending tasks,
// and spawn workers started eagerly.
func NewPool(size, queue, spawn int) *Pool {
	if spawn <= 0 && queue > 0 {
		panic("dead queue configuration detected")
	}
	if spawn > size {
		spawn = size
	}

	p := &Pool{
		sem:  make(chan struct{}, size),
		work: make(chan func(), queue),
	}

	for i := 0; i < spawn; i++ {
		p.sem <- struct{}{}
		go p.worker(func() {})
	}

	return p
}

// Schedule runs task on a pool worker, blocking until one is available.
func (p *Pool) Schedule(task func()) {
	p.schedule(task, nil)
}

// ScheduleTimeout runs task on a pool worker, giving up with
// ErrScheduleTimeout after the timeout elapses.
func (p *Pool) ScheduleTimeout(timeout time.Duration, task func()) error {
	return p.schedule(task, time.After(timeout))
}

func (p *Pool) schedule(task func(), timeout <-chan time.Time) error {
	select {
	case <-timeout:
		return ErrScheduleTimeout
	case p.work <- task:
		return nil
	case p.sem <- struct{}{}:
		go p.worker(task)
		return nil
	}
}

func (p *Pool) worker(task func()) {
	defer func() { <-p.sem }()

	task()

	for task := range p.work {
		task()
	}
}

// Close stops idle workers. Tasks already scheduled still run.
func (p *Pool) Close() {
	close(p.work)
}
