package events

import (
	"runtime/debug"
	"sync"
	"time"

	log "github.com/Sirupsen/logrus"
)

type WorkQueue interface {
	Init()
	Close()
	Enqueue(WorkTask) bool
}

type WorkTask interface {
	Do()
}

// TaskQueue runs tasks one at a time on a single background worker.
type TaskQueue struct {
	size   int
	jobs   chan WorkTask
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewTaskQueue(size int) *TaskQueue {
	if size <= 0 {
		size = 1000
	}
	q := &TaskQueue{size: size}
	q.Init()
	return q
}

func (q *TaskQueue) Init() {
	if q.size <= 0 {
		q.size = 1000
	}
	q.jobs = make(chan WorkTask, q.size)

	// add the worker to the waiting group
	q.wg.Add(1)

	go func() {
		defer q.wg.Done()
		for job := range q.jobs {
			job.Do()
		}
		log.Info("worker: jobs channel closed")
	}()
}

// Close stops accepting tasks and waits a bit for queued ones to finish.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	log.Info("close jobs channel")
	close(q.jobs)
	q.mu.Unlock()

	log.Info("wait for worker to finish")
	if !WaitTimeout(&q.wg, 5*time.Second) {
		log.Warn("WaitGroup closed by timeout")
	}
}

// Enqueue blocks while the queue is full. It reports false if the queue
// was closed or the task could not be queued within 2 seconds.
func (q *TaskQueue) Enqueue(task WorkTask) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		log.Warn("TaskQueue.Enqueue on closed queue")
		return false
	}

	select {
	case q.jobs <- task:
		return true
	case <-time.After(2 * time.Second):
		log.Warn("TaskQueue.Enqueue timeout")
		return false
	}
}

type Task struct {
	Name string
	F    func() error
}

func (t Task) Do() {
	clock := time.Now()

	// don't panic !
	defer func() {
		if rval := recover(); rval != nil {
			log.Errorf("Task.Do %s panic: %v", t.Name, rval)
			debug.PrintStack()
		}
	}()

	err := t.F()
	log.Debugf("%s took %s", t.Name, time.Since(clock).String())
	if err != nil {
		log.Errorf("Task.Do %s: %s", t.Name, err.Error())
	}
}

// WaitTimeout does a Wait on a sync.WaitGroup object but with a specified
// timeout. Returns true if the wait completed without timing out, false
// otherwise.
func WaitTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	ch := make(chan struct{})
	go func() {
		wg.Wait()
		close(ch)
	}()
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}
