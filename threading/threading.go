package threading

import (
	"sync"

	"github.com/gookit/slog"
)

type Pool struct {
	Queue chan func()
	Size  int
	Wg    *sync.WaitGroup
}

func NewPool(workerNum, queueSize int) *Pool {
	if workerNum <= 0 {
		panic("workerNum must > 0")
	}
	if queueSize <= 0 {
		panic("queueSize must > 0")
	}
	var wg sync.WaitGroup
	return &Pool{
		Queue: make(chan func(), queueSize),
		Size:  workerNum,
		Wg:    &wg,
	}
}

func (p *Pool) Worker(num int) {
	defer p.Wg.Done()

	for task := range p.Queue {
		task()
	}
	slog.Debugf("queue drained, worker%d exits", num)
}

func (p *Pool) Start() {
	slog.Debugf("starting worker pool, size=%d", p.Size)
	for i := 1; i <= p.Size; i++ {
		p.Wg.Add(1)
		go p.Worker(i)
	}
}

// Close stops accepting tasks, workers exit once the queue is drained.
func (p *Pool) Close() {
	close(p.Queue)
}

func (p *Pool) Join() {
	p.Wg.Wait()
}

func (p *Pool) AddTask(t func()) {
	p.Queue <- t
}

// RunOrdered runs task(0..n-1) on at most workers goroutines and returns the
// results by input index, regardless of completion order. Every task is queued
// before any result is awaited.
func RunOrdered[T any](workers, n int, task func(i int) T) []T {
	results := make([]T, n)
	if n == 0 {
		return results
	}
	if workers > n {
		workers = n
	}

	p := NewPool(workers, n)
	p.Start()
	for i := 0; i < n; i++ {
		i := i
		p.AddTask(func() {
			results[i] = task(i)
		})
	}
	p.Close()
	p.Join()
	return results
}
