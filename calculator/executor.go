package calculator

import (
	"time"
)

// 基于行的任务分配，每个任务计算密度表中的一行（一个压力）
type executor struct {
	dispatchChan chan task
	workers      int

	doneSoFar chan struct{}
	stop      chan struct{}
	f         func(t task)
}

type task struct {
	row int
}

func newExecutor(workers int, f func(t task)) *executor {
	if workers < 1 {
		workers = 1
	}
	return &executor{
		dispatchChan: make(chan task, 50),
		workers:      workers,
		doneSoFar:    make(chan struct{}, 50),
		stop:         make(chan struct{}),
		f:            f,
	}
}

func (e *executor) run() {
	for i := 0; i < e.workers; i++ {
		go func() {
			for {
				select {
				case t := <-e.dispatchChan:
					e.f(t)
					e.doneSoFar <- struct{}{}
				case <-e.stop:
					return
				}
			}
		}()
	}
}

// dispatchTask 分发 rows 个任务，等待全部完成
func (e *executor) dispatchTask(rows int) time.Duration {
	start := time.Now()
	go func() {
		for row := 0; row < rows; row++ {
			e.dispatchChan <- task{row: row}
		}
	}()
	for i := 0; i < rows; i++ {
		<-e.doneSoFar
	}
	return time.Since(start)
}

func (e *executor) shutdown() {
	close(e.stop)
}
