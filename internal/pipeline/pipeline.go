// Package pipeline runs indexed jobs across a bounded worker pool. A failing
// job never stops the others; errors are collected and returned together.
package pipeline

import (
	"runtime"
	"sync"
)

type Job struct {
	Index int
	Text  string
}

type Worker func(job Job) error

func Run(jobs []Job, workers int, fn Worker) []error {
	if len(jobs) == 0 || fn == nil {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}

	queue := make(chan Job)
	errs := make(chan error, len(jobs))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				if err := fn(job); err != nil {
					errs <- err
				}
			}
		}()
	}

	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()
	close(errs)

	out := make([]error, 0, len(errs))
	for err := range errs {
		out = append(out, err)
	}
	return out
}
