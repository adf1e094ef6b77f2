package pipeline

import (
	"context"
	"sync"
)

// Outcome pairs a request with its result or error.
type Outcome struct {
	Request Request
	Result  *Result
	Err     error
}

// RunAll runs every request on a pool of workers and returns outcomes in
// request order. Requests not started before ctx is done carry ctx.Err().
func (p *Pipeline) RunAll(ctx context.Context, reqs []Request, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	out := make([]Outcome, len(reqs))
	jobs := make(chan int, workers*2)
	wg := sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.runWorker(ctx, jobs, reqs, out)
		}()
	}

	// ----- Dispatcher --------------------------------------------------------
dispatch:
	for i := range reqs {
		select {
		case <-ctx.Done():
			for j := i; j < len(reqs); j++ {
				out[j] = Outcome{Request: reqs[j], Err: ctx.Err()}
			}
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return out
}

// runWorker drains jobs until the channel is closed.
func (p *Pipeline) runWorker(ctx context.Context, jobs <-chan int, reqs []Request, out []Outcome) {
	for i := range jobs {
		res, err := p.Run(ctx, reqs[i])
		out[i] = Outcome{Request: reqs[i], Result: res, Err: err}
	}
}
