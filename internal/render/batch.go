package render

import (
	"context"
	"errors"
	"sync"

	"github.com/san-kum/intseq/internal/seq"
)

var ErrCanceled = errors.New("render: batch canceled")

// Job is one named render in a batch.
type Job struct {
	Name   string
	Seq    seq.Sequence
	Config Config
}

type Result struct {
	Name   string
	Canvas *Canvas
	Err    error
}

// RenderAll runs every job in its own goroutine and returns results in job
// order. Jobs that have not started when ctx is done fail with ErrCanceled.
func RenderAll(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))

	var wg sync.WaitGroup
	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			job := jobs[idx]
			results[idx].Name = job.Name
			if ctx.Err() != nil {
				results[idx].Err = ErrCanceled
				return
			}
			results[idx].Canvas, results[idx].Err = Render(job.Seq, job.Config)
		}(i)
	}

	wg.Wait()
	return results
}
