// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"alnqc-core/align"
	"alnqc-core/fasta"
	"alnqc-core/report"
)

// Config controls the batch scorer.
type Config struct {
	Threads int          // number of worker goroutines (>=1)
	Params  align.Params // scoring parameters, copied into every job
}

// Result is the outcome of one unit of work (one alignment file). A failed
// unit carries Err; sibling units are unaffected. Index preserves input
// order for deterministic sorting.
type Result struct {
	Index  int
	File   string
	Report report.Report
	Err    error
}

// ForEachReport scores every file on a bounded worker pool and hands each
// Result to visit in completion order. Per-file failures (unreadable file,
// too few sequences, ragged alignment) become Results with Err set and never
// abort the batch. It returns the first visit error or context cancellation.
func ForEachReport(ctx context.Context, cfg Config, files []string, visit func(Result) error) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		index int
		file  string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					select {
					case results <- score(j.index, j.file, cfg.Params):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector serializes visit calls; first error sticks.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if cerr != nil {
				continue
			}
			if err := visit(r); err != nil {
				cerr = err
			}
		}
	}()

	// Feed work
feed:
	for i, f := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{index: i, file: f}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}

// score runs one isolated unit of work.
func score(index int, file string, p align.Params) Result {
	r := Result{Index: index, File: file}
	records, err := fasta.ReadFile(file)
	if err != nil {
		r.Err = err
		return r
	}
	r.Report, r.Err = report.Build(records, p)
	return r
}
