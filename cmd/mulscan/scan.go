package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/reusee/mulscan/evals"
	"github.com/reusee/mulscan/mulconfigs"
	"github.com/reusee/mulscan/sources"
	"github.com/reusee/mulscan/syncs"
)

type Result struct {
	Name   string
	Report evals.Report
	Err    error
}

// ScanAll scans every input in its own pipeline, at most Concurrency at a time.
// Results are in input order.
type ScanAll func(ctx context.Context, names []string) []Result

func (Module) ScanAll(
	open sources.Open,
	evaluate evals.Evaluate,
	concurrency mulconfigs.Concurrency,
) ScanAll {
	return func(ctx context.Context, names []string) []Result {
		results := make([]Result, len(names))
		sem := syncs.NewSemaphore(int(concurrency))
		var wg sync.WaitGroup
		for i, name := range names {
			sem.Acquire()
			wg.Go(func() {
				defer sem.Release()
				results[i] = scan(ctx, open, evaluate, name)
			})
		}
		wg.Wait()
		return results
	}
}

func scan(ctx context.Context, open sources.Open, evaluate evals.Evaluate, name string) Result {
	result := Result{
		Name: name,
	}
	r, err := open(ctx, name)
	if err != nil {
		result.Err = fmt.Errorf("open %s: %w", name, err)
		return result
	}
	defer r.Close()
	result.Report, result.Err = evaluate(ctx, name, r)
	return result
}

// printResults writes the totals and returns the sum over inputs that scanned without error.
func printResults(w io.Writer, results []Result) (total uint64, failed int) {
	for _, result := range results {
		if result.Err != nil {
			failed++
			continue
		}
		total += result.Report.Total
		if len(results) > 1 {
			fmt.Fprintf(w, "%s: %d\n", result.Name, result.Report.Total)
		}
	}
	fmt.Fprintf(w, "Part one: %d\n", total)
	return
}
