package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/cmds"
	"github.com/reusee/mulscan/debugs"
	"github.com/reusee/mulscan/evals"
	"github.com/reusee/mulscan/modes"
)

var (
	inputs  = cmds.Positional()
	tapFlag = cmds.Switch("-tap")
)

func main() {
	cmds.Execute(os.Args[1:])

	if len(*inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: input is required (file path, - for stdin, or http(s) URL)")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var failed int
	scope.Call(func(
		scanAll ScanAll,
		evaluate evals.Evaluate,
		tap debugs.Tap,
	) {
		results := scanAll(ctx, *inputs)
		for _, result := range results {
			if result.Err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", result.Err)
			}
		}

		var total uint64
		total, failed = printResults(os.Stdout, results)

		if *tapFlag {
			tap(ctx, "results", map[string]any{
				"results": results,
				"total":   total,
				"scan": func(text string) uint64 {
					report, err := evaluate(ctx, "tap", strings.NewReader(text))
					if err != nil {
						return 0
					}
					return report.Total
				},
			})
		}
	})

	if failed > 0 {
		os.Exit(1)
	}
}
