package evals

import (
	"context"
	"io"

	"github.com/reusee/mulscan/instrs"
	"github.com/reusee/mulscan/logs"
	"github.com/reusee/mulscan/mulconfigs"
	"github.com/reusee/mulscan/tokens"
)

// Evaluate scans one input and sums its instructions.
type Evaluate func(ctx context.Context, name string, r io.Reader) (Report, error)

func (Module) Evaluate(
	logger logs.Logger,
	newSpan logs.NewSpan,
	digitRuns mulconfigs.DigitRuns,
) Evaluate {
	return func(ctx context.Context, name string, r io.Reader) (report Report, err error) {
		ctx, _ = newSpan(ctx, "", "input", name)
		defer func() {
			if err != nil {
				err = logs.WrapSpan(ctx, err)
			}
		}()

		inputLogger := logger.With("input", name)
		interpreter := instrs.NewInterpreter(
			tokens.NewTokenizer(r, tokens.Options{
				Name:      name,
				DigitRuns: bool(digitRuns),
				Logger:    inputLogger,
			}),
			instrs.Options{
				Name:   name,
				Logger: inputLogger,
			},
		)

		report, err = Sum(ctx, interpreter, inputLogger)
		if err != nil {
			logger.ErrorContext(ctx, "scan failed",
				"error", err,
				"total", report.Total,
			)
			return report, err
		}

		logger.InfoContext(ctx, "scanned",
			"total", report.Total,
			"instructions", report.Instructions,
			"skipped", report.Skipped,
		)
		return report, nil
	}
}
