package evals

import (
	"context"
	"io"

	"github.com/reusee/mulscan/instrs"
	"github.com/reusee/mulscan/logs"
)

type Instructions interface {
	Next() (instrs.Instruction, error)
}

var _ Instructions = new(instrs.Interpreter)

type Report struct {
	Total        uint64
	Instructions int // evaluated
	Skipped      int // malformed attempts
}

func (r *Report) Add(other Report) {
	r.Total += other.Total
	r.Instructions += other.Instructions
	r.Skipped += other.Skipped
}

// Sum evaluates every instruction until io.EOF and adds up the results.
// Malformed instructions are skipped. A fatal error stops the scan and is returned with the partial report.
func Sum(ctx context.Context, instructions Instructions, logger logs.Logger) (Report, error) {
	var report Report
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		instr, err := instructions.Next()
		if err == io.EOF {
			return report, nil
		}
		if err != nil {
			if instrs.IsFatal(err) {
				return report, err
			}
			report.Skipped++
			if logger != nil {
				logger.DebugContext(ctx, "skip", "error", err)
			}
			continue
		}

		value := instr.Evaluate()
		if logger != nil {
			logger.DebugContext(ctx, "evaluate",
				"instruction", instr,
				"pos", instr.Position(),
				"value", value,
			)
		}
		report.Total += value
		report.Instructions++
	}
}
