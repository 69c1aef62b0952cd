package mulconfigs

import (
	"github.com/reusee/mulscan/cmds"
	"github.com/reusee/mulscan/configs"
)

// DigitRuns makes the tokenizer coalesce consecutive digits into one number.
type DigitRuns bool

// nil when neither flag is given
var digitRunsFlag *bool

func init() {
	cmds.Define("-digit-runs", cmds.Func(func() {
		v := true
		digitRunsFlag = &v
	}).Desc("coalesce consecutive digits into one number"))
	cmds.Define("!-digit-runs", cmds.Func(func() {
		v := false
		digitRunsFlag = &v
	}).Desc("one number per digit (default)"))
}

func (Module) DigitRuns(
	loader configs.Loader,
) DigitRuns {
	// flag
	if digitRunsFlag != nil {
		return DigitRuns(*digitRunsFlag)
	}
	// config
	return DigitRuns(configs.First[bool](loader, "digit_runs"))
}
