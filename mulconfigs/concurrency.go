package mulconfigs

import (
	"github.com/reusee/mulscan/cmds"
	"github.com/reusee/mulscan/configs"
	"github.com/reusee/mulscan/vars"
)

// Concurrency bounds the number of inputs scanned at the same time.
type Concurrency int

var concurrencyFlag = cmds.Var[int]("-concurrency")

func (Module) Concurrency(
	loader configs.Loader,
) Concurrency {
	n := vars.FirstNonZero(
		*concurrencyFlag,
		configs.First[int](loader, "concurrency"),
		1,
	)
	return Concurrency(max(n, 1))
}
