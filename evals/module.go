package evals

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/logs"
	"github.com/reusee/mulscan/mulconfigs"
)

type Module struct {
	dscope.Module
	Logs       logs.Module
	MulConfigs mulconfigs.Module
}
