package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/configs"
	"github.com/reusee/mulscan/logs"
)

// Module provides the http client used to fetch remote inputs.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
