package mulconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/configs"
	"github.com/reusee/mulscan/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
