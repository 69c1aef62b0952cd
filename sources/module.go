package sources

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/mulconfigs"
	"github.com/reusee/mulscan/nets"
)

type Module struct {
	dscope.Module
	Nets       nets.Module
	MulConfigs mulconfigs.Module
}
