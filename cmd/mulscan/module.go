package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/debugs"
	"github.com/reusee/mulscan/evals"
	"github.com/reusee/mulscan/sources"
)

type Module struct {
	dscope.Module
	Evals   evals.Module
	Sources sources.Module
	Debugs  debugs.Module
}
