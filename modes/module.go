package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// Production is the module for the mulscan binary.
// Proxies and config files are honored.
type Production struct {
	dscope.Module
}

func ForProduction() Production {
	return Production{}
}

func (Production) Mode() Mode {
	return ModeProduction
}

func (Production) T() *testing.T {
	return nil
}

// Test is the module for tests.
// Providers that reach outside the process stay disabled.
type Test struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) Test {
	return Test{
		t: t,
	}
}

func (m Test) Mode() Mode {
	return ModeDevelopment
}

func (m Test) T() *testing.T {
	return m.t
}
