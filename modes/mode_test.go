package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModeString(t *testing.T) {
	for mode, expected := range map[Mode]string{
		ModeProduction:  "production",
		ModeDevelopment: "development",
		Mode(0):         "unknown",
	} {
		if s := mode.String(); s != expected {
			t.Fatalf("got %s", s)
		}
	}
}

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
		tt *testing.T,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if tt != nil {
			t.Fatal()
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		mode Mode,
		tt *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if tt != t {
			t.Fatal()
		}
	})
}
