package mulconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/cmds"
	"github.com/reusee/mulscan/configs"
	"github.com/reusee/mulscan/modes"
)

func testScope(t *testing.T, content string) dscope.Scope {
	path := filepath.Join(t.TempDir(), "mulscan.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader([]string{path}, schema)
		},
	)
}

func TestConfigValues(t *testing.T) {
	testScope(t, `
digit_runs: true
concurrency: 3
session: "cafe"
`).Call(func(
		digitRuns DigitRuns,
		concurrency Concurrency,
		session Session,
	) {
		if !digitRuns {
			t.Fatal()
		}
		if concurrency != 3 {
			t.Fatalf("got %v", concurrency)
		}
		if session != "cafe" {
			t.Fatalf("got %v", session)
		}
	})
}

func TestDefaults(t *testing.T) {
	t.Setenv("MULSCAN_SESSION", "")
	testScope(t, ``).Call(func(
		digitRuns DigitRuns,
		concurrency Concurrency,
		session Session,
	) {
		if digitRuns {
			t.Fatal()
		}
		if concurrency != 1 {
			t.Fatalf("got %v", concurrency)
		}
		if session != "" {
			t.Fatalf("got %v", session)
		}
	})
}

func TestFlagsOverrideConfig(t *testing.T) {
	defer func() {
		digitRunsFlag = nil
		*concurrencyFlag = 0
	}()
	cmds.GlobalExecutor.MustExecute([]string{
		"!-digit-runs",
		"-concurrency", "8",
	})
	testScope(t, `
digit_runs: true
concurrency: 3
`).Call(func(
		digitRuns DigitRuns,
		concurrency Concurrency,
	) {
		if digitRuns {
			t.Fatal()
		}
		if concurrency != 8 {
			t.Fatalf("got %v", concurrency)
		}
	})
}

func TestSchemaRejectsBadConcurrency(t *testing.T) {
	testScope(t, `concurrency: 0`).Call(func(
		loader configs.Loader,
	) {
		if loader.Err() == nil {
			t.Fatal("should error")
		}
	})
}
