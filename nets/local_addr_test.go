package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/configs"
	"github.com/reusee/mulscan/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, expected := range map[string]bool{
			"127.0.0.1:10000":    true,
			"[::1]:80":           true,
			"192.168.1.2":        true,
			"10.0.0.1:443":       true,
			"localhost:8080":     true,
			"input.localhost:80": true,
			"1.1.1.1:443":        false,
			"8.8.8.8":            false,
		} {
			yes, err := isLocalAddr(t.Context(), addr)
			if err != nil {
				t.Fatal(err)
			}
			if yes != expected {
				t.Fatalf("%s: got %v", addr, yes)
			}
		}
	})
}
