package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mulscan/configs"
	"github.com/reusee/mulscan/modes"
)

func TestProxyDisabledInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getDialer GetProxyDialer,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if dialer == nil {
			t.Fatal()
		}
	})
}

func TestProxyURL(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})
}
