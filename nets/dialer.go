package nets

import (
	"context"
	"net"
)

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Dialer dials local addresses directly and everything else through the configured proxy.
func (Module) Dialer(
	getProxyDialer GetProxyDialer,
	isLocalAddr IsLocalAddr,
) Dialer {
	direct := new(net.Dialer)
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		local, err := isLocalAddr(ctx, addr)
		if err != nil {
			return nil, err
		}
		if local {
			return direct.DialContext(ctx, network, addr)
		}
		d, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		return d.DialContext(ctx, network, addr)
	})
}

type DialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}
