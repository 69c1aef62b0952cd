package nets

import (
	"context"
	"net"
	"strings"
)

// IsLocalAddr reports whether addr resolves to a loopback or private address.
// Local inputs are fetched directly, never through the proxy.
type IsLocalAddr func(ctx context.Context, addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	var resolver net.Resolver
	return func(ctx context.Context, addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			// no port
			host = addr
		}
		host = strings.Trim(host, "[]")

		if host == "localhost" || strings.HasSuffix(host, ".localhost") {
			return true, nil
		}
		if ip := net.ParseIP(host); ip != nil {
			return isLocalIP(ip), nil
		}

		addrs, err := resolver.LookupIPAddr(ctx, host)
		if err != nil {
			// unknown hosts go through the proxy
			return false, nil
		}
		for _, a := range addrs {
			if isLocalIP(a.IP) {
				return true, nil
			}
		}
		return false, nil
	}
}

func isLocalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
