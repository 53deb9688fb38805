package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIPResolver derives the client address of a request. X-Real-IP is honored only
// when the direct peer is one of the trusted proxies.
type ClientIPResolver struct {
	trustedProxies []netip.Prefix
}

// NewClientIPResolver accepts trusted proxies as single IPs or CIDR ranges.
func NewClientIPResolver(trustedProxies []string) (*ClientIPResolver, error) {
	prefixes := make([]netip.Prefix, 0, len(trustedProxies))
	for _, raw := range trustedProxies {
		raw = strings.TrimSpace(raw)
		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy [%s]: %w", raw, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy [%s]: %w", raw, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return &ClientIPResolver{trustedProxies: prefixes}, nil
}

// Resolve returns the peer address, or the X-Real-IP value when the peer is a trusted proxy.
// A nil resolver trusts no proxy.
func (c *ClientIPResolver) Resolve(r *http.Request) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		peer = host
	}
	if c == nil || len(c.trustedProxies) == 0 {
		return peer
	}

	peerAddr, err := netip.ParseAddr(peer)
	if err != nil || !c.trusted(peerAddr.Unmap()) {
		return peer
	}
	realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP")))
	if err != nil {
		return peer
	}
	return realIP.Unmap().String()
}

func (c *ClientIPResolver) trusted(addr netip.Addr) bool {
	for _, prefix := range c.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
