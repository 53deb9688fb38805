package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIPResolver_Resolve(t *testing.T) {
	resolver, err := NewClientIPResolver([]string{"10.0.0.0/8", " 127.0.0.1 ", "::1"})
	require.NoError(t, err)

	testCases := []struct {
		name       string
		remoteAddr string
		realIP     string
		want       string
	}{
		{name: "direct client", remoteAddr: "203.0.113.9:1234", want: "203.0.113.9"},
		{name: "untrusted peer with header", remoteAddr: "203.0.113.9:1234", realIP: "1.1.1.1", want: "203.0.113.9"},
		{name: "trusted cidr", remoteAddr: "10.3.2.1:1234", realIP: "198.51.100.7", want: "198.51.100.7"},
		{name: "trusted single ip", remoteAddr: "127.0.0.1:1234", realIP: "198.51.100.8", want: "198.51.100.8"},
		{name: "trusted ipv6 loopback", remoteAddr: "[::1]:1234", realIP: "2001:db8::1", want: "2001:db8::1"},
		{name: "trusted peer without header", remoteAddr: "10.3.2.1:1234", want: "10.3.2.1"},
		{name: "trusted peer with garbage header", remoteAddr: "10.3.2.1:1234", realIP: "not-an-ip", want: "10.3.2.1"},
		{name: "remote addr without port", remoteAddr: "203.0.113.9", want: "203.0.113.9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.realIP != "" {
				req.Header.Set("X-Real-IP", tc.realIP)
			}
			assert.Equal(t, tc.want, resolver.Resolve(req))
		})
	}
}

func TestClientIPResolver_NilTrustsNoProxy(t *testing.T) {
	var resolver *ClientIPResolver
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "127.0.0.1:1234"
	req.Header.Set("X-Real-IP", "1.1.1.1")
	assert.Equal(t, "127.0.0.1", resolver.Resolve(req))
}

func TestNewClientIPResolver_Invalid(t *testing.T) {
	_, err := NewClientIPResolver([]string{"10.0.0.0/99"})
	assert.Error(t, err)
	_, err = NewClientIPResolver([]string{"proxy.local"})
	assert.Error(t, err)
}
