// Package requesturl derives the externally observed base URL of a request.
package requesturl

import (
	"net"
	"net/http"
)

// Base returns scheme://host[:port] for r. The scheme is https for TLS connections,
// and the port is omitted when it is the scheme's default.
func Base(r *http.Request) string {
	scheme := "http"
	defaultPort := "80"
	if r.TLS != nil {
		scheme = "https"
		defaultPort = "443"
	}

	host := r.Host
	if h, port, err := net.SplitHostPort(host); err == nil && port == defaultPort {
		host = h
		// Keep IPv6 literals bracketed.
		if ip := net.ParseIP(h); ip != nil && ip.To4() == nil {
			host = "[" + h + "]"
		}
	}

	return scheme + "://" + host
}
