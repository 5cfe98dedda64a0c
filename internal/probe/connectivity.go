package probe

import (
	"net"
	"time"
)

// ConnectivityProbe checks reachability by opening a TCP connection to a
// known-good endpoint, typically a public DNS resolver.
type ConnectivityProbe struct {
	target  string
	timeout time.Duration
}

// NewConnectivityProbe creates a probe against target ("host:port") with the
// given dial timeout.
func NewConnectivityProbe(target string, timeout time.Duration) *ConnectivityProbe {
	return &ConnectivityProbe{target: target, timeout: timeout}
}

// IsReachable reports whether the target accepted a connection within the
// timeout. Any dial failure counts as unreachable.
func (p *ConnectivityProbe) IsReachable() bool {
	conn, err := net.DialTimeout("tcp", p.target, p.timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
