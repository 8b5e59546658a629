package parse

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/petbrain/petway/pkg/status"
)

// InetAddress is the parsed result of parse_inet_address: a host
// (address or hostname) and an optional port.
type InetAddress struct {
	Host    string
	Addr    netip.Addr // zero Addr if Host didn't parse as a literal IP
	Port    uint16
	HasPort bool
}

// ParseInetAddress parses `host[:port]`, with `[...]` wrapping an IPv6
// literal that itself contains colons (spec §6 parse_inet_address).
func ParseInetAddress(s string) (InetAddress, status.Status) {
	var ia InetAddress
	host := s
	portStr := ""
	hasPort := false

	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return ia, status.New(status.BAD_IP_ADDRESS, "parse/inet.go", 0, s)
		}
		host = s[1:end]
		remainder := s[end+1:]
		if strings.HasPrefix(remainder, ":") {
			portStr = remainder[1:]
			hasPort = true
		} else if remainder != "" {
			return ia, status.New(status.BAD_IP_ADDRESS, "parse/inet.go", 0, s)
		}
	} else if i := strings.LastIndexByte(s, ':'); i >= 0 && strings.Count(s, ":") == 1 {
		host = s[:i]
		portStr = s[i+1:]
		hasPort = true
	}

	ia.Host = host
	if addr, err := netip.ParseAddr(host); err == nil {
		ia.Addr = addr
	}

	if hasPort {
		p, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return ia, status.New(status.BAD_PORT, "parse/inet.go", 0, portStr)
		}
		ia.Port = uint16(p)
		ia.HasPort = true
	}
	return ia, status.Success
}
