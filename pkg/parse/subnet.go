package parse

import (
	"net"
	"net/netip"
	"strconv"
	"strings"

	"go4.org/netipx"

	"github.com/petbrain/petway/pkg/status"
)

// Subnet is the parsed result of parse_subnet: an address plus a
// CIDR bit count (what spec's Scenario B calls a SockAddr with a
// netmask field).
type Subnet struct {
	Addr netip.Addr
	Bits int
}

// ParseSubnet parses either `addr/bits` CIDR notation, or a bare addr
// paired with a separate dotted or hex netmask converted to CIDR bits
// (spec §6 parse_subnet; Scenario B).
func ParseSubnet(subnet string, netmask string) (Subnet, status.Status) {
	if netmask == "" {
		if idx := strings.IndexByte(subnet, '/'); idx >= 0 {
			prefix, err := netip.ParsePrefix(subnet)
			if err != nil {
				return Subnet{}, status.New(status.BAD_NETMASK, "parse/subnet.go", 0, subnet)
			}
			return Subnet{Addr: prefix.Addr(), Bits: prefix.Bits()}, status.Success
		}
		addr, err := netip.ParseAddr(subnet)
		if err != nil {
			return Subnet{}, status.New(status.BAD_IP_ADDRESS, "parse/subnet.go", 0, subnet)
		}
		return Subnet{Addr: addr, Bits: addr.BitLen()}, status.Success
	}

	addr, err := netip.ParseAddr(subnet)
	if err != nil {
		return Subnet{}, status.New(status.BAD_IP_ADDRESS, "parse/subnet.go", 0, subnet)
	}

	bits, ok := netmaskToBits(netmask, addr.BitLen())
	if !ok {
		return Subnet{}, status.New(status.BAD_NETMASK, "parse/subnet.go", 0, netmask)
	}
	// Routed through go4.org/netipx's std-net interop to build the
	// prefix. The base address is kept as given: the mask is not
	// applied to it.
	ipNet := &net.IPNet{IP: net.ParseIP(subnet), Mask: net.CIDRMask(bits, addr.BitLen())}
	prefix, ok := netipx.FromStdIPNet(ipNet)
	if !ok {
		return Subnet{}, status.New(status.BAD_NETMASK, "parse/subnet.go", 0, netmask)
	}
	return Subnet{Addr: prefix.Addr(), Bits: prefix.Bits()}, status.Success
}

// netmaskToBits accepts a dotted-decimal (255.255.255.0) or hex
// (0xffffff00) netmask and returns its CIDR bit count.
func netmaskToBits(netmask string, addrBits int) (int, bool) {
	if strings.HasPrefix(netmask, "0x") || strings.HasPrefix(netmask, "0X") {
		v, err := strconv.ParseUint(netmask[2:], 16, 32)
		if err != nil {
			return 0, false
		}
		mask := net.IPMask{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
		ones, bits := mask.Size()
		if bits == 0 {
			return 0, false
		}
		return ones, true
	}
	ip := net.ParseIP(netmask)
	if ip == nil {
		return 0, false
	}
	v4 := ip.To4()
	if v4 == nil {
		return 0, false
	}
	ones, bits := net.IPMask(v4).Size()
	if bits == 0 || ones > addrBits {
		return 0, false
	}
	return ones, true
}
