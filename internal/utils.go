package internal

import (
	"errors"
	"net"

	"github.com/sqlc-dev/pqtype"
)

var errIpNetNotFound = errors.New("ipnet could not be found")

// ServerIpNet returns the first non-loopback IPv4 network of the host.
// Analytics rows are keyed by it.
func ServerIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			if ipnet.IP.To4() != nil && !ipnet.IP.IsLoopback() {
				return *ipnet, nil
			}
		}
	}

	return net.IPNet{}, errIpNetNotFound
}

// ServerInet is ServerIpNet as an inet column value. A host without
// a usable interface is recorded as the loopback address.
func ServerInet() pqtype.Inet {
	ipnet, err := ServerIpNet()
	if err != nil {
		ipnet = net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}
	}
	return pqtype.Inet{IPNet: ipnet, Valid: true}
}
