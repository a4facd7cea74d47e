package net

import (
	"net"
)

// OutgoingIP returns the IPv4 address a LAN peer should use to reach this
// host. The UDP "connect" never sends a packet; it only asks the kernel
// which interface would route outward.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return interfaceIPFallback()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// interfaceIPFallback walks the interfaces for offline LANs with no default
// route.
func interfaceIPFallback() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String()
		}
	}
	return "127.0.0.1"
}
