package mdns

import (
	"fmt"
	"net"

	"github.com/pion/logging"
	"github.com/pion/mdns/v2"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

const serverName = "chats-service"

type Options struct {
	UseIPv4       bool
	UseIPv6       bool
	IPv4Addr      string
	IPv6Addr      string
	LoggerFactory logging.LoggerFactory
}

func (o Options) validate() error {
	if !o.UseIPv4 && !o.UseIPv6 {
		return fmt.Errorf("mdns: at least one of IPv4 or IPv6 must be enabled")
	}

	return nil
}

// buildServer opens the multicast sockets and starts a pion mDNS conn.
// Names listed in localNames are answered for as long as the conn stays open.
func buildServer(opts Options, localNames []string, localAddr net.IP) (*mdns.Conn, error) {
	var err error

	var packetConnV4 *ipv4.PacketConn

	if opts.UseIPv4 {
		packetConnV4, err = buildV4Conn(opts.IPv4Addr)
		if err != nil {
			return nil, err
		}
	}

	var packetConnV6 *ipv6.PacketConn
	if opts.UseIPv6 {
		packetConnV6, err = buildV6Conn(opts.IPv6Addr)
		if err != nil {
			if packetConnV4 != nil {
				_ = packetConnV4.Close()
			}

			return nil, err
		}
	}

	server, err := mdns.Server(packetConnV4, packetConnV6, &mdns.Config{
		Name:          serverName,
		LocalNames:    localNames,
		LocalAddress:  localAddr,
		LoggerFactory: opts.LoggerFactory,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init mdns server: %w", err)
	}

	return server, nil
}

func buildV4Conn(addr string) (*ipv4.PacketConn, error) {
	addr4, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPv4 address: %w", err)
	}

	l4, err := net.ListenUDP("udp4", addr4)
	if err != nil {
		return nil, fmt.Errorf("failed to bind UDP IPv4 listener: %w", err)
	}

	return ipv4.NewPacketConn(l4), nil
}

func buildV6Conn(addr string) (*ipv6.PacketConn, error) {
	addr6, err := net.ResolveUDPAddr("udp6", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPv6 address: %w", err)
	}

	l6, err := net.ListenUDP("udp6", addr6)
	if err != nil {
		return nil, fmt.Errorf("failed to bind UDP IPv6 listener: %w", err)
	}

	return ipv6.NewPacketConn(l6), nil
}
