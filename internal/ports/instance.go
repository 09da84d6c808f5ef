package ports

import (
	"net"
	"strconv"
	"time"
)

// Instance describes a running process as advertised to discovery backends.
type Instance struct {
	ID           string    `json:"id"`
	Service      string    `json:"service"`
	Host         string    `json:"host"`
	Address      string    `json:"address,omitempty"`
	Port         int       `json:"port"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Endpoint returns the address other services should dial, preferring the advertised IP over the host name.
func (i Instance) Endpoint() string {
	host := i.Host
	if i.Address != "" {
		host = i.Address
	}

	return net.JoinHostPort(host, strconv.Itoa(i.Port))
}
