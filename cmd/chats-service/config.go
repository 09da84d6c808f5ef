package main

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

const (
	backendMDNS  = "mdns"
	backendRedis = "redis"
)

type Discovery struct {
	Backends   []string      `name:"backends" env:"DISCOVERY_BACKENDS" default:"mdns" sep:"," help:"Comma-separated discovery backends to register with (mdns, redis)."`
	Service    string        `name:"service" env:"DISCOVERY_SERVICE" default:"chats-service" help:"Service name this instance registers under."`
	InstanceID string        `name:"instance-id" env:"DISCOVERY_INSTANCE_ID" help:"Instance id. A UUIDv7 is generated when empty."`
	Host       string        `name:"host" env:"DISCOVERY_HOST" help:"Advertised host name. Defaults to the OS host name."`
	Address    string        `name:"address" env:"DISCOVERY_ADDRESS" help:"Advertised IP address. Detected by the backend when empty."`
	Heartbeat  time.Duration `name:"heartbeat" env:"DISCOVERY_HEARTBEAT" default:"10s" help:"Interval between registration refreshes (e.g., 10s, 1m)."`
	Timeout    time.Duration `name:"timeout" env:"DISCOVERY_TIMEOUT" default:"5s" help:"Timeout of a single registry call or lookup."`
}

type MDNS struct {
	UseIPv4  bool   `name:"ipv4" env:"MDNS_USE_IPV4" default:"true" help:"Enable mDNS over IPv4. Enabled by default."`
	IPv4Addr string `name:"ipv4.addr" env:"MDNS_IPV4_ADDR" default:"224.0.0.0:5353" help:"IPv4 address to bind to for mDNS."`
	UseIPv6  bool   `name:"ipv6" env:"MDNS_USE_IPV6" default:"true" help:"Enable mDNS over IPv6. Enabled by default."`
	IPv6Addr string `name:"ipv6.addr" env:"MDNS_IPV6_ADDR" default:"[FF02::]:5353" help:"IPv6 address to bind to for mDNS."`
}

type Redis struct {
	Addr     string        `name:"addr" env:"REDIS_ADDR" default:"localhost:6379" help:"Redis address (host:port)."`
	Password string        `name:"password" env:"REDIS_PASSWORD" help:"Redis password."`
	DB       int           `name:"db" env:"REDIS_DB" default:"0" help:"Redis database number."`
	TLS      bool          `name:"tls" env:"REDIS_TLS" default:"false" help:"Connect to Redis over TLS."`
	Prefix   string        `name:"prefix" env:"REDIS_PREFIX" default:"services" help:"Key prefix of registered instances."`
	TTL      time.Duration `name:"ttl" env:"REDIS_TTL" default:"30s" help:"Expiry of an instance key. Must exceed the heartbeat interval."`
}

func (c *CLI) usesBackend(name string) bool {
	return slices.Contains(c.Discovery.Backends, name)
}

func (c *CLI) Validate() error {
	var errs []error

	d := &c.Discovery

	if len(d.Backends) == 0 {
		errs = append(errs, errors.New("--discovery.backends: at least one backend is required"))
	}

	for _, b := range d.Backends {
		if !isBackend(b) {
			errs = append(errs, fmt.Errorf("--discovery.backends: unknown backend %q, must be one of mdns, redis", b))
		}
	}

	if d.Service == "" {
		errs = append(errs, errors.New("--discovery.service: must not be empty"))
	}

	if d.Address != "" && !isIPAddr(d.Address) {
		errs = append(errs, fmt.Errorf("--discovery.address: must be an IP address"))
	}

	if d.Heartbeat <= 0 {
		errs = append(errs, fmt.Errorf("--discovery.heartbeat: must be greater than zero"))
	}

	if d.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("--discovery.timeout: must be greater than zero"))
	}

	if c.usesBackend(backendMDNS) {
		errs = append(errs, c.MDNS.validate()...)
	}

	if c.usesBackend(backendRedis) {
		errs = append(errs, c.Redis.validate(d.Heartbeat)...)
	}

	if !isLogLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("--log.level: must be one of debug, info, warn, error"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func (m *MDNS) validate() []error {
	var errs []error

	if !m.UseIPv4 && !m.UseIPv6 {
		errs = append(errs, errors.New("at least one of --mdns.ipv4 or --mdns.ipv6 must be enabled"))
	}

	if m.UseIPv4 && !isUDP4AddrResolvable(m.IPv4Addr) {
		errs = append(errs, fmt.Errorf("--mdns.ipv4.addr: must be a resolvable UDP IPv4 address e.g. 224.0.0.0:5353"))
	}

	if m.UseIPv6 && !isUDP6AddrResolvable(m.IPv6Addr) {
		errs = append(errs, fmt.Errorf("--mdns.ipv6.addr: must be a resolvable UDP IPv6 address e.g. [FF02::]:5353"))
	}

	return errs
}

func (r *Redis) validate(heartbeat time.Duration) []error {
	var errs []error

	if !isHostPort(r.Addr) {
		errs = append(errs, fmt.Errorf("--redis.addr: must be host:port (e.g. localhost:6379)"))
	}

	if r.DB < 0 {
		errs = append(errs, fmt.Errorf("--redis.db: must not be negative"))
	}

	if r.Prefix == "" {
		errs = append(errs, errors.New("--redis.prefix: must not be empty"))
	}

	if r.TTL <= heartbeat {
		errs = append(errs, fmt.Errorf("--redis.ttl: must be greater than --discovery.heartbeat"))
	}

	return errs
}
