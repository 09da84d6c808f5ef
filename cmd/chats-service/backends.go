package main

import (
	"context"
	"errors"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/khmm12/chats-service/internal/adapter/mdns"
	"github.com/khmm12/chats-service/internal/adapter/redis"
	"github.com/khmm12/chats-service/internal/common/logging"
	"github.com/khmm12/chats-service/internal/usecase"
)

func (c *CLI) mdnsOptions(logger *slog.Logger) mdns.Options {
	return mdns.Options{
		UseIPv4:       c.MDNS.UseIPv4,
		UseIPv6:       c.MDNS.UseIPv6,
		IPv4Addr:      c.MDNS.IPv4Addr,
		IPv6Addr:      c.MDNS.IPv6Addr,
		LoggerFactory: logging.NewPionLoggerFactory(logger),
	}
}

func (c *CLI) newRedisClient(ctx context.Context) (*goredis.Client, error) {
	return redis.NewClient(ctx, redis.Options{
		Addr:        c.Redis.Addr,
		Password:    c.Redis.Password,
		DB:          c.Redis.DB,
		TLS:         c.Redis.TLS,
		DialTimeout: c.Discovery.Timeout,
	})
}

// buildRegistries opens every configured backend. The returned closer releases what was opened, also on error.
func (c *CLI) buildRegistries(ctx context.Context, logger *slog.Logger) ([]usecase.RegistryBackend, func() error, error) {
	var (
		backends []usecase.RegistryBackend
		closers  []func() error
	)

	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}

		return errors.Join(errs...)
	}

	for _, name := range c.Discovery.Backends {
		switch name {
		case backendMDNS:
			registry, err := mdns.NewRegistry(logger, c.mdnsOptions(logger))
			if err != nil {
				return nil, closeAll, err
			}

			closers = append(closers, registry.Close)
			backends = append(backends, usecase.RegistryBackend{Name: name, Registry: registry})

		case backendRedis:
			client, err := c.newRedisClient(ctx)
			if err != nil {
				return nil, closeAll, err
			}

			closers = append(closers, client.Close)

			registry, err := redis.NewRegistry(logger, client, c.Redis.Prefix, c.Redis.TTL)
			if err != nil {
				return nil, closeAll, err
			}

			backends = append(backends, usecase.RegistryBackend{Name: name, Registry: registry})
		}
	}

	return backends, closeAll, nil
}
