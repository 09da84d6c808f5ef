package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khmm12/chats-service/internal/ports"
)

var (
	_ ports.ServiceRegistry = (*Registry)(nil)
	_ ports.ServiceResolver = (*Registry)(nil)
)

const scanBatch = 100

type client interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
}

// Registry keeps one expiring key per instance: <prefix>:<service>:<id>.
type Registry struct {
	logger *slog.Logger
	client client
	prefix string
	ttl    time.Duration
}

func NewRegistry(logger *slog.Logger, c client, prefix string, ttl time.Duration) (*Registry, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("redis: registration ttl must be greater than zero")
	}

	if prefix == "" {
		return nil, fmt.Errorf("redis: key prefix must not be empty")
	}

	return &Registry{
		logger: logger,
		client: c,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

// Register writes the instance document and refreshes its ttl.
func (r *Registry) Register(ctx context.Context, instance ports.Instance) error {
	key, err := r.instanceKey(instance)
	if err != nil {
		return err
	}

	data, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("failed to marshal instance: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store instance %s: %w", key, err)
	}

	return nil
}

func (r *Registry) Deregister(ctx context.Context, instance ports.Instance) error {
	key, err := r.instanceKey(instance)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete instance %s: %w", key, err)
	}

	return nil
}

// Resolve lists the live instances of a service.
func (r *Registry) Resolve(ctx context.Context, service string) ([]ports.Instance, error) {
	if err := validateService(service); err != nil {
		return nil, err
	}

	match := r.serviceKey(service) + ":*"

	var (
		instances []ports.Instance
		cursor    uint64
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, match, scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", match, err)
		}

		for _, key := range keys {
			data, err := r.client.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				// Expired between SCAN and GET.
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("failed to get %s: %w", key, err)
			}

			var instance ports.Instance
			if err := json.Unmarshal(data, &instance); err != nil {
				r.logger.WarnContext(ctx, "Skipping malformed instance document", slog.String("key", key), slog.Any("error", err))
				continue
			}

			instances = append(instances, instance)
		}

		if next == 0 {
			return instances, nil
		}

		cursor = next
	}
}

func (r *Registry) serviceKey(service string) string {
	return r.prefix + ":" + service
}

func (r *Registry) instanceKey(instance ports.Instance) (string, error) {
	if instance.Service == "" || instance.ID == "" {
		return "", fmt.Errorf("redis: instance service and id must not be empty")
	}

	if err := validateService(instance.Service); err != nil {
		return "", err
	}

	return r.serviceKey(instance.Service) + ":" + instance.ID, nil
}

// validateService rejects names that would act as glob patterns in SCAN MATCH or span key segments.
func validateService(service string) error {
	if service == "" {
		return fmt.Errorf("redis: service name must not be empty")
	}

	if strings.ContainsAny(service, `:*?[]\`) {
		return fmt.Errorf("redis: invalid service name %q", service)
	}

	return nil
}
