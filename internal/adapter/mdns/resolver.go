package mdns

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pion/mdns/v2"
	"golang.org/x/sync/semaphore"

	"github.com/khmm12/chats-service/internal/ports"
)

var _ ports.ServiceResolver = (*Resolver)(nil)

var ErrNotFound = errors.New("mdns: no answer")

// Resolver looks up local names with mDNS queries. It answers for no names itself.
type Resolver struct {
	logger  *slog.Logger
	conn    *mdns.Conn
	timeout time.Duration
	sem     *semaphore.Weighted
}

func NewResolver(logger *slog.Logger, opts Options, timeout time.Duration, concurrency int) (*Resolver, error) {
	if concurrency <= 0 {
		return nil, fmt.Errorf("mdns: query concurrency must be greater than zero")
	}

	if timeout <= 0 {
		return nil, fmt.Errorf("mdns: query timeout must be greater than zero")
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	conn, err := buildServer(opts, nil, nil)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		logger:  logger,
		conn:    conn,
		timeout: timeout,
		sem:     semaphore.NewWeighted(int64(concurrency)),
	}, nil
}

func (r *Resolver) Close() error {
	return r.conn.Close()
}

func (r *Resolver) Resolve(ctx context.Context, name string) ([]ports.Instance, error) {
	name = LocalName(name)
	if name == "" {
		return nil, fmt.Errorf("mdns: name must not be empty")
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	defer r.sem.Release(1)

	innerCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, addr, err := r.conn.QueryAddr(innerCtx, name)
	if err != nil {
		// The caller's own deadline wins over the per-query timeout.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if errors.Is(err, context.DeadlineExceeded) || errors.Is(innerCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w for %s within %s", ErrNotFound, name, r.timeout)
		}

		return nil, err
	}

	r.logger.DebugContext(ctx, "Resolved mdns name", slog.String("name", name), slog.String("address", addr.String()))

	return []ports.Instance{{
		ID:      name,
		Host:    name,
		Address: addr.Unmap().String(),
	}}, nil
}
