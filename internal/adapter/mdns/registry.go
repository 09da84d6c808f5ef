package mdns

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/pion/mdns/v2"

	"github.com/khmm12/chats-service/internal/ports"
)

var _ ports.ServiceRegistry = (*Registry)(nil)

// Registry advertises the instance host name over multicast DNS.
type Registry struct {
	logger *slog.Logger
	opts   Options

	mu   sync.Mutex
	conn *mdns.Conn
	name string
	addr string
}

func NewRegistry(logger *slog.Logger, opts Options) (*Registry, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Registry{
		logger: logger,
		opts:   opts,
	}, nil
}

// Register starts answering for the instance's local name. Repeated calls for the same name are no-ops.
func (r *Registry) Register(ctx context.Context, instance ports.Instance) error {
	name := LocalName(instance.Host)
	if name == "" {
		return fmt.Errorf("mdns: instance host must not be empty")
	}

	var localAddr net.IP
	if instance.Address != "" {
		localAddr = net.ParseIP(instance.Address)
		if localAddr == nil {
			return fmt.Errorf("mdns: invalid instance address %q", instance.Address)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if r.conn != nil && r.name == name && r.addr == instance.Address {
		return nil
	}

	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			r.logger.WarnContext(ctx, "Failed to close previous mdns conn", slog.Any("error", err))
		}

		r.conn = nil
	}

	conn, err := buildServer(r.opts, []string{name}, localAddr)
	if err != nil {
		return err
	}

	r.conn = conn
	r.name = name
	r.addr = instance.Address

	r.logger.InfoContext(ctx, "Answering mdns queries", slog.String("name", name))

	return nil
}

func (r *Registry) Deregister(_ context.Context, _ ports.Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil {
		return nil
	}

	err := r.conn.Close()
	r.conn = nil
	r.name = ""
	r.addr = ""

	if err != nil {
		return fmt.Errorf("failed to close mdns conn: %w", err)
	}

	return nil
}

// Close releases the mDNS conn if the instance is still registered.
func (r *Registry) Close() error {
	return r.Deregister(context.Background(), ports.Instance{})
}
