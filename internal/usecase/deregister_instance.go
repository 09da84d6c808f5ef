package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/khmm12/chats-service/internal/common/logging"
	"github.com/khmm12/chats-service/internal/ports"
)

type DeregisterInstanceUseCase struct {
	logger    *slog.Logger
	backends  []RegistryBackend
	publisher ports.RegistrationStatePublisher
}

func NewDeregisterInstanceUseCase(logger *slog.Logger, backends []RegistryBackend, publisher ports.RegistrationStatePublisher) *DeregisterInstanceUseCase {
	return &DeregisterInstanceUseCase{
		logger:    logger,
		backends:  backends,
		publisher: publisher,
	}
}

type DeregisterInstanceCommand struct {
	Instance ports.Instance
}

// Execute walks the backends in reverse registration order and keeps going past failures.
func (u *DeregisterInstanceUseCase) Execute(ctx context.Context, cmd DeregisterInstanceCommand) error {
	var errs []error

	for i := len(u.backends) - 1; i >= 0; i-- {
		b := u.backends[i]

		err := b.Registry.Deregister(ctx, cmd.Instance)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to deregister instance from %s: %w", b.Name, err))
			continue
		}

		u.logger.InfoContext(ctx, "Deregistered instance", slog.String("backend", b.Name))

		if perr := u.publisher.Publish(ctx, b.Name, false); perr != nil {
			u.logger.WarnContext(ctx, "Failed to publish registration state", slog.String("backend", b.Name), logging.Error(perr))
		}
	}

	return errors.Join(errs...)
}
