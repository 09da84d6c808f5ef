package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/khmm12/chats-service/internal/common/logging"
	"github.com/khmm12/chats-service/internal/ports"
)

type RegisterInstanceUseCase struct {
	logger    *slog.Logger
	backends  []RegistryBackend
	publisher ports.RegistrationStatePublisher
}

func NewRegisterInstanceUseCase(logger *slog.Logger, backends []RegistryBackend, publisher ports.RegistrationStatePublisher) *RegisterInstanceUseCase {
	return &RegisterInstanceUseCase{
		logger:    logger,
		backends:  backends,
		publisher: publisher,
	}
}

type RegisterInstanceCommand struct {
	Instance ports.Instance
}

// Execute registers the instance with every backend. A failing backend does not stop the others.
func (u *RegisterInstanceUseCase) Execute(ctx context.Context, cmd RegisterInstanceCommand) error {
	errs := make([]error, len(u.backends))

	var wg sync.WaitGroup

	for i, b := range u.backends {
		wg.Go(func() {
			err := b.Registry.Register(ctx, cmd.Instance)
			if err != nil {
				errs[i] = fmt.Errorf("failed to register instance with %s: %w", b.Name, err)
			} else {
				u.logger.DebugContext(ctx, "Registered instance",
					slog.String("backend", b.Name),
					slog.String("instance_id", cmd.Instance.ID))
			}

			perr := u.publisher.Publish(ctx, b.Name, err == nil)
			if perr != nil {
				u.logger.WarnContext(ctx, "Failed to publish registration state", slog.String("backend", b.Name), logging.Error(perr))
			}
		})
	}

	wg.Wait()

	return errors.Join(errs...)
}
