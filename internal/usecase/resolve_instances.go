package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/khmm12/chats-service/internal/ports"
)

type ResolveInstancesUseCase struct {
	logger   *slog.Logger
	resolver ports.ServiceResolver
}

func NewResolveInstancesUseCase(logger *slog.Logger, resolver ports.ServiceResolver) *ResolveInstancesUseCase {
	return &ResolveInstancesUseCase{
		logger:   logger,
		resolver: resolver,
	}
}

type ResolveInstancesQuery struct {
	Name string
}

// Execute returns the instances known under the name, ordered by instance id.
func (u *ResolveInstancesUseCase) Execute(ctx context.Context, q ResolveInstancesQuery) ([]ports.Instance, error) {
	name := strings.TrimSpace(q.Name)
	if name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}

	instances, err := u.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", name, err)
	}

	slices.SortFunc(instances, func(a, b ports.Instance) int {
		return strings.Compare(a.ID, b.ID)
	})

	u.logger.DebugContext(ctx, "Resolved instances", slog.String("name", name), slog.Int("count", len(instances)))

	return instances, nil
}
