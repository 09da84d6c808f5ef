package usecase

import (
	"errors"
	"testing"

	"github.com/khmm12/chats-service/internal/ports"
	portsm "github.com/khmm12/chats-service/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveInstancesUseCase_SortsInstancesByID(t *testing.T) {
	ctx := t.Context()

	resolver := portsm.NewMockServiceResolver(t)
	uc := NewResolveInstancesUseCase(newDiscardLogger(), resolver)

	resolver.On("Resolve", mock.Anything, "chats-service").Return([]ports.Instance{
		{ID: "b", Host: "chats-2"},
		{ID: "a", Host: "chats-1"},
	}, nil)

	instances, err := uc.Execute(ctx, ResolveInstancesQuery{Name: " chats-service "})

	require.NoError(t, err)
	require.Len(t, instances, 2)
	require.Equal(t, "a", instances[0].ID)
	require.Equal(t, "b", instances[1].ID)
}

func TestResolveInstancesUseCase_RejectsEmptyName(t *testing.T) {
	resolver := portsm.NewMockServiceResolver(t)
	uc := NewResolveInstancesUseCase(newDiscardLogger(), resolver)

	_, err := uc.Execute(t.Context(), ResolveInstancesQuery{Name: "  "})

	require.ErrorContains(t, err, "name must not be empty")
	resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestResolveInstancesUseCase_WrapsResolverError(t *testing.T) {
	resolver := portsm.NewMockServiceResolver(t)
	uc := NewResolveInstancesUseCase(newDiscardLogger(), resolver)

	resolver.On("Resolve", mock.Anything, "chats-1.local").Return(nil, errors.New("no answer"))

	_, err := uc.Execute(t.Context(), ResolveInstancesQuery{Name: "chats-1.local"})

	require.ErrorContains(t, err, "failed to resolve chats-1.local")
}
