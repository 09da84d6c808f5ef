package usecase

import (
	"errors"
	"testing"

	"github.com/khmm12/chats-service/internal/ports"
	portsm "github.com/khmm12/chats-service/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterInstanceUseCase_RegistersWithEveryBackend(t *testing.T) {
	ctx := t.Context()

	mdnsReg := portsm.NewMockServiceRegistry(t)
	redisReg := portsm.NewMockServiceRegistry(t)
	publisher := portsm.NewMockRegistrationStatePublisher(t)

	instance := testInstance()

	mdnsReg.On("Register", mock.Anything, instance).Return(nil)
	redisReg.On("Register", mock.Anything, instance).Return(nil)
	publisher.On("Publish", mock.Anything, "mdns", true).Return(nil)
	publisher.On("Publish", mock.Anything, "redis", true).Return(nil)

	uc := NewRegisterInstanceUseCase(newDiscardLogger(), []RegistryBackend{
		{Name: "mdns", Registry: mdnsReg},
		{Name: "redis", Registry: redisReg},
	}, publisher)

	err := uc.Execute(ctx, RegisterInstanceCommand{Instance: instance})

	require.NoError(t, err)
}

func TestRegisterInstanceUseCase_KeepsRegisteringWhenOneBackendFails(t *testing.T) {
	ctx := t.Context()

	mdnsReg := portsm.NewMockServiceRegistry(t)
	redisReg := portsm.NewMockServiceRegistry(t)
	publisher := portsm.NewMockRegistrationStatePublisher(t)

	instance := testInstance()

	mdnsReg.On("Register", mock.Anything, instance).Return(nil)
	redisReg.On("Register", mock.Anything, instance).Return(errors.New("connection refused"))
	publisher.On("Publish", mock.Anything, "mdns", true).Return(nil)
	publisher.On("Publish", mock.Anything, "redis", false).Return(nil)

	uc := NewRegisterInstanceUseCase(newDiscardLogger(), []RegistryBackend{
		{Name: "mdns", Registry: mdnsReg},
		{Name: "redis", Registry: redisReg},
	}, publisher)

	err := uc.Execute(ctx, RegisterInstanceCommand{Instance: instance})

	require.ErrorContains(t, err, "failed to register instance with redis")
	require.ErrorContains(t, err, "connection refused")
	require.NotContains(t, err.Error(), "mdns")
}

func TestRegisterInstanceUseCase_IgnoresPublishFailures(t *testing.T) {
	ctx := t.Context()

	registry := portsm.NewMockServiceRegistry(t)
	publisher := portsm.NewMockRegistrationStatePublisher(t)

	instance := testInstance()

	registry.On("Register", mock.Anything, instance).Return(nil)
	publisher.On("Publish", mock.Anything, "mdns", true).Return(errors.New("publish failed"))

	uc := NewRegisterInstanceUseCase(newDiscardLogger(), []RegistryBackend{
		{Name: "mdns", Registry: registry},
	}, publisher)

	err := uc.Execute(ctx, RegisterInstanceCommand{Instance: instance})

	require.NoError(t, err)
}

func testInstance() ports.Instance {
	return ports.Instance{
		ID:      "0199f4b2-6f1e-7c3a-9d55-3f1b2c4d5e6f",
		Service: "chats-service",
		Host:    "chats-1",
		Port:    8080,
	}
}
