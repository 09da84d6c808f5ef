package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khmm12/chats-service/internal/ports"
	portsm "github.com/khmm12/chats-service/internal/ports/mocks"
	"github.com/khmm12/chats-service/internal/usecase"
)

func TestServe_FailsWhenRegistryIsUnreachable(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	closedAddr := l.Addr().String()
	require.NoError(t, l.Close())

	cli := validCLI()
	cli.Discovery.Backends = []string{"redis"}
	cli.Redis.Addr = closedAddr
	cli.LogLevel = "error"

	s := Serve{HTTP: HTTP{Addr: "127.0.0.1:0"}, Metrics: Metrics{Path: "/metrics"}}

	err = s.Run(cli)

	require.ErrorContains(t, err, "failed to ping redis")
}

func TestServe_FailsWhenAddressIsTaken(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer l.Close()

	cli := validCLI()
	cli.LogLevel = "error"

	s := Serve{HTTP: HTTP{Addr: l.Addr().String()}, Metrics: Metrics{Path: "/metrics"}}

	err = s.Run(cli)

	require.ErrorContains(t, err, "address already in use")
}

func TestServe_ValidateReportsEveryProblem(t *testing.T) {
	s := Serve{HTTP: HTTP{Addr: "localhost:8080"}, Metrics: Metrics{Path: "metrics"}}

	err := s.Validate()

	require.ErrorContains(t, err, "--http.addr")
	require.ErrorContains(t, err, "--metrics.path")
}

func TestStopService_StopsHeartbeatThenDeregistersThenStopsHTTP(t *testing.T) {
	var order []string

	mdnsReg := portsm.NewMockServiceRegistry(t)
	redisReg := portsm.NewMockServiceRegistry(t)
	publisher := portsm.NewMockRegistrationStatePublisher(t)

	instance := ports.Instance{ID: "chats-a", Service: "chats-service", Host: "chats-1", Port: 8080}

	mdnsReg.On("Deregister", mock.Anything, instance).Run(func(mock.Arguments) { order = append(order, "mdns") }).Return(nil)
	redisReg.On("Deregister", mock.Anything, instance).Run(func(mock.Arguments) { order = append(order, "redis") }).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, false).Return(nil)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewDeregisterInstanceUseCase(logger, []usecase.RegistryBackend{
		{Name: "mdns", Registry: mdnsReg},
		{Name: "redis", Registry: redisReg},
	}, publisher)

	heartbeat := &recordingStopper{name: "heartbeat", order: &order}
	server := &recordingStopper{name: "http", order: &order}

	err := stopService(context.Background(), logger, heartbeat, uc, instance, server)

	require.NoError(t, err)
	require.Equal(t, []string{"heartbeat", "redis", "mdns", "http"}, order)
}

func TestStopService_KeepsGoingPastFailures(t *testing.T) {
	var order []string

	registry := portsm.NewMockServiceRegistry(t)
	publisher := portsm.NewMockRegistrationStatePublisher(t)

	instance := ports.Instance{ID: "chats-a", Service: "chats-service"}

	registry.On("Deregister", mock.Anything, instance).Return(errors.New("redis down"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewDeregisterInstanceUseCase(logger, []usecase.RegistryBackend{
		{Name: "redis", Registry: registry},
	}, publisher)

	heartbeat := &recordingStopper{name: "heartbeat", order: &order, err: context.DeadlineExceeded}
	server := &recordingStopper{name: "http", order: &order}

	err := stopService(context.Background(), logger, heartbeat, uc, instance, server)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorContains(t, err, "redis down")
	require.Equal(t, []string{"heartbeat", "http"}, order)
}

type recordingStopper struct {
	name  string
	order *[]string
	err   error
}

func (s *recordingStopper) Shutdown(context.Context) error {
	*s.order = append(*s.order, s.name)
	return s.err
}
