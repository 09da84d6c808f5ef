package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/khmm12/chats-service/internal/adapter/httpsrv"
	"github.com/khmm12/chats-service/internal/adapter/prometheus"
	"github.com/khmm12/chats-service/internal/adapter/worker"
	"github.com/khmm12/chats-service/internal/common/logging"
	"github.com/khmm12/chats-service/internal/common/tracing"
	"github.com/khmm12/chats-service/internal/ports"
	"github.com/khmm12/chats-service/internal/usecase"
)

type HTTP struct {
	Addr string `name:"addr" env:"HTTP_ADDR" default:"0.0.0.0:8080" help:"HTTP address to serve the chat endpoint, health and metrics on."`
}

type Metrics struct {
	Path string `name:"path" env:"METRICS_PATH" default:"/metrics" help:"Path to serve Prometheus metrics"`
}

type Serve struct {
	HTTP    HTTP    `embed:"" prefix:"http."`
	Metrics Metrics `embed:"" prefix:"metrics."`
}

func (s *Serve) Validate() error {
	var errs []error

	if !isTCPAddr(s.HTTP.Addr) {
		errs = append(errs, fmt.Errorf("--http.addr: must be a valid tcp listening address (e.g. 0.0.0.0:8080)"))
	}

	if len(s.Metrics.Path) < 2 || s.Metrics.Path[0] != '/' || s.Metrics.Path == httpsrv.ChatPath {
		errs = append(errs, fmt.Errorf("--metrics.path: must be an absolute path other than / and %s", httpsrv.ChatPath))
	}

	return errors.Join(errs...)
}

func (s *Serve) Run(cli *CLI) error {
	ctx := context.Background()
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logLevel, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse to log level: %w", err)
	}

	logger := logging.New(os.Stdout, logLevel)

	exporter, err := prometheus.NewExporter()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create prometheus exporter", logging.Error(err))
		return err
	}

	httpsrv := httpsrv.NewServer(s.HTTP.Addr, httpsrv.ServerOptions{
		Logger:         logger,
		Chat:           usecase.NewChatUseCase(logger, prometheus.NewChatRequestRecorder(exporter)),
		Observer:       exporter,
		MetricsHandler: exporter.Handler(),
		MetricsPath:    s.Metrics.Path,
	})

	if err := httpsrv.Listen(); err != nil {
		logger.ErrorContext(ctx, "Failed to bind HTTP Server", slog.String("address", s.HTTP.Addr), logging.Error(err))
		return err
	}

	instance, err := newInstance(&cli.Discovery, httpsrv.ListenAddr())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to describe instance", logging.Error(err))
		_ = httpsrv.Shutdown(ctx)
		return err
	}

	backends, closeBackends, err := cli.buildRegistries(ctx, logger)
	defer func() {
		if cerr := closeBackends(); cerr != nil {
			logger.ErrorContext(ctx, "Failed to close discovery backends", logging.Error(cerr))
		}
	}()

	if err != nil {
		logger.ErrorContext(ctx, "Failed to create discovery backends", logging.Error(err))
		_ = httpsrv.Shutdown(ctx)
		return err
	}

	publisher := prometheus.NewRegistrationStatePublisher(logger, exporter)
	registerUC := usecase.NewRegisterInstanceUseCase(logger, backends, publisher)
	deregisterUC := usecase.NewDeregisterInstanceUseCase(logger, backends, publisher)

	logger.InfoContext(ctx, "Registering instance",
		slog.String("instance_id", instance.ID),
		slog.String("service", instance.Service),
		slog.String("endpoint", instance.Endpoint()),
		slog.Any("backends", cli.Discovery.Backends))

	regCtx, regCancel := context.WithTimeout(tracing.WithTraceID(ctx), cli.Discovery.Timeout)
	err = registerUC.Execute(regCtx, usecase.RegisterInstanceCommand{Instance: instance})
	regCancel()

	if err != nil {
		logger.ErrorContext(ctx, "Failed to register instance", logging.Error(err))
		_ = httpsrv.Shutdown(ctx)
		_ = deregisterUC.Execute(context.Background(), usecase.DeregisterInstanceCommand{Instance: instance})
		return err
	}

	heartbeat := worker.NewWorker(
		logger,
		cli.Discovery.Heartbeat,
		newHeartbeatTask(logger, registerUC, instance, cli.Discovery.Timeout),
		worker.Options{},
	)

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = stopService(shutdownCtx, logger, heartbeat, deregisterUC, instance, httpsrv)
	}()

	errCh := make(chan error, 2)

	go func() {
		logger.InfoContext(ctx, "Start HTTP Server", slog.String("address", httpsrv.ListenAddr()))

		err := httpsrv.Start()
		if err != nil {
			logger.ErrorContext(ctx, "Failed to start HTTP Server", logging.Error(err))
			errCh <- err
		}
	}()

	go func() {
		logger.InfoContext(ctx, "Start Heartbeat", slog.Duration("interval", cli.Discovery.Heartbeat))

		err := heartbeat.Start()
		if err != nil {
			logger.ErrorContext(ctx, "Failed to start Heartbeat", logging.Error(err))
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

type stopper interface {
	Shutdown(ctx context.Context) error
}

type deregisterUC interface {
	Execute(ctx context.Context, cmd usecase.DeregisterInstanceCommand) error
}

// stopService waits for the heartbeat before deregistering so no refresh can re-register the instance,
// then stops accepting HTTP requests.
func stopService(ctx context.Context, logger *slog.Logger, heartbeat stopper, uc deregisterUC, instance ports.Instance, server stopper) error {
	var errs []error

	logger.InfoContext(ctx, "Stopping...")

	logger.InfoContext(ctx, "Stopping Heartbeat...")
	if err := heartbeat.Shutdown(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to stop Heartbeat", logging.Error(err))
		errs = append(errs, err)
	}

	logger.InfoContext(ctx, "Deregistering instance...")
	if err := uc.Execute(ctx, usecase.DeregisterInstanceCommand{Instance: instance}); err != nil {
		logger.ErrorContext(ctx, "Failed to deregister instance", logging.Error(err))
		errs = append(errs, err)
	}

	logger.InfoContext(ctx, "Stopping HTTP Server...")
	if err := server.Shutdown(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to stop HTTP Server", logging.Error(err))
		errs = append(errs, err)
	}

	logger.InfoContext(ctx, "Stopped")

	return errors.Join(errs...)
}

// newInstance describes this process. The port comes from the bound listener so ":0" works.
func newInstance(d *Discovery, listenAddr string) (ports.Instance, error) {
	_, portStr, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return ports.Instance{}, fmt.Errorf("failed to parse listen address %s: %w", listenAddr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return ports.Instance{}, fmt.Errorf("failed to parse listen port %s: %w", portStr, err)
	}

	id := d.InstanceID
	if id == "" {
		v, err := uuid.NewV7()
		if err != nil {
			return ports.Instance{}, fmt.Errorf("failed to generate instance id: %w", err)
		}

		id = v.String()
	}

	host := d.Host
	if host == "" {
		host, err = os.Hostname()
		if err != nil {
			return ports.Instance{}, fmt.Errorf("failed to read host name: %w", err)
		}
	}

	return ports.Instance{
		ID:           id,
		Service:      d.Service,
		Host:         host,
		Address:      d.Address,
		Port:         port,
		RegisteredAt: time.Now().UTC(),
	}, nil
}

type heartbeatUC interface {
	Execute(ctx context.Context, cmd usecase.RegisterInstanceCommand) error
}

type heartbeatTask struct {
	logger   *slog.Logger
	uc       heartbeatUC
	instance ports.Instance
	timeout  time.Duration
}

func newHeartbeatTask(logger *slog.Logger, uc heartbeatUC, instance ports.Instance, timeout time.Duration) *heartbeatTask {
	return &heartbeatTask{
		logger:   logger,
		uc:       uc,
		instance: instance,
		timeout:  timeout,
	}
}

func (t *heartbeatTask) Execute(ctx context.Context) error {
	now := time.Now()

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	t.logger.DebugContext(ctx, "Refresh registration")

	err := t.uc.Execute(ctx, usecase.RegisterInstanceCommand{
		Instance: t.instance,
	})

	if err != nil {
		t.logger.ErrorContext(ctx, "Failed to refresh registration", logging.Error(err), slog.Duration("duration", time.Since(now)))
	} else {
		t.logger.DebugContext(ctx, "Refreshed registration", slog.Duration("duration", time.Since(now)))
	}

	return nil
}
