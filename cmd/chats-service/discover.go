package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/khmm12/chats-service/internal/adapter/mdns"
	"github.com/khmm12/chats-service/internal/adapter/redis"
	"github.com/khmm12/chats-service/internal/common/logging"
	"github.com/khmm12/chats-service/internal/common/tracing"
	"github.com/khmm12/chats-service/internal/ports"
	"github.com/khmm12/chats-service/internal/usecase"
)

type Discover struct {
	Backend string `name:"backend" env:"DISCOVER_BACKEND" default:"mdns" enum:"mdns,redis" help:"Backend to query (mdns, redis)."`
	Name    string `arg:"" help:"Service name (redis) or host name (mdns, e.g. chats-1.local)."`
}

func (d *Discover) Run(cli *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logLevel, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse to log level: %w", err)
	}

	logger := logging.New(os.Stderr, logLevel)

	var resolver ports.ServiceResolver

	switch d.Backend {
	case backendMDNS:
		r, err := mdns.NewResolver(logger, cli.mdnsOptions(logger), cli.Discovery.Timeout, 1)
		if err != nil {
			return err
		}

		defer func() { _ = r.Close() }()

		resolver = r

	case backendRedis:
		client, err := cli.newRedisClient(ctx)
		if err != nil {
			return err
		}

		defer func() { _ = client.Close() }()

		r, err := redis.NewRegistry(logger, client, cli.Redis.Prefix, cli.Redis.TTL)
		if err != nil {
			return err
		}

		resolver = r
	}

	uc := usecase.NewResolveInstancesUseCase(logger, resolver)

	instances, err := uc.Execute(tracing.WithTraceID(ctx), usecase.ResolveInstancesQuery{Name: d.Name})
	if err != nil {
		return err
	}

	return printInstances(os.Stdout, instances)
}

func printInstances(w io.Writer, instances []ports.Instance) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tSERVICE\tHOST\tADDRESS\tPORT")

	for _, i := range instances {
		port := "-"
		if i.Port > 0 {
			port = strconv.Itoa(i.Port)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", i.ID, orDash(i.Service), i.Host, orDash(i.Address), port)
	}

	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
