package main

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Discovery Discovery `embed:"" prefix:"discovery."`
	MDNS      MDNS      `embed:"" prefix:"mdns."`
	Redis     Redis     `embed:"" prefix:"redis."`
	LogLevel  string    `name:"log.level" env:"LOG_LEVEL" default:"info" help:"Log level (debug, info, warn, error)"`

	Serve    Serve    `cmd:"" default:"withargs" help:"Serve the chat endpoint and register this instance (default)."`
	Discover Discover `cmd:"" help:"Resolve registered instances of a service or mDNS name."`
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("chats-service"),
		kong.Description("Chat client placeholder service."),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(kctx.Run(&cli))
}
