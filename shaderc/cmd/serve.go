// Copyright 2026, Square, Inc.

package cmd

import (
	"fmt"

	srvapp "github.com/square/shadergraph/app"
	"github.com/square/shadergraph/config"
	"github.com/square/shadergraph/server"
	"github.com/square/shadergraph/shaderc/app"
)

type Serve struct {
	ctx     app.Context
	cfgFile string
	server  *server.Server
}

func NewServe(ctx app.Context) *Serve {
	return &Serve{
		ctx: ctx,
	}
}

func (c *Serve) Prepare() error {
	if len(c.ctx.Command.Args) > 0 {
		c.cfgFile = c.ctx.Command.Args[0]
	}
	sctx := srvapp.Defaults()
	sctx.Hooks.LoadConfig = c.loadConfig
	c.server = server.NewServer(sctx)
	return c.server.Boot()
}

func (c *Serve) Run() error {
	return c.server.Run()
}

// loadConfig loads the server config file given on the command line, if any.
// --precision overrides the file.
func (c *Serve) loadConfig(sctx srvapp.Context) (config.Compiler, error) {
	cfg := config.Defaults()
	if c.cfgFile != "" {
		if err := config.Load(c.cfgFile, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %s", c.cfgFile, err)
		}
	}
	if c.ctx.Options.Precision != "" {
		cfg.Precision = c.ctx.Options.Precision
	}
	return cfg, nil
}

func (c *Serve) Cmd() string {
	return "serve"
}

func (c *Serve) Help() string {
	return "'shaderc serve [config]' runs the compile server.\n" +
		"config is a server config file. Without one, the server listens on " + config.DEFAULT_LISTEN_ADDRESS + " with an in-memory repo.\n"
}
