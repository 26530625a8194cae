// Copyright 2017-2026, Square, Inc.

// Package shaderc provides a framework for integration with other programs.
package shaderc

import (
	"fmt"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/square/shadergraph/client"
	"github.com/square/shadergraph/shaderc/app"
	"github.com/square/shadergraph/shaderc/cmd"
	"github.com/square/shadergraph/shaderc/config"
	"github.com/square/shadergraph/util"
	v "github.com/square/shadergraph/version"
)

// Run runs shaderc and returns when done. When using a standard shaderc bin,
// Run is called by shaderc/bin/main.go. When shaderc is wrapped by custom
// code, that code imports this pkg then calls shaderc.Run() with its custom
// factories. If a factory is not set (nil), then the default factory is used.
func Run(ctx app.Context) error {
	return RunArgs(ctx, os.Args[1:])
}

// RunArgs is Run with explicit command line args, not including the program.
func RunArgs(ctx app.Context, args []string) error {
	// //////////////////////////////////////////////////////////////////////
	// Config and command line
	// //////////////////////////////////////////////////////////////////////

	// Options are set in this order: config -> env var -> cmd line option.
	// So first we must apply config files, then do cmd line parsing which
	// will apply env vars and cmd line options.

	// Parse cmd line to get --config files
	cmdLine, err := config.ParseCommandLine(config.Options{}, args)
	if err != nil {
		return err
	}
	if cmdLine.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// --config files override defaults if given
	configFiles := config.DEFAULT_CONFIG_FILES
	if cmdLine.Config != "" {
		configFiles = cmdLine.Config
	}

	// Parse default options from config files
	def := config.ParseConfigFiles(configFiles)

	// Parse env vars and cmd line options, override default config
	cmdLine, err = config.ParseCommandLine(def, args)
	if err != nil {
		return err
	}

	// Final options and commands
	var o config.Options = cmdLine.Options
	var c config.Command = cmdLine.Command
	app.Debug("command: %#v", c)
	app.Debug("options: %#v", o)

	if ctx.Hooks.AfterParseOptions != nil {
		app.Debug("calling hook AfterParseOptions")
		ctx.Hooks.AfterParseOptions(&o)
		app.Debug("options: %#v", o)
	}
	ctx.Options = o
	ctx.Command = c

	// //////////////////////////////////////////////////////////////////////
	// Help and version
	// //////////////////////////////////////////////////////////////////////
	if o.Help || c.Cmd == "" || (c.Cmd == "help" && len(c.Args) == 0) {
		config.Help()
		return app.ErrHelp
	}
	if o.Version {
		fmt.Fprintln(ctx.Out, "shaderc "+v.Version())
		return nil
	}

	// //////////////////////////////////////////////////////////////////////
	// Compile server client
	// //////////////////////////////////////////////////////////////////////
	if o.Addr != "" {
		sgc, err := makeClient(ctx)
		if err != nil {
			return err
		}
		ctx.Client = sgc
	}

	// //////////////////////////////////////////////////////////////////////
	// Commands
	// //////////////////////////////////////////////////////////////////////
	cmdFactory := &cmd.DefaultFactory{}

	// shaderc help <command>
	if c.Cmd == "help" {
		run, err := cmdFactory.Make(c.Args[0], ctx)
		if err != nil {
			return fmt.Errorf("Unknown command: %s. Run 'shaderc help' to list commands.", c.Args[0])
		}
		fmt.Fprint(ctx.Out, run.Help())
		return nil
	}

	var run app.Command
	if ctx.Factories.Command != nil {
		run, err = ctx.Factories.Command.Make(c.Cmd, ctx)
		if err != nil {
			switch err {
			case cmd.ErrNotExist:
				app.Debug("user cmd factory cannot make a %s cmd, trying default factory", c.Cmd)
			default:
				return fmt.Errorf("User command factory error: %s", err)
			}
		}
	}
	if run == nil {
		app.Debug("using default factory to make a %s cmd", c.Cmd)
		run, err = cmdFactory.Make(c.Cmd, ctx)
		if err != nil {
			switch err {
			case cmd.ErrNotExist:
				return fmt.Errorf("Unknown command: %s. Run 'shaderc help' to list commands.", c.Cmd)
			default:
				return fmt.Errorf("Command factory error: %s", err)
			}
		}
	}

	if err := run.Prepare(); err != nil {
		app.Debug("%s Prepare error: %s", c.Cmd, err)
		return err
	}
	if err := run.Run(); err != nil {
		app.Debug("%s Run error: %s", c.Cmd, err)
		return err
	}
	return nil
}

func makeClient(ctx app.Context) (client.Client, error) {
	var httpClient *http.Client
	if ctx.Factories.HTTPClient != nil {
		var err error
		httpClient, err = ctx.Factories.HTTPClient.Make(ctx)
		if err != nil {
			return nil, fmt.Errorf("Error making http.Client: %s", err)
		}
	} else {
		httpClient = &http.Client{
			Timeout: time.Duration(ctx.Options.Timeout) * time.Millisecond,
		}
		tls := ctx.Options.TLS
		if tls.CertFile != "" && tls.KeyFile != "" && tls.CAFile != "" {
			tlsConfig, err := util.NewTLSConfig(tls.CAFile, tls.CertFile, tls.KeyFile)
			if err != nil {
				return nil, fmt.Errorf("Error loading TLS config: %s", err)
			}
			httpClient.Transport = &http.Transport{TLSClientConfig: tlsConfig}
		}
	}
	app.Debug("addr: %s", ctx.Options.Addr)
	return client.NewClient(httpClient, ctx.Options.Addr), nil
}
