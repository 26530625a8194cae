// Copyright 2017-2026, Square, Inc.

// Package app provides app-wide data structs and functions.
package app

import (
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/square/shadergraph/client"
	"github.com/square/shadergraph/compiler"
	"github.com/square/shadergraph/shaderc/config"
)

var (
	ErrHelp       = errors.New("print help")
	ErrNoServer   = errors.New("--addr is required for this command")
	ErrLintFailed = errors.New("documents have errors")
)

// Context represents how to run shaderc. A context is passed to shaderc.Run().
// A default context is created in main.go. Wrapper code can integrate with
// shaderc by passing a custom context to shaderc.Run(). Integration is done
// primarily with hooks and factories.
type Context struct {
	// Set in main.go or by wrapper
	In        io.Reader // where to read documents given as "-" (default: stdin)
	Out       io.Writer // where to print output (default: stdout)
	Hooks     Hooks     // for integration with other code
	Factories Factories // for integration with other code

	// Set automatically in shaderc.Run()
	Options config.Options // command line options (--addr, etc.)
	Command config.Command // command and args, if any ("compile <file>", etc.)
	Client  client.Client  // compile server client, if --addr is set
}

type Command interface {
	Prepare() error
	Run() error
	Cmd() string
	Help() string
}

type CommandFactory interface {
	Make(string, Context) (Command, error)
}

type HTTPClientFactory interface {
	Make(Context) (*http.Client, error)
}

// CompilerFactory makes the compiler for local compiles.
type CompilerFactory interface {
	Make(Context) (*compiler.Compiler, error)
}

type Factories struct {
	HTTPClient HTTPClientFactory
	Command    CommandFactory
	Compiler   CompilerFactory
}

type Hooks struct {
	AfterParseOptions func(*config.Options)
	CommandRunResult  func(interface{}, error)
}

func Debug(fmt string, v ...interface{}) {
	log.Debugf(fmt, v...)
}
