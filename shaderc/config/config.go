// Copyright 2016-2026, Square, Inc.

// Package config handles config files, --config, and env vars at startup.
package config

import (
	"fmt"
	"io/ioutil"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	sgconfig "github.com/square/shadergraph/config"
)

const (
	DEFAULT_CONFIG_FILES = "/etc/shaderc/shaderc.yaml,~/.shaderc.yaml"
	DEFAULT_TIMEOUT      = 5000 // 5s
)

// Options represents typical command line options: --addr, --config, etc.
type Options struct {
	Addr      string `arg:"env" yaml:"addr"` // compile server; compile locally if not set
	Config    string `arg:"env"`
	Debug     bool
	Help      bool
	Precision string `arg:"-p" yaml:"precision"`
	Timeout   uint   `arg:"env" yaml:"timeout"` // milliseconds
	Version   bool
	Verbose   bool `arg:"-v"`

	// Client TLS, from config files only
	TLS sgconfig.TLS `arg:"-" yaml:"tls"`
}

// Command represents a command (compile, lint, etc.) and its values.
type Command struct {
	Cmd  string   `arg:"positional"`
	Args []string `arg:"positional"`
}

// CommandLine represents options (--addr, etc.) and commands (compile, etc.).
// The caller is expected to copy and use the embedded structs separately, like:
//
//   var o config.Options = cmdLine.Options
//   var c config.Command = cmdLine.Command
//
type CommandLine struct {
	Options
	Command
}

// ParseCommandLine parses args and env vars. Command line options override env
// vars. Default options are used unless overridden by env vars or command line
// options. Defaults are usually parsed from config files.
func ParseCommandLine(def Options, args []string) (CommandLine, error) {
	var c CommandLine
	c.Options = def
	p, err := arg.NewParser(arg.Config{Program: "shaderc"}, &c)
	if err != nil {
		return c, fmt.Errorf("arg.NewParser: %s", err)
	}
	if err := p.Parse(args); err != nil {
		switch err {
		case arg.ErrHelp:
			c.Help = true
		case arg.ErrVersion:
			c.Version = true
		default:
			return c, fmt.Errorf("Error parsing command line: %s", err)
		}
	}
	return c, nil
}

// ParseConfigFiles reads the comma-separated config files in order. Options
// set in later files override earlier ones. Missing or invalid files are
// skipped.
func ParseConfigFiles(files string) Options {
	def := Options{
		Timeout: DEFAULT_TIMEOUT,
	}
	for _, file := range strings.Split(files, ",") {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}
		// If file starts with ~/, we need to expand this to the user home dir
		// because this is a shell expansion, not something Go knows about.
		if strings.HasPrefix(file, "~/") {
			usr, err := user.Current()
			if err != nil {
				log.Debugf("user.Current: %s", err)
				continue
			}
			file = filepath.Join(usr.HomeDir, file[2:])
		}

		absfile, err := filepath.Abs(file)
		if err != nil {
			log.Debugf("filepath.Abs(%s) error: %s", file, err)
			continue
		}

		bytes, err := ioutil.ReadFile(absfile)
		if err != nil {
			log.Debugf("Cannot read config file %s: %s", file, err)
			continue
		}

		var o Options
		if err := yaml.Unmarshal(bytes, &o); err != nil {
			log.Debugf("Invalid YAML in config file %s: %s", file, err)
			continue
		}

		// Set options from this config file only if they're set
		log.Debugf("Applying config file %s (%s)", file, absfile)
		if o.Addr != "" {
			def.Addr = o.Addr
		}
		if o.Precision != "" {
			def.Precision = o.Precision
		}
		if o.Timeout != 0 {
			def.Timeout = o.Timeout
		}
		if o.TLS.CertFile != "" {
			def.TLS = o.TLS
		}
	}
	return def
}

// Help prints the commands and options to stdout.
func Help() {
	fmt.Printf("Usage:\n"+
		"  shaderc [options] <command> [args]\n\n"+
		"Commands:\n"+
		"  compile <file|->   Compile a graph document and print the shader\n"+
		"  lint <dir>         Check every document in a directory\n"+
		"  upgrade <file|->   Print a document upgraded to the current version\n"+
		"  serve [config]     Run the compile server\n"+
		"  shaders [document] List shaders saved by the server (requires --addr)\n"+
		"  schema             Print the document schema\n"+
		"  version            Print the shadergraph version\n\n"+
		"Options:\n"+
		"  --addr        Compile server URL (env ADDR)\n"+
		"  --config      Config files (default: %s)\n"+
		"  --debug       Print debug output to stderr\n"+
		"  --help        Print this help\n"+
		"  --precision   float or half\n"+
		"  --timeout     Compile or API timeout in milliseconds (default: %d)\n"+
		"  --verbose     Print warnings and the property block\n"+
		"  --version     Print the shadergraph version\n",
		DEFAULT_CONFIG_FILES, DEFAULT_TIMEOUT)
}

