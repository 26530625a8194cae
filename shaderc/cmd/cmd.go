// Copyright 2017-2026, Square, Inc.

// Package cmd provides all the commands that shaderc can run: compile, lint, etc.
package cmd

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/square/shadergraph/shaderc/app"
)

var (
	ErrNotExist = errors.New("command does not exist")
)

type DefaultFactory struct {
}

func (f *DefaultFactory) Make(name string, ctx app.Context) (app.Command, error) {
	switch name {
	case "compile":
		return NewCompile(ctx), nil
	case "lint":
		return NewLint(ctx), nil
	case "upgrade":
		return NewUpgrade(ctx), nil
	case "serve":
		return NewServe(ctx), nil
	case "shaders":
		return NewShaders(ctx), nil
	case "schema":
		return NewSchema(ctx), nil
	case "version":
		return NewVersion(ctx), nil
	default:
		return nil, ErrNotExist
	}
}

// documentName is the default name of a document read from file.
func documentName(file string) string {
	if file == "-" {
		return "stdin"
	}
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}
