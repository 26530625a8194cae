// Copyright 2026, Square, Inc.

package cmd

import (
	"fmt"
	"time"

	"github.com/square/shadergraph/proto"
	"github.com/square/shadergraph/shaderc/app"
)

type Shaders struct {
	ctx    app.Context
	filter proto.ShaderFilter
}

func NewShaders(ctx app.Context) *Shaders {
	return &Shaders{
		ctx: ctx,
	}
}

func (c *Shaders) Prepare() error {
	if c.ctx.Client == nil {
		return app.ErrNoServer
	}
	if len(c.ctx.Command.Args) > 0 {
		c.filter.Document = c.ctx.Command.Args[0]
	}
	return nil
}

func (c *Shaders) Run() error {
	shaders, err := c.ctx.Client.ListShaders(c.filter)
	if c.ctx.Hooks.CommandRunResult != nil {
		c.ctx.Hooks.CommandRunResult(shaders, err)
		return nil
	}
	if err != nil {
		return err
	}

	line := "%-20s %-20s %-9s %-8s %s\n"
	fmt.Fprintf(c.ctx.Out, line, "ID", "DOCUMENT", "PRECISION", "STATE", "CREATED")
	for _, s := range shaders {
		fmt.Fprintf(c.ctx.Out, line, s.Id, s.Document, s.Precision, proto.StateName[s.State], s.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

func (c *Shaders) Cmd() string {
	return "shaders"
}

func (c *Shaders) Help() string {
	return "'shaderc shaders [document]' lists shaders saved by the server, newest first.\n" +
		"Requires --addr.\n"
}
