// Copyright 2026, Square, Inc.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/square/shadergraph/api"
	"github.com/square/shadergraph/proto"
	"github.com/square/shadergraph/shaderc/app"
)

type Schema struct {
	ctx app.Context
}

func NewSchema(ctx app.Context) *Schema {
	return &Schema{
		ctx: ctx,
	}
}

func (c *Schema) Prepare() error {
	return nil
}

func (c *Schema) Run() error {
	var s proto.Schema
	var err error
	if c.ctx.Client != nil {
		s, err = c.ctx.Client.Schema()
	} else {
		s = api.Schema()
	}
	if c.ctx.Hooks.CommandRunResult != nil {
		c.ctx.Hooks.CommandRunResult(s, err)
		return nil
	}
	if err != nil {
		return err
	}

	versions := make([]string, len(s.Versions))
	for i, v := range s.Versions {
		versions[i] = strconv.Itoa(v)
	}
	out := c.ctx.Out
	fmt.Fprintf(out, "version:    %d\n", s.Version)
	fmt.Fprintf(out, "versions:   %s\n", strings.Join(versions, " "))
	fmt.Fprintf(out, "precisions: %s\n", strings.Join(s.Precisions, " "))
	fmt.Fprintf(out, "kinds:      %s\n", strings.Join(s.Kinds, " "))
	fmt.Fprintf(out, "node types: %s\n", strings.Join(s.NodeTypes, " "))
	fmt.Fprintf(out, "operators:  %s\n", strings.Join(s.Operators, " "))
	return nil
}

func (c *Schema) Cmd() string {
	return "schema"
}

func (c *Schema) Help() string {
	return "'shaderc schema' prints the document versions, node types, kinds and operators.\n" +
		"With --addr, the server's schema is printed.\n"
}
