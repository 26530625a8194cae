// Copyright 2026, Square, Inc.

package cmd

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/square/shadergraph/document"
	"github.com/square/shadergraph/shaderc/app"
	"github.com/square/shadergraph/util"
)

type Upgrade struct {
	ctx  app.Context
	file string
	data []byte
}

func NewUpgrade(ctx app.Context) *Upgrade {
	return &Upgrade{
		ctx: ctx,
	}
}

func (c *Upgrade) Prepare() error {
	if len(c.ctx.Command.Args) == 0 {
		return fmt.Errorf("Usage: shaderc upgrade <file|->\n")
	}
	c.file = c.ctx.Command.Args[0]
	data, err := util.ReadInput(c.file, c.ctx.In)
	if err != nil {
		return err
	}
	c.data = data
	return nil
}

func (c *Upgrade) Run() error {
	logFunc := func(format string, args ...interface{}) {
		log.WithField("file", c.file).Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
	}
	doc, err := document.Parse(c.data, documentName(c.file), logFunc)
	if err != nil {
		return err
	}
	d, steps, err := document.Upgrade(doc, 0)
	if err != nil {
		return err
	}
	app.Debug("%s: upgraded from version %d in %d steps", c.file, doc.Version(), steps)

	if c.ctx.Hooks.CommandRunResult != nil {
		c.ctx.Hooks.CommandRunResult(d, nil)
		return nil
	}

	bytes, err := document.Marshal(d)
	if err != nil {
		return err
	}
	_, err = c.ctx.Out.Write(bytes)
	return err
}

func (c *Upgrade) Cmd() string {
	return "upgrade " + c.file
}

func (c *Upgrade) Help() string {
	return "'shaderc upgrade <file|->' prints the document upgraded to the current version.\n"
}
