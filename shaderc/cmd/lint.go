// Copyright 2026, Square, Inc.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/square/shadergraph/document"
	"github.com/square/shadergraph/shaderc/app"
)

type Lint struct {
	ctx app.Context
	dir string
}

func NewLint(ctx app.Context) *Lint {
	return &Lint{
		ctx: ctx,
	}
}

func (c *Lint) Prepare() error {
	if len(c.ctx.Command.Args) == 0 {
		return fmt.Errorf("Usage: shaderc lint <dir>\n")
	}
	c.dir = c.ctx.Command.Args[0]
	return nil
}

func (c *Lint) Run() error {
	out := c.ctx.Out
	logFunc := func(format string, args ...interface{}) {
		fmt.Fprintln(out, strings.TrimSpace(fmt.Sprintf(format, args...)))
	}
	docs, err := document.ParseDir(c.dir, logFunc)
	if err != nil {
		return err
	}

	checker, err := document.NewChecker([]document.CheckFactory{document.BaseCheckFactory{}, document.DefaultCheckFactory{}})
	if err != nil {
		return err
	}

	files := make([]string, 0, len(docs))
	for file := range docs {
		files = append(files, file)
	}
	sort.Strings(files)

	failed := 0
	current := []*document.Document{}
	for _, file := range files {
		d, steps, err := document.Upgrade(docs[file], 0)
		if err != nil {
			fmt.Fprintf(out, "%s: error: %s\n", file, err)
			failed++
			continue
		}
		if steps > 0 {
			app.Debug("%s: upgraded %d steps", file, steps)
		}
		current = append(current, d)
	}

	results := checker.RunChecks(current)
	if c.ctx.Hooks.CommandRunResult != nil {
		c.ctx.Hooks.CommandRunResult(results, nil)
		return nil
	}

	for _, name := range results.Keys() {
		r, _ := results.Get(name)
		for _, e := range r.Errors {
			fmt.Fprintf(out, "error: %s\n", e)
		}
		for _, w := range r.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		if len(r.Errors) > 0 {
			failed++
		}
	}

	fmt.Fprintf(out, "%d documents checked, %d failed\n", len(docs), failed)
	if failed > 0 {
		return app.ErrLintFailed
	}
	return nil
}

func (c *Lint) Cmd() string {
	return "lint " + c.dir
}

func (c *Lint) Help() string {
	return "'shaderc lint <dir>' upgrades and checks every .yaml document in dir and its subdirectories.\n" +
		"It prints every error and warning and fails if any document has errors.\n"
}
