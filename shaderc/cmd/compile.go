// Copyright 2026, Square, Inc.

package cmd

import (
	"context"
	"fmt"

	srvapp "github.com/square/shadergraph/app"
	"github.com/square/shadergraph/compiler"
	"github.com/square/shadergraph/config"
	"github.com/square/shadergraph/proto"
	"github.com/square/shadergraph/shaderc/app"
	"github.com/square/shadergraph/util"
)

type Compile struct {
	ctx  app.Context
	file string
	data []byte
}

func NewCompile(ctx app.Context) *Compile {
	return &Compile{
		ctx: ctx,
	}
}

func (c *Compile) Prepare() error {
	if len(c.ctx.Command.Args) == 0 {
		return fmt.Errorf("Usage: shaderc compile <file|->\n")
	}
	c.file = c.ctx.Command.Args[0]
	data, err := util.ReadInput(c.file, c.ctx.In)
	if err != nil {
		return err
	}
	c.data = data
	return nil
}

func (c *Compile) Run() error {
	var shader proto.Shader
	var err error
	if c.ctx.Client != nil {
		app.Debug("compiling %s on %s", c.file, c.ctx.Options.Addr)
		shader, err = c.ctx.Client.CreateShader(proto.CreateShader{
			Document:  string(c.data),
			Name:      documentName(c.file),
			Precision: c.ctx.Options.Precision,
		})
	} else {
		shader, err = c.compileLocal()
	}

	if c.ctx.Hooks.CommandRunResult != nil {
		c.ctx.Hooks.CommandRunResult(shader, err)
		return nil
	}
	if err != nil {
		return err
	}

	out := c.ctx.Out
	fmt.Fprintf(out, "// %s %s %s %s\n", shader.Document, shader.Id, shader.Precision, proto.StateName[shader.State])
	for _, e := range shader.Errors {
		fmt.Fprintf(out, "// error: %s\n", e)
	}
	if c.ctx.Options.Verbose {
		for _, w := range shader.Warnings {
			fmt.Fprintf(out, "// warning: %s\n", w)
		}
		fmt.Fprint(out, shader.PropertyBlock)
	}
	fmt.Fprint(out, shader.Source)
	return nil
}

func (c *Compile) compileLocal() (proto.Shader, error) {
	var f app.CompilerFactory = DefaultCompilerFactory{}
	if c.ctx.Factories.Compiler != nil {
		f = c.ctx.Factories.Compiler
	}
	comp, err := f.Make(c.ctx)
	if err != nil {
		return proto.Shader{}, err
	}
	job := compiler.Job{
		Name:      documentName(c.file),
		Data:      c.data,
		Precision: c.ctx.Options.Precision,
	}
	return comp.Compile(context.Background(), job)
}

func (c *Compile) Cmd() string {
	return "compile " + c.file
}

func (c *Compile) Help() string {
	return "'shaderc compile <file|->' compiles a graph document and prints the shader source.\n" +
		"The document is compiled locally unless --addr is set.\n" +
		"Use --precision to override the document precision and --verbose to print warnings and the property block.\n"
}

// --------------------------------------------------------------------------

// DefaultCompilerFactory makes a compiler with the server's default config.
// --timeout bounds each compile.
type DefaultCompilerFactory struct{}

func (f DefaultCompilerFactory) Make(ctx app.Context) (*compiler.Compiler, error) {
	sctx := srvapp.Defaults()
	sctx.Config = config.Defaults()
	sctx.Config.Workers = 1
	if ctx.Options.Timeout > 0 {
		sctx.Config.GenerationTimeout = int(ctx.Options.Timeout)
	}
	return sctx.Factories.MakeCompiler(sctx)
}
