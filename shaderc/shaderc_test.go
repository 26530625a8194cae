// Copyright 2026, Square, Inc.

package shaderc_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/square/shadergraph/proto"
	"github.com/square/shadergraph/shaderc"
	"github.com/square/shadergraph/shaderc/app"
	"github.com/square/shadergraph/shaderc/config"
	v "github.com/square/shadergraph/version"
)

// noConfig keeps the user's config files out of the tests.
var noConfig = []string{"--config", "testdata/none.yaml"}

func args(a ...string) []string {
	return append(append([]string{}, noConfig...), a...)
}

func TestRunVersion(t *testing.T) {
	output := &bytes.Buffer{}
	err := shaderc.RunArgs(app.Context{Out: output}, args("version"))
	if err != nil {
		t.Fatal(err)
	}
	if output.String() != "shaderc "+v.Version()+"\n" {
		t.Errorf("got output %q", output)
	}
}

func TestRunHelp(t *testing.T) {
	if err := shaderc.RunArgs(app.Context{Out: &bytes.Buffer{}}, args()); err != app.ErrHelp {
		t.Errorf("err = %v, expected ErrHelp", err)
	}

	output := &bytes.Buffer{}
	if err := shaderc.RunArgs(app.Context{Out: output}, args("help", "lint")); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(output.String(), "'shaderc lint <dir>'") {
		t.Errorf("got output %q", output)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	err := shaderc.RunArgs(app.Context{Out: &bytes.Buffer{}}, args("start"))
	if err == nil || !strings.Contains(err.Error(), "Unknown command: start") {
		t.Errorf("err = %v, expected unknown command", err)
	}
}

func TestRunCompile(t *testing.T) {
	var shader proto.Shader
	var opts config.Options
	ctx := app.Context{
		Out: &bytes.Buffer{},
		Hooks: app.Hooks{
			AfterParseOptions: func(o *config.Options) {
				opts = *o
			},
			CommandRunResult: func(r interface{}, err error) {
				if err != nil {
					t.Error(err)
				}
				shader = r.(proto.Shader)
			},
		},
	}
	err := shaderc.RunArgs(ctx, args("--precision", "float", "compile", "cmd/testdata/tint.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if opts.Precision != "float" || opts.Timeout != config.DEFAULT_TIMEOUT {
		t.Errorf("options %+v", opts)
	}
	if shader.Document != "tint" || shader.Precision != "float" || shader.State != proto.STATE_COMPLETE {
		t.Errorf("got shader %+v", shader)
	}
}

func TestParseConfigFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "shaderc")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	if err := ioutil.WriteFile(first, []byte("addr: http://one:9340\ntimeout: 100\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(second, []byte("addr: http://two:9340\nprecision: half\n"), 0644); err != nil {
		t.Fatal(err)
	}

	o := config.ParseConfigFiles(first + "," + filepath.Join(dir, "missing.yaml") + "," + second)
	expect := config.Options{Addr: "http://two:9340", Precision: "half", Timeout: 100}
	if o != expect {
		t.Errorf("got %+v, expected %+v", o, expect)
	}
}
