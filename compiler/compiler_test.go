// Copyright 2026, Square, Inc.

package compiler

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-test/deep"

	"github.com/square/shadergraph/document"
	serr "github.com/square/shadergraph/errors"
	"github.com/square/shadergraph/id"
	"github.com/square/shadergraph/proto"
	"github.com/square/shadergraph/value"
)

const brickV0 = `
version: 0
name: brick
properties:
  - {guid: p1, type: Vector1, name: Strength, ref: _Strength, default: [0.5]}
  - {guid: p2, type: Texture2D, name: Albedo, ref: _Albedo, texture: bricks.png}
nodes:
  - {id: 1, type: Property, guid: p1}
  - {id: 2, type: Property, guid: p2}
  - {id: 3, type: SampleTexture2D}
  - {id: 4, type: Math, op: Multiply}
edges:
  - {from: "2:0", to: "3:1"}
  - {from: "3:0", to: "4:0"}
  - {from: "1:0", to: "4:1"}
`

const tint = `
version: 2
name: tint
precision: half
nodes:
  - {id: 1, type: constant, kind: Color, value: {vector: [1, 0, 0, 1]}}
  - {id: 2, type: constant, kind: Scalar, value: {vector: [0.5]}}
  - {id: 3, type: math, op: Multiply}
edges:
  - {from: {node: 1, slot: 0}, to: {node: 3, slot: 0}}
  - {from: {node: 2, slot: 0}, to: {node: 3, slot: 1}}
`

const broken = `
version: 2
name: broken
nodes:
  - {id: 1, type: voronoi}
`

func newCompiler(t *testing.T, cfg Config) *Compiler {
	checker, err := document.NewChecker([]document.CheckFactory{document.BaseCheckFactory{}, document.DefaultCheckFactory{}})
	if err != nil {
		t.Fatal(err)
	}
	return NewCompiler(cfg, checker, id.NewGeneratorFactory(3))
}

func TestCompileLegacyDocument(t *testing.T) {
	c := newCompiler(t, Config{Precision: value.Float, Timeout: 5 * time.Second})
	s, err := c.Compile(context.Background(), Job{Name: "unnamed", Data: []byte(brickV0)})
	if err != nil {
		t.Fatal(err)
	}

	if s.Id == "" {
		t.Error("shader has no id")
	}
	if s.Document != "brick" || s.Version != 0 || s.Upgrades != 2 || s.State != proto.STATE_COMPLETE {
		t.Errorf("got %+v", s)
	}
	source := strings.Split(strings.TrimSpace(s.Source), "\n")
	if len(source) != 11 {
		t.Fatalf("got %d statements, expected 11:\n%s", len(source), s.Source)
	}
	if source[0] != "float _Property_1_Out_0 = _Strength;" {
		t.Errorf("first statement %q", source[0])
	}
	if expect := "float4 _Multiply_4_Out_2 = _SampleTexture2D_3_RGBA_0 * (_Property_1_Out_0).xxxx;"; source[10] != expect {
		t.Errorf("last statement %q, expected %q", source[10], expect)
	}

	refs := []string{}
	for _, p := range s.Properties {
		refs = append(refs, p.ReferenceName)
	}
	if diff := deep.Equal(refs, []string{"_Strength", "_Albedo"}); diff != nil {
		t.Error(diff)
	}
	if !strings.Contains(s.PropertyBlock, `_Albedo("Albedo", 2D) = "white" {}`) {
		t.Errorf("property block:\n%s", s.PropertyBlock)
	}
}

func TestCompilePrecision(t *testing.T) {
	c := newCompiler(t, Config{Precision: value.Float})

	// Document precision overrides the default.
	s, err := c.Compile(context.Background(), Job{Data: []byte(tint)})
	if err != nil {
		t.Fatal(err)
	}
	if s.Precision != "half" || !strings.Contains(s.Source, "half4 _Multiply_3_Out_2 = _Constant_1_Out_0 * (_Constant_2_Out_0).xxxx;") {
		t.Errorf("got precision %s:\n%s", s.Precision, s.Source)
	}

	// Job precision overrides the document.
	s, err = c.Compile(context.Background(), Job{Data: []byte(tint), Precision: "float"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Precision != "float" || !strings.HasPrefix(s.Source, "float4 _Constant_1_Out_0 = float4(1, 0, 0, 1);") {
		t.Errorf("got precision %s:\n%s", s.Precision, s.Source)
	}

	_, err = c.Compile(context.Background(), Job{Data: []byte(tint), Precision: "double"})
	if _, ok := err.(serr.InvalidDocument); !ok {
		t.Errorf("err = %v, expected InvalidDocument", err)
	}
}

func TestCompileInvalidDocument(t *testing.T) {
	c := newCompiler(t, Config{})
	_, err := c.Compile(context.Background(), Job{Data: []byte(broken)})
	invalid, ok := err.(serr.InvalidDocument)
	if !ok {
		t.Fatalf("err = %v, expected InvalidDocument", err)
	}
	if invalid.Document != "broken" || len(invalid.Problems) != 1 {
		t.Errorf("got %+v", invalid)
	}

	_, err = c.Compile(context.Background(), Job{Name: "garbage", Data: []byte("version: [")})
	if _, ok := err.(serr.InvalidDocument); !ok {
		t.Errorf("err = %v, expected InvalidDocument", err)
	}
}

func TestCompileWarnings(t *testing.T) {
	doc := `
version: 2
name: lonely
properties:
  - {id: p1, kind: Scalar, reference_name: _Unused}
nodes:
  - {id: 1, type: constant, kind: Scalar, op: Add}
`
	c := newCompiler(t, Config{})
	s, err := c.Compile(context.Background(), Job{Data: []byte(doc)})
	if err != nil {
		t.Fatal(err)
	}
	// no display name, unused property, op on a constant
	if len(s.Warnings) != 3 {
		t.Errorf("got warnings %v, expected 3", s.Warnings)
	}
	if s.State != proto.STATE_COMPLETE {
		t.Errorf("got state %s, expected COMPLETE", proto.StateName[s.State])
	}
}

func TestCompileTimeout(t *testing.T) {
	c := newCompiler(t, Config{Timeout: 10 * time.Millisecond})
	release := make(chan struct{})
	defer close(release)
	c.run = func(job Job) (proto.Shader, error) {
		<-release
		return proto.Shader{}, nil
	}

	_, err := c.Compile(context.Background(), Job{Name: "slow"})
	expect := serr.GenerationTimeout{Document: "slow", Timeout: 10 * time.Millisecond}
	if diff := deep.Equal(err, expect); diff != nil {
		t.Error(diff)
	}
}

func TestCompileCanceled(t *testing.T) {
	c := newCompiler(t, Config{})
	release := make(chan struct{})
	defer close(release)
	c.run = func(job Job) (proto.Shader, error) {
		<-release
		return proto.Shader{}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Compile(ctx, Job{Name: "slow"}); err != context.Canceled {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
}

func TestCompileAll(t *testing.T) {
	c := newCompiler(t, Config{Workers: 2})
	outcomes := c.CompileAll(context.Background(), []Job{
		{Name: "brick.yaml", Data: []byte(brickV0)},
		{Name: "tint.yaml", Data: []byte(tint)},
		{Name: "broken.yaml", Data: []byte(broken)},
	})
	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes, expected 3", len(outcomes))
	}
	for _, name := range []string{"brick.yaml", "tint.yaml"} {
		if o := outcomes[name]; o.Err != nil || o.Shader.State != proto.STATE_COMPLETE {
			t.Errorf("%s: got %+v", name, o)
		}
	}
	if _, ok := outcomes["broken.yaml"].Err.(serr.InvalidDocument); !ok {
		t.Errorf("broken.yaml: err = %v, expected InvalidDocument", outcomes["broken.yaml"].Err)
	}
	if outcomes["brick.yaml"].Shader.Id == outcomes["tint.yaml"].Shader.Id {
		t.Error("shaders share an id")
	}
}
