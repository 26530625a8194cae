// Copyright 2026, Square, Inc.

package value_test

import (
	"testing"

	"github.com/go-test/deep"
	"gopkg.in/yaml.v2"

	"github.com/square/shadergraph/value"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		from, to value.Kind
		expect   string
	}{
		{value.Scalar, value.Scalar, "a"},
		{value.Scalar, value.Vector3, "(a).xxx"},
		{value.Vector4, value.Vector2, "(a).xy"},
		{value.Color, value.Scalar, "(a).x"},
		{value.Vector2, value.Vector4, "float4(a, 0, 0)"},
		{value.Color, value.Vector4, "a"},
		{value.Texture2D, value.Texture2D, "a"},
		{value.Boolean, value.Boolean, "a"},
		// Not vectors, passed through even though they cannot convert.
		{value.Texture2D, value.Dynamic, "a"},
		{value.Boolean, value.Scalar, "a"},
	}
	for _, tt := range tests {
		got := value.Convert("a", tt.from, tt.to, value.Float)
		if got != tt.expect {
			t.Errorf("%s -> %s: got %q, expected %q", tt.from, tt.to, got, tt.expect)
		}
	}
}

func TestCanConvert(t *testing.T) {
	tests := []struct {
		from, to value.Kind
		expect   bool
	}{
		{value.Scalar, value.Vector4, true},
		{value.Color, value.Vector2, true},
		{value.Dynamic, value.Vector3, true},
		{value.Vector3, value.Dynamic, true},
		{value.Boolean, value.Scalar, false},
		{value.Scalar, value.Boolean, false},
		{value.Texture2D, value.Texture2D, true},
		{value.Texture2D, value.Cubemap, false},
		{value.Texture2D, value.Dynamic, false},
		{value.Unknown, value.Unknown, false},
	}
	for _, tt := range tests {
		if got := value.CanConvert(tt.from, tt.to); got != tt.expect {
			t.Errorf("%s -> %s: got %t, expected %t", tt.from, tt.to, got, tt.expect)
		}
	}
}

func TestWidest(t *testing.T) {
	if k := value.Widest(); k != value.Scalar {
		t.Errorf("no kinds: got %s, expected Scalar", k)
	}
	if k := value.Widest(value.Scalar, value.Vector3, value.Vector2); k != value.Vector3 {
		t.Errorf("got %s, expected Vector3", k)
	}
	if k := value.Widest(value.Color, value.Vector2); k != value.Vector4 {
		t.Errorf("got %s, expected Vector4", k)
	}
	if k := value.Widest(value.Texture2D, value.Boolean); k != value.Scalar {
		t.Errorf("got %s, expected Scalar", k)
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		v      value.Value
		k      value.Kind
		p      value.Precision
		expect string
	}{
		{value.Vec(0.5), value.Scalar, value.Float, "0.5"},
		{value.Vec(1, 0.5, 0), value.Vector3, value.Half, "half3(1, 0.5, 0)"},
		{value.Vec(1, 0, 0, 1), value.Color, value.Float, "float4(1, 0, 0, 1)"},
		{value.Value{Bool: true}, value.Boolean, value.Float, "true"},
		{value.Value{Texture: "bricks.png"}, value.Texture2D, value.Float, "bricks.png"},
		{value.Value{Expr: "IN.uv0.xy"}, value.Vector2, value.Float, "IN.uv0.xy"},
	}
	for _, tt := range tests {
		if got := tt.v.Literal(tt.k, tt.p); got != tt.expect {
			t.Errorf("%s: got %q, expected %q", tt.k, got, tt.expect)
		}
	}
}

func TestTypeName(t *testing.T) {
	got := []string{}
	for _, k := range []value.Kind{value.Scalar, value.Vector2, value.Color, value.Boolean, value.Cubemap} {
		got = append(got, k.TypeName(value.Half))
	}
	expect := []string{"half", "half2", "half4", "bool", "TextureCube"}
	if diff := deep.Equal(got, expect); diff != nil {
		t.Error(diff)
	}
}

func TestParseKind(t *testing.T) {
	k, err := value.ParseKind("Vector1")
	if err != nil {
		t.Fatal(err)
	}
	if k != value.Scalar {
		t.Errorf("Vector1: got %s, expected Scalar", k)
	}
	if _, err := value.ParseKind("Matrix4"); err == nil {
		t.Error("parsed Matrix4, expected error")
	}
}

func TestParsePrecision(t *testing.T) {
	for s, expect := range map[string]value.Precision{"": value.Float, "float": value.Float, "half": value.Half} {
		p, err := value.ParsePrecision(s)
		if err != nil {
			t.Errorf("%q: %s", s, err)
		}
		if p != expect {
			t.Errorf("%q: got %s, expected %s", s, p, expect)
		}
	}
	if _, err := value.ParsePrecision("double"); err == nil {
		t.Error("parsed double, expected error")
	}
}

func TestValueYAML(t *testing.T) {
	var v value.Value
	if err := yaml.Unmarshal([]byte("vector: [1, 0.5]\n"), &v); err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(v, value.Vec(1, 0.5)); diff != nil {
		t.Error(diff)
	}

	data, err := yaml.Marshal(value.Vec(1, 0.5, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "vector: [1, 0.5]\n" {
		t.Errorf("got %q, expected trailing zeros trimmed", data)
	}

	if err := yaml.Unmarshal([]byte("vector: [1, 2, 3, 4, 5]\n"), &v); err == nil {
		t.Error("decoded five components, expected error")
	}
}

func TestKindYAML(t *testing.T) {
	var doc struct {
		Kind value.Kind `yaml:"kind"`
	}
	if err := yaml.Unmarshal([]byte("kind: Color\n"), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Kind != value.Color {
		t.Errorf("got %s, expected Color", doc.Kind)
	}
	if err := yaml.Unmarshal([]byte("kind: Sampler\n"), &doc); err == nil {
		t.Error("decoded unknown kind, expected error")
	}
}
