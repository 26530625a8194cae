// Copyright 2026, Square, Inc.

package codegen_test

import (
	"testing"

	"github.com/square/shadergraph/codegen"
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

func TestPropertyBlock(t *testing.T) {
	manifest := []property.Property{
		{Kind: value.Texture2D, DisplayName: "Main Tex", ReferenceName: "_MainTex", Modifiable: true},
		{Kind: value.Color, DisplayName: "Tint", ReferenceName: "_Tint", Default: value.Vec(1, 0.5, 0, 1), Modifiable: true},
		{Kind: value.Scalar, DisplayName: "Gloss", ReferenceName: "_Gloss", Default: value.Vec(0.25), Modifiable: true},
		{Kind: value.Boolean, DisplayName: "Emit", ReferenceName: "_Emit", Default: value.Value{Bool: true}, Modifiable: true},
		{Kind: value.Cubemap, DisplayName: "Sky", ReferenceName: "_Sky", Modifiable: true},
		{Kind: value.Texture2D, DisplayName: "Texture 2D Asset", ReferenceName: "_Texture2DAsset_4"},
	}
	expect := `Properties
{
    _MainTex("Main Tex", 2D) = "white" {}
    _Tint("Tint", Color) = (1, 0.5, 0, 1)
    _Gloss("Gloss", Float) = 0.25
    [Toggle] _Emit("Emit", Float) = 1
    _Sky("Sky", Cube) = "" {}
    [NonModifiableTextureData] _Texture2DAsset_4("Texture 2D Asset", 2D) = "white" {}
}
`
	if got := codegen.PropertyBlock(manifest); got != expect {
		t.Errorf("got:\n%s\nexpected:\n%s", got, expect)
	}
}
