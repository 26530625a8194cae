// Copyright 2026, Square, Inc.

package node_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// props is a property.Lookup backed by a map.
type props map[string]property.Property

func (p props) Property(id string) (property.Property, bool) {
	prop, ok := p[id]
	return prop, ok
}

func slotIds(n node.Node) []int {
	var ids []int
	for _, s := range n.Slots() {
		ids = append(ids, s.ID)
	}
	return ids
}

func emission(p property.Lookup, n node.Node, inputs map[int]string) *node.Emission {
	return &node.Emission{
		Precision: value.Float,
		Props:     p,
		Inputs:    inputs,
		Kinds:     node.ResolveKinds(n, nil),
	}
}

func TestPropertyNodeScalar(t *testing.T) {
	p := props{"p1": {ID: "p1", Kind: value.Scalar, DisplayName: "Foo", ReferenceName: "_Foo"}}
	n := node.NewPropertyNode(1, "p1")
	n.Reconfigure(p)

	if diff := deep.Equal(slotIds(n), []int{0}); diff != nil {
		t.Error(diff)
	}
	got, err := n.Emit(emission(p, n, nil))
	if err != nil {
		t.Fatal(err)
	}
	expect := []string{"float _Property_1_Out_0 = _Foo;"}
	if diff := deep.Equal(got, expect); diff != nil {
		t.Error(diff)
	}
}

func TestPropertyNodeTexture2D(t *testing.T) {
	p := props{"tex": {ID: "tex", Kind: value.Texture2D, DisplayName: "Main Tex", ReferenceName: "_MainTex"}}
	n := node.NewPropertyNode(2, "tex")
	n.Reconfigure(p)

	if diff := deep.Equal(slotIds(n), []int{0, 1, 2, 3, 4}); diff != nil {
		t.Error(diff)
	}
	if name := n.VariableName(p, node.TextureOutSlotId); name != "_MainTex" {
		t.Errorf("texture output variable = %s, expected _MainTex", name)
	}

	got, err := n.Emit(emission(p, n, nil))
	if err != nil {
		t.Fatal(err)
	}
	expect := []string{
		"float2 _Property_2_Tiling_1 = _MainTex_ST.xy;",
		"float2 _Property_2_Offset_2 = _MainTex_ST.zw;",
		"float _Property_2_Width_3 = _MainTex_TexelSize.z;",
		"float _Property_2_Height_4 = _MainTex_TexelSize.w;",
	}
	if diff := deep.Equal(got, expect); diff != nil {
		t.Error(diff)
	}
}

func TestPropertyNodeCubemapHasNoAuxiliaryOutputs(t *testing.T) {
	p := props{"c": {ID: "c", Kind: value.Cubemap, ReferenceName: "_Sky"}}
	n := node.NewPropertyNode(3, "c")
	n.Reconfigure(p)

	if diff := deep.Equal(slotIds(n), []int{0}); diff != nil {
		t.Error(diff)
	}
	if name := n.VariableName(p, 0); name != "_Sky" {
		t.Errorf("variable = %s, expected _Sky", name)
	}
	got, err := n.Emit(emission(p, n, nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("emitted %v, expected nothing", got)
	}
}

func TestPropertyNodeReconfigure(t *testing.T) {
	p := props{"p": {ID: "p", Kind: value.Texture2D, ReferenceName: "_T"}}
	n := node.NewPropertyNode(1, "p")
	n.Reconfigure(p)
	first := n.Slots()

	// Idempotent with unchanged state.
	n.Reconfigure(p)
	if diff := deep.Equal(n.Slots(), first); diff != nil {
		t.Error(diff)
	}

	// Kind change prunes the auxiliary outputs.
	p["p"] = property.Property{ID: "p", Kind: value.Vector3, ReferenceName: "_T"}
	n.Reconfigure(p)
	if diff := deep.Equal(slotIds(n), []int{0}); diff != nil {
		t.Error(diff)
	}
	if s, _ := n.Slot(0); s.Type != value.Vector3 {
		t.Errorf("slot 0 type = %s, expected Vector3", s.Type)
	}

	// Missing property leaves slots alone but is an error.
	delete(p, "p")
	n.Reconfigure(p)
	if diff := deep.Equal(slotIds(n), []int{0}); diff != nil {
		t.Error(diff)
	}
	if !n.HasError(p) {
		t.Error("HasError = false, expected true")
	}
	_, err := n.Emit(emission(p, n, nil))
	if _, ok := err.(node.MissingPropertyError); !ok {
		t.Errorf("err = %v, expected MissingPropertyError", err)
	}
}

func TestPropertyNodeBind(t *testing.T) {
	p := props{"a": {ID: "a", Kind: value.Scalar, ReferenceName: "_A"}}
	n := node.NewPropertyNode(1, "a")
	if err := n.Bind(p, "nope"); err == nil {
		t.Error("no error binding to a missing property")
	}
	if n.PropertyId != "a" {
		t.Errorf("property id = %s, expected a", n.PropertyId)
	}
}

func TestTexture2DAssetNode(t *testing.T) {
	n := node.NewTexture2DAssetNode(3, "textures/bricks.png")
	n.Reconfigure(props{})

	if diff := deep.Equal(slotIds(n), []int{0, 1, 2, 3, 4}); diff != nil {
		t.Error(diff)
	}
	if name := n.VariableName(props{}, 0); name != "_Texture2DAsset_3" {
		t.Errorf("texture variable = %s, expected _Texture2DAsset_3", name)
	}

	got, err := n.Emit(emission(props{}, n, nil))
	if err != nil {
		t.Fatal(err)
	}
	expect := []string{
		"float2 _Texture2DAsset_3_Tiling_1 = _Texture2DAsset_3_ST.xy;",
		"float2 _Texture2DAsset_3_Offset_2 = _Texture2DAsset_3_ST.zw;",
		"float _Texture2DAsset_3_Width_3 = _Texture2DAsset_3_TexelSize.z;",
		"float _Texture2DAsset_3_Height_4 = _Texture2DAsset_3_TexelSize.w;",
	}
	if diff := deep.Equal(got, expect); diff != nil {
		t.Error(diff)
	}

	declared := n.Properties(props{})
	if len(declared) != 1 {
		t.Fatalf("declared %d properties, expected 1", len(declared))
	}
	if declared[0].ReferenceName != "_Texture2DAsset_3" || declared[0].Modifiable {
		t.Errorf("declared property = %+v", declared[0])
	}

	p := n.AsProperty()
	if p.DisplayName != "bricks" || p.Default.Texture != "textures/bricks.png" {
		t.Errorf("AsProperty = %+v", p)
	}
}

func TestTexture2DPropertiesNode(t *testing.T) {
	n := node.NewTexture2DPropertiesNode(5)
	n.Reconfigure(props{})

	if diff := deep.Equal(slotIds(n), []int{1, 0, 2, 3, 4}); diff != nil {
		t.Error(diff)
	}
	if s, _ := n.Slot(node.TextureInputSlotId); !s.IsInput() || s.Default != nil {
		t.Errorf("texture input = %+v, expected required input", s)
	}

	got, err := n.Emit(emission(props{}, n, map[int]string{1: "_MainTex"}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 || got[0] != "float2 _Texture2DProperties_5_Tiling_0 = _MainTex_ST.xy;" {
		t.Errorf("got %v", got)
	}
}

func TestSampleTexture2DNode(t *testing.T) {
	n := node.NewSampleTexture2DNode(7)
	n.Reconfigure(props{})

	got, err := n.Emit(emission(props{}, n, map[int]string{
		node.SampleTextureSlotId: "_MainTex",
		node.SampleUVSlotId:      node.DefaultUV,
	}))
	if err != nil {
		t.Fatal(err)
	}
	expect := []string{
		"float4 _SampleTexture2D_7_RGBA_0 = SAMPLE_TEXTURE2D(_MainTex, sampler_MainTex, IN.uv0.xy);",
		"float _SampleTexture2D_7_R_4 = _SampleTexture2D_7_RGBA_0.r;",
		"float _SampleTexture2D_7_G_5 = _SampleTexture2D_7_RGBA_0.g;",
		"float _SampleTexture2D_7_B_6 = _SampleTexture2D_7_RGBA_0.b;",
		"float _SampleTexture2D_7_A_7 = _SampleTexture2D_7_RGBA_0.a;",
	}
	if diff := deep.Equal(got, expect); diff != nil {
		t.Error(diff)
	}
}

func TestConstantNode(t *testing.T) {
	n := node.NewConstantNode(4, value.Vector3, value.Vec(1, 0.5, 0))
	n.Reconfigure(props{})

	got, err := n.Emit(&node.Emission{Precision: value.Half, Props: props{}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(got, []string{"half3 _Constant_4_Out_0 = half3(1, 0.5, 0);"}); diff != nil {
		t.Error(diff)
	}

	if err := n.SetKind(value.Texture2D); err == nil {
		t.Error("SetKind(Texture2D) succeeded, expected error")
	}
	if err := n.SetKind(value.Boolean); err != nil {
		t.Fatal(err)
	}
	n.Reconfigure(props{})
	if s, _ := n.Slot(0); s.Type != value.Boolean {
		t.Errorf("slot type = %s, expected Boolean", s.Type)
	}
}

func TestMathNodeResolveKinds(t *testing.T) {
	n := node.NewMathNode(9, node.Multiply)
	n.Reconfigure(props{})

	kinds := node.ResolveKinds(n, nil)
	expect := map[int]value.Kind{0: value.Scalar, 1: value.Scalar, 2: value.Scalar}
	if diff := deep.Equal(kinds, expect); diff != nil {
		t.Error(diff)
	}

	kinds = node.ResolveKinds(n, map[int]value.Kind{0: value.Vector2, 1: value.Color})
	expect = map[int]value.Kind{0: value.Vector4, 1: value.Vector4, 2: value.Vector4}
	if diff := deep.Equal(kinds, expect); diff != nil {
		t.Error(diff)
	}

	e := &node.Emission{
		Precision: value.Float,
		Props:     props{},
		Inputs:    map[int]string{0: "a", 1: "b"},
		Kinds:     kinds,
	}
	got, err := n.Emit(e)
	if err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(got, []string{"float4 _Multiply_9_Out_2 = a * b;"}); diff != nil {
		t.Error(diff)
	}
}
