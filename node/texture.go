// Copyright 2026, Square, Inc.

package node

import (
	"fmt"
	"path"
	"strings"

	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// Output slot ids shared by property nodes bound to a Texture2D property and
// by Texture2DAssetNode.
const (
	TextureOutSlotId    = 0
	TextureTilingSlotId = 1
	TextureOffsetSlotId = 2
	TextureWidthSlotId  = 3
	TextureHeightSlotId = 4
)

// Slot ids of Texture2DPropertiesNode. Its texture input takes id 1, so
// tiling moves to 0.
const (
	PropertiesTilingSlotId = 0
	TextureInputSlotId     = 1
)

// textureAuxiliary is the set of variables derived from a texture's
// scale/offset and texel-size uniforms.
type textureAuxiliary struct {
	Tiling string
	Offset string
	Width  string
	Height string
}

// statements returns the auxiliary statements for the texture bound to ref,
// in the fixed order tiling, offset, width, height.
func (aux textureAuxiliary) statements(p value.Precision, ref string) []string {
	return []string{
		fmt.Sprintf("%s2 %s = %s_ST.xy;", p, aux.Tiling, ref),
		fmt.Sprintf("%s2 %s = %s_ST.zw;", p, aux.Offset, ref),
		fmt.Sprintf("%s %s = %s_TexelSize.z;", p, aux.Width, ref),
		fmt.Sprintf("%s %s = %s_TexelSize.w;", p, aux.Height, ref),
	}
}

// addAuxiliaryOutputs adds the four auxiliary output slots. Only the tiling
// slot id differs between nodes.
func addAuxiliaryOutputs(b *Base, tilingId int) {
	b.AddSlot(NewOutput(tilingId, value.Vector2, "Tiling", "Tiling"))
	b.AddSlot(NewOutput(TextureOffsetSlotId, value.Vector2, "Offset", "Offset"))
	b.AddSlot(NewOutput(TextureWidthSlotId, value.Scalar, "Width", "Width"))
	b.AddSlot(NewOutput(TextureHeightSlotId, value.Scalar, "Height", "Height"))
}

func auxiliaryNames(n Node, props property.Lookup, tilingId int) textureAuxiliary {
	return textureAuxiliary{
		Tiling: n.VariableName(props, tilingId),
		Offset: n.VariableName(props, TextureOffsetSlotId),
		Width:  n.VariableName(props, TextureWidthSlotId),
		Height: n.VariableName(props, TextureHeightSlotId),
	}
}

// --------------------------------------------------------------------------

// Texture2DAssetNode references a texture asset directly. The node declares
// its own non-modifiable property named after the node, so the texture
// reaches generated source the same way a registry property does.
type Texture2DAssetNode struct {
	Base
	Texture string // asset reference
}

var _ PropertySource = &Texture2DAssetNode{}

func NewTexture2DAssetNode(id int, texture string) *Texture2DAssetNode {
	return &Texture2DAssetNode{
		Base:    newBase(id, "Texture 2D Asset"),
		Texture: texture,
	}
}

func (n *Texture2DAssetNode) Type() Type {
	return TypeTexture2DAsset
}

func (n *Texture2DAssetNode) Reconfigure(props property.Lookup) {
	n.AddSlot(NewOutput(TextureOutSlotId, value.Texture2D, "Out", "Out"))
	addAuxiliaryOutputs(&n.Base, TextureTilingSlotId)
	n.RemoveSlotsNotIn(TextureOutSlotId, TextureTilingSlotId, TextureOffsetSlotId, TextureWidthSlotId, TextureHeightSlotId)
}

// VariableName returns the node's own property name for the texture output.
func (n *Texture2DAssetNode) VariableName(props property.Lookup, slotId int) string {
	if slotId == TextureOutSlotId {
		return n.NodeVariableName()
	}
	return n.Base.VariableName(props, slotId)
}

func (n *Texture2DAssetNode) Emit(e *Emission) ([]string, error) {
	return auxiliaryNames(n, e.Props, TextureTilingSlotId).statements(e.Precision, n.NodeVariableName()), nil
}

func (n *Texture2DAssetNode) Properties(props property.Lookup) []property.Property {
	return []property.Property{
		{
			Kind:          value.Texture2D,
			DisplayName:   n.Name(),
			ReferenceName: n.NodeVariableName(),
			Default:       value.Value{Texture: n.Texture},
			Modifiable:    false,
		},
	}
}

// AsProperty returns a user property equivalent to the asset, named after the
// texture file.
func (n *Texture2DAssetNode) AsProperty() property.Property {
	name := strings.TrimSuffix(path.Base(n.Texture), path.Ext(n.Texture))
	if name == "" || name == "." || name == "/" {
		name = "Texture"
	}
	return property.Property{
		Kind:        value.Texture2D,
		DisplayName: name,
		Default:     value.Value{Texture: n.Texture},
		Modifiable:  true,
	}
}

// --------------------------------------------------------------------------

// Texture2DPropertiesNode exposes the auxiliary outputs of whichever texture
// is connected to its input.
type Texture2DPropertiesNode struct {
	Base
}

func NewTexture2DPropertiesNode(id int) *Texture2DPropertiesNode {
	return &Texture2DPropertiesNode{
		Base: newBase(id, "Texture 2D Properties"),
	}
}

func (n *Texture2DPropertiesNode) Type() Type {
	return TypeTexture2DProperties
}

func (n *Texture2DPropertiesNode) Reconfigure(props property.Lookup) {
	n.AddSlot(NewInput(TextureInputSlotId, value.Texture2D, "Texture", nil))
	addAuxiliaryOutputs(&n.Base, PropertiesTilingSlotId)
	n.RemoveSlotsNotIn(TextureInputSlotId, PropertiesTilingSlotId, TextureOffsetSlotId, TextureWidthSlotId, TextureHeightSlotId)
}

func (n *Texture2DPropertiesNode) Emit(e *Emission) ([]string, error) {
	ref := e.Input(TextureInputSlotId)
	if ref == "" {
		return nil, fmt.Errorf("node %d: texture input has no value", n.ID())
	}
	return auxiliaryNames(n, e.Props, PropertiesTilingSlotId).statements(e.Precision, ref), nil
}

// --------------------------------------------------------------------------

const (
	SampleRGBASlotId    = 0
	SampleTextureSlotId = 1
	SampleUVSlotId      = 2
	SampleRSlotId       = 4
	SampleGSlotId       = 5
	SampleBSlotId       = 6
	SampleASlotId       = 7
)

// DefaultUV is the expression read when a sampler's UV input is not connected.
const DefaultUV = "IN.uv0.xy"

// SampleTexture2DNode samples a texture at a UV coordinate.
type SampleTexture2DNode struct {
	Base
}

func NewSampleTexture2DNode(id int) *SampleTexture2DNode {
	return &SampleTexture2DNode{
		Base: newBase(id, "Sample Texture 2D"),
	}
}

func (n *SampleTexture2DNode) Type() Type {
	return TypeSampleTexture2D
}

func (n *SampleTexture2DNode) Reconfigure(props property.Lookup) {
	n.AddSlot(NewOutput(SampleRGBASlotId, value.Vector4, "RGBA", "RGBA"))
	n.AddSlot(NewOutput(SampleRSlotId, value.Scalar, "R", "R"))
	n.AddSlot(NewOutput(SampleGSlotId, value.Scalar, "G", "G"))
	n.AddSlot(NewOutput(SampleBSlotId, value.Scalar, "B", "B"))
	n.AddSlot(NewOutput(SampleASlotId, value.Scalar, "A", "A"))
	n.AddSlot(NewInput(SampleTextureSlotId, value.Texture2D, "Texture", nil))
	n.AddSlot(NewInput(SampleUVSlotId, value.Vector2, "UV", &value.Value{Expr: DefaultUV}))
	n.RemoveSlotsNotIn(SampleRGBASlotId, SampleRSlotId, SampleGSlotId, SampleBSlotId, SampleASlotId, SampleTextureSlotId, SampleUVSlotId)
}

func (n *SampleTexture2DNode) Emit(e *Emission) ([]string, error) {
	tex := e.Input(SampleTextureSlotId)
	if tex == "" {
		return nil, fmt.Errorf("node %d: texture input has no value", n.ID())
	}
	uv := e.Input(SampleUVSlotId)
	if uv == "" {
		uv = DefaultUV
	}

	rgba := n.VariableName(e.Props, SampleRGBASlotId)
	stmts := []string{
		e.Declare(value.Vector4, rgba, fmt.Sprintf("SAMPLE_TEXTURE2D(%s, sampler%s, %s)", tex, tex, uv)),
	}
	for _, c := range []struct {
		slot      int
		component string
	}{
		{SampleRSlotId, "r"},
		{SampleGSlotId, "g"},
		{SampleBSlotId, "b"},
		{SampleASlotId, "a"},
	} {
		stmts = append(stmts, e.Declare(value.Scalar, n.VariableName(e.Props, c.slot), rgba+"."+c.component))
	}
	return stmts, nil
}
