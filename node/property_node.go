// Copyright 2026, Square, Inc.

package node

import (
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// PropertyNode reads a registry property. Its slots follow the bound
// property's kind: one output for vectors, booleans, and non-2D textures,
// and the output plus four auxiliary outputs for Texture2D.
type PropertyNode struct {
	Base
	PropertyId string
}

func NewPropertyNode(id int, propertyId string) *PropertyNode {
	return &PropertyNode{
		Base:       newBase(id, "Property"),
		PropertyId: propertyId,
	}
}

func (n *PropertyNode) Type() Type {
	return TypeProperty
}

// Bind binds the node to another property. It fails, leaving the node
// unchanged, if the property does not exist. The caller must Reconfigure
// the node afterwards.
func (n *PropertyNode) Bind(props property.Lookup, propertyId string) error {
	if _, ok := props.Property(propertyId); !ok {
		return property.PropertyNotFoundError{Id: propertyId}
	}
	n.PropertyId = propertyId
	return nil
}

// Reconfigure rebuilds the output slots for the bound property's kind. If the
// property does not exist the slots are left as they are; HasError reports
// the problem.
func (n *PropertyNode) Reconfigure(props property.Lookup) {
	p, ok := props.Property(n.PropertyId)
	if !ok {
		return
	}
	switch p.Kind {
	case value.Scalar, value.Vector2, value.Vector3, value.Vector4, value.Color, value.Boolean,
		value.Texture2DArray, value.Texture3D, value.Cubemap:
		n.AddSlot(NewOutput(TextureOutSlotId, p.Kind, p.DisplayName, "Out"))
		n.RemoveSlotsNotIn(TextureOutSlotId)
	case value.Texture2D:
		n.AddSlot(NewOutput(TextureOutSlotId, p.Kind, p.DisplayName, "Out"))
		addAuxiliaryOutputs(&n.Base, TextureTilingSlotId)
		n.RemoveSlotsNotIn(TextureOutSlotId, TextureTilingSlotId, TextureOffsetSlotId, TextureWidthSlotId, TextureHeightSlotId)
	case value.Dynamic, value.Unknown:
		n.RemoveSlotsNotIn()
	}
}

func (n *PropertyNode) HasError(props property.Lookup) bool {
	_, ok := props.Property(n.PropertyId)
	return !ok
}

// VariableName returns the property's reference name for the output of a
// texture property: textures are read through their uniform directly.
func (n *PropertyNode) VariableName(props property.Lookup, slotId int) string {
	if slotId == TextureOutSlotId {
		if p, ok := props.Property(n.PropertyId); ok && p.Kind.IsTexture() {
			return p.ReferenceName
		}
	}
	return n.Base.VariableName(props, slotId)
}

func (n *PropertyNode) Emit(e *Emission) ([]string, error) {
	p, ok := e.Props.Property(n.PropertyId)
	if !ok {
		return nil, MissingPropertyError{Node: n.ID(), PropertyId: n.PropertyId}
	}
	switch p.Kind {
	case value.Scalar, value.Vector2, value.Vector3, value.Vector4, value.Color, value.Boolean:
		return []string{e.Declare(p.Kind, n.VariableName(e.Props, TextureOutSlotId), p.ReferenceName)}, nil
	case value.Texture2D:
		return auxiliaryNames(n, e.Props, TextureTilingSlotId).statements(e.Precision, p.ReferenceName), nil
	case value.Texture2DArray, value.Texture3D, value.Cubemap:
		return nil, nil
	case value.Dynamic, value.Unknown:
	}
	return nil, UnsupportedKindError{Node: n.ID(), Kind: p.Kind}
}
