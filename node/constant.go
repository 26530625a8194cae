// Copyright 2026, Square, Inc.

package node

import (
	"fmt"

	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

const ConstantOutSlotId = 0

// ConstantNode outputs a literal vector, color, or boolean.
type ConstantNode struct {
	Base
	Kind  value.Kind
	Value value.Value
}

var _ PropertySource = &ConstantNode{}

func NewConstantNode(id int, kind value.Kind, v value.Value) *ConstantNode {
	return &ConstantNode{
		Base:  newBase(id, "Constant"),
		Kind:  kind,
		Value: v,
	}
}

func (n *ConstantNode) Type() Type {
	return TypeConstant
}

// SetKind changes the output kind. The caller must Reconfigure the node
// afterwards.
func (n *ConstantNode) SetKind(k value.Kind) error {
	if !k.IsVector() && k != value.Boolean {
		return fmt.Errorf("constant node %d: invalid kind %s", n.ID(), k)
	}
	n.Kind = k
	return nil
}

func (n *ConstantNode) Reconfigure(props property.Lookup) {
	n.AddSlot(NewOutput(ConstantOutSlotId, n.Kind, "Out", "Out"))
	n.RemoveSlotsNotIn(ConstantOutSlotId)
}

func (n *ConstantNode) HasError(props property.Lookup) bool {
	return !n.Kind.IsVector() && n.Kind != value.Boolean
}

func (n *ConstantNode) Emit(e *Emission) ([]string, error) {
	if n.HasError(e.Props) {
		return nil, UnsupportedKindError{Node: n.ID(), Kind: n.Kind}
	}
	return []string{
		e.Declare(n.Kind, n.VariableName(e.Props, ConstantOutSlotId), n.Value.Literal(n.Kind, e.Precision)),
	}, nil
}

func (n *ConstantNode) AsProperty() property.Property {
	return property.Property{
		Kind:        n.Kind,
		DisplayName: n.Kind.String(),
		Default:     n.Value,
		Modifiable:  true,
	}
}
