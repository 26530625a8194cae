// Copyright 2026, Square, Inc.

package node

import (
	"fmt"

	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

type Op byte

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
)

var OpName = map[Op]string{
	Add:      "Add",
	Subtract: "Subtract",
	Multiply: "Multiply",
	Divide:   "Divide",
}

var OpValue = map[string]Op{
	"Add":      Add,
	"Subtract": Subtract,
	"Multiply": Multiply,
	"Divide":   Divide,
}

var opSymbol = map[Op]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
}

func (o Op) String() string {
	if s, ok := OpName[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", o)
}

const (
	MathASlotId   = 0
	MathBSlotId   = 1
	MathOutSlotId = 2
)

// MathNode applies a binary operator component-wise. All three slots are
// Dynamic and resolve to the widest connected input.
type MathNode struct {
	Base
	Op Op
}

func NewMathNode(id int, op Op) *MathNode {
	return &MathNode{
		Base: newBase(id, op.String()),
		Op:   op,
	}
}

func (n *MathNode) Type() Type {
	return TypeMath
}

func (n *MathNode) Reconfigure(props property.Lookup) {
	a, b := value.Vec(0), value.Vec(1)
	n.AddSlot(NewInput(MathASlotId, value.Dynamic, "A", &a))
	n.AddSlot(NewInput(MathBSlotId, value.Dynamic, "B", &b))
	n.AddSlot(NewOutput(MathOutSlotId, value.Dynamic, "Out", "Out"))
	n.RemoveSlotsNotIn(MathASlotId, MathBSlotId, MathOutSlotId)
}

func (n *MathNode) HasError(props property.Lookup) bool {
	_, ok := opSymbol[n.Op]
	return !ok
}

func (n *MathNode) Emit(e *Emission) ([]string, error) {
	sym, ok := opSymbol[n.Op]
	if !ok {
		return nil, fmt.Errorf("math node %d: unknown operator %s", n.ID(), n.Op)
	}
	expr := fmt.Sprintf("%s %s %s", e.Input(MathASlotId), sym, e.Input(MathBSlotId))
	return []string{e.Declare(e.Kind(MathOutSlotId), n.VariableName(e.Props, MathOutSlotId), expr)}, nil
}
