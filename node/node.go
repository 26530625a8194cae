// Copyright 2026, Square, Inc.

// Package node provides graph nodes: the slots they expose and the code each
// node variant emits. The set of variants is closed (see Type); they share the
// Node interface and embed Base for slot bookkeeping.
package node

import (
	"fmt"
	"strings"

	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// Type tags a node variant.
type Type byte

const (
	TypeUnknown Type = iota
	TypeProperty
	TypeTexture2DAsset
	TypeTexture2DProperties
	TypeConstant
	TypeMath
	TypeSampleTexture2D
)

var TypeName = map[Type]string{
	TypeUnknown:             "unknown",
	TypeProperty:            "property",
	TypeTexture2DAsset:      "texture2d-asset",
	TypeTexture2DProperties: "texture2d-properties",
	TypeConstant:            "constant",
	TypeMath:                "math",
	TypeSampleTexture2D:     "sample-texture2d",
}

var TypeValue = map[string]Type{
	"property":             TypeProperty,
	"texture2d-asset":      TypeTexture2DAsset,
	"texture2d-properties": TypeTexture2DProperties,
	"constant":             TypeConstant,
	"math":                 TypeMath,
	"sample-texture2d":     TypeSampleTexture2D,
}

func (t Type) String() string {
	if s, ok := TypeName[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Node is a unit of graph computation.
type Node interface {
	// ID returns the node's id, unique within its graph.
	ID() int

	// Type returns the node's variant.
	Type() Type

	// Name returns the display name. It is mangled into variable names.
	Name() string

	// Slots returns a copy of the node's slots in insertion order.
	Slots() []Slot

	// Slot returns the slot with the given id.
	Slot(id int) (Slot, bool)

	// Reconfigure rebuilds the slot set from the node's configuration and
	// external state: slots for the current state are added or replaced,
	// then every other slot is removed. Calling it twice with unchanged state
	// leaves the slots unchanged.
	Reconfigure(props property.Lookup)

	// Emit returns the statements computing the node's outputs. It must only
	// read e and the node.
	Emit(e *Emission) ([]string, error)

	// VariableName returns the symbol downstream code uses to read the given
	// output slot.
	VariableName(props property.Lookup, slotId int) string

	// HasError reports whether the node is currently unusable, e.g. bound to a
	// property that no longer exists. It is computed on every call.
	HasError(props property.Lookup) bool

	// Properties returns properties the node itself declares. The code
	// generator exposes them to the host alongside the registry's.
	Properties(props property.Lookup) []property.Property
}

// PropertySource is implemented by nodes that can be converted into a
// property node bound to a new registry property.
type PropertySource interface {
	Node
	AsProperty() property.Property
}

// Emission is what a node sees when emitting code.
type Emission struct {
	Precision value.Precision
	Props     property.Lookup

	// Input slot id -> expression, already converted to the slot's resolved kind.
	Inputs map[int]string

	// Slot id -> resolved kind for every slot, inputs and outputs. Dynamic
	// slots are resolved to a concrete vector kind.
	Kinds map[int]value.Kind
}

// Input returns the resolved expression for an input slot.
func (e *Emission) Input(slotId int) string {
	return e.Inputs[slotId]
}

// Kind returns the resolved kind of a slot.
func (e *Emission) Kind(slotId int) value.Kind {
	return e.Kinds[slotId]
}

// Declare renders a variable declaration statement.
func (e *Emission) Declare(k value.Kind, name, expr string) string {
	return fmt.Sprintf("%s %s = %s;", k.TypeName(e.Precision), name, expr)
}

// ResolveKinds returns the concrete kind of every slot of n given the kinds
// feeding its connected inputs. All Dynamic slots on a node resolve together
// to the widest kind among connected Dynamic inputs, or Scalar if none is
// connected.
func ResolveKinds(n Node, sources map[int]value.Kind) map[int]value.Kind {
	slots := n.Slots()
	var dynamic []value.Kind
	for _, s := range slots {
		if s.Type != value.Dynamic || s.Direction != Input {
			continue
		}
		if k, ok := sources[s.ID]; ok {
			dynamic = append(dynamic, k)
		}
	}
	widest := value.Widest(dynamic...)

	kinds := make(map[int]value.Kind, len(slots))
	for _, s := range slots {
		if s.Type == value.Dynamic {
			kinds[s.ID] = widest
		} else {
			kinds[s.ID] = s.Type
		}
	}
	return kinds
}

// --------------------------------------------------------------------------

// Base holds what all node variants share: id, name, and slots. Variants
// embed it and override the Node methods whose behavior differs.
type Base struct {
	id    int
	name  string
	slots []Slot
}

func newBase(id int, name string) Base {
	return Base{id: id, name: name}
}

func (b *Base) ID() int {
	return b.id
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) Slots() []Slot {
	slots := make([]Slot, len(b.slots))
	copy(slots, b.slots)
	return slots
}

func (b *Base) Slot(id int) (Slot, bool) {
	for _, s := range b.slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

// AddSlot adds s, replacing in place any slot with the same id so slot order
// is stable across reconfiguration.
func (b *Base) AddSlot(s Slot) {
	for i := range b.slots {
		if b.slots[i].ID == s.ID {
			b.slots[i] = s
			return
		}
	}
	b.slots = append(b.slots, s)
}

// RemoveSlotsNotIn removes every slot whose id is not in keep.
func (b *Base) RemoveSlotsNotIn(keep ...int) {
	keepSet := make(map[int]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}
	slots := b.slots[:0]
	for _, s := range b.slots {
		if keepSet[s.ID] {
			slots = append(slots, s)
		}
	}
	b.slots = slots
}

// NodeVariableName returns the mangled name of the node itself,
// e.g. "_Texture2DAsset_3".
func (b *Base) NodeVariableName() string {
	return fmt.Sprintf("_%s_%d", mangle(b.name), b.id)
}

// VariableName returns the default mangled name for a slot,
// e.g. "_Property_3_Out_0".
func (b *Base) VariableName(props property.Lookup, slotId int) string {
	var codeName string
	if s, ok := b.Slot(slotId); ok {
		codeName = s.CodeName
	}
	return fmt.Sprintf("%s_%s_%d", b.NodeVariableName(), codeName, slotId)
}

func (b *Base) HasError(props property.Lookup) bool {
	return false
}

func (b *Base) Properties(props property.Lookup) []property.Property {
	return nil
}

func mangle(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
