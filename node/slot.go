// Copyright 2026, Square, Inc.

package node

import (
	"github.com/square/shadergraph/value"
)

type Direction byte

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// Slot is a typed connection point on a node.
type Slot struct {
	ID          int
	Direction   Direction
	Type        value.Kind
	DisplayName string
	CodeName    string

	// Default is used when an input is not connected. Inputs with no
	// default are required.
	Default *value.Value
}

// NewInput returns an input slot. def may be nil for a required input.
func NewInput(id int, kind value.Kind, name string, def *value.Value) Slot {
	return Slot{
		ID:          id,
		Direction:   Input,
		Type:        kind,
		DisplayName: name,
		CodeName:    mangle(name),
		Default:     def,
	}
}

// NewOutput returns an output slot. displayName may differ from the code name,
// e.g. a property node's output is labelled with the property's display name.
func NewOutput(id int, kind value.Kind, displayName, codeName string) Slot {
	return Slot{
		ID:          id,
		Direction:   Output,
		Type:        kind,
		DisplayName: displayName,
		CodeName:    codeName,
	}
}

func (s Slot) IsInput() bool {
	return s.Direction == Input
}

func (s Slot) IsOutput() bool {
	return s.Direction == Output
}
