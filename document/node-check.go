// Copyright 2020-2026, Square, Inc.

package document

import (
	"sort"
	"strings"

	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/value"
)

// Node type is a known node type.
type ValidTypeNodeCheck struct{}

func (check ValidTypeNodeCheck) CheckNode(docName string, n Node) error {
	if n.Type == "" {
		return MissingValueError{
			Document: docName,
			Node:     &n.Id,
			Field:    "type",
		}
	}
	if _, ok := node.TypeValue[n.Type]; !ok {
		return InvalidValueError{
			Document: docName,
			Node:     &n.Id,
			Field:    "type",
			Values:   []string{n.Type},
			Expected: "one of: " + strings.Join(typeNames(), ", "),
		}
	}
	return nil
}

// Property nodes name the property they read.
type PropertyNodeHasPropertyNodeCheck struct{}

func (check PropertyNodeHasPropertyNodeCheck) CheckNode(docName string, n Node) error {
	if node.TypeValue[n.Type] == node.TypeProperty && n.Property == "" {
		return MissingValueError{
			Document:    docName,
			Node:        &n.Id,
			Field:       "property",
			Explanation: "required for property nodes",
		}
	}
	return nil
}

// Constant nodes have a vector or Boolean kind.
type ValidConstantKindNodeCheck struct{}

func (check ValidConstantKindNodeCheck) CheckNode(docName string, n Node) error {
	if node.TypeValue[n.Type] != node.TypeConstant {
		return nil
	}
	if n.Kind == "" {
		return MissingValueError{
			Document:    docName,
			Node:        &n.Id,
			Field:       "kind",
			Explanation: "required for constant nodes",
		}
	}
	k, err := value.ParseKind(n.Kind)
	if err != nil || !(k.IsVector() || k == value.Boolean) {
		return InvalidValueError{
			Document: docName,
			Node:     &n.Id,
			Field:    "kind",
			Values:   []string{n.Kind},
			Expected: "a vector kind or Boolean",
		}
	}
	return nil
}

// Math nodes have a known operator.
type ValidOpNodeCheck struct{}

func (check ValidOpNodeCheck) CheckNode(docName string, n Node) error {
	if node.TypeValue[n.Type] != node.TypeMath {
		return nil
	}
	if n.Op == "" {
		return MissingValueError{
			Document:    docName,
			Node:        &n.Id,
			Field:       "op",
			Explanation: "required for math nodes",
		}
	}
	if _, ok := node.OpValue[n.Op]; !ok {
		ops := make([]string, 0, len(node.OpValue))
		for op := range node.OpValue {
			ops = append(ops, op)
		}
		sort.Strings(ops)
		return InvalidValueError{
			Document: docName,
			Node:     &n.Id,
			Field:    "op",
			Values:   []string{n.Op},
			Expected: "one of: " + strings.Join(ops, ", "),
		}
	}
	return nil
}

// Node sets no fields its type ignores.
type NoUnusedFieldsNodeCheck struct{}

func (check NoUnusedFieldsNodeCheck) CheckNode(docName string, n Node) error {
	t := node.TypeValue[n.Type]
	unused := func(field string) error {
		return UnusedValueError{
			Document:    docName,
			Node:        &n.Id,
			Field:       field,
			Explanation: "ignored by " + n.Type + " nodes",
		}
	}
	if n.Property != "" && t != node.TypeProperty {
		return unused("property")
	}
	if n.Texture != "" && t != node.TypeTexture2DAsset {
		return unused("texture")
	}
	if n.Kind != "" && t != node.TypeConstant {
		return unused("kind")
	}
	if n.Value != nil && t != node.TypeConstant {
		return unused("value")
	}
	if n.Op != "" && t != node.TypeMath {
		return unused("op")
	}
	return nil
}

func typeNames() []string {
	names := make([]string, 0, len(node.TypeValue))
	for name := range node.TypeValue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
