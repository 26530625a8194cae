// Copyright 2020-2026, Square, Inc.

package document

import (
	"fmt"
	"strconv"

	"github.com/square/shadergraph/node"
)

// Node ids are unique.
type UniqueNodeIdsDocumentCheck struct{}

func (check UniqueNodeIdsDocumentCheck) CheckDocument(d Document) error {
	seen := map[int]bool{}
	values := []string{}
	for _, n := range d.Nodes {
		if seen[n.Id] {
			values = append(values, strconv.Itoa(n.Id))
		}
		seen[n.Id] = true
	}
	if len(values) > 0 {
		return DuplicateValueError{
			Document: d.Name,
			Field:    "nodes.id",
			Values:   values,
		}
	}
	return nil
}

// Property ids are set and unique.
type UniquePropertyIdsDocumentCheck struct{}

func (check UniquePropertyIdsDocumentCheck) CheckDocument(d Document) error {
	seen := map[string]bool{}
	values := []string{}
	for i, p := range d.Properties {
		if p.ID == "" {
			return MissingValueError{
				Document:    d.Name,
				Field:       "properties.id",
				Explanation: fmt.Sprintf("property %d has no id", i),
			}
		}
		if seen[p.ID] {
			values = append(values, p.ID)
		}
		seen[p.ID] = true
	}
	if len(values) > 0 {
		return DuplicateValueError{
			Document: d.Name,
			Field:    "properties.id",
			Values:   values,
		}
	}
	return nil
}

// Explicit reference names are unique.
type UniqueReferenceNamesDocumentCheck struct{}

func (check UniqueReferenceNamesDocumentCheck) CheckDocument(d Document) error {
	seen := map[string]bool{}
	values := []string{}
	for _, p := range d.Properties {
		if p.ReferenceName == "" {
			continue
		}
		if seen[p.ReferenceName] {
			values = append(values, p.ReferenceName)
		}
		seen[p.ReferenceName] = true
	}
	if len(values) > 0 {
		return DuplicateValueError{
			Document:    d.Name,
			Field:       "properties.reference_name",
			Values:      values,
			Explanation: "generated source would declare the same name twice",
		}
	}
	return nil
}

// Edges connect nodes in the document.
type EdgesReferenceNodesDocumentCheck struct{}

func (check EdgesReferenceNodesDocumentCheck) CheckDocument(d Document) error {
	ids := map[int]bool{}
	for _, n := range d.Nodes {
		ids[n.Id] = true
	}
	values := []string{}
	for _, e := range d.Edges {
		if !ids[e.From.Node] || !ids[e.To.Node] {
			values = append(values, e.String())
		}
	}
	if len(values) > 0 {
		return InvalidValueError{
			Document: d.Name,
			Field:    "edges",
			Values:   values,
			Expected: "edges between node ids declared in nodes",
		}
	}
	return nil
}

// Each input slot has at most one incoming edge.
type OneEdgePerInputDocumentCheck struct{}

func (check OneEdgePerInputDocumentCheck) CheckDocument(d Document) error {
	seen := map[string]bool{}
	values := []string{}
	for _, e := range d.Edges {
		to := fmt.Sprintf("%d:%d", e.To.Node, e.To.Slot)
		if seen[to] {
			values = append(values, to)
		}
		seen[to] = true
	}
	if len(values) > 0 {
		return DuplicateValueError{
			Document:    d.Name,
			Field:       "edges.to",
			Values:      values,
			Explanation: "an input slot accepts one edge",
		}
	}
	return nil
}

// Property nodes read declared properties. Undeclared properties build but
// the node is skipped at generation.
type PropertiesDeclaredDocumentCheck struct{}

func (check PropertiesDeclaredDocumentCheck) CheckDocument(d Document) error {
	declared := map[string]bool{}
	for _, p := range d.Properties {
		declared[p.ID] = true
	}
	for _, n := range d.Nodes {
		if node.TypeValue[n.Type] != node.TypeProperty || n.Property == "" {
			continue
		}
		if !declared[n.Property] {
			id := n.Id
			return InvalidValueError{
				Document: d.Name,
				Node:     &id,
				Field:    "property",
				Values:   []string{n.Property},
				Expected: "the id of a property declared in properties",
			}
		}
	}
	return nil
}

// Document has at least one node.
type HasNodesDocumentCheck struct{}

func (check HasNodesDocumentCheck) CheckDocument(d Document) error {
	if len(d.Nodes) == 0 {
		return MissingValueError{
			Document:    d.Name,
			Field:       "nodes",
			Explanation: "document generates no source",
		}
	}
	return nil
}

// Every declared property is read by some property node.
type PropertiesUsedDocumentCheck struct{}

func (check PropertiesUsedDocumentCheck) CheckDocument(d Document) error {
	used := map[string]bool{}
	for _, n := range d.Nodes {
		if node.TypeValue[n.Type] == node.TypeProperty {
			used[n.Property] = true
		}
	}
	for _, p := range d.Properties {
		if !used[p.ID] {
			id := p.ID
			return UnusedValueError{
				Document:    d.Name,
				Property:    &id,
				Field:       "properties",
				Explanation: "no property node reads it",
			}
		}
	}
	return nil
}
