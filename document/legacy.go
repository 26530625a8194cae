// Copyright 2026, Square, Inc.

package document

import (
	"fmt"

	"github.com/square/shadergraph/graph"
	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/upgrade"
	"github.com/square/shadergraph/value"
)

// DocumentV0 is the first saved shape. Values are flat lists, kinds and node
// types use their original names, and edges are "node:slot" strings.
type DocumentV0 struct {
	SchemaVersion int          `yaml:"version"`
	Name          string       `yaml:"name"`
	Properties    []PropertyV0 `yaml:"properties"`
	Nodes         []NodeV0     `yaml:"nodes"`
	Edges         []EdgeV0     `yaml:"edges"`
}

type PropertyV0 struct {
	Guid    string    `yaml:"guid"`
	Type    string    `yaml:"type"`
	Name    string    `yaml:"name"`
	Ref     string    `yaml:"ref"`
	Default []float64 `yaml:"default,flow"`
	Texture string    `yaml:"texture,omitempty"`
}

type NodeV0 struct {
	Id      int       `yaml:"id"`
	Type    string    `yaml:"type"`
	Guid    string    `yaml:"guid,omitempty"`
	Texture string    `yaml:"texture,omitempty"`
	Kind    string    `yaml:"kind,omitempty"`
	Value   []float64 `yaml:"value,flow,omitempty"`
	Op      string    `yaml:"op,omitempty"`
}

type EdgeV0 struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

func (d *DocumentV0) DocumentId() string { return d.Name }
func (d *DocumentV0) Version() int       { return 0 }

// DocumentV1 renamed the property fields, bound property nodes through
// property_guid, and flattened edges into four integers.
type DocumentV1 struct {
	SchemaVersion int          `yaml:"version"`
	Name          string       `yaml:"name"`
	Properties    []PropertyV1 `yaml:"properties"`
	Nodes         []NodeV1     `yaml:"nodes"`
	Edges         []EdgeV1     `yaml:"edges"`
}

type PropertyV1 struct {
	Guid          string      `yaml:"guid"`
	Type          string      `yaml:"type"`
	DisplayName   string      `yaml:"display_name"`
	ReferenceName string      `yaml:"reference_name"`
	Default       value.Value `yaml:"default"`
}

type NodeV1 struct {
	Id           int          `yaml:"id"`
	Type         string       `yaml:"type"`
	PropertyGuid string       `yaml:"property_guid,omitempty"`
	Texture      string       `yaml:"texture,omitempty"`
	Kind         string       `yaml:"kind,omitempty"`
	Value        *value.Value `yaml:"value,omitempty"`
	Op           string       `yaml:"op,omitempty"`
}

type EdgeV1 struct {
	SrcNode int `yaml:"src_node"`
	SrcSlot int `yaml:"src_slot"`
	DstNode int `yaml:"dst_node"`
	DstSlot int `yaml:"dst_slot"`
}

func (d *DocumentV1) DocumentId() string { return d.Name }
func (d *DocumentV1) Version() int       { return 1 }

// --------------------------------------------------------------------------

// Chain returns the upgrade chain for graph documents.
func Chain() *upgrade.Chain {
	c := upgrade.NewChain(CurrentVersion)
	for _, s := range []upgrade.Step{
		{From: 0, To: 1, Transform: upgradeV0},
		{From: 1, To: 2, Transform: upgradeV1},
	} {
		if err := c.Register(s.From, s.To, s.Transform); err != nil {
			panic(err)
		}
	}
	return c
}

// Upgrade brings a parsed document to the current shape. maxSteps bounds the
// number of upgrade steps; zero means the length of the chain. It returns the
// number of steps taken.
func Upgrade(doc upgrade.Document, maxSteps int) (*Document, int, error) {
	up, steps, err := upgrade.NewResolver(Chain(), maxSteps).Resolve(doc)
	if err != nil {
		return nil, 0, err
	}
	d, ok := up.(*Document)
	if !ok {
		return nil, 0, fmt.Errorf("document %s: upgraded to %T, expected *Document", doc.DocumentId(), up)
	}
	return d, steps, nil
}

// v0 node type names.
var v0NodeTypes = map[string]node.Type{
	"Property":            node.TypeProperty,
	"Texture2DAsset":      node.TypeTexture2DAsset,
	"Texture2DProperties": node.TypeTexture2DProperties,
	"Vector":              node.TypeConstant,
	"Math":                node.TypeMath,
	"SampleTexture2D":     node.TypeSampleTexture2D,
}

func upgradeV0(doc upgrade.Document) (upgrade.Document, error) {
	d0 := doc.(*DocumentV0)
	d1 := &DocumentV1{
		SchemaVersion: 1,
		Name:          d0.Name,
		Properties:    make([]PropertyV1, 0, len(d0.Properties)),
		Nodes:         make([]NodeV1, 0, len(d0.Nodes)),
		Edges:         make([]EdgeV1, 0, len(d0.Edges)),
	}

	for _, p := range d0.Properties {
		k, err := value.ParseKind(p.Type)
		if err != nil {
			return nil, fmt.Errorf("property %s: %s", p.Guid, err)
		}
		d1.Properties = append(d1.Properties, PropertyV1{
			Guid:          p.Guid,
			Type:          k.String(),
			DisplayName:   p.Name,
			ReferenceName: p.Ref,
			Default:       v0Value(k, p.Default, p.Texture),
		})
	}

	for _, n := range d0.Nodes {
		t, ok := v0NodeTypes[n.Type]
		if !ok {
			return nil, fmt.Errorf("node %d: unknown node type %q", n.Id, n.Type)
		}
		n1 := NodeV1{
			Id:           n.Id,
			Type:         t.String(),
			PropertyGuid: n.Guid,
			Texture:      n.Texture,
			Op:           n.Op,
		}
		if n.Kind != "" {
			k, err := value.ParseKind(n.Kind)
			if err != nil {
				return nil, fmt.Errorf("node %d: %s", n.Id, err)
			}
			n1.Kind = k.String()
			if n.Value != nil {
				v := v0Value(k, n.Value, "")
				n1.Value = &v
			}
		}
		d1.Nodes = append(d1.Nodes, n1)
	}

	for _, e := range d0.Edges {
		var e1 EdgeV1
		if _, err := fmt.Sscanf(e.From, "%d:%d", &e1.SrcNode, &e1.SrcSlot); err != nil {
			return nil, fmt.Errorf("edge from %q: expected node:slot", e.From)
		}
		if _, err := fmt.Sscanf(e.To, "%d:%d", &e1.DstNode, &e1.DstSlot); err != nil {
			return nil, fmt.Errorf("edge to %q: expected node:slot", e.To)
		}
		d1.Edges = append(d1.Edges, e1)
	}

	return d1, nil
}

// v0Value converts a v0 flat list to a Value. Booleans were stored as 0 or 1.
func v0Value(k value.Kind, list []float64, texture string) value.Value {
	switch k {
	case value.Boolean:
		return value.Value{Bool: len(list) > 0 && list[0] != 0}
	case value.Texture2D, value.Texture2DArray, value.Texture3D, value.Cubemap:
		return value.Value{Texture: texture}
	case value.Scalar, value.Vector2, value.Vector3, value.Vector4, value.Color, value.Dynamic, value.Unknown:
	}
	return value.Vec(list...)
}

func upgradeV1(doc upgrade.Document) (upgrade.Document, error) {
	d1 := doc.(*DocumentV1)
	d := &Document{
		SchemaVersion: CurrentVersion,
		Name:          d1.Name,
		Properties:    make([]property.Property, 0, len(d1.Properties)),
		Nodes:         make([]Node, 0, len(d1.Nodes)),
		Edges:         make([]graph.Edge, 0, len(d1.Edges)),
	}

	for _, p := range d1.Properties {
		k, err := value.ParseKind(p.Type)
		if err != nil {
			return nil, fmt.Errorf("property %s: %s", p.Guid, err)
		}
		d.Properties = append(d.Properties, property.Property{
			ID:            p.Guid,
			Kind:          k,
			DisplayName:   p.DisplayName,
			ReferenceName: p.ReferenceName,
			Default:       p.Default,
		})
	}

	for _, n := range d1.Nodes {
		d.Nodes = append(d.Nodes, Node{
			Id:       n.Id,
			Type:     n.Type,
			Property: n.PropertyGuid,
			Texture:  n.Texture,
			Kind:     n.Kind,
			Value:    n.Value,
			Op:       n.Op,
		})
	}

	for _, e := range d1.Edges {
		d.Edges = append(d.Edges, graph.Edge{
			From: graph.Endpoint{Node: e.SrcNode, Slot: e.SrcSlot},
			To:   graph.Endpoint{Node: e.DstNode, Slot: e.DstSlot},
		})
	}

	return d, nil
}
