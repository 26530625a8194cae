// Copyright 2026, Square, Inc.

package document

import (
	"fmt"

	"github.com/square/shadergraph/graph"
	"github.com/square/shadergraph/id"
	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// Build creates a graph from a current document. Node and property ids are
// kept; idgen reserves the property ids and assigns new ones later. Nodes
// bound to properties the document does not declare are built anyway and
// report an error state. Edges out of them are kept and dangle.
func Build(d *Document, idgen id.Generator) (*graph.Graph, error) {
	reg := property.NewRegistry(idgen)
	for _, p := range d.Properties {
		p.Modifiable = true
		if _, err := reg.Add(p); err != nil {
			return nil, fmt.Errorf("document %s: %s", d.Name, err)
		}
	}

	g := graph.New(reg)
	for _, n := range d.Nodes {
		gn, err := n.Make()
		if err != nil {
			return nil, fmt.Errorf("document %s: %s", d.Name, err)
		}
		if err := g.AddNode(gn); err != nil {
			return nil, fmt.Errorf("document %s: %s", d.Name, err)
		}
	}

	for _, e := range d.Edges {
		connect := g.Connect
		if src, ok := g.Node(e.From.Node); ok && src.HasError(reg) {
			// Kept dangling until the property is declared again.
			connect = g.Restore
		}
		if err := connect(e.From.Node, e.From.Slot, e.To.Node, e.To.Slot); err != nil {
			return nil, fmt.Errorf("document %s: %s: %s", d.Name, e, err)
		}
	}
	return g, nil
}

// Make creates the graph node described by n.
func (n Node) Make() (node.Node, error) {
	t, ok := node.TypeValue[n.Type]
	if !ok {
		return nil, fmt.Errorf("node %d: unknown node type %q", n.Id, n.Type)
	}

	switch t {
	case node.TypeProperty:
		if n.Property == "" {
			return nil, fmt.Errorf("node %d: property node has no property", n.Id)
		}
		return node.NewPropertyNode(n.Id, n.Property), nil
	case node.TypeTexture2DAsset:
		return node.NewTexture2DAssetNode(n.Id, n.Texture), nil
	case node.TypeTexture2DProperties:
		return node.NewTexture2DPropertiesNode(n.Id), nil
	case node.TypeConstant:
		k, err := value.ParseKind(n.Kind)
		if err != nil {
			return nil, fmt.Errorf("node %d: %s", n.Id, err)
		}
		var v value.Value
		if n.Value != nil {
			v = *n.Value
		}
		c := node.NewConstantNode(n.Id, value.Scalar, v)
		if err := c.SetKind(k); err != nil {
			return nil, err
		}
		return c, nil
	case node.TypeMath:
		op, ok := node.OpValue[n.Op]
		if !ok {
			return nil, fmt.Errorf("node %d: unknown operator %q", n.Id, n.Op)
		}
		return node.NewMathNode(n.Id, op), nil
	case node.TypeSampleTexture2D:
		return node.NewSampleTexture2DNode(n.Id), nil
	case node.TypeUnknown:
	}
	return nil, fmt.Errorf("node %d: unknown node type %q", n.Id, n.Type)
}
