// Copyright 2026, Square, Inc.

// Package codegen lowers a graph to shading-language source and the manifest
// of properties the source expects the host to bind.
package codegen

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/square/shadergraph/graph"
	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// Result is the output of one Generate call.
type Result struct {
	// Source is the emitted statements, one per line, in topological order.
	Source string

	// Properties is the manifest: registry properties in registration order,
	// then node-declared properties in topological order, deduplicated by
	// reference name.
	Properties []property.Property

	// Warnings are problems that did not stop generation.
	Warnings []error

	// Skipped are ids of nodes not emitted because they were in an error
	// state, in topological order.
	Skipped []int
}

// Generator lowers graphs. It holds no per-graph state, so one Generator can
// be shared by goroutines generating different graphs.
type Generator struct {
	Precision value.Precision
}

func NewGenerator(p value.Precision) *Generator {
	if p == "" {
		p = value.Float
	}
	return &Generator{Precision: p}
}

// Generate walks g in topological order and emits each node. Nodes in an
// error state are skipped. Nodes with an input that cannot be resolved are
// not emitted, and neither is anything downstream of them; independent nodes
// still are. If any node was not emitted the error is an Errors and the
// partial Result is still returned. A cyclic graph returns only an error.
func (gen *Generator) Generate(g *graph.Graph) (Result, error) {
	order, err := g.TopologicalOrder()
	if err != nil {
		return Result{}, err
	}

	r := Result{}
	var errs Errors
	failed := map[int]bool{}
	kinds := map[int]map[int]value.Kind{} // node id -> resolved slot kinds
	var src strings.Builder

	for _, n := range order {
		nodeLogger := log.WithFields(log.Fields{"node": n.ID(), "type": n.Type().String()})

		if n.HasError(g.Props) {
			nodeLogger.Warn("node in error state, skipping")
			r.Skipped = append(r.Skipped, n.ID())
			failed[n.ID()] = true
			continue
		}

		// Collect what feeds each input. Kinds of connected inputs come from
		// the upstream node's resolved slot kinds.
		sources := map[int]value.Kind{}
		exprs := map[int]string{}
		var defaults []node.Slot
		var unresolved []error
		for _, s := range n.Slots() {
			if !s.IsInput() {
				continue
			}
			e, connected := g.Incoming(n.ID(), s.ID)
			if connected && g.IsDangling(e) {
				r.Warnings = append(r.Warnings, DanglingEdgeWarning{Edge: e})
				connected = false
			}
			switch {
			case connected && failed[e.From.Node]:
				unresolved = append(unresolved, UnresolvedInputError{Node: n.ID(), Slot: s.ID, Upstream: e.From.Node})
			case connected:
				upstream, _ := g.Node(e.From.Node)
				from := kinds[e.From.Node][e.From.Slot]
				if !value.CanConvert(from, s.Type) {
					unresolved = append(unresolved, TypeMismatchError{Node: n.ID(), Slot: s.ID, Upstream: e.From.Node, From: from, To: s.Type})
					continue
				}
				sources[s.ID] = from
				exprs[s.ID] = upstream.VariableName(g.Props, e.From.Slot)
			case s.Default != nil:
				defaults = append(defaults, s)
			default:
				unresolved = append(unresolved, UnresolvedInputError{Node: n.ID(), Slot: s.ID, Upstream: -1})
			}
		}
		if len(unresolved) > 0 {
			errs = append(errs, unresolved...)
			failed[n.ID()] = true
			nodeLogger.Debug("unresolved inputs, not emitting")
			continue
		}

		resolved := node.ResolveKinds(n, sources)
		inputs := make(map[int]string, len(exprs)+len(defaults))
		for slotId, expr := range exprs {
			inputs[slotId] = value.Convert(expr, sources[slotId], resolved[slotId], gen.Precision)
		}
		for _, s := range defaults {
			inputs[s.ID] = s.Default.Literal(resolved[s.ID], gen.Precision)
		}

		stmts, err := n.Emit(&node.Emission{
			Precision: gen.Precision,
			Props:     g.Props,
			Inputs:    inputs,
			Kinds:     resolved,
		})
		if err != nil {
			errs = append(errs, EmitError{Node: n.ID(), Err: err})
			failed[n.ID()] = true
			continue
		}
		kinds[n.ID()] = resolved
		for _, stmt := range stmts {
			src.WriteString(stmt)
			src.WriteByte('\n')
		}
	}

	r.Source = src.String()
	r.Properties, r.Warnings = gen.manifest(g, order, failed, r.Warnings)

	if len(errs) > 0 {
		return r, errs
	}
	return r, nil
}

// manifest collects registry properties, then properties declared by nodes
// that were emitted. The first declaration of a reference name wins.
func (gen *Generator) manifest(g *graph.Graph, order []node.Node, failed map[int]bool, warnings []error) ([]property.Property, []error) {
	props := []property.Property{}
	seen := map[string]property.Property{} // reference name -> first declaration

	add := func(nodeId int, p property.Property) {
		if prev, ok := seen[p.ReferenceName]; ok {
			if p.ID != "" && p.ID == prev.ID {
				return
			}
			w := DuplicatePropertyWarning{ReferenceName: p.ReferenceName, Node: nodeId, Existing: prev.ID}
			if prev.ID == "" {
				w.Existing = "a node"
			}
			log.WithFields(log.Fields{"node": nodeId, "reference_name": p.ReferenceName}).Warn("duplicate property declaration")
			warnings = append(warnings, w)
			return
		}
		seen[p.ReferenceName] = p
		props = append(props, p)
	}

	for _, p := range g.Props.All() {
		add(0, p)
	}
	for _, n := range order {
		if failed[n.ID()] {
			continue
		}
		for _, p := range n.Properties(g.Props) {
			add(n.ID(), p)
		}
	}
	return props, warnings
}
