// Copyright 2017-2026, Square, Inc.

package graph

import (
	"fmt"

	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/value"
)

// Problem is one thing wrong with a graph. Slot is -1 when the problem is not
// about a particular slot.
type Problem struct {
	Node int
	Slot int
	Err  error
}

func (p Problem) String() string {
	if p.Slot < 0 {
		return fmt.Sprintf("node %d: %s", p.Node, p.Err)
	}
	return fmt.Sprintf("node %d slot %d: %s", p.Node, p.Slot, p.Err)
}

// Validate returns every problem with the graph, or nil if there are none.
// It checks that no node is in an error state, that every edge still joins
// existing slots of convertible types, and that the graph is acyclic. The
// graph is not modified.
func (g *Graph) Validate() []Problem {
	var problems []Problem

	for _, n := range g.Nodes() {
		if n.HasError(g.Props) {
			problems = append(problems, Problem{
				Node: n.ID(),
				Slot: -1,
				Err:  NodeError{Node: n.ID(), Type: n.Type()},
			})
		}
	}

	for _, e := range g.Edges() {
		from, to, ok := g.edgeSlots(e)
		if !ok {
			problems = append(problems, Problem{Node: e.To.Node, Slot: e.To.Slot, Err: DanglingEdgeError{Edge: e}})
			continue
		}
		if !value.CanConvert(from.Type, to.Type) {
			problems = append(problems, Problem{
				Node: e.To.Node,
				Slot: e.To.Slot,
				Err:  TypeMismatchError{Edge: e, From: from.Type, To: to.Type},
			})
		}
	}

	if _, err := g.TopologicalOrder(); err != nil {
		cerr := err.(CycleDetectedError)
		problems = append(problems, Problem{Node: cerr.Nodes[0], Slot: -1, Err: cerr})
	}

	return problems
}

// IsDangling returns true if either end of e is a slot its node no longer has.
func (g *Graph) IsDangling(e Edge) bool {
	_, _, ok := g.edgeSlots(e)
	return !ok
}

func (g *Graph) edgeSlots(e Edge) (node.Slot, node.Slot, bool) {
	src, ok1 := g.nodes[e.From.Node]
	dst, ok2 := g.nodes[e.To.Node]
	if !ok1 || !ok2 {
		return node.Slot{}, node.Slot{}, false
	}
	from, ok1 := src.Slot(e.From.Slot)
	to, ok2 := dst.Slot(e.To.Slot)
	if !ok1 || !ok2 || !from.IsOutput() || !to.IsInput() {
		return node.Slot{}, node.Slot{}, false
	}
	return from, to, true
}
