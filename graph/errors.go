// Copyright 2026, Square, Inc.

package graph

import (
	"fmt"
	"strings"

	"github.com/square/shadergraph/node"
	"github.com/square/shadergraph/value"
)

var _ error = NodeNotFoundError{}

type NodeNotFoundError struct {
	Node int
}

func (e NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %d not found", e.Node)
}

/* =========================================================================== */

var _ error = DuplicateNodeError{}

type DuplicateNodeError struct {
	Node int
}

func (e DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %d already in graph", e.Node)
}

/* =========================================================================== */

var _ error = SlotNotFoundError{}

type SlotNotFoundError struct {
	Node int
	Slot int
}

func (e SlotNotFoundError) Error() string {
	return fmt.Sprintf("node %d has no slot %d", e.Node, e.Slot)
}

/* =========================================================================== */

var _ error = DirectionError{}

// DirectionError is returned when an edge would not run from an output slot to
// an input slot.
type DirectionError struct {
	Node     int
	Slot     int
	Expected node.Direction
}

func (e DirectionError) Error() string {
	return fmt.Sprintf("node %d slot %d is not an %s", e.Node, e.Slot, e.Expected)
}

/* =========================================================================== */

var _ error = TypeMismatchError{}

type TypeMismatchError struct {
	Edge Edge
	From value.Kind
	To   value.Kind
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot convert %s to %s", e.Edge, e.From, e.To)
}

/* =========================================================================== */

var _ error = SlotOccupiedError{}

// SlotOccupiedError is returned when connecting to an input that already has
// an incoming edge. The existing edge must be disconnected first.
type SlotOccupiedError struct {
	Existing Edge
}

func (e SlotOccupiedError) Error() string {
	return fmt.Sprintf("node %d slot %d already connected: %s", e.Existing.To.Node, e.Existing.To.Slot, e.Existing)
}

/* =========================================================================== */

var _ error = WouldCycleError{}

type WouldCycleError struct {
	Edge Edge
}

func (e WouldCycleError) Error() string {
	return fmt.Sprintf("%s would create a cycle", e.Edge)
}

/* =========================================================================== */

var _ error = CycleDetectedError{}

// CycleDetectedError is returned by TopologicalOrder. Nodes are the nodes that
// could not be ordered, in id order.
type CycleDetectedError struct {
	Nodes []int
}

func (e CycleDetectedError) Error() string {
	ids := make([]string, len(e.Nodes))
	for i, id := range e.Nodes {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("graph has a cycle through nodes %s", strings.Join(ids, ", "))
}

/* =========================================================================== */

var _ error = DanglingEdgeError{}

// DanglingEdgeError describes an edge whose source or destination slot no
// longer exists on its node, usually after the node was reconfigured.
type DanglingEdgeError struct {
	Edge Edge
}

func (e DanglingEdgeError) Error() string {
	return fmt.Sprintf("%s references a slot that no longer exists", e.Edge)
}

/* =========================================================================== */

var _ error = NodeError{}

// NodeError describes a node whose HasError is true.
type NodeError struct {
	Node int
	Type node.Type
}

func (e NodeError) Error() string {
	return fmt.Sprintf("node %d (%s) is in an error state", e.Node, e.Type)
}

/* =========================================================================== */

var _ error = PropertyInUseError{}

type PropertyInUseError struct {
	Property string
	Nodes    []int
}

func (e PropertyInUseError) Error() string {
	return fmt.Sprintf("property %s is used by nodes %v", e.Property, e.Nodes)
}
