// Copyright 2026, Square, Inc.

package codegen

import (
	"fmt"
	"strings"

	"github.com/square/shadergraph/graph"
	"github.com/square/shadergraph/value"
)

var _ error = UnresolvedInputError{}

// UnresolvedInputError is returned for a node that was not emitted because an
// input had no value: it is unconnected and has no default, or the node
// feeding it was skipped or failed. Upstream is that node's id, or -1.
type UnresolvedInputError struct {
	Node     int
	Slot     int
	Upstream int
}

func (e UnresolvedInputError) Error() string {
	if e.Upstream >= 0 {
		return fmt.Sprintf("node %d slot %d: input from node %d has no value", e.Node, e.Slot, e.Upstream)
	}
	return fmt.Sprintf("node %d slot %d: required input is not connected", e.Node, e.Slot)
}

/* =========================================================================== */

var _ error = TypeMismatchError{}

// TypeMismatchError is returned for a node whose connected input carries a
// kind the slot cannot accept, usually after the upstream node was
// reconfigured.
type TypeMismatchError struct {
	Node     int
	Slot     int
	Upstream int
	From     value.Kind
	To       value.Kind
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("node %d slot %d: cannot convert %s from node %d to %s", e.Node, e.Slot, e.From, e.Upstream, e.To)
}

/* =========================================================================== */

var _ error = EmitError{}

// EmitError wraps an error returned by a node's Emit.
type EmitError struct {
	Node int
	Err  error
}

func (e EmitError) Error() string {
	return fmt.Sprintf("node %d: %s", e.Node, e.Err)
}

/* =========================================================================== */

var _ error = Errors{}

// Errors is every node-level error from one Generate call.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d node(s) not emitted: %s", len(e), strings.Join(msgs, "; "))
}

/* =========================================================================== */
// Warnings do not stop generation. They are returned in Result.Warnings.

var _ error = DuplicatePropertyWarning{}

// DuplicatePropertyWarning is a property declaration dropped from the manifest
// because an earlier declaration used the same reference name.
type DuplicatePropertyWarning struct {
	ReferenceName string
	Node          int // declaring node, 0 for the registry
	Existing      string
}

func (w DuplicatePropertyWarning) Error() string {
	return fmt.Sprintf("node %d: property %s already declared by %s, ignoring", w.Node, w.ReferenceName, w.Existing)
}

/* =========================================================================== */

var _ error = DanglingEdgeWarning{}

// DanglingEdgeWarning is an edge ignored because one of its slots no longer
// exists. The input is treated as unconnected.
type DanglingEdgeWarning struct {
	Edge graph.Edge
}

func (w DanglingEdgeWarning) Error() string {
	return fmt.Sprintf("%s ignored: slot no longer exists", w.Edge)
}
