// Copyright 2026, Square, Inc.

package node

import (
	"fmt"

	"github.com/square/shadergraph/value"
)

var _ error = MissingPropertyError{}

// MissingPropertyError is returned by a property node whose property was
// removed from the registry.
type MissingPropertyError struct {
	Node       int
	PropertyId string
}

func (e MissingPropertyError) Error() string {
	return fmt.Sprintf("node %d: property %s does not exist", e.Node, e.PropertyId)
}

/* =========================================================================== */

var _ error = UnsupportedKindError{}

type UnsupportedKindError struct {
	Node int
	Kind value.Kind
}

func (e UnsupportedKindError) Error() string {
	return fmt.Sprintf("node %d: cannot emit code for kind %s", e.Node, e.Kind)
}
