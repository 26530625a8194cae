// Copyright 2020-2026, Square, Inc.

package document

import (
	"github.com/square/shadergraph/property"
)

// DocumentCheck checks a whole document. Checks that span nodes, properties
// and edges belong here.
type DocumentCheck interface {
	CheckDocument(Document) error
}

// PropertyCheck checks one declared property of the named document.
type PropertyCheck interface {
	CheckProperty(string, property.Property) error
}

// NodeCheck checks one node of the named document.
type NodeCheck interface {
	CheckNode(string, Node) error
}
