// Copyright 2020-2026, Square, Inc.

package document

import (
	"github.com/square/shadergraph/property"
	"github.com/square/shadergraph/value"
)

// Property has a concrete kind.
type HasKindPropertyCheck struct{}

func (check HasKindPropertyCheck) CheckProperty(docName string, p property.Property) error {
	switch p.Kind {
	case value.Unknown:
		return MissingValueError{
			Document: docName,
			Property: &p.ID,
			Field:    "kind",
		}
	case value.Dynamic:
		return InvalidValueError{
			Document: docName,
			Property: &p.ID,
			Field:    "kind",
			Values:   []string{p.Kind.String()},
			Expected: "a vector, Boolean or texture kind",
		}
	}
	return nil
}

// Reference name, if set, is usable in generated source. An empty reference
// name is derived from the display name when the document is built.
type ValidReferenceNamePropertyCheck struct{}

func (check ValidReferenceNamePropertyCheck) CheckProperty(docName string, p property.Property) error {
	if p.ReferenceName == "" {
		return nil
	}
	if err := property.ValidReferenceName(p.ReferenceName); err != nil {
		return InvalidValueError{
			Document: docName,
			Property: &p.ID,
			Field:    "reference_name",
			Values:   []string{p.ReferenceName},
			Expected: "an identifier that is not reserved",
		}
	}
	return nil
}

// Property has a display name. Without one, hosts show the reference name.
type HasDisplayNamePropertyCheck struct{}

func (check HasDisplayNamePropertyCheck) CheckProperty(docName string, p property.Property) error {
	if p.DisplayName == "" {
		return MissingValueError{
			Document:    docName,
			Property:    &p.ID,
			Field:       "display_name",
			Explanation: "hosts will show the reference name instead",
		}
	}
	return nil
}
