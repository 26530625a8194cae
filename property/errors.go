// Copyright 2026, Square, Inc.

package property

import (
	"fmt"
)

var _ error = PropertyNotFoundError{}

type PropertyNotFoundError struct {
	Id string
}

func (e PropertyNotFoundError) Error() string {
	return fmt.Sprintf("property %s not found", e.Id)
}

/* =========================================================================== */

var _ error = DuplicateIdError{}

type DuplicateIdError struct {
	Id string
}

func (e DuplicateIdError) Error() string {
	return fmt.Sprintf("property id %s already registered", e.Id)
}

/* =========================================================================== */

var _ error = RetiredIdError{}

// RetiredIdError is returned when adding a property with the id of a property
// that was removed. Ids are never reused.
type RetiredIdError struct {
	Id string
}

func (e RetiredIdError) Error() string {
	return fmt.Sprintf("property id %s belonged to a removed property and cannot be reused", e.Id)
}

/* =========================================================================== */

var _ error = DuplicateReferenceNameError{}

type DuplicateReferenceNameError struct {
	Name       string
	Id         string
	ExistingId string
}

func (e DuplicateReferenceNameError) Error() string {
	return fmt.Sprintf("property %s: reference name %s already used by property %s", e.Id, e.Name, e.ExistingId)
}

/* =========================================================================== */

var _ error = InvalidReferenceNameError{}

type InvalidReferenceNameError struct {
	Name   string
	Reason string
}

func (e InvalidReferenceNameError) Error() string {
	return fmt.Sprintf("invalid reference name %q: %s", e.Name, e.Reason)
}
