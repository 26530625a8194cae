// Copyright 2020-2026, Square, Inc.

package document

import (
	"fmt"
	"strings"
)

// location describes where in a document a check failed. At most one of node
// and prop is set.
func location(doc string, node *int, prop *string) string {
	switch {
	case node != nil:
		return fmt.Sprintf("document %s, node %d", doc, *node)
	case prop != nil:
		return fmt.Sprintf("document %s, property %s", doc, *prop)
	}
	return fmt.Sprintf("document %s", doc)
}

func explain(explanation string) string {
	switch explanation {
	case "":
		return ""
	default:
		return fmt.Sprintf(": %s", explanation)
	}
}

/* =========================================================================== */

var _ error = InvalidValueError{}

type InvalidValueError struct {
	Document string
	Node     *int
	Property *string
	Field    string
	Values   []string
	Expected string
}

func (e InvalidValueError) Error() string {
	values := fmt.Sprintf("\"%s\"", strings.Join(e.Values, "\", \""))
	return fmt.Sprintf("%s: invalid value(s) %s in field `%s`, expected %s",
		location(e.Document, e.Node, e.Property), values, e.Field, e.Expected)
}

/* =========================================================================== */

var _ error = MissingValueError{}

type MissingValueError struct {
	Document    string
	Node        *int
	Property    *string
	Field       string
	Explanation string
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("%s: field(s) `%s` missing%s",
		location(e.Document, e.Node, e.Property), e.Field, explain(e.Explanation))
}

/* =========================================================================== */

var _ error = DuplicateValueError{}

type DuplicateValueError struct {
	Document    string
	Field       string
	Values      []string
	Explanation string
}

func (e DuplicateValueError) Error() string {
	values := fmt.Sprintf("\"%s\"", strings.Join(e.Values, "\", \""))
	return fmt.Sprintf("%s: value(s) %s duplicated in field `%s`%s",
		location(e.Document, nil, nil), values, e.Field, explain(e.Explanation))
}

/* =========================================================================== */

var _ error = UnusedValueError{}

// UnusedValueError is a warning: a field is set where it has no effect.
type UnusedValueError struct {
	Document    string
	Node        *int
	Property    *string
	Field       string
	Explanation string
}

func (e UnusedValueError) Error() string {
	return fmt.Sprintf("%s: field `%s` is not used%s",
		location(e.Document, e.Node, e.Property), e.Field, explain(e.Explanation))
}
