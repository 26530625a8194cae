// Copyright 2019-2026, Square, Inc.

// Package errors provides errors reported to the user. These are mapped to a
// proto.Error by the API and sent to the user. All errors must implement the
// error interface and return a helpful error message. The message can be terse
// because it will be reported in context. For example, the ShaderNotFound
// error message makes sense in response to "shaderc get abc123" when "abc123"
// does not exist.
package errors

import (
	"fmt"
	"strings"
	"time"
)

var _ error = GraphNotFound{}

// GraphNotFound is returned when a compile names a document the server's
// document library does not have.
type GraphNotFound struct {
	Name string
}

func (e GraphNotFound) Error() string {
	return fmt.Sprintf("graph %s not found", e.Name)
}

// --------------------------------------------------------------------------

var _ error = ShaderNotFound{}

type ShaderNotFound struct {
	ShaderId string
}

func (e ShaderNotFound) Error() string {
	return fmt.Sprintf("shader %s not found", e.ShaderId)
}

// --------------------------------------------------------------------------

var _ error = GenerationTimeout{}

// GenerationTimeout is returned when compiling one document takes longer than
// the configured budget.
type GenerationTimeout struct {
	Document string
	Timeout  time.Duration
}

func (e GenerationTimeout) Error() string {
	return fmt.Sprintf("document %s: generation did not finish in %s", e.Document, e.Timeout)
}

// --------------------------------------------------------------------------

var _ error = InvalidDocument{}

// InvalidDocument is returned when a document cannot be parsed, upgraded,
// checked or built. Problems holds one message per problem found.
type InvalidDocument struct {
	Document string
	Problems []string
}

func (e InvalidDocument) Error() string {
	switch len(e.Problems) {
	case 0:
		return fmt.Sprintf("invalid document %s", e.Document)
	case 1:
		return fmt.Sprintf("invalid document %s: %s", e.Document, e.Problems[0])
	}
	return fmt.Sprintf("invalid document %s: %d problems: %s", e.Document, len(e.Problems), strings.Join(e.Problems, "; "))
}

// --------------------------------------------------------------------------

var _ error = ErrInvalidCreateShader{}

type ErrInvalidCreateShader struct {
	Message string
}

func (e ErrInvalidCreateShader) Error() string {
	return e.Message
}

// --------------------------------------------------------------------------

var _ error = DbError{}

// Error represents a generic database error. This struct is not superfluous,
// it allows the API to distinguish the error type and return an appropriate
// proto.Error.
type DbError struct {
	err   error
	query string
}

func NewDbError(err error, query string) DbError {
	return DbError{err: err, query: query}
}

func (e DbError) Error() string {
	return fmt.Sprintf("database error: %s (%s)", e.err, e.query)
}
