// Copyright 2017-2026, Square, Inc.

// Package proto provide API message structures and constants.
package proto

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/square/shadergraph/property"
)

const (
	STATE_UNKNOWN byte = iota

	STATE_COMPLETE // every node emitted
	STATE_PARTIAL  // some nodes were skipped or failed; source is incomplete
)

var StateName = map[byte]string{
	STATE_UNKNOWN:  "UNKNOWN",
	STATE_COMPLETE: "COMPLETE",
	STATE_PARTIAL:  "PARTIAL",
}

var StateValue = map[string]byte{
	"UNKNOWN":  STATE_UNKNOWN,
	"COMPLETE": STATE_COMPLETE,
	"PARTIAL":  STATE_PARTIAL,
}

// Shader is the result of compiling one graph document. Shaders are
// identified by Id, which is unique across all compiles.
type Shader struct {
	Id            string              `json:"id"`                 // unique id
	Document      string              `json:"document"`           // document name
	Version       int                 `json:"version"`            // schema version the document was saved at
	Upgrades      int                 `json:"upgrades"`           // upgrade steps applied
	Precision     string              `json:"precision"`          // float or half
	Source        string              `json:"source"`             // generated statements, one per line
	Properties    []property.Property `json:"properties"`         // property manifest, in declaration order
	PropertyBlock string              `json:"propertyBlock"`      // manifest rendered as a Properties block
	Skipped       []int               `json:"skipped,omitempty"`  // nodes not emitted
	Errors        []string            `json:"errors,omitempty"`   // why nodes were not emitted
	Warnings      []string            `json:"warnings,omitempty"` // parse, check and generation warnings
	State         byte                `json:"state"`              // STATE_COMPLETE or STATE_PARTIAL
	CreatedAt     time.Time           `json:"createdAt"`          // when the compile finished
}

// CreateShader is the payload for compiling a document. Exactly one of Graph
// and Document is set.
type CreateShader struct {
	Graph     string `json:"graph,omitempty"`     // name of a document in the server's library
	Document  string `json:"document,omitempty"`  // YAML document
	Name      string `json:"name,omitempty"`      // name for Document if it has none
	Precision string `json:"precision,omitempty"` // overrides the server default and the document
}

// ShaderFilter selects shaders to list.
type ShaderFilter struct {
	Document string // only shaders compiled from this document
	Limit    uint   // at most this many, newest first; 0 = no limit
}

// String returns the filter as a URL query string, or "" if no fields are set.
func (f ShaderFilter) String() string {
	v := url.Values{}
	if f.Document != "" {
		v.Set("document", f.Document)
	}
	if f.Limit != 0 {
		v.Set("limit", strconv.FormatUint(uint64(f.Limit), 10))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// Schema describes what documents the server accepts.
type Schema struct {
	Version    int      `json:"version"`    // current document version
	Versions   []int    `json:"versions"`   // versions that can be upgraded from
	NodeTypes  []string `json:"nodeTypes"`  // node type names
	Kinds      []string `json:"kinds"`      // value kind names
	Operators  []string `json:"operators"`  // math operators
	Precisions []string `json:"precisions"` // accepted precisions
}

// Shaders sort newest first, then by id.
type Shaders []Shader

func (s Shaders) Len() int { return len(s) }
func (s Shaders) Less(i, j int) bool {
	if !s[i].CreatedAt.Equal(s[j].CreatedAt) {
		return s[i].CreatedAt.After(s[j].CreatedAt)
	}
	return s[i].Id < s[j].Id
}
func (s Shaders) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Error is the standard response for all handled errors. Client errors (HTTP 400
// codes) and internal errors (HTTP 500 codes) are returned as an Error, if handled.
// If not handled (API crash, panic, etc.), the server returns an HTTP 500 code and the
// response data is undefined; the client should print any response data as a string.
type Error struct {
	Message    string   `json:"message"`            // human-readable and loggable error message
	Id         string   `json:"id"`                 // entity ID that caused error, if any
	Problems   []string `json:"problems,omitempty"` // document problems, for invalid documents
	HTTPStatus int      `json:"httpStatus"`         // HTTP status code
}

func NewError(msgFmt string, msgArgs ...interface{}) Error {
	e := Error{}
	if msgFmt != "" {
		e.Message = fmt.Sprintf(msgFmt, msgArgs...)
	}
	return e
}

func (e Error) String() string {
	return e.Message
}

func (e Error) Error() string {
	return e.Message
}
