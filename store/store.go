// Copyright 2017-2026, Square, Inc.

// Package store provides repos of compiled shaders.
package store

import (
	"errors"
	"sort"

	"github.com/square/shadergraph/proto"
)

var (
	ErrConflict = errors.New("shader already exists")
)

// A Repo reads and writes compiled shaders. Implementations are safe for
// concurrent use.
type Repo interface {
	// Create saves a new shader. It returns ErrConflict if a shader with the
	// same id exists.
	Create(proto.Shader) error

	// Get returns one shader, or errors.ShaderNotFound.
	Get(id string) (proto.Shader, error)

	// List returns the shaders matching the filter, newest first.
	List(proto.ShaderFilter) ([]proto.Shader, error)

	// Delete removes a shader. It returns errors.ShaderNotFound if there is
	// none with the id.
	Delete(id string) error
}

// filter applies f to shaders in place and returns the result.
func filter(shaders []proto.Shader, f proto.ShaderFilter) []proto.Shader {
	kept := shaders[:0]
	for _, s := range shaders {
		if f.Document != "" && s.Document != f.Document {
			continue
		}
		kept = append(kept, s)
	}
	sort.Sort(proto.Shaders(kept))
	if f.Limit > 0 && uint(len(kept)) > f.Limit {
		kept = kept[:f.Limit]
	}
	return kept
}
