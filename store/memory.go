// Copyright 2017-2026, Square, Inc.

package store

import (
	"github.com/orcaman/concurrent-map"

	serr "github.com/square/shadergraph/errors"
	"github.com/square/shadergraph/proto"
)

type memoryRepo struct {
	cmap.ConcurrentMap
}

// NewMemoryRepo returns a repo that is backed by a thread-safe map in memory.
func NewMemoryRepo() Repo {
	return &memoryRepo{
		cmap.New(),
	}
}

func (m *memoryRepo) Create(s proto.Shader) error {
	wasAbsent := m.ConcurrentMap.SetIfAbsent(s.Id, s)
	if !wasAbsent {
		return ErrConflict
	}
	return nil
}

func (m *memoryRepo) Get(id string) (proto.Shader, error) {
	val, exists := m.ConcurrentMap.Get(id)
	if !exists {
		return proto.Shader{}, serr.ShaderNotFound{ShaderId: id}
	}
	return val.(proto.Shader), nil
}

func (m *memoryRepo) List(f proto.ShaderFilter) ([]proto.Shader, error) {
	shaders := []proto.Shader{}
	for _, v := range m.ConcurrentMap.Items() {
		shaders = append(shaders, v.(proto.Shader))
	}
	return filter(shaders, f), nil
}

func (m *memoryRepo) Delete(id string) error {
	if !m.ConcurrentMap.Has(id) {
		return serr.ShaderNotFound{ShaderId: id}
	}
	m.ConcurrentMap.Remove(id)
	return nil
}
