// Copyright 2017-2026, Square, Inc.

package mock

import (
	"errors"

	"github.com/square/shadergraph/proto"
	"github.com/square/shadergraph/store"
)

var (
	ErrRepo = errors.New("forced error in repo")
)

var _ store.Repo = &Repo{}

type Repo struct {
	CreateFunc func(proto.Shader) error
	GetFunc    func(string) (proto.Shader, error)
	ListFunc   func(proto.ShaderFilter) ([]proto.Shader, error)
	DeleteFunc func(string) error
}

func (r *Repo) Create(shader proto.Shader) error {
	if r.CreateFunc != nil {
		return r.CreateFunc(shader)
	}
	return nil
}

func (r *Repo) Get(shaderId string) (proto.Shader, error) {
	if r.GetFunc != nil {
		return r.GetFunc(shaderId)
	}
	return proto.Shader{}, nil
}

func (r *Repo) List(f proto.ShaderFilter) ([]proto.Shader, error) {
	if r.ListFunc != nil {
		return r.ListFunc(f)
	}
	return []proto.Shader{}, nil
}

func (r *Repo) Delete(shaderId string) error {
	if r.DeleteFunc != nil {
		return r.DeleteFunc(shaderId)
	}
	return nil
}
