// Copyright 2017-2026, Square, Inc.

package mock

import (
	"errors"

	"github.com/square/shadergraph/client"
	"github.com/square/shadergraph/proto"
)

var (
	ErrClient = errors.New("forced error in client")
)

var _ client.Client = &Client{}

type Client struct {
	CreateShaderFunc func(proto.CreateShader) (proto.Shader, error)
	GetShaderFunc    func(string) (proto.Shader, error)
	ListShadersFunc  func(proto.ShaderFilter) ([]proto.Shader, error)
	DeleteShaderFunc func(string) error
	GraphsFunc       func() ([]string, error)
	SchemaFunc       func() (proto.Schema, error)
}

func (c *Client) CreateShader(params proto.CreateShader) (proto.Shader, error) {
	if c.CreateShaderFunc != nil {
		return c.CreateShaderFunc(params)
	}
	return proto.Shader{}, nil
}

func (c *Client) GetShader(shaderId string) (proto.Shader, error) {
	if c.GetShaderFunc != nil {
		return c.GetShaderFunc(shaderId)
	}
	return proto.Shader{}, nil
}

func (c *Client) ListShaders(f proto.ShaderFilter) ([]proto.Shader, error) {
	if c.ListShadersFunc != nil {
		return c.ListShadersFunc(f)
	}
	return []proto.Shader{}, nil
}

func (c *Client) DeleteShader(shaderId string) error {
	if c.DeleteShaderFunc != nil {
		return c.DeleteShaderFunc(shaderId)
	}
	return nil
}

func (c *Client) Graphs() ([]string, error) {
	if c.GraphsFunc != nil {
		return c.GraphsFunc()
	}
	return []string{}, nil
}

func (c *Client) Schema() (proto.Schema, error) {
	if c.SchemaFunc != nil {
		return c.SchemaFunc()
	}
	return proto.Schema{}, nil
}
