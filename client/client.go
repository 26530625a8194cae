// Copyright 2017-2026, Square, Inc.

// Package client provides an HTTP client for the shader compile server API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/square/shadergraph/proto"
)

// A Client is an HTTP client used for interacting with the compile server API.
type Client interface {
	// CreateShader compiles a document and returns the saved shader. If the
	// server rejects the document, the error is a proto.Error with the
	// document's problems.
	CreateShader(proto.CreateShader) (proto.Shader, error)

	// GetShader returns the shader with the given id.
	GetShader(string) (proto.Shader, error)

	// ListShaders returns shaders matching the filter, newest first.
	ListShaders(proto.ShaderFilter) ([]proto.Shader, error)

	// DeleteShader deletes the shader with the given id.
	DeleteShader(string) error

	// Graphs returns the names of documents in the server's library.
	Graphs() ([]string, error)

	// Schema describes the documents the server accepts.
	Schema() (proto.Schema, error)
}

type client struct {
	*http.Client
	baseUrl string
}

// NewClient takes an http.Client and base API URL and creates a Client.
func NewClient(c *http.Client, baseUrl string) Client {
	return &client{
		Client:  c,
		baseUrl: baseUrl,
	}
}

func (c *client) CreateShader(params proto.CreateShader) (proto.Shader, error) {
	// POST /api/v1/shaders
	url := c.baseUrl + "/api/v1/shaders"

	var shader proto.Shader
	err := c.makeRequest("POST", url, params, http.StatusCreated, &shader)
	return shader, err
}

func (c *client) GetShader(shaderId string) (proto.Shader, error) {
	// GET /api/v1/shaders/${shaderId}
	url := c.baseUrl + "/api/v1/shaders/" + shaderId

	var shader proto.Shader
	err := c.makeRequest("GET", url, nil, http.StatusOK, &shader)
	return shader, err
}

func (c *client) ListShaders(f proto.ShaderFilter) ([]proto.Shader, error) {
	// GET /api/v1/shaders?document=${document}&limit=${limit}
	url := c.baseUrl + "/api/v1/shaders" + f.String()

	var shaders []proto.Shader
	err := c.makeRequest("GET", url, nil, http.StatusOK, &shaders)
	return shaders, err
}

func (c *client) DeleteShader(shaderId string) error {
	// DELETE /api/v1/shaders/${shaderId}
	url := c.baseUrl + "/api/v1/shaders/" + shaderId

	return c.makeRequest("DELETE", url, nil, http.StatusNoContent, nil)
}

func (c *client) Graphs() ([]string, error) {
	// GET /api/v1/graphs
	url := c.baseUrl + "/api/v1/graphs"

	var names []string
	err := c.makeRequest("GET", url, nil, http.StatusOK, &names)
	return names, err
}

func (c *client) Schema() (proto.Schema, error) {
	// GET /api/v1/schema
	url := c.baseUrl + "/api/v1/schema"

	var s proto.Schema
	err := c.makeRequest("GET", url, nil, http.StatusOK, &s)
	return s, err
}

// ------------------------------------------------------------------------- //

// makeRequest is a helper function for making HTTP requests. The httpVerb, url,
// and expectedStatusCode arguments are self explanatory. If the payloadStruct
// argument is provided (if it's not nil), the struct will be marshalled into
// JSON and sent as the payload of the request. If the respStruct argument is
// provided (if it's not nil), the response body of the request will be
// unmarshalled into the struct pointed to by it. An unexpected status code
// returns the server's proto.Error if the body is one.
func (c *client) makeRequest(httpVerb, url string, payloadStruct interface{}, expectedStatusCode int, respStruct interface{}) error {
	// Marshal payload.
	var payload []byte
	var err error
	if payloadStruct != nil {
		payload, err = json.Marshal(payloadStruct)
		if err != nil {
			return err
		}
	}

	// Create the request.
	req, err := http.NewRequest(httpVerb, url, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}

	// Send the request.
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Read the response body.
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	// Check the status code.
	if resp.StatusCode != expectedStatusCode {
		var perr proto.Error
		if err := json.Unmarshal(body, &perr); err == nil && perr.Message != "" {
			perr.HTTPStatus = resp.StatusCode
			return perr
		}
		return fmt.Errorf("unsuccessful status code: %d (response body: %s)",
			resp.StatusCode, string(body))
	}

	// Unmarshal the body into the struct pointed to by the respStruct argument.
	if respStruct != nil {
		if err = json.Unmarshal(body, respStruct); err != nil {
			return err
		}
	}

	return nil
}
