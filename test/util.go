// Copyright 2017-2026, Square, Inc.

// Package test provides helper functions for tests.
package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/square/shadergraph/proto"
)

// MakeHTTPRequest is a helper function for making an http request. The response
// body of the http request is unmarshalled into the struct pointed to by the
// respStruct argument (if it's not nil). The status code of the response and
// the response headers are returned.
func MakeHTTPRequest(httpVerb, url string, payload []byte, respStruct interface{}) (int, http.Header, error) {
	var statusCode int
	// Make the http request.
	req, err := http.NewRequest(httpVerb, url, bytes.NewReader(payload))
	if err != nil {
		return statusCode, http.Header{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := (http.DefaultClient).Do(req)
	if err != nil {
		return statusCode, http.Header{}, err
	}
	defer res.Body.Close()

	if respStruct != nil {
		decoder := json.NewDecoder(res.Body)
		err = decoder.Decode(respStruct)
		if err != nil {
			return res.StatusCode, res.Header, fmt.Errorf("error decoding response body")
		}
	}

	return res.StatusCode, res.Header, nil
}

// InitShaders makes count complete shaders compiled from document, one second
// apart starting at start. Ids are shader1, shader2, and so on.
func InitShaders(count int, document string, start time.Time) []proto.Shader {
	shaders := make([]proto.Shader, count)
	for i := range shaders {
		shaders[i] = proto.Shader{
			Id:        fmt.Sprintf("shader%d", i+1),
			Document:  document,
			Version:   2,
			Precision: "float",
			Source:    fmt.Sprintf("float _Constant_%d_Out_0 = %d;\n", i+1, i),
			State:     proto.STATE_COMPLETE,
			CreatedAt: start.Add(time.Duration(i) * time.Second).UTC(),
		}
	}
	return shaders
}

func Dump(v interface{}) {
	bytes, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(bytes))
}
