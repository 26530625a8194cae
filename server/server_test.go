// Copyright 2026, Square, Inc.

package server_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-test/deep"

	"github.com/square/shadergraph/api"
	"github.com/square/shadergraph/app"
	"github.com/square/shadergraph/config"
	"github.com/square/shadergraph/server"
	testutil "github.com/square/shadergraph/test"
)

func TestBoot(t *testing.T) {
	appCtx := app.Defaults()
	appCtx.Hooks.LoadConfig = func(app.Context) (config.Compiler, error) {
		cfg := config.Defaults()
		cfg.DocumentDir = "../document/testdata/docs"
		return cfg, nil
	}
	s := server.NewServer(appCtx)
	if err := s.Boot(); err != nil {
		t.Fatal(err)
	}

	ts := httptest.NewServer(s.API())
	defer ts.Close()

	var names []string
	statusCode, _, err := testutil.MakeHTTPRequest("GET", ts.URL+api.API_ROOT+"graphs", nil, &names)
	if err != nil {
		t.Fatal(err)
	}
	if statusCode != http.StatusOK {
		t.Errorf("response status = %d, expected %d", statusCode, http.StatusOK)
	}
	expect := []string{"brick", "legacy/brick-v0", "legacy/brick-v1"}
	if diff := deep.Equal(names, expect); diff != nil {
		t.Error(diff)
	}

	// Compile a library document and read it back from the repo
	var created struct {
		Id string `json:"id"`
	}
	statusCode, _, err = testutil.MakeHTTPRequest("POST", ts.URL+api.API_ROOT+"shaders",
		[]byte(`{"graph":"legacy/brick-v0"}`), &created)
	if err != nil {
		t.Fatal(err)
	}
	if statusCode != http.StatusCreated {
		t.Fatalf("response status = %d, expected %d", statusCode, http.StatusCreated)
	}
	statusCode, _, err = testutil.MakeHTTPRequest("GET", ts.URL+api.API_ROOT+"shaders/"+created.Id, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if statusCode != http.StatusOK {
		t.Errorf("response status = %d, expected %d", statusCode, http.StatusOK)
	}
}

func TestBootErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Compiler)
	}{
		{"bad precision", func(cfg *config.Compiler) { cfg.Precision = "double" }},
		{"bad repo", func(cfg *config.Compiler) { cfg.RepoType = "redis" }},
		{"bad documents", func(cfg *config.Compiler) { cfg.DocumentDir = "../document/testdata/bad" }},
	}
	for _, tt := range tests {
		appCtx := app.Defaults()
		modify := tt.modify
		appCtx.Hooks.LoadConfig = func(app.Context) (config.Compiler, error) {
			cfg := config.Defaults()
			modify(&cfg)
			return cfg, nil
		}
		if err := server.NewServer(appCtx).Boot(); err == nil {
			t.Errorf("%s: no error", tt.name)
		}
	}

	appCtx := app.Defaults()
	appCtx.Hooks.LoadConfig = func(app.Context) (config.Compiler, error) {
		return config.Compiler{}, fmt.Errorf("forced error")
	}
	if err := server.NewServer(appCtx).Boot(); err == nil {
		t.Error("no error when LoadConfig fails")
	}
}
