// Copyright 2017-2026, Square, Inc.

package config_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/go-test/deep"

	"github.com/square/shadergraph/config"
)

func createTempFile(t *testing.T, content []byte) string {
	tmpfile, err := ioutil.TempFile("", "for_test")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := tmpfile.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	return tmpfile.Name()
}

func TestLoadConfigFileNotExist(t *testing.T) {
	// Config file doesn't exist.
	err := config.Load("nonexistant_file.txt", nil)
	if !os.IsNotExist(err) {
		t.Errorf("expected a 'file does not exist' error, did not get one")
	}
}

func TestLoadConfigBadContent(t *testing.T) {
	// Config file exists, but contains bad content.
	content := []byte("%%---invalid_yaml")
	fileName := createTempFile(t, content)
	defer os.Remove(fileName)

	var actualConfig config.Compiler
	err := config.Load(fileName, &actualConfig)
	if err == nil {
		t.Error("expected an error, did not get one")
	}
}

func TestLoadConfigOverDefaults(t *testing.T) {
	content := []byte(`
---
server:
  listen_address: ":8888"
precision: half
workers: 8
repo_type: mysql
db:
  dsn: root:@tcp(localhost:3306)/shaders
`)
	fileName := createTempFile(t, content)
	defer os.Remove(fileName)

	actualConfig := config.Defaults()
	err := config.Load(fileName, &actualConfig)
	if err != nil {
		t.Errorf("err = %s, expected nil", err)
	}

	expectedConfig := config.Compiler{
		Server: config.Server{
			ListenAddress: ":8888",
		},
		Precision:         "half",
		GenerationTimeout: config.DEFAULT_GENERATION_TIMEOUT,
		Workers:           8,
		RepoType:          "mysql",
		Db: config.SQLDb{
			DSN: "root:@tcp(localhost:3306)/shaders",
		},
	}
	if diff := deep.Equal(actualConfig, expectedConfig); diff != nil {
		t.Error(diff)
	}
}
