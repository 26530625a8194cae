// Copyright 2026, Square, Inc.

package util_test

import (
	"strings"
	"testing"

	"github.com/square/shadergraph/util"
)

func TestReadInput(t *testing.T) {
	got, err := util.ReadInput("-", strings.NewReader("version: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "version: 2\n" {
		t.Errorf("got %q", got)
	}

	got, err = util.ReadInput("../document/testdata/future.yaml", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "version: 9") {
		t.Errorf("got %q", got)
	}

	if _, err := util.ReadInput("testdata/nope.yaml", nil); err == nil {
		t.Error("no error for a missing file")
	}
}

func TestNewTLSConfigMissingFiles(t *testing.T) {
	if _, err := util.NewTLSConfig("ca.pem", "cert.pem", "key.pem"); err == nil {
		t.Error("no error for missing files")
	}
}
