// Copyright 2026, Square, Inc.

package errors_test

import (
	"fmt"
	"testing"
	"time"

	serr "github.com/square/shadergraph/errors"
)

func TestMessages(t *testing.T) {
	tests := []struct {
		err    error
		expect string
	}{
		{serr.GraphNotFound{Name: "brick"}, "graph brick not found"},
		{serr.ShaderNotFound{ShaderId: "abc"}, "shader abc not found"},
		{serr.GenerationTimeout{Document: "brick", Timeout: 50 * time.Millisecond}, "document brick: generation did not finish in 50ms"},
		{serr.InvalidDocument{Document: "brick"}, "invalid document brick"},
		{serr.InvalidDocument{Document: "brick", Problems: []string{"no nodes"}}, "invalid document brick: no nodes"},
		{serr.InvalidDocument{Document: "brick", Problems: []string{"a", "b"}}, "invalid document brick: 2 problems: a; b"},
		{serr.NewDbError(fmt.Errorf("gone"), "SELECT 1"), "database error: gone (SELECT 1)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expect {
			t.Errorf("got %q, expected %q", got, tt.expect)
		}
	}
}
