// Copyright 2026, Square, Inc.

package upgrade_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/square/shadergraph/upgrade"
)

// Three shapes of a person record. The name field is renamed twice:
// Name -> FullName -> DisplayName.

type person0 struct {
	Id   string
	Name string
}

func (p person0) DocumentId() string { return p.Id }
func (p person0) Version() int       { return 0 }

type person1 struct {
	Id       string
	FullName string
}

func (p person1) DocumentId() string { return p.Id }
func (p person1) Version() int       { return 1 }

type person struct {
	Id          string
	DisplayName string
}

func (p person) DocumentId() string { return p.Id }
func (p person) Version() int       { return 2 }

func personChain(t *testing.T) *upgrade.Chain {
	c := upgrade.NewChain(2)
	if err := c.Register(0, 1, func(doc upgrade.Document) (upgrade.Document, error) {
		p := doc.(person0)
		return person1{Id: p.Id, FullName: p.Name}, nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := c.Register(1, 2, func(doc upgrade.Document) (upgrade.Document, error) {
		p := doc.(person1)
		return person{Id: p.Id, DisplayName: p.FullName}, nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestTwoHops(t *testing.T) {
	r := upgrade.NewResolver(personChain(t), 0)
	got, steps, err := r.Resolve(person0{Id: "a", Name: "Ada Lovelace"})
	if err != nil {
		t.Fatal(err)
	}
	if steps != 2 {
		t.Errorf("steps = %d, expected 2", steps)
	}
	if diff := deep.Equal(got, person{Id: "a", DisplayName: "Ada Lovelace"}); diff != nil {
		t.Error(diff)
	}
}

func TestCurrentVersionUnchanged(t *testing.T) {
	r := upgrade.NewResolver(personChain(t), 0)
	in := person{Id: "b", DisplayName: "Grace"}
	got, steps, err := r.Resolve(in)
	if err != nil {
		t.Fatal(err)
	}
	if steps != 0 {
		t.Errorf("steps = %d, expected 0", steps)
	}
	if diff := deep.Equal(got, in); diff != nil {
		t.Error(diff)
	}
}

func TestPath(t *testing.T) {
	c := personChain(t)
	path, err := c.Path(0)
	if err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(path, []int{0, 1, 2}); diff != nil {
		t.Error(diff)
	}
	if diff := deep.Equal(c.Versions(), []int{0, 1, 2}); diff != nil {
		t.Error(diff)
	}
	if err := c.Register(1, 2, nil); err == nil {
		t.Error("registered a second step from version 1")
	}
	if err := c.Register(2, 3, nil); err == nil {
		t.Error("registered a step from the current version")
	}

	backwards := upgrade.NewChain(5)
	for _, step := range [][2]int{{1, 0}, {3, 3}} {
		if err := backwards.Register(step[0], step[1], nil); err == nil {
			t.Errorf("registered step %d -> %d", step[0], step[1])
		}
	}
	if _, ok := backwards.Step(1); ok {
		t.Error("rejected step was kept")
	}
}

type stranger struct{ v int }

func (s stranger) DocumentId() string { return "x" }
func (s stranger) Version() int       { return s.v }

func TestResolveErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name     string
		chain    func() *upgrade.Chain
		maxSteps int
		doc      upgrade.Document
		expect   error
	}{
		{
			name:   "unknown version",
			chain:  func() *upgrade.Chain { return personChain(t) },
			doc:    stranger{v: 7},
			expect: upgrade.NoUpgradePathError{Document: "x", Version: 7, Current: 2},
		},
		{
			name: "broken chain",
			chain: func() *upgrade.Chain {
				c := upgrade.NewChain(2)
				c.Register(0, 1, func(doc upgrade.Document) (upgrade.Document, error) { return stranger{v: 1}, nil })
				return c
			},
			doc:    stranger{v: 0},
			expect: upgrade.NoUpgradePathError{Document: "x", Version: 1, Current: 2},
		},
		{
			name: "nil transform",
			chain: func() *upgrade.Chain {
				c := upgrade.NewChain(1)
				c.Register(0, 1, nil)
				return c
			},
			doc:    stranger{v: 0},
			expect: upgrade.UpgradeNotImplementedError{Document: "x", From: 0, To: 1},
		},
		{
			name: "transform not implemented",
			chain: func() *upgrade.Chain {
				c := upgrade.NewChain(1)
				c.Register(0, 1, func(doc upgrade.Document) (upgrade.Document, error) { return nil, upgrade.ErrNotImplemented })
				return c
			},
			doc:    stranger{v: 0},
			expect: upgrade.UpgradeNotImplementedError{Document: "x", From: 0, To: 1},
		},
		{
			name: "transform fails",
			chain: func() *upgrade.Chain {
				c := upgrade.NewChain(1)
				c.Register(0, 1, func(doc upgrade.Document) (upgrade.Document, error) { return nil, boom })
				return c
			},
			doc:    stranger{v: 0},
			expect: upgrade.StepError{Document: "x", From: 0, To: 1, Err: boom},
		},
		{
			name:     "step limit",
			chain:    func() *upgrade.Chain { return personChain(t) },
			maxSteps: 1,
			doc:      person0{Id: "x"},
			expect:   upgrade.CycleDetectedError{Document: "x", Version: 1, Steps: 1},
		},
	}

	for _, tt := range tests {
		got, _, err := upgrade.NewResolver(tt.chain(), tt.maxSteps).Resolve(tt.doc)
		if got != nil {
			t.Errorf("%s: got document %v, expected none", tt.name, got)
		}
		if diff := deep.Equal(err, tt.expect); diff != nil {
			t.Errorf("%s: %v", tt.name, diff)
		}
	}
}

func TestCheckFindsBrokenChain(t *testing.T) {
	c := upgrade.NewChain(3)
	c.Register(0, 1, nil)
	c.Register(1, 2, nil)
	err := c.Check()
	if err == nil {
		t.Fatal("no error for chain that never reaches version 3")
	}
	if !strings.Contains(err.Error(), "no upgrade from version 2") {
		t.Errorf("err = %s", err)
	}
}
