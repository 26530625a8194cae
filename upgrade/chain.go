// Copyright 2026, Square, Inc.

// Package upgrade brings saved documents written by older versions up to the
// current version, one registered step at a time.
package upgrade

import (
	"fmt"
	"sort"
)

// Document is anything with a schema version. Each historical shape of a
// document type implements it.
type Document interface {
	// DocumentId identifies the document in errors and logs.
	DocumentId() string

	// Version returns the schema version of the shape.
	Version() int
}

// Transform upgrades a document by one step. It must not modify doc.
type Transform func(doc Document) (Document, error)

// Step is one link in a Chain.
type Step struct {
	From      int
	To        int
	Transform Transform
}

// Chain is the set of upgrade steps for one document type. Every version
// upgrades to exactly one higher version, and following the steps from any
// registered version ends at Current.
type Chain struct {
	Current int
	steps   map[int]Step // from version -> step
}

func NewChain(current int) *Chain {
	return &Chain{
		Current: current,
		steps:   map[int]Step{},
	}
}

// Register adds the step from -> to. fn may be nil for a step that is known
// but not implemented.
func (c *Chain) Register(from, to int, fn Transform) error {
	if from == c.Current {
		return fmt.Errorf("cannot register upgrade from current version %d", from)
	}
	if to <= from {
		return fmt.Errorf("upgrade from version %d to version %d does not move forward", from, to)
	}
	if s, ok := c.steps[from]; ok {
		return fmt.Errorf("version %d already upgrades to version %d", from, s.To)
	}
	c.steps[from] = Step{From: from, To: to, Transform: fn}
	return nil
}

// Step returns the step upgrading from a version.
func (c *Chain) Step(from int) (Step, bool) {
	s, ok := c.steps[from]
	return s, ok
}

// Versions returns every registered version and the current version,
// ascending.
func (c *Chain) Versions() []int {
	vs := []int{c.Current}
	for v := range c.steps {
		vs = append(vs, v)
	}
	sort.Ints(vs)
	return vs
}

// Path returns the versions a document at version from passes through, from
// first to Current inclusive.
func (c *Chain) Path(from int) ([]int, error) {
	path := []int{from}
	v := from
	for v != c.Current {
		s, ok := c.steps[v]
		if !ok {
			return nil, NoUpgradePathError{Version: v, Current: c.Current}
		}
		v = s.To
		path = append(path, v)
	}
	return path, nil
}

// Check returns an error if any registered version cannot reach Current.
func (c *Chain) Check() error {
	for _, v := range c.Versions() {
		if _, err := c.Path(v); err != nil {
			return fmt.Errorf("version %d: %s", v, err)
		}
	}
	return nil
}
