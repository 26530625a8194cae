// Copyright 2017-2026, Square, Inc.

// Package id provides an interface for generating ids.
package id

import (
	"errors"
	"sync"

	"github.com/rs/xid"
)

var (
	ErrGenerateUnique = errors.New("unable to generate a UID")
)

// A GeneratorFactory makes Generators.
type GeneratorFactory interface {
	// Make makes a Generator.
	Make() Generator
}

// generatorFactory implements the GeneratorFactory interface.
type generatorFactory struct {
	tries int // number of times to attempt generating an id before erroring
}

// NewGeneratorFactory creates a GeneratorFactory. The argument is the number of
// times a Generator tries to create an id before returning an error.
func NewGeneratorFactory(tries int) GeneratorFactory {
	return &generatorFactory{
		tries: tries,
	}
}

func (f *generatorFactory) Make() Generator {
	return NewGenerator(f.tries)
}

// A Generator generates ids. It is safe for use in concurrent threads.
type Generator interface {
	// ID generates a globally unique 20-character id.
	ID() string

	// UID generates an id that is guaranteed to be unique to the Generator,
	// including ids passed to Reserve. It returns ErrGenerateUnique if it
	// can't generate an id that is unique.
	UID() (string, error)

	// Reserve marks id as used so UID never returns it. It returns false if
	// the id was already used.
	Reserve(id string) bool
}

// generator implements the Generator interface.
type generator struct {
	tries   int // number of times to attempt generating an id before erroring
	usedIds map[string]struct{}
	*sync.Mutex
}

// NewGenerator creates a Generator. The argument is the number of times the
// Generator tries to create an id before returning an error.
func NewGenerator(tries int) Generator {
	return &generator{
		tries:   tries,
		usedIds: map[string]struct{}{},
		Mutex:   &sync.Mutex{},
	}
}

func (g *generator) ID() string {
	return xid.New().String()
}

func (g *generator) UID() (string, error) {
	for i := 0; i < g.tries; i++ {
		id := g.ID()
		if g.Reserve(id) {
			return id, nil
		}
	}
	return "", ErrGenerateUnique
}

func (g *generator) Reserve(id string) bool {
	g.Lock()
	defer g.Unlock()
	if _, ok := g.usedIds[id]; ok {
		return false
	}
	g.usedIds[id] = struct{}{}
	return true
}
