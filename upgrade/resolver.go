// Copyright 2026, Square, Inc.

package upgrade

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Resolver upgrades documents along a Chain.
type Resolver struct {
	chain    *Chain
	maxSteps int
}

// NewResolver returns a Resolver for chain. maxSteps bounds the number of
// steps one Resolve call takes; if zero, the number of steps in the chain is
// used.
func NewResolver(chain *Chain, maxSteps int) *Resolver {
	return &Resolver{
		chain:    chain,
		maxSteps: maxSteps,
	}
}

// Resolve upgrades doc to the chain's current version and returns the upgraded
// document and the number of steps taken. A document already at the current
// version is returned unchanged. On error no document is returned.
func (r *Resolver) Resolve(doc Document) (Document, int, error) {
	max := r.maxSteps
	if max <= 0 {
		max = len(r.chain.steps)
	}

	docId := doc.DocumentId()
	steps := 0
	for doc.Version() != r.chain.Current {
		v := doc.Version()
		s, ok := r.chain.steps[v]
		if !ok {
			return nil, 0, NoUpgradePathError{Document: docId, Version: v, Current: r.chain.Current}
		}
		if steps >= max {
			return nil, 0, CycleDetectedError{Document: docId, Version: v, Steps: steps}
		}
		if s.Transform == nil {
			return nil, 0, UpgradeNotImplementedError{Document: docId, From: s.From, To: s.To}
		}

		next, err := s.Transform(doc)
		if err != nil {
			if err == ErrNotImplemented {
				return nil, 0, UpgradeNotImplementedError{Document: docId, From: s.From, To: s.To}
			}
			return nil, 0, StepError{Document: docId, From: s.From, To: s.To, Err: err}
		}
		if next == nil || next.Version() != s.To {
			return nil, 0, StepError{Document: docId, From: s.From, To: s.To, Err: fmt.Errorf("transform returned %s", describe(next))}
		}

		log.WithFields(log.Fields{"document": docId, "from": s.From, "to": s.To}).Debug("upgraded document")
		doc = next
		steps++
	}
	return doc, steps, nil
}

func describe(doc Document) string {
	if doc == nil {
		return "no document"
	}
	return fmt.Sprintf("version %d", doc.Version())
}
