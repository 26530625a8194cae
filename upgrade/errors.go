// Copyright 2026, Square, Inc.

package upgrade

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by a Transform that exists in the chain but
// cannot upgrade documents yet.
var ErrNotImplemented = errors.New("upgrade not implemented")

func prefix(docId string) string {
	if docId == "" {
		return ""
	}
	return "document " + docId + ": "
}

var _ error = NoUpgradePathError{}

// NoUpgradePathError is returned when no step upgrades from the document's
// current version.
type NoUpgradePathError struct {
	Document string
	Version  int
	Current  int
}

func (e NoUpgradePathError) Error() string {
	return fmt.Sprintf("%sno upgrade from version %d toward version %d", prefix(e.Document), e.Version, e.Current)
}

/* =========================================================================== */

var _ error = UpgradeNotImplementedError{}

type UpgradeNotImplementedError struct {
	Document string
	From     int
	To       int
}

func (e UpgradeNotImplementedError) Error() string {
	return fmt.Sprintf("%supgrade from version %d to %d is not implemented", prefix(e.Document), e.From, e.To)
}

/* =========================================================================== */

var _ error = CycleDetectedError{}

// CycleDetectedError is returned when resolving takes more steps than the
// resolver allows.
type CycleDetectedError struct {
	Document string
	Version  int
	Steps    int
}

func (e CycleDetectedError) Error() string {
	return fmt.Sprintf("%supgrade did not reach the current version after %d steps (at version %d)", prefix(e.Document), e.Steps, e.Version)
}

/* =========================================================================== */

var _ error = StepError{}

// StepError is returned when a transform fails.
type StepError struct {
	Document string
	From     int
	To       int
	Err      error
}

func (e StepError) Error() string {
	return fmt.Sprintf("%supgrade from version %d to %d failed: %s", prefix(e.Document), e.From, e.To, e.Err)
}
