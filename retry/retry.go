// Copyright 2017-2026, Square, Inc.

// Package retry calls a function until it succeeds or runs out of tries.
package retry

import (
	"context"
	"time"
)

type TryFunc func() error
type LogFunc func(try int, err error)

// Do calls tryFunc up to tries times, sleeping between failed tries. logFunc,
// if not nil, is called with every error that will be retried. Do returns the
// last error, or ctx.Err() if ctx is done while sleeping.
func Do(ctx context.Context, tries int, sleep time.Duration, tryFunc TryFunc, logFunc LogFunc) error {
	var err error
	for try := 1; ; try++ {
		if err = tryFunc(); err == nil {
			return nil
		}
		if try >= tries {
			return err
		}
		if logFunc != nil {
			logFunc(try, err)
		}
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
