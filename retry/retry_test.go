// Copyright 2026, Square, Inc.

package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-test/deep"

	"github.com/square/shadergraph/retry"
)

var errTry = errors.New("try failed")

func TestDoSucceeds(t *testing.T) {
	calls := 0
	logged := []int{}
	err := retry.Do(context.Background(), 5, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errTry
		}
		return nil
	}, func(try int, err error) {
		logged = append(logged, try)
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("called %d times, expected 3", calls)
	}
	if diff := deep.Equal(logged, []int{1, 2}); diff != nil {
		t.Error(diff)
	}
}

func TestDoRunsOut(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return errTry
	}, nil)
	if err != errTry {
		t.Errorf("err = %v, expected %v", err, errTry)
	}
	if calls != 3 {
		t.Errorf("called %d times, expected 3", calls)
	}
}

func TestDoCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := retry.Do(ctx, 10, time.Hour, func() error {
		calls++
		cancel()
		return errTry
	}, nil)
	if err != context.Canceled {
		t.Errorf("err = %v, expected context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("called %d times, expected 1", calls)
	}
}
