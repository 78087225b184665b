// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/solominer/fault"
)

var (
	ErrClockOne    = fault.ClockError("clock one")
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrJoinOne     = fault.JoinError("join one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
)

// test that the various errors can be classified
func TestClassification(t *testing.T) {
	errorList := []struct {
		err      error
		clock    bool
		exists   bool
		invalid  bool
		join     bool
		notFound bool
		process  bool
	}{
		{ErrClockOne, true, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrJoinOne, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, true},
		{fault.ErrTimeSource, true, false, false, false, false, false},
		{fault.ErrWorkerJoin, false, false, false, true, false, false},
		{fault.ErrInvalidDifficulty, false, false, true, false, false, false},
		{fmt.Errorf("plain"), false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrClock(err) != e.clock {
			t.Errorf("%d: expected 'clock' == %v for err = %v", i, e.clock, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrJoin(err) != e.join {
			t.Errorf("%d: expected 'join' == %v for err = %v", i, e.join, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestErrorText(t *testing.T) {
	if "system clock is before the unix epoch" != fault.ErrTimeSource.Error() {
		t.Errorf("unexpected text: %q", fault.ErrTimeSource.Error())
	}
}

// must not panic before a logger channel exists
func TestCriticalfWithoutLogger(t *testing.T) {
	fault.Criticalf("worker[%d]: panic: %v", 1, "test")
	fault.Finalise()
}
