// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - how many mining threads to run
package mode

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/bitmark-inc/solominer/fault"
)

// Mode - thread policy
type Mode int

// the policies
const (
	Conservative Mode = iota
	Performance
)

// ParseMode - convert a configuration or command line value
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "conservative":
		return Conservative, nil
	case "performance":
		return Performance, nil
	default:
		return Conservative, fault.ErrUnknownMode
	}
}

// String - configuration name
func (m Mode) String() string {
	switch m {
	case Performance:
		return "performance"
	case Conservative:
		return "conservative"
	default:
		return "unknown"
	}
}

// Threads - thread count for this host
func (m Mode) Threads() int {
	return ThreadsFor(m, LogicalCores())
}

// ThreadsFor - performance uses every core, conservative half of them,
// never less than one
func ThreadsFor(m Mode, cores int) int {
	if cores < 1 {
		cores = 1
	}
	if Performance == m {
		return cores
	}
	if cores/2 < 1 {
		return 1
	}
	return cores / 2
}

// LogicalCores - number of logical processors
func LogicalCores() int {
	n, err := cpu.Counts(true)
	if nil != err || n < 1 {
		return runtime.NumCPU()
	}
	return n
}
