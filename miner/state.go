// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

// State - coordinator lifecycle
type State int

// coordinator states
const (
	Idle State = iota
	Preparing
	MiningInProgress
	BlockFound
	TimedOut
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Preparing:
		return "Preparing"
	case MiningInProgress:
		return "MiningInProgress"
	case BlockFound:
		return "BlockFound"
	case TimedOut:
		return "TimedOut"
	case Stopped:
		return "Stopped"
	default:
		return "*Unknown*"
	}
}

// the worker's own lifecycle
type workerState int

const (
	workerRunning workerState = iota
	workerFound
	workerStopped
)

func (s workerState) String() string {
	switch s {
	case workerRunning:
		return "running"
	case workerFound:
		return "found"
	case workerStopped:
		return "stopped"
	default:
		return "*unknown*"
	}
}
