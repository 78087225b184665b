// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package telemetry - the lock protected mining metrics shared by the
// miner and the dashboard
package telemetry

import (
	"sync"
	"time"
)

// StatusIdle - status when no session is running
const StatusIdle = "Idle"

// Snapshot - consistent copy of the metrics
type Snapshot struct {
	Status      string  `json:"status"`
	Hashrate    float64 `json:"hashrate"`
	TotalHashes uint64  `json:"total_hashes"`
	BlocksFound uint64  `json:"blocks_found"`
}

// the last values published by one worker
type workerRate struct {
	attempts uint64
	rate     float64
}

// Metrics - shared by the coordinator, the workers and the dashboard
//
// hashrate and total hashes belong to the current session, blocks
// found accumulates for the life of the process
type Metrics struct {
	sync.Mutex

	status      string
	hashrate    float64
	totalHashes uint64
	blocksFound uint64

	session uint64
	workers []workerRate
}

// New - create metrics in the idle state
func New() *Metrics {
	return &Metrics{
		status: StatusIdle,
	}
}

// BeginSession - reset the per session values and set the status
//
// the returned session number must be passed to Publish; values
// published with an older number are discarded
func (m *Metrics) BeginSession(status string, workers int) uint64 {
	m.Lock()
	defer m.Unlock()

	m.session += 1
	m.status = status
	m.hashrate = 0
	m.totalHashes = 0
	m.workers = make([]workerRate, workers)
	return m.session
}

// Publish - record a worker's private attempt count and its rate
func (m *Metrics) Publish(session uint64, worker int, attempts uint64, elapsed time.Duration) {
	rate := 0.0
	if elapsed > 0 {
		rate = float64(attempts) / elapsed.Seconds()
	}

	m.Lock()
	defer m.Unlock()

	if session != m.session || worker < 0 || worker >= len(m.workers) {
		return
	}

	previous := m.workers[worker]
	m.workers[worker] = workerRate{
		attempts: attempts,
		rate:     rate,
	}
	m.totalHashes += attempts - previous.attempts
	m.hashrate += rate - previous.rate
}

// BlockFound - increment the blocks found total
func (m *Metrics) BlockFound() {
	m.Lock()
	m.blocksFound += 1
	m.Unlock()
}

// SetStatus - replace the status text
func (m *Metrics) SetStatus(status string) {
	m.Lock()
	m.status = status
	m.Unlock()
}

// Snapshot - copy all values under the lock
func (m *Metrics) Snapshot() Snapshot {
	m.Lock()
	defer m.Unlock()

	return Snapshot{
		Status:      m.status,
		Hashrate:    m.hashrate,
		TotalHashes: m.totalHashes,
		BlocksFound: m.blocksFound,
	}
}
