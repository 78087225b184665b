// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/solominer/algorithm"
	"github.com/bitmark-inc/solominer/blockrecord"
	"github.com/bitmark-inc/solominer/counter"
	"github.com/bitmark-inc/solominer/fault"
	"github.com/bitmark-inc/solominer/telemetry"
)

// DefaultBatchSize - attempts between metrics updates from a worker
const DefaultBatchSize = 100000

// Request - parameters of one mining session
type Request struct {
	Wallet     string
	Threads    int
	Hasher     Hasher
	Difficulty string
	Timeout    time.Duration // zero: no timeout
	Data       string
}

// Result - how a session ended
type Result struct {
	Outcome State
	Block   blockrecord.Block // valid if Outcome is BlockFound
	Hash    string            // hex digest of Block
	Worker  int
	Elapsed time.Duration
}

// Miner - runs mining sessions one at a time
type Miner struct {
	sync.RWMutex

	log       *logger.L
	metrics   *telemetry.Metrics
	clock     func() time.Time
	batchSize uint64
	state     State

	sessions counter.Counter
	found    counter.Counter
	timeouts counter.Counter
}

// New - create a miner publishing to the given metrics
func New(metrics *telemetry.Metrics, log *logger.L) *Miner {
	return &Miner{
		log:       log,
		metrics:   metrics,
		clock:     time.Now,
		batchSize: DefaultBatchSize,
		state:     Idle,
	}
}

// SetClock - replace the wall clock used to stamp blocks
func (m *Miner) SetClock(clock func() time.Time) {
	m.Lock()
	m.clock = clock
	m.Unlock()
}

// SetBatchSize - attempts between metrics updates
func (m *Miner) SetBatchSize(n uint64) {
	if 0 == n {
		n = DefaultBatchSize
	}
	m.Lock()
	m.batchSize = n
	m.Unlock()
}

// State - current coordinator state
func (m *Miner) State() State {
	m.RLock()
	defer m.RUnlock()
	return m.state
}

// Counts - sessions started, blocks found and timeouts
func (m *Miner) Counts() (sessions uint64, found uint64, timeouts uint64) {
	return m.sessions.Uint64(), m.found.Uint64(), m.timeouts.Uint64()
}

func (m *Miner) setState(s State) {
	m.Lock()
	m.state = s
	m.Unlock()
}

// StartMining - run a single session with a new miner
//
// a zero timeout means no timeout: mine until a block is found
func StartMining(wallet string, threads int, a algorithm.Algorithm, metrics *telemetry.Metrics, difficulty string, timeout time.Duration) error {
	if !a.Valid() {
		return fault.ErrUnknownAlgorithm
	}
	m := New(metrics, logger.New("miner"))
	_, err := m.Mine(context.Background(), Request{
		Wallet:     wallet,
		Threads:    threads,
		Hasher:     a,
		Difficulty: difficulty,
		Timeout:    timeout,
		Data:       blockrecord.DefaultData,
	})
	return err
}

// Mine - run one session until a block is found, the timeout expires or
// the context is cancelled
//
// errors: clock before the unix epoch (the session is not started) or
// a worker that did not finish cleanly
func (m *Miner) Mine(ctx context.Context, request Request) (*Result, error) {
	if request.Threads < 1 {
		return nil, fault.ErrInvalidThreadCount
	}
	if nil == request.Hasher {
		return nil, fault.ErrUnknownAlgorithm
	}

	m.RLock()
	clock := m.clock
	batchSize := m.batchSize
	m.RUnlock()

	m.setState(Preparing)

	now := clock()
	if now.Unix() < 0 {
		m.log.Errorf("clock error: %s", now)
		m.setState(Idle)
		return nil, fault.ErrTimeSource
	}
	block := blockrecord.New(uint64(now.Unix()), request.Data)

	m.sessions.Increment()
	status := fmt.Sprintf("Mining %s with %d threads", request.Hasher.Name(), request.Threads)
	session := m.metrics.BeginSession(status, request.Threads)

	m.log.Infof("wallet: %s", request.Wallet)
	m.log.Infof("%s  difficulty: %q", status, request.Difficulty)
	m.log.Debugf("block: %s", block)

	m.setState(MiningInProgress)
	start := time.Now()

	solutions := make(chan solution, 1)
	finished := make(chan error, request.Threads)
	stop := make(chan struct{})

	for i := 0; i < request.Threads; i += 1 {
		w := newWorker(m.log, i, request.Threads, block, request.Hasher, request.Difficulty, m.metrics, session, batchSize)
		go w.run(stop, solutions, finished)
	}

	var timeout <-chan time.Time
	if request.Timeout > 0 {
		timer := time.NewTimer(request.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	active := request.Threads
	var joinErr error

	for {
		select {
		case s := <-solutions:
			close(stop)
			return m.blockFound(s, start, finished, active, joinErr)

		case err := <-finished:
			// before a solution is taken a worker only returns after
			// sending one or after a panic
			active -= 1
			if nil != err {
				joinErr = err
			}
			if active > 0 {
				continue
			}
			close(stop)
			select {
			case s := <-solutions:
				return m.blockFound(s, start, finished, 0, joinErr)
			default:
			}
			if nil == joinErr {
				joinErr = fault.ErrWorkerJoin
			}
			m.log.Error("all workers failed")
			m.finish()
			return nil, joinErr

		case <-timeout:
			close(stop)
			m.timeouts.Increment()
			m.setState(TimedOut)
			m.log.Warnf("mining timed out after %s", request.Timeout)
			m.finish()
			return &Result{Outcome: TimedOut, Worker: -1, Elapsed: time.Since(start)}, nil

		case <-ctx.Done():
			close(stop)
			m.setState(Stopped)
			m.log.Info("mining stopped")
			m.finish()
			return &Result{Outcome: Stopped, Worker: -1, Elapsed: time.Since(start)}, nil
		}
	}
}

// record the block, then wait for the remaining workers
func (m *Miner) blockFound(s solution, start time.Time, finished <-chan error, active int, joinErr error) (*Result, error) {
	elapsed := time.Since(start)

	m.setState(BlockFound)
	m.found.Increment()
	m.metrics.BlockFound()

	m.log.Infof("block found by worker[%d] in %s", s.worker, elapsed)
	m.log.Infof("id: %d", s.block.ID)
	m.log.Infof("timestamp: %d", s.block.Timestamp)
	m.log.Infof("data: %q", s.block.Data)
	m.log.Infof("previous hash: %s", s.block.PreviousHash)
	m.log.Infof("nonce: %d", s.block.Nonce)
	m.log.Infof("hash: %s", s.hash)

	for ; active > 0; active -= 1 {
		if err := <-finished; nil != err {
			joinErr = err
		}
	}
	if nil != joinErr {
		m.log.Errorf("join: %s", joinErr)
	}

	m.finish()

	result := &Result{
		Outcome: BlockFound,
		Block:   s.block,
		Hash:    s.hash,
		Worker:  s.worker,
		Elapsed: elapsed,
	}
	return result, joinErr
}

func (m *Miner) finish() {
	m.metrics.SetStatus(telemetry.StatusIdle)
	m.setState(Idle)
}
