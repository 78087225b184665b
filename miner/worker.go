// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/solominer/blockrecord"
	"github.com/bitmark-inc/solominer/difficulty"
	"github.com/bitmark-inc/solominer/fault"
	"github.com/bitmark-inc/solominer/telemetry"
)

// what a successful worker sends to the coordinator
type solution struct {
	worker int
	block  blockrecord.Block
	hash   string
}

type worker struct {
	log        *logger.L
	index      int
	stride     uint64
	block      blockrecord.Block
	hasher     Hasher
	difficulty string
	metrics    *telemetry.Metrics
	session    uint64
	batchSize  uint64
}

func newWorker(log *logger.L, index int, count int, block blockrecord.Block, hasher Hasher, difficulty string, metrics *telemetry.Metrics, session uint64, batchSize uint64) *worker {
	block.Nonce = uint64(index)
	return &worker{
		log:        log,
		index:      index,
		stride:     uint64(count),
		block:      block,
		hasher:     hasher,
		difficulty: difficulty,
		metrics:    metrics,
		session:    session,
		batchSize:  batchSize,
	}
}

// run the search and report how it ended on finished
//
// a panic in the hasher is recovered and reported as a join failure
func (w *worker) run(stop <-chan struct{}, solutions chan<- solution, finished chan<- error) {
	defer func() {
		if r := recover(); nil != r {
			fault.Criticalf("worker[%d]: panic: %v", w.index, r)
			finished <- fault.ErrWorkerJoin
			return
		}
		finished <- nil
	}()

	state := w.search(stop, solutions)
	w.log.Debugf("worker[%d]: finished: %s", w.index, state)
}

func (w *worker) search(stop <-chan struct{}, solutions chan<- solution) workerState {
	start := time.Now()
	attempts := uint64(0)

	for {
		select {
		case <-stop:
			w.log.Debugf("worker[%d]: stopped after: %d attempts", w.index, attempts)
			return workerStopped
		default:
		}

		digest := w.hasher.Compute(&w.block)

		if difficulty.Satisfies(digest[:], w.difficulty) {
			w.log.Infof("worker[%d]: nonce: 0x%016x", w.index, w.block.Nonce)
			w.log.Infof("worker[%d]: digest: %v", w.index, digest)

			// single slot: if full another worker has already won
			select {
			case solutions <- solution{worker: w.index, block: w.block, hash: digest.String()}:
			default:
			}
			return workerFound
		}

		w.block.Nonce += w.stride
		attempts += 1

		if 0 == attempts%w.batchSize {
			elapsed := time.Since(start)
			w.metrics.Publish(w.session, w.index, attempts, elapsed)
			w.log.Debugf("worker[%d]: attempts: %d  rate: %.2f H/s", w.index, attempts, float64(attempts)/elapsed.Seconds())
		}
	}
}
