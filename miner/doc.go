// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package miner - concurrent nonce search over a block
//
// a session stamps one block and starts N workers; worker i tries the
// nonces i, i+N, i+2N, ... so the workers never overlap. The first
// worker whose digest satisfies the difficulty sends its result through
// a single slot channel; the coordinator then closes the stop channel
// and waits for every worker to return. If a timeout expires first the
// stop channel is closed but the workers are not waited for.
//
// a worker checks the stop channel before every attempt and never
// blocks on another worker, so every worker returns within one digest
// computation of the stop channel being closed.
package miner
