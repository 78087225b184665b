// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// solominer - solo proof of work miner
//
// reads a Lua configuration file, then either mines blocks, serves the
// metrics dashboard, queries a running dashboard or stops a running
// miner through its pid file.
//
// changes to the configuration file are picked up between sessions, so
// a long running miner can be given a new difficulty, algorithm or
// timeout without restarting.
package main
