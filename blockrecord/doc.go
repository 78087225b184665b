// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockrecord - the candidate block that a mining session
// searches a nonce for
//
// a block is a plain value: every worker receives its own copy and is
// the only writer of that copy's nonce
package blockrecord
