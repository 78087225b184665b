// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - the leading bit pattern a digest must match
//
// a difficulty is a string of '0' and '1' characters; a digest
// satisfies it when the digest bytes, each written as eight binary
// digits most significant first, begin with that string
package difficulty
