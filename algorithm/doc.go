// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package algorithm - the hashing strategies a session can mine with
//
// SHA256 hashes the packed block directly.
//
// RandomX is a simulation only: it prepends a fixed marker to the packed
// block and hashes that with the same SHA-256 primitive. It has none of
// the memory hardness of the real RandomX function; it exists so that two
// algorithms producing distinguishable digests can be selected.
package algorithm
