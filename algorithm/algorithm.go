// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package algorithm

import (
	"strings"

	"github.com/bitmark-inc/solominer/blockdigest"
	"github.com/bitmark-inc/solominer/blockrecord"
	"github.com/bitmark-inc/solominer/fault"
)

// Algorithm - closed set of hashing strategies
type Algorithm int

// the supported algorithms
const (
	SHA256 Algorithm = iota
	RandomX
)

const randomXMarker = "RandomX data + "

// FromString - select an algorithm by its configuration name
func FromString(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sha256", "sha-256":
		return SHA256, nil
	case "randomx", "random-x":
		return RandomX, nil
	default:
		return SHA256, fault.ErrUnknownAlgorithm
	}
}

// Valid - check that the value is one of the defined algorithms
func (a Algorithm) Valid() bool {
	return SHA256 == a || RandomX == a
}

// Name - display name used in the mining status
func (a Algorithm) Name() string {
	switch a {
	case SHA256:
		return "SHA-256"
	case RandomX:
		return "RandomX"
	default:
		return "unknown"
	}
}

// String - configuration name
func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case RandomX:
		return "randomx"
	default:
		return "unknown"
	}
}

// Compute - digest of the block under this algorithm
func (a Algorithm) Compute(block *blockrecord.Block) blockdigest.Digest {
	switch a {
	case SHA256:
		return blockdigest.NewDigest(block.Pack())
	case RandomX:
		buffer := make([]byte, 0, len(randomXMarker)+len(block.Data)+len(block.PreviousHash)+60)
		buffer = append(buffer, randomXMarker...)
		return blockdigest.NewDigest(block.AppendPack(buffer))
	default:
		panic("algorithm: compute called on invalid value: " + a.String())
	}
}
