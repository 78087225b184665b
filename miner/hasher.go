// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"github.com/bitmark-inc/solominer/blockdigest"
	"github.com/bitmark-inc/solominer/blockrecord"
)

//go:generate mockgen -source=hasher.go -destination=mocks/hasher.go -package=mocks

// Hasher - the part of an algorithm used by the workers
//
// implementations must be safe for concurrent use
type Hasher interface {
	Compute(block *blockrecord.Block) blockdigest.Digest
	Name() string
}
