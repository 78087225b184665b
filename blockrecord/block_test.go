// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/solominer/blockrecord"
)

func TestNew(t *testing.T) {
	b := blockrecord.New(1600000000, "payload")

	assert.Equal(t, uint64(0), b.ID, "wrong id")
	assert.Equal(t, uint64(1600000000), b.Timestamp, "wrong timestamp")
	assert.Equal(t, "payload", b.Data, "wrong data")
	assert.Equal(t, blockrecord.GenesisPreviousHash, b.PreviousHash, "wrong previous hash")
	assert.Equal(t, uint64(0), b.Nonce, "wrong nonce")
	assert.Equal(t, 64, len(blockrecord.GenesisPreviousHash), "wrong genesis length")
	assert.Equal(t, strings.Repeat("0", 64), blockrecord.GenesisPreviousHash, "genesis must be zeros")
}

func TestPack(t *testing.T) {
	b := blockrecord.Block{
		ID:           7,
		Timestamp:    1234,
		Data:         "abc",
		PreviousHash: "ff",
		Nonce:        18446744073709551615,
	}

	assert.Equal(t, "71234abcff18446744073709551615", string(b.Pack()), "wrong packed block")
}

func TestAppendPackKeepsPrefix(t *testing.T) {
	b := blockrecord.New(99, "x")
	b.Nonce = 5

	packed := b.AppendPack([]byte("marker:"))
	assert.Equal(t, "marker:099x"+blockrecord.GenesisPreviousHash+"5", string(packed), "wrong packed block")
}

// changing the nonce of a copy must not affect the original
func TestCopyIsIndependent(t *testing.T) {
	original := blockrecord.New(1, "data")
	clone := original
	clone.Nonce = 42

	assert.Equal(t, uint64(0), original.Nonce, "original nonce modified")
	assert.NotEqual(t, string(original.Pack()), string(clone.Pack()), "packs should differ")
}
