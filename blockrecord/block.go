// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"fmt"
	"strconv"
)

// GenesisPreviousHash - previous hash of the first block
const GenesisPreviousHash = "0000000000000000000000000000000000000000000000000000000000000000"

// DefaultData - payload used when the configuration does not supply one
const DefaultData = "First block data"

// Block - the fields that are hashed
type Block struct {
	ID           uint64 `json:"id"`
	Timestamp    uint64 `json:"timestamp"`
	Data         string `json:"data"`
	PreviousHash string `json:"previous_hash"`
	Nonce        uint64 `json:"nonce"`
}

// New - create the block for a mining session
func New(timestamp uint64, data string) Block {
	return Block{
		ID:           0,
		Timestamp:    timestamp,
		Data:         data,
		PreviousHash: GenesisPreviousHash,
		Nonce:        0,
	}
}

// Pack - serialise the block for hashing
//
// decimal id, decimal timestamp, data, previous hash and decimal nonce
// concatenated without any separators
func (block *Block) Pack() []byte {
	return block.AppendPack(make([]byte, 0, block.packedSize()))
}

// AppendPack - append the packed block to a buffer and return the
// extended buffer
func (block *Block) AppendPack(buffer []byte) []byte {
	buffer = strconv.AppendUint(buffer, block.ID, 10)
	buffer = strconv.AppendUint(buffer, block.Timestamp, 10)
	buffer = append(buffer, block.Data...)
	buffer = append(buffer, block.PreviousHash...)
	buffer = strconv.AppendUint(buffer, block.Nonce, 10)
	return buffer
}

// upper bound: three 20 digit integers plus the strings
func (block *Block) packedSize() int {
	return 3*20 + len(block.Data) + len(block.PreviousHash)
}

// String - one line description for logging
func (block Block) String() string {
	return fmt.Sprintf("id: %d  timestamp: %d  data: %q  previous: %s  nonce: %d",
		block.ID, block.Timestamp, block.Data, block.PreviousHash, block.Nonce)
}
