// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/solominer/blockdigest"
	"github.com/bitmark-inc/solominer/difficulty"
	"github.com/bitmark-inc/solominer/fault"
)

func TestExpand(t *testing.T) {
	assert.Equal(t, "", difficulty.Expand(nil), "wrong empty expansion")
	assert.Equal(t, "00000000", difficulty.Expand([]byte{0x00}), "wrong zero expansion")
	assert.Equal(t, "0000000111111111", difficulty.Expand([]byte{0x01, 0xff}), "wrong expansion")
	assert.Equal(t, "10100101", difficulty.Expand([]byte{0xa5}), "wrong expansion")

	d := blockdigest.NewDigest([]byte("abc"))
	assert.Equal(t, difficulty.MaximumLength, len(difficulty.Expand(d[:])), "wrong expansion length")
}

func TestSatisfies(t *testing.T) {
	items := []struct {
		digest     []byte
		difficulty string
		expected   bool
	}{
		{[]byte{0x00, 0x00}, "", true},
		{[]byte{0xff}, "", true},
		{[]byte{0x00, 0x00}, "000", true},
		{[]byte{0x1f, 0x00}, "000", true},
		{[]byte{0x20, 0x00}, "000", false},
		{[]byte{0x01, 0x00}, "00000001", true},
		{[]byte{0x01, 0x80}, "000000011", true},
		{[]byte{0x01, 0x00}, "000000011", false},
		{[]byte{0xff}, "11111111", true},
		{[]byte{0xff}, "111111111", false},
		{[]byte{0x00}, "00x", false},
	}

	for i, item := range items {
		actual := difficulty.Satisfies(item.digest, item.difficulty)
		assert.Equal(t, item.expected, actual, "%d: digest: %x  difficulty: %q", i, item.digest, item.difficulty)
	}
}

// the predicate must agree with a prefix test over the expansion
func TestSatisfiesMatchesExpansion(t *testing.T) {
	r := rand.New(rand.NewSource(1234))
	patterns := []string{"", "0", "1", "00", "01", "10", "000", "0000", "1010", "00000000", "000000001"}

	for i := 0; i < 2000; i += 1 {
		var d blockdigest.Digest
		r.Read(d[:])
		// bias towards leading zeros so that longer patterns are hit
		d[0] &= byte(r.Intn(256))
		expanded := difficulty.Expand(d[:])
		for _, p := range patterns {
			assert.Equal(t, strings.HasPrefix(expanded, p), difficulty.Satisfies(d[:], p), "digest: %s  difficulty: %q", d, p)
		}
	}
}

func TestValidate(t *testing.T) {
	assert.Nil(t, difficulty.Validate(""), "empty difficulty rejected")
	assert.Nil(t, difficulty.Validate(difficulty.Default), "default difficulty rejected")
	assert.Nil(t, difficulty.Validate("0101"), "binary difficulty rejected")
	assert.Nil(t, difficulty.Validate(difficulty.LeadingZeros(difficulty.MaximumLength)), "maximum difficulty rejected")

	assert.Equal(t, fault.ErrInvalidDifficulty, difficulty.Validate("00a"), "wrong error for bad character")
	assert.Equal(t, fault.ErrInvalidDifficulty, difficulty.Validate("2"), "wrong error for bad digit")
	assert.Equal(t, fault.ErrDifficultyTooLong, difficulty.Validate(difficulty.LeadingZeros(difficulty.MaximumLength+1)), "wrong error for long difficulty")
}

// the expansion covers the raw digest bytes: the hex text of a digest
// only holds '0'-'9' (001xxxxx) and 'a'-'f' (011xxxxx) so the default
// difficulty could never match it
func TestDefaultDifficultyUsesRawBytes(t *testing.T) {
	d := blockdigest.NewDigest([]byte("abc"))
	ascii := []byte(d.String())

	assert.False(t, difficulty.Satisfies(ascii, difficulty.Default), "hex text satisfied default")
	assert.True(t, difficulty.Satisfies([]byte{0x1f, 0xff}, difficulty.Default), "raw bytes did not satisfy default")

	found := false
	for i := 0; i < 1000 && !found; i += 1 {
		d := blockdigest.NewDigest([]byte{byte(i), byte(i >> 8)})
		found = difficulty.Satisfies(d[:], difficulty.Default)
	}
	assert.True(t, found, "default difficulty not reached in 1000 digests")
}
