// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty

import (
	"strings"

	"github.com/bitmark-inc/solominer/blockdigest"
	"github.com/bitmark-inc/solominer/fault"
)

// MaximumLength - number of bits in a digest
const MaximumLength = 8 * blockdigest.Length

// Default - difficulty used when none is configured
const Default = "000"

// Satisfies - true if the binary expansion of digest starts with difficulty
//
// equivalent to strings.HasPrefix(Expand(digest), difficulty) without
// building the expansion; an empty difficulty always matches
func Satisfies(digest []byte, difficulty string) bool {
	if len(difficulty) > 8*len(digest) {
		return false
	}
	for i := 0; i < len(difficulty); i += 1 {
		bit := digest[i/8] >> (7 - uint(i%8)) & 1
		switch difficulty[i] {
		case '0':
			if 0 != bit {
				return false
			}
		case '1':
			if 1 != bit {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Expand - each byte as eight zero padded binary digits
func Expand(digest []byte) string {
	var b strings.Builder
	b.Grow(8 * len(digest))
	for _, c := range digest {
		for shift := 7; shift >= 0; shift -= 1 {
			b.WriteByte('0' + (c>>uint(shift))&1)
		}
	}
	return b.String()
}

// LeadingZeros - difficulty requiring n leading zero bits
func LeadingZeros(n int) string {
	return strings.Repeat("0", n)
}

// Validate - check a configured difficulty
func Validate(difficulty string) error {
	if len(difficulty) > MaximumLength {
		return fault.ErrDifficultyTooLong
	}
	for _, c := range difficulty {
		if '0' != c && '1' != c {
			return fault.ErrInvalidDifficulty
		}
	}
	return nil
}
