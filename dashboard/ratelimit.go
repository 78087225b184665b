// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dashboard

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/solominer/fault"
)

// longest a request is held back before being refused
const maximumDelay = 100 * time.Millisecond

// limiting for a single request
func limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	delay := r.Delay()
	if delay > maximumDelay {
		r.Cancel()
		return fault.ErrRateLimiting
	}
	time.Sleep(delay)
	return nil
}
