// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dashboard

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/solominer/telemetry"
)

const snapshotKey = "snapshot"

// source of metrics
type snapshotter interface {
	Snapshot() telemetry.Snapshot
}

// holds the last snapshot for a short time so that a burst of requests
// takes the metrics lock once
type snapshotCache struct {
	source     snapshotter
	expiration time.Duration
	cache      *cache.Cache
}

func newSnapshotCache(source snapshotter, expiration time.Duration) *snapshotCache {
	c := &snapshotCache{
		source:     source,
		expiration: expiration,
	}
	if expiration > 0 {
		c.cache = cache.New(expiration, 2*expiration)
	}
	return c
}

func (c *snapshotCache) Get() telemetry.Snapshot {
	if nil == c.cache {
		return c.source.Snapshot()
	}

	if obj, found := c.cache.Get(snapshotKey); found {
		return obj.(telemetry.Snapshot)
	}

	s := c.source.Snapshot()
	c.cache.Set(snapshotKey, s, cache.DefaultExpiration)
	return s
}

func (c *snapshotCache) Clear() {
	if nil != c.cache {
		c.cache.Flush()
	}
}
