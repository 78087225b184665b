// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dashboard

// defaults
const (
	DefaultListen       = "127.0.0.1:8080"
	DefaultRateLimit    = 10.0 // requests per second
	DefaultBurst        = 20
	DefaultCacheSeconds = 1
)

// Configuration - dashboard section of the configuration file
type Configuration struct {
	Listen       string  `gluamapper:"listen" json:"listen"`
	RateLimit    float64 `gluamapper:"rate_limit" json:"rate_limit"`
	Burst        int     `gluamapper:"burst" json:"burst"`
	CacheSeconds int     `gluamapper:"cache_seconds" json:"cache_seconds"`
}

// DefaultConfiguration - values used if the file omits them
func DefaultConfiguration() Configuration {
	return Configuration{
		Listen:       DefaultListen,
		RateLimit:    DefaultRateLimit,
		Burst:        DefaultBurst,
		CacheSeconds: DefaultCacheSeconds,
	}
}
