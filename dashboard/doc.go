// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dashboard - read only HTTP view of the mining metrics
//
//   GET /         HTML page
//   GET /metrics  JSON snapshot
//
// every other path is a JSON 404 and every other method a JSON 405
package dashboard
