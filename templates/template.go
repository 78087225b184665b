// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package templates - text for the dashboard page and the default
// configuration file
package templates

const (
	/**** Dashboard page template ****/
	DashboardTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta http-equiv="refresh" content="{{.Refresh}}">
    <title>SoloMiner Dashboard</title>
  </head>
  <body>
    <h1>SoloMiner Dashboard</h1>
    <p>Status: {{.Status}}</p>
    <p>Hashrate: {{printf "%.2f" .Hashrate}} hashes/s</p>
    <p>Total Hashes: {{.TotalHashes}}</p>
    <p>Blocks Found: {{.BlocksFound}}</p>
  </body>
</html>
`

	/**** Configuration template ****/
	ConfigurationTemplate = `-- solominer.conf -*- mode: lua -*-

local M = {}

-- "." means the directory containing this file
M.data_directory = "."
M.pidfile = "solominer.pid"

-- reward address, WALLET_ADDRESS from the environment or .env if empty
M.wallet_address = os.getenv("WALLET_ADDRESS") or ""

M.miner = {
    -- leading bits the block hash must start with
    difficulty = "{{.Difficulty}}",

    -- sha256 or randomx
    algorithm = "{{.Algorithm}}",

    -- performance: all cores, conservative: half of them
    mode = "{{.Mode}}",

    -- non zero overrides mode
    threads = 0,

    -- seconds, 0 waits until a block is found
    timeout = 0,

    -- number of blocks to mine, 0 runs until stopped
    sessions = 1,

    data = "First block data",
}

M.dashboard = {
    -- set to "" to disable the dashboard while mining
    listen = "{{.Listen}}",
    rate_limit = 10,
    burst = 20,
    cache_seconds = 1,
}

M.logging = {
    directory = "log",
    file = "solominer.log",
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "info",
        -- miner = "debug",
    },
}

return M
`
)
