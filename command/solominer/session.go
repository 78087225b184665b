// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/solominer/miner"
)

// source of per session settings
type settingsReader interface {
	Settings() (sessionSettings, error)
}

// mine sessions until the configured count is reached or ctx is done
//
// settings are read again before every session so that configuration
// changes take effect between sessions
func runSessions(ctx context.Context, log *logger.L, reader settingsReader, m *miner.Miner, out io.Writer) error {
	for n := 1; ; n += 1 {
		settings, err := reader.Settings()
		if nil != err {
			return err
		}
		if settings.sessions > 0 && n > settings.sessions {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		log.Infof("session: %d  algorithm: %s  threads: %d  timeout: %s", n, settings.algorithm, settings.threads, settings.timeout)

		result, err := m.Mine(ctx, miner.Request{
			Wallet:     settings.wallet,
			Threads:    settings.threads,
			Hasher:     settings.algorithm,
			Difficulty: settings.difficulty,
			Timeout:    settings.timeout,
			Data:       settings.data,
		})
		if nil != result {
			report(out, settings, result)
		}
		if nil != err {
			return err
		}
		if miner.Stopped == result.Outcome {
			return nil
		}
	}
}

// print the outcome of one session
func report(out io.Writer, settings sessionSettings, result *miner.Result) {
	if nil == out {
		return
	}
	switch result.Outcome {
	case miner.BlockFound:
		fmt.Fprintf(out, "Block found with %s!\n", settings.algorithm.Name())
		fmt.Fprintf(out, "  wallet:        %s\n", settings.wallet)
		fmt.Fprintf(out, "  id:            %d\n", result.Block.ID)
		fmt.Fprintf(out, "  timestamp:     %d\n", result.Block.Timestamp)
		fmt.Fprintf(out, "  data:          %s\n", result.Block.Data)
		fmt.Fprintf(out, "  previous hash: %s\n", result.Block.PreviousHash)
		fmt.Fprintf(out, "  nonce:         %d\n", result.Block.Nonce)
		fmt.Fprintf(out, "  hash:          %s\n", result.Hash)
		fmt.Fprintf(out, "  elapsed:       %s\n", result.Elapsed)
	case miner.TimedOut:
		fmt.Fprintf(out, "Mining timed out after %d seconds.\n", int64(settings.timeout.Seconds()))
	case miner.Stopped:
		fmt.Fprintf(out, "Mining stopped.\n")
	}
}
