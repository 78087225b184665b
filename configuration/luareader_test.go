// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/solominer/configuration"
	"github.com/bitmark-inc/solominer/fault"
)

type minerSection struct {
	Difficulty string `gluamapper:"difficulty"`
	Threads    int    `gluamapper:"threads"`
}

type sample struct {
	Name   string       `gluamapper:"name"`
	Source string       `gluamapper:"source"`
	Miner  minerSection `gluamapper:"miner"`
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "luareader")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "sample.conf")
	text := `
local M = {}
M.name = "solo"
M.source = arg[0]
M.miner = {
    difficulty = string.rep("0", 4),
    threads = 2 + 1,
}
return M
`
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	assert.Nil(t, err, "write error")

	s := sample{
		Miner: minerSection{
			Difficulty: "000",
		},
	}
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "solo", s.Name, "wrong name")
	assert.Equal(t, fileName, s.Source, "arg[0] not set to file name")
	assert.Equal(t, "0000", s.Miner.Difficulty, "wrong difficulty")
	assert.Equal(t, 3, s.Miner.Threads, "wrong threads")
}

func TestParseConfigurationKeepsDefaults(t *testing.T) {
	s := sample{
		Name: "default",
		Miner: minerSection{
			Difficulty: "000",
			Threads:    4,
		},
	}
	err := configuration.ParseConfigurationString(`return { miner = { threads = 1 } }`, &s)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, "default", s.Name, "default name overwritten")
	assert.Equal(t, "000", s.Miner.Difficulty, "default difficulty overwritten")
	assert.Equal(t, 1, s.Miner.Threads, "threads not set")
}

func TestParseConfigurationErrors(t *testing.T) {
	s := sample{}

	err := configuration.ParseConfigurationFile("/nonexistent/solominer.conf", &s)
	assert.NotNil(t, err, "missing file accepted")

	err = configuration.ParseConfigurationString(`return {`, &s)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationString(`return 42`, &s)
	assert.Equal(t, fault.ErrConfigurationNotFound, err, "wrong error for non-table result")
}
