// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/solominer/algorithm"
	"github.com/bitmark-inc/solominer/blockrecord"
	"github.com/bitmark-inc/solominer/configuration"
	"github.com/bitmark-inc/solominer/dashboard"
	"github.com/bitmark-inc/solominer/difficulty"
	"github.com/bitmark-inc/solominer/fault"
	"github.com/bitmark-inc/solominer/mode"
	"github.com/bitmark-inc/solominer/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "solominer.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultAlgorithm = "sha256"
	defaultMode      = "conservative"
	defaultSessions  = 1

	walletEnvironment = "WALLET_ADDRESS"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// MinerConfiguration - the miner section
type MinerConfiguration struct {
	Difficulty string `gluamapper:"difficulty" json:"difficulty"`
	Algorithm  string `gluamapper:"algorithm" json:"algorithm"`
	Mode       string `gluamapper:"mode" json:"mode"`
	Threads    int    `gluamapper:"threads" json:"threads"`
	Timeout    int    `gluamapper:"timeout" json:"timeout"`
	Sessions   int    `gluamapper:"sessions" json:"sessions"`
	Data       string `gluamapper:"data" json:"data"`
}

// Configuration - the whole file
type Configuration struct {
	DataDirectory string                  `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                  `gluamapper:"pidfile" json:"pidfile"`
	WalletAddress string                  `gluamapper:"wallet_address" json:"wallet_address"`
	Miner         MinerConfiguration      `gluamapper:"miner" json:"miner"`
	Dashboard     dashboard.Configuration `gluamapper:"dashboard" json:"dashboard"`
	Logging       logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// command line values that replace the file's values
type overrides struct {
	mode      string
	algorithm string
	timeout   string
}

// everything a session needs, resolved and validated
type sessionSettings struct {
	wallet     string
	threads    int
	algorithm  algorithm.Algorithm
	difficulty string
	timeout    time.Duration
	sessions   int
	data       string
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Miner: MinerConfiguration{
			Difficulty: difficulty.Default,
			Algorithm:  defaultAlgorithm,
			Mode:       defaultMode,
			Threads:    0,
			Timeout:    0,
			Sessions:   defaultSessions,
			Data:       blockrecord.DefaultData,
		},

		Dashboard: dashboard.DefaultConfiguration(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "" == options.WalletAddress {
		options.WalletAddress = os.Getenv(walletEnvironment)
	}

	options.Miner.Algorithm = strings.ToLower(options.Miner.Algorithm)
	if _, err := algorithm.FromString(options.Miner.Algorithm); nil != err {
		return nil, err
	}
	if _, err := mode.ParseMode(options.Miner.Mode); nil != err {
		return nil, err
	}
	if err := difficulty.Validate(options.Miner.Difficulty); nil != err {
		return nil, err
	}
	if options.Miner.Threads < 0 {
		return nil, fault.ErrInvalidThreadCount
	}
	if options.Miner.Timeout < 0 {
		options.Miner.Timeout = 0
	}
	if options.Miner.Sessions < 0 {
		options.Miner.Sessions = 0
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrInvalidDataDirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names
	mustNotBePaths := []*string{
		&options.Logging.File,
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f) {
		case "", ".":
		default:
			return nil, fault.ErrNotPlainFileName
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// resolve the values for the next mining session
func (c *Configuration) settings(o overrides) (sessionSettings, error) {
	s := sessionSettings{
		wallet:     c.WalletAddress,
		difficulty: c.Miner.Difficulty,
		sessions:   c.Miner.Sessions,
		data:       c.Miner.Data,
		timeout:    time.Duration(c.Miner.Timeout) * time.Second,
	}

	if "" == s.wallet {
		return s, fault.ErrMissingWallet
	}

	algorithmName := c.Miner.Algorithm
	if "" != o.algorithm {
		algorithmName = o.algorithm
	}
	a, err := algorithm.FromString(algorithmName)
	if nil != err {
		return s, err
	}
	s.algorithm = a

	modeName := c.Miner.Mode
	if "" != o.mode {
		modeName = o.mode
	}
	m, err := mode.ParseMode(modeName)
	if nil != err {
		return s, err
	}

	s.threads = c.Miner.Threads
	if s.threads <= 0 || "" != o.mode {
		s.threads = m.Threads()
	}

	if "" != o.timeout {
		seconds, err := strconv.Atoi(o.timeout)
		if nil != err || seconds < 0 {
			return s, fault.ErrInvalidTimeout
		}
		s.timeout = time.Duration(seconds) * time.Second
	}

	return s, nil
}
