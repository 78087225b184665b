// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"syscall"
	"text/template"
	"time"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/solominer/algorithm"
	"github.com/bitmark-inc/solominer/dashboard"
	"github.com/bitmark-inc/solominer/difficulty"
	"github.com/bitmark-inc/solominer/mode"
	"github.com/bitmark-inc/solominer/templates"
)

const (
	defaultConfigurationFile = "solominer.conf"
	statusTimeout            = 5 * time.Second
)

// setup command handler
//
// commands that do not need the configuration file, returns false if
// the command must be run by main
func processSetupCommand(program string, command string, arguments []string, o overrides) bool {

	switch command {
	case "setup", "init":
		fileName := defaultConfigurationFile
		if len(arguments) >= 1 {
			fileName = arguments[0]
		}
		err := writeConfigurationFile(fileName, o)
		if nil != err {
			exitwithstatus.Message("%s: cannot create configuration: %q  error: %s", program, fileName, err)
		}
		fmt.Printf("created configuration: %q\n", fileName)

	case "start", "run", "dashboard", "status", "stop":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  setup [FILE]               (init)   - create a configuration file, default: %q\n", defaultConfigurationFile)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - mine blocks, same as no arguments\n")
		fmt.Printf("                                        options: --mode=performance|conservative\n")
		fmt.Printf("                                                 --algorithm=sha256|randomx\n")
		fmt.Printf("                                                 --timeout=SECONDS\n")
		fmt.Printf("\n")

		fmt.Printf("  dashboard                           - serve the metrics dashboard only\n")
		fmt.Printf("  status                              - show the metrics of a running miner\n")
		fmt.Printf("  stop                                - stop the miner in the configured pid file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}
	return true
}

// data for the configuration template
type configurationData struct {
	Difficulty string
	Algorithm  string
	Mode       string
	Listen     string
}

// write a new configuration file, never overwriting
func writeConfigurationFile(fileName string, o overrides) error {
	data := configurationData{
		Difficulty: difficulty.Default,
		Algorithm:  algorithm.SHA256.String(),
		Mode:       mode.Conservative.String(),
		Listen:     dashboard.DefaultListen,
	}
	if "" != o.algorithm {
		a, err := algorithm.FromString(o.algorithm)
		if nil != err {
			return err
		}
		data.Algorithm = a.String()
	}
	if "" != o.mode {
		m, err := mode.ParseMode(o.mode)
		if nil != err {
			return err
		}
		data.Mode = m.String()
	}

	t, err := template.New("configuration").Parse(templates.ConfigurationTemplate)
	if nil != err {
		return err
	}

	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0600)
	if nil != err {
		return err
	}
	err = t.Execute(file, data)
	if closeErr := file.Close(); nil == err {
		err = closeErr
	}
	return err
}

// query the dashboard of a running miner
func runStatus(handle io.Writer, configuration *Configuration) error {
	snapshot, err := dashboard.FetchSnapshot(configuration.Dashboard.Listen, statusTimeout)
	if nil != err {
		return err
	}
	return printJson(handle, "", snapshot)
}

// signal the running miner
func runStop(handle io.Writer, configuration *Configuration) error {
	pid, err := signalPidFile(configuration.PidFile, syscall.SIGTERM)
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(handle, "sent SIGTERM to: %d\n", pid)
	return err
}
