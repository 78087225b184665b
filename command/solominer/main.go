// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/joho/godotenv"

	"github.com/bitmark-inc/solominer/background"
	"github.com/bitmark-inc/solominer/dashboard"
	"github.com/bitmark-inc/solominer/fault"
	"github.com/bitmark-inc/solominer/miner"
	"github.com/bitmark-inc/solominer/telemetry"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "mode", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'm'},
		{Long: "algorithm", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'a'},
		{Long: "timeout", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)
	}

	quiet := len(options["quiet"]) > 0
	verbose := len(options["verbose"]) > 0

	o := overrides{
		mode:      lastOption(options["mode"]),
		algorithm: lastOption(options["algorithm"]),
		timeout:   lastOption(options["timeout"]),
	}

	command := "start"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	// commands that do not need the configuration
	if processSetupCommand(program, command, arguments, o) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]

	// the wallet address may come from a .env file
	loadEnvironment(program, configurationFile)

	watcherChannel := newWatcherChannel()
	reader := newConfigReader(configurationFile, o, watcherChannel)

	err = reader.Refresh()
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	masterConfiguration, err := reader.GetConfig()
	if nil != err {
		exitwithstatus.Message("%s: configuration is not found", program)
	}

	// commands that only talk to a running miner
	switch command {
	case "status":
		if err := runStatus(os.Stdout, masterConfiguration); nil != err {
			exitwithstatus.Message("%s: status error: %s", program, err)
		}
		return
	case "stop":
		if err := runStop(os.Stdout, masterConfiguration); nil != err {
			exitwithstatus.Message("%s: stop error: %s", program, err)
		}
		return
	}

	if verbose {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last chance logging for worker panics
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	err = reader.SetLog(logger.New(ReaderLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: new logger '%s' failed with error: %s", program, ReaderLoggerPrefix, err)
	}

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != masterConfiguration.PidFile && "dashboard" != command {
		err := createPidFile(masterConfiguration.PidFile)
		if nil != err {
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, masterConfiguration.PidFile, err)
		}
		defer os.Remove(masterConfiguration.PidFile)
	}

	// turn Signals into context cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-ch
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down...\n")
		}
		cancel()
	}()

	metrics := telemetry.New()

	switch command {
	case "dashboard":
		server := dashboard.New(masterConfiguration.Dashboard, metrics, logger.New("dashboard"))
		if err := server.Listen(); nil != err {
			exitwithstatus.Message("%s: dashboard listen on: %q  error: %s", program, masterConfiguration.Dashboard.Listen, err)
		}
		processes := background.Start(background.Processes{server}, nil)
		defer processes.Stop()

		if !quiet {
			fmt.Printf("dashboard: http://%s/\n", server.Addr())
			fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
		}
		<-ctx.Done()

	default:
		var out io.Writer = os.Stdout
		if quiet {
			out = nil
		}
		err := runMining(ctx, log, configurationFile, reader, masterConfiguration, metrics, out)
		if nil != err {
			exitwithstatus.Message("%s: mining error: %s", program, err)
		}
	}
}

// start the supporting processes and mine the configured sessions
func runMining(ctx context.Context, log *logger.L, configurationFile string, reader *ConfigReaderData, configuration *Configuration, metrics *telemetry.Metrics, out io.Writer) error {
	settings, err := reader.Settings()
	if nil != err {
		return err
	}
	log.Infof("wallet: %s", settings.wallet)

	processes := background.Processes{}

	if "" != configuration.Dashboard.Listen {
		server := dashboard.New(configuration.Dashboard, metrics, logger.New("dashboard"))
		if err := server.Listen(); nil != err {
			log.Warnf("dashboard disabled: %s", err)
		} else {
			processes = append(processes, server)
			if nil != out {
				fmt.Fprintf(out, "dashboard: http://%s/\n", server.Addr())
			}
		}
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(FileWatcherLoggerPrefix), reader.watcherChannel)
	if nil != err {
		log.Warnf("configuration reload disabled: %s", err)
	} else {
		processes = append(processes, watcher, reader)
	}

	p := background.Start(processes, nil)
	defer p.Stop()

	m := miner.New(metrics, logger.New("miner"))
	return runSessions(ctx, log, reader, m, out)
}

// last value of a repeatable option, empty if not given
func lastOption(values []string) string {
	if 0 == len(values) {
		return ""
	}
	return values[len(values)-1]
}

// read .env from the working directory then from the configuration
// directory; existing environment variables are never replaced
func loadEnvironment(program string, configurationFile string) {
	candidates := []string{
		".env",
		filepath.Join(filepath.Dir(configurationFile), ".env"),
	}
	for _, fileName := range candidates {
		err := godotenv.Load(fileName)
		if nil != err && !os.IsNotExist(err) {
			exitwithstatus.Message("%s: cannot read environment file: %q  error: %s", program, fileName, err)
		}
	}
}
