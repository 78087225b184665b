// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/bitmark-inc/solominer/fault"
)

// create the pid file, failing if it exists
func createPidFile(fileName string) error {
	lockFile, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
	if nil != err {
		if os.IsExist(err) {
			return fault.ErrAlreadyRunning
		}
		return err
	}
	fmt.Fprintf(lockFile, "%d\n", os.Getpid())
	return lockFile.Close()
}

// read the process id from a pid file
func readPidFile(fileName string) (int, error) {
	if "" == fileName {
		return 0, fault.ErrMissingPidFile
	}
	buffer, err := ioutil.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return 0, fault.ErrNotRunning
		}
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(buffer)))
	if nil != err || pid <= 0 {
		return 0, fault.ErrInvalidPidFile
	}
	return pid, nil
}

// ask the process in the pid file to shut down
func signalPidFile(fileName string, sig syscall.Signal) (int, error) {
	pid, err := readPidFile(fileName)
	if nil != err {
		return 0, err
	}
	process, err := os.FindProcess(pid)
	if nil != err {
		return pid, err
	}
	if err := process.Signal(sig); nil != err {
		return pid, fault.ErrNotRunning
	}
	return pid, nil
}
