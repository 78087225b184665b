// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ClockError GenericError
type ExistsError GenericError
type InvalidError GenericError
type JoinError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrAlreadyRunning        = ExistsError("another instance is already running")
	ErrConfigurationNotFound = NotFoundError("configuration is empty")
	ErrDashboardUnavailable  = ProcessError("dashboard did not respond")
	ErrDifficultyTooLong     = InvalidError("difficulty is longer than the digest")
	ErrInvalidDataDirectory  = InvalidError("data directory is not valid")
	ErrInvalidDigestLength   = InvalidError("digest length is invalid")
	ErrInvalidDifficulty     = InvalidError("difficulty may only contain '0' and '1'")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidPidFile        = InvalidError("pid file does not contain a process id")
	ErrInvalidThreadCount    = InvalidError("thread count must be at least one")
	ErrInvalidTimeout        = InvalidError("timeout must be a whole number of seconds")
	ErrMissingConfigFile     = NotFoundError("configuration file is required")
	ErrMissingPidFile        = NotFoundError("pid file is not configured")
	ErrMissingWallet         = NotFoundError("wallet address is not set")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrNotPlainFileName      = InvalidError("file name must not contain a directory")
	ErrNotRunning            = NotFoundError("miner is not running")
	ErrRateLimiting          = ProcessError("rate limiting")
	ErrTimeSource            = ClockError("system clock is before the unix epoch")
	ErrUnknownAlgorithm      = InvalidError("unknown hashing algorithm")
	ErrUnknownMode           = InvalidError("unknown mining mode")
	ErrWorkerJoin            = JoinError("mining worker did not finish cleanly")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ClockError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e JoinError) Error() string     { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrClock(e error) bool    { _, ok := e.(ClockError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrJoin(e error) bool     { _, ok := e.(JoinError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
