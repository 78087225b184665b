// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/solominer/fault"
)

const (
	// let an editor finish writing before reading the file
	defaultRefreshDelay = time.Second
	ReaderLoggerPrefix  = "config-reader"
)

// ConfigReaderData - holds the current configuration
type ConfigReaderData struct {
	sync.RWMutex

	fileName             string
	refreshDelay         time.Duration
	log                  *logger.L
	currentConfiguration *Configuration
	overrides            overrides
	watcherChannel       WatcherChannel
	refreshed            uint64
}

func newConfigReader(fileName string, o overrides, ch WatcherChannel) *ConfigReaderData {
	return &ConfigReaderData{
		fileName:       fileName,
		refreshDelay:   defaultRefreshDelay,
		overrides:      o,
		watcherChannel: ch,
	}
}

// SetLog - configuration must be read before the logger can start
func (c *ConfigReaderData) SetLog(log *logger.L) error {
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	c.Lock()
	c.log = log
	c.Unlock()
	return nil
}

// Refresh - read the file, the previous configuration is kept on error
func (c *ConfigReaderData) Refresh() error {
	configuration, err := getConfiguration(c.fileName)
	if nil != err {
		return err
	}

	c.Lock()
	c.currentConfiguration = configuration
	c.refreshed += 1
	c.Unlock()
	return nil
}

// GetConfig - the current configuration
func (c *ConfigReaderData) GetConfig() (*Configuration, error) {
	c.RLock()
	defer c.RUnlock()

	if nil == c.currentConfiguration {
		return nil, fault.ErrConfigurationNotFound
	}
	return c.currentConfiguration, nil
}

// Settings - resolved values for the next session
func (c *ConfigReaderData) Settings() (sessionSettings, error) {
	configuration, err := c.GetConfig()
	if nil != err {
		return sessionSettings{}, err
	}
	return configuration.settings(c.overrides)
}

// Run - refresh on file change events until shutdown
func (c *ConfigReaderData) Run(args interface{}, shutdown <-chan struct{}) {
	c.RLock()
	log := c.log
	c.RUnlock()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-c.watcherChannel.change:
			log.Debugf("receive file change event, wait for %s to adapt", c.refreshDelay)
			select {
			case <-shutdown:
				break loop
			case <-time.After(c.refreshDelay):
			}
			err := c.Refresh()
			if nil != err {
				log.Errorf("failed to read configuration from: %s  error: %s", c.fileName, err)
				continue loop
			}
			log.Info("configuration reloaded, used from the next session")

		case <-c.watcherChannel.remove:
			log.Warn("config file removed, keeping current configuration")
		}
	}
}
