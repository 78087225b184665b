// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/solominer/background"
	"github.com/bitmark-inc/solominer/fault"
)

func waitEvent(ch <-chan struct{}, timeout time.Duration) bool {
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestWatcherEvents(t *testing.T) {
	directory, fileName := writeTestConfiguration(t, minimalConfiguration)
	defer os.RemoveAll(directory)

	channel := newWatcherChannel()
	watcher, err := newFileWatcher(fileName, logger.New("testing"), channel)
	assert.Nil(t, err, "watcher error")

	p := background.Start(background.Processes{watcher}, nil)
	defer p.Stop()

	// an unrelated file in the same directory is ignored
	err = ioutil.WriteFile(filepath.Join(directory, "other"), []byte("x"), 0600)
	assert.Nil(t, err, "write error")
	assert.False(t, waitEvent(channel.change, 200*time.Millisecond), "event for other file")

	err = ioutil.WriteFile(fileName, []byte(minimalConfiguration+"\n"), 0600)
	assert.Nil(t, err, "write error")
	assert.True(t, waitEvent(channel.change, 5*time.Second), "change event not received")

	err = os.Remove(fileName)
	assert.Nil(t, err, "remove error")
	assert.True(t, waitEvent(channel.remove, 5*time.Second), "remove event not received")
}

func TestNewFileWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher("/nonexistent/solominer.conf", logger.New("testing"), newWatcherChannel())
	assert.Equal(t, fault.ErrMissingConfigFile, err, "wrong error")
}

func TestSendEventDiscardsWhenFull(t *testing.T) {
	w := &FileWatcherData{
		log: logger.New("testing"),
	}

	ch := make(chan struct{}, 1)
	assert.False(t, w.isChannelFull(ch), "empty channel reported full")

	w.sendEvent(ch, "test")
	assert.True(t, w.isChannelFull(ch), "channel not full after send")

	// must not block
	w.sendEvent(ch, "test")
	assert.Equal(t, 1, len(ch), "wrong channel length")
}

func TestEventClassification(t *testing.T) {
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "x", Op: fsnotify.Remove}), "remove not detected")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "x", Op: fsnotify.Rename}), "rename not detected")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "x", Op: fsnotify.Write}), "write is not remove")

	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "x", Op: fsnotify.Write}), "write not detected")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "x", Op: fsnotify.Create}), "create not detected")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "x", Op: fsnotify.Remove}), "remove is not change")
}
