// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/solominer/fault"
)

const (
	FileWatcherLoggerPrefix = "file-watcher"
)

// WatcherChannel - events passed to the configuration reader
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// FileWatcherData - watches the configuration file
type FileWatcherData struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (*FileWatcherData, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %v", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrMissingConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	// watch the directory so that editors that replace the file are seen
	err = watcher.Add(path.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %v, abort", err)
		watcher.Close()
		return nil, err
	}

	return &FileWatcherData{
		log:      log,
		watcher:  watcher,
		channel:  channel,
		filePath: filePath,
	}, nil
}

// Run - forward file events until shutdown
func (w *FileWatcherData) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	name := path.Base(w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if path.Base(event.Name) != name {
				continue loop
			}

			if watcherEventFileRemove(event) {
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
				continue loop
			}

			if watcherEventFileChange(event) {
				w.log.Info("sending config change event…")
				w.sendEvent(w.channel.change, "change")
			}
		}
	}
	w.log.Info("stopped")
}

func (w *FileWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *FileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Infof("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
