// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dashboard

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/solominer/counter"
	"github.com/bitmark-inc/solominer/fault"
	"github.com/bitmark-inc/solominer/telemetry"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Source - where the dashboard reads metrics from
type Source interface {
	Snapshot() telemetry.Snapshot
}

// Server - the dashboard HTTP server
type Server struct {
	sync.Mutex

	log      *logger.L
	listen   string
	handler  *httpHandler
	mux      *http.ServeMux
	listener net.Listener
	server   *http.Server
	requests counter.Counter
}

// New - create a dashboard for the metrics source
func New(configuration Configuration, source Source, log *logger.L) *Server {
	limit := rate.Inf
	if configuration.RateLimit > 0 {
		limit = rate.Limit(configuration.RateLimit)
	}
	burst := configuration.Burst
	if burst < 1 {
		burst = 1
	}

	s := &Server{
		log:    log,
		listen: configuration.Listen,
	}
	s.handler = &httpHandler{
		log:      log,
		limiter:  rate.NewLimiter(limit, burst),
		cache:    newSnapshotCache(source, time.Duration(configuration.CacheSeconds)*time.Second),
		requests: &s.requests,
	}

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/", s.handler.root)
	s.mux.HandleFunc("/metrics", s.handler.metrics)

	return s
}

// Handler - the request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Requests - number of requests answered
func (s *Server) Requests() uint64 {
	return s.requests.Uint64()
}

// Listen - bind the listening socket
func (s *Server) Listen() error {
	s.Lock()
	defer s.Unlock()

	if nil != s.listener {
		return fault.ErrAlreadyInitialised
	}

	listener, err := net.Listen("tcp", s.listen)
	if nil != err {
		s.log.Errorf("listen on: %q  error: %s", s.listen, err)
		return err
	}
	s.listener = listener
	s.server = &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	s.log.Infof("listening on: %s", listener.Addr())
	return nil
}

// Addr - address actually bound, empty before Listen
func (s *Server) Addr() string {
	s.Lock()
	defer s.Unlock()

	if nil == s.listener {
		return ""
	}
	return s.listener.Addr().String()
}

// Run - serve until shutdown is closed, Listen must have succeeded
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	s.Lock()
	listener := s.listener
	server := s.server
	s.Unlock()

	if nil == listener {
		s.log.Error("run called before listen")
		<-shutdown
		return
	}

	log := s.log
	log.Info("starting…")

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := server.Serve(listener)
		if nil != err && http.ErrServerClosed != err {
			log.Errorf("serve error: %s", err)
		}
	}()

	select {
	case <-shutdown:
	case <-done:
		<-shutdown
		return
	}

	log.Info("shutting down…")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); nil != err {
		log.Errorf("shutdown error: %s", err)
	}
	<-done
	s.handler.cache.Clear()
	log.Info("stopped")
}
