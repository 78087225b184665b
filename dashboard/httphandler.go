// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dashboard

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/solominer/counter"
	"github.com/bitmark-inc/solominer/telemetry"
	"github.com/bitmark-inc/solominer/templates"
)

// seconds between browser refreshes of the page
const pageRefresh = 5

var page = template.Must(template.New("dashboard").Parse(templates.DashboardTemplate))

// the argument passed to the handlers
type httpHandler struct {
	log      *logger.L
	limiter  *rate.Limiter
	cache    *snapshotCache
	requests *counter.Counter
}

// data for the page template
type pageData struct {
	telemetry.Snapshot
	Refresh int
}

// the HTML page, also matches anything not matched
func (s *httpHandler) root(w http.ResponseWriter, r *http.Request) {
	if "/" != r.URL.Path {
		sendNotFound(w)
		return
	}
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if nil != limit(s.limiter) {
		sendTooManyRequests(w)
		return
	}

	s.requests.Increment()

	var buffer bytes.Buffer
	err := page.Execute(&buffer, pageData{
		Snapshot: s.cache.Get(),
		Refresh:  pageRefresh,
	})
	if nil != err {
		s.log.Errorf("page template error: %s", err)
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// the JSON snapshot
func (s *httpHandler) metrics(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if nil != limit(s.limiter) {
		sendTooManyRequests(w)
		return
	}

	s.requests.Increment()

	sendReply(w, s.cache.Get())
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "too many requests", http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(text)
}
