// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dashboard

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/solominer/fault"
	"github.com/bitmark-inc/solominer/telemetry"
)

// FetchSnapshot - read the metrics of a running dashboard
func FetchSnapshot(listen string, timeout time.Duration) (telemetry.Snapshot, error) {
	var s telemetry.Snapshot

	url := listen
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	url = strings.TrimSuffix(url, "/") + "/metrics"

	client := &http.Client{
		Timeout: timeout,
	}
	response, err := client.Get(url)
	if nil != err {
		return s, fault.ErrDashboardUnavailable
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		return s, fault.ErrDashboardUnavailable
	}

	err = json.NewDecoder(response.Body).Decode(&s)
	return s, err
}
