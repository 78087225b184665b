// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// output a JSON block with an optional title
func printJson(handle io.Writer, title string, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	if "" == title {
		_, err = fmt.Fprintf(handle, "%s\n", b)
	} else {
		_, err = fmt.Fprintf(handle, "%s:\n%s\n", title, b)
	}
	return err
}
