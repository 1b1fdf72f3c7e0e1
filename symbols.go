// Copyright 2024 Distributed Lab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package gkr

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseSymbols reads a circuit symbol file (one line per wire, fields
// comma-separated, the signal's dotted name in field index 3) and returns
// the first numPublic signal names in file order, the same convention the
// public-output JSON artifact's wire ordering relies on.
func ParseSymbols(r io.Reader, numPublic int) ([]string, error) {
	if numPublic == 0 {
		return nil, nil
	}

	res := make([]string, 0, numPublic)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), ",")
		if len(fields) < 4 {
			return nil, fmt.Errorf("gkr: malformed symbol line %q: need at least 4 comma-separated fields", sc.Text())
		}
		nameParts := strings.SplitN(fields[3], ".", 2)
		if len(nameParts) < 2 {
			return nil, fmt.Errorf("gkr: malformed symbol name %q: expected a dotted signal path", fields[3])
		}
		res = append(res, nameParts[1])
		if len(res) == numPublic {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
