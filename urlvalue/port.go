// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package urlvalue

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// toPort converts a port input to a stored port. Numbers are truncated toward
// zero; strings are read as a leading integer. nil means no port.
func toPort(v any) *int {
	var (
		n  int64
		ok bool
	)

	switch p := v.(type) {
	case int:
		n, ok = int64(p), true
	case int8:
		n, ok = int64(p), true
	case int16:
		n, ok = int64(p), true
	case int32:
		n, ok = int64(p), true
	case int64:
		n, ok = p, true
	case uint:
		n, ok = fromUint(uint64(p))
	case uint8:
		n, ok = int64(p), true
	case uint16:
		n, ok = int64(p), true
	case uint32:
		n, ok = int64(p), true
	case uint64:
		n, ok = fromUint(p)
	case float32:
		n, ok = fromFloat(float64(p))
	case float64:
		n, ok = fromFloat(p)
	case json.Number:
		n, ok = parseLeadingInt(p.String())
	case string:
		n, ok = parseLeadingInt(p)
	case *int:
		if p != nil {
			n, ok = int64(*p), true
		}
	}

	if !ok || n < 0 || n > math.MaxInt32 {
		return nil
	}
	port := int(n)
	return &port
}

func fromUint(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

func fromFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	t := math.Trunc(f)
	if t > math.MaxInt64 || t < math.MinInt64 {
		return 0, false
	}
	return int64(t), true
}

// parseLeadingInt reads an optionally signed run of decimal digits at the start
// of s, after leading whitespace. Trailing characters are ignored, so "8080/tcp"
// reads as 8080 and "12.9" as 12.
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
