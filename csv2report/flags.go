// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// stringsFlag is a repeatable string flag.
type stringsFlag []string

func (ss *stringsFlag) String() string     { return strings.Join(*ss, ", ") }
func (ss *stringsFlag) Set(s string) error { *ss = append(*ss, s); return nil }

// parsePairs parses "k1=v1,k2=v2".
func parsePairs(s string) (map[string]string, error) {
	if s == "" {
		return nil, nil
	}
	m := make(map[string]string)
	for _, kv := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%q: want key=value", kv)
		}
		m[k] = strings.TrimSpace(v)
	}
	return m, nil
}

// parseWidths parses "name=3,age=2" into a width map.
func parseWidths(s string) (map[string]int, error) {
	pairs, err := parsePairs(s)
	if err != nil || pairs == nil {
		return nil, err
	}
	widths := make(map[string]int, len(pairs))
	for k, v := range pairs {
		w, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("width of %q: %w", k, err)
		}
		if w <= 0 {
			return nil, fmt.Errorf("width of %q: %d is not positive", k, w)
		}
		widths[k] = w
	}
	return widths, nil
}

// splitList splits a comma separated list, dropping the empty elements.
func splitList(s string) []string {
	var ss []string
	for _, e := range strings.Split(s, ",") {
		if e = strings.TrimSpace(e); e != "" {
			ss = append(ss, e)
		}
	}
	return ss
}
