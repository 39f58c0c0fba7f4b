// config.go: configuration parsing utilities
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package octo

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseByteCount converts size strings like "64KiB", "100MB", "1GB" to a
// byte count. Supports case-insensitive input, the binary (KiB/MiB/GiB)
// and decimal (KB/MB/GB) suffix families, and single-letter shorthands
// (K, M, G). A bare number is interpreted as a byte count directly.
//
// Used to size a SegmentPool's retained-byte bound and a buffered
// sink's high-water mark from configuration, the same way the teacher
// library lets a size string configure rotation thresholds.
func ParseByteCount(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	if val, err := strconv.ParseInt(s, 10, 64); err == nil {
		return val, nil
	}

	upper := strings.ToUpper(s)

	var multiplier int64
	var numStr string

	switch {
	case strings.HasSuffix(upper, "KIB"):
		multiplier = 1024
		numStr = upper[:len(upper)-3]
	case strings.HasSuffix(upper, "MIB"):
		multiplier = 1024 * 1024
		numStr = upper[:len(upper)-3]
	case strings.HasSuffix(upper, "GIB"):
		multiplier = 1024 * 1024 * 1024
		numStr = upper[:len(upper)-3]
	case strings.HasSuffix(upper, "KB"):
		multiplier = 1000
		numStr = upper[:len(upper)-2]
	case strings.HasSuffix(upper, "MB"):
		multiplier = 1000 * 1000
		numStr = upper[:len(upper)-2]
	case strings.HasSuffix(upper, "GB"):
		multiplier = 1000 * 1000 * 1000
		numStr = upper[:len(upper)-2]
	case strings.HasSuffix(upper, "K"):
		multiplier = 1024
		numStr = upper[:len(upper)-1]
	case strings.HasSuffix(upper, "M"):
		multiplier = 1024 * 1024
		numStr = upper[:len(upper)-1]
	case strings.HasSuffix(upper, "G"):
		multiplier = 1024 * 1024 * 1024
		numStr = upper[:len(upper)-1]
	default:
		return 0, fmt.Errorf("unknown size suffix in %q (supported: KiB/MiB/GiB, KB/MB/GB, K/M/G)", s)
	}

	val, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number in %q: %w", s, err)
	}

	result := val * multiplier
	if result < 0 || (val != 0 && result/val != multiplier) {
		return 0, fmt.Errorf("size %q overflows int64", s)
	}

	return result, nil
}
