// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Miscellaneous utility functions

package utils

import (
	"fmt"
	"strings"
)

// HexDumpLine renders a byte slice as a single line of "0xNN" cells,
// space separated.
func HexDumpLine(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02x", b)
	}
	return sb.String()
}

// HexDumpLines renders a byte slice as classic 16-byte dump rows: a
// 7-digit hex offset, the hex cells, then the printable-ASCII column.
func HexDumpLines(data []byte) []string {
	var lines []string

	for off := 0; off < len(data); off += 16 {
		row := data[off:]
		if len(row) > 16 {
			row = row[:16]
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%07x: ", off)
		for i := 0; i < 16; i++ {
			if i < len(row) {
				fmt.Fprintf(&sb, "%02x ", row[i])
			} else {
				sb.WriteString("   ")
			}
		}
		for _, b := range row {
			if b >= ' ' && b <= '~' {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		lines = append(lines, sb.String())
	}

	return lines
}
