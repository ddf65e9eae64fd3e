// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Timestamp normalisation, GUID rendering and ASCII field handling.

package ocptel

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Timestamp protocol field values, timestamp_info bits 5..4.
const (
	timestampProtocolSAS  = 1
	timestampProtocolSATA = 2
)

// TimestampMillis converts the 6-byte telemetry timestamp plus its
// timestamp_info word to milliseconds since the Unix epoch. The SAS
// protocol stores the 48-bit value big-endian, SATA little-endian. An
// unknown protocol yields zero and an *UnknownProtocolError.
func TimestampMillis(timestamp [6]byte, timestampInfo uint16) (uint64, error) {
	protocol := uint8(timestampInfo>>4) & 0x3

	switch protocol {
	case timestampProtocolSAS:
		ms := uint64(binary.BigEndian.Uint32(timestamp[0:4]))
		return ms<<16 + uint64(binary.BigEndian.Uint16(timestamp[4:6])), nil
	case timestampProtocolSATA:
		ms := uint64(binary.LittleEndian.Uint32(timestamp[2:6]))
		return ms<<16 + uint64(binary.LittleEndian.Uint16(timestamp[0:2])), nil
	}
	return 0, &UnknownProtocolError{Protocol: protocol}
}

// GUIDString renders a 16-byte OCP GUID as 32 hex digits in reversed byte
// order with a trailing "h", the textual form used by the OCP
// specification.
func GUIDString(guid [16]byte) string {
	var sb strings.Builder
	for i := len(guid) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%02X", guid[i])
	}
	sb.WriteByte('h')
	return sb.String()
}

// trimASCII converts a fixed-width space-padded ASCII field to a string,
// cutting at the first NUL and dropping trailing spaces.
func trimASCII(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimRight(string(b), " ")
}

// ataIDString converts an 8-byte ATA identify-style string field, whose
// characters are swapped within each 16-bit word, to a trimmed string.
func ataIDString(b []byte) string {
	swapped := make([]byte, len(b))
	copy(swapped, b)
	for i := 0; i+1 < len(swapped); i += 2 {
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
	}
	return trimASCII(swapped)
}
