// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// On-wire structures of the OCP telemetry logs. All fields are packed
// without padding and little-endian; they are decoded from raw page
// buffers with encoding/binary, never reinterpreted at native alignment.

package ocptel

import (
	"bytes"
	"encoding/binary"
)

const (
	internalStatusSize = 512
	dataHeaderSize     = 512
	stringsHeaderSize  = 432
	reasonIDSize       = 128
	statHeaderSize     = 8
	eventHeaderSize    = 4
	stringEntrySize    = 16

	guidLen     = 16
	fifoNameLen = 16
)

// ATA Device Internal Status log page 0 (both log 0x24 and 0x25).
type internalStatusPage struct {
	LogAddress          uint8
	_                   [3]byte
	OrganizationID      uint32
	Area1LastLogPage    uint16
	Area2LastLogPage    uint16
	Area3LastLogPage    uint16
	_                   [368]byte
	SavedDataAvailable  uint8
	SavedDataGeneration uint8
	ReasonID            [reasonIDSize]byte
} // 512 bytes

// OCP Reason Identifier, section 7.2.2.
type reasonIDBlock struct {
	ErrorID     [64]byte
	FileID      [8]byte
	LineNumber  uint16
	ValidFlags  uint8
	_           [21]byte
	VUExtension [32]byte
} // 128 bytes

// OCP Telemetry Data Header, section 7.2.10. Log 0x24 page 1 byte 0.
type dataHeaderPage struct {
	MajorVersion         uint16
	MinorVersion         uint16
	_                    [4]byte
	Timestamp            [6]byte
	TimestampInfo        uint16
	GUID                 [guidLen]byte
	DeviceStringDataSize uint16
	FirmwareVersion      [8]byte
	_                    [68]byte
	Statistic1StartDword uint64
	Statistic1SizeDword  uint64
	Statistic2StartDword uint64
	Statistic2SizeDword  uint64
	Event1FIFOStartDword uint64
	Event1FIFOSizeDword  uint64
	Event2FIFOStartDword uint64
	Event2FIFOSizeDword  uint64
	_                    [338]byte
} // 512 bytes

// OCP Telemetry Strings Header, section 7.2.13. Log 0x25 page 1 byte 0.
type stringsHeaderPage struct {
	LogPageVersion         uint8
	_                      [15]byte
	GUID                   [guidLen]byte
	_                      [32]byte
	StatisticsIDTableStart uint64
	StatisticsIDTableSize  uint64
	EventTableStart        uint64
	EventTableSize         uint64
	VUEventTableStart      uint64
	VUEventTableSize       uint64
	ASCIITableStart        uint64
	ASCIITableSize         uint64
	FIFO1Name              [fifoNameLen]byte
	FIFO2Name              [fifoNameLen]byte
	_                      [272]byte
} // 432 bytes

// OCP Statistics Identifier String Table Entry, section 7.2.14.
type statIDStringEntry struct {
	VUStatisticID uint16
	_             uint8
	ASCIIIDLength uint8
	ASCIIIDOffset uint64
	_             [4]byte
} // 16 bytes

// OCP Event / VU Event Identifier String Table Entry, sections 7.2.15-16.
type eventIDStringEntry struct {
	DebugClass    uint8
	ID            [2]byte
	ASCIIIDLength uint8
	ASCIIIDOffset uint64
	_             [4]byte
} // 16 bytes

// readStruct decodes a packed little-endian structure from the front of a
// raw page buffer.
func readStruct(buf []byte, v interface{}) error {
	return binary.Read(bytes.NewReader(buf), binary.LittleEndian, v)
}
