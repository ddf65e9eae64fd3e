// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ocptel

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutSizes(t *testing.T) {
	assert := assert.New(t)

	// On-wire structure sizes mandated by the OCP specification.
	assert.Equal(internalStatusSize, binary.Size(internalStatusPage{}))
	assert.Equal(dataHeaderSize, binary.Size(dataHeaderPage{}))
	assert.Equal(stringsHeaderSize, binary.Size(stringsHeaderPage{}))
	assert.Equal(reasonIDSize, binary.Size(reasonIDBlock{}))
	assert.Equal(stringEntrySize, binary.Size(statIDStringEntry{}))
	assert.Equal(stringEntrySize, binary.Size(eventIDStringEntry{}))
}

func TestDataHeaderFieldOffsets(t *testing.T) {
	assert := assert.New(t)

	page := make([]byte, LogPageSize)
	copy(page[0:2], le16(0x0001))   // major version
	copy(page[2:4], le16(0x0005))   // minor version
	copy(page[8:14], []byte{1, 2, 3, 4, 5, 6})
	copy(page[14:16], le16(0x0020)) // SATA protocol
	page[16] = 0xe3                 // GUID byte 0
	copy(page[32:34], le16(0x0100))
	copy(page[34:42], []byte("WF10X2.1"))
	copy(page[110:118], le64(128))  // statistic 1 start
	copy(page[118:126], le64(4))    // statistic 1 size

	var raw dataHeaderPage
	assert.NoError(readStruct(page, &raw))
	assert.Equal(uint16(1), raw.MajorVersion)
	assert.Equal(uint16(5), raw.MinorVersion)
	assert.Equal([6]byte{1, 2, 3, 4, 5, 6}, raw.Timestamp)
	assert.Equal(uint16(0x0020), raw.TimestampInfo)
	assert.Equal(uint8(0xe3), raw.GUID[0])
	assert.Equal(uint16(0x0100), raw.DeviceStringDataSize)
	assert.Equal(uint64(128), raw.Statistic1StartDword)
	assert.Equal(uint64(4), raw.Statistic1SizeDword)
}

func TestStringsHeaderFieldOffsets(t *testing.T) {
	assert := assert.New(t)

	page := make([]byte, LogPageSize)
	page[0] = 2 // log page version
	copy(page[64:72], le64(108))  // statistics id table start
	copy(page[72:80], le64(4))    // statistics id table size
	copy(page[120:128], le64(16)) // ascii table size
	copy(page[128:144], []byte("BOOT FIFO       "))

	var raw stringsHeaderPage
	assert.NoError(readStruct(page, &raw))
	assert.Equal(uint8(2), raw.LogPageVersion)
	assert.Equal(uint64(108), raw.StatisticsIDTableStart)
	assert.Equal(uint64(4), raw.StatisticsIDTableSize)
	assert.Equal(uint64(16), raw.ASCIITableSize)
	assert.Equal("BOOT FIFO", trimASCII(raw.FIFO1Name[:]))
}
