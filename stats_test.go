// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ocptel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSingleUintStat(t *testing.T) {
	assert := assert.New(t)

	buf := buildStat(0x2003, StatTypeSingle, BehaviorNone, UnitHour, 0, DataTypeUint, le32(12345))
	buf = append(buf, make([]byte, 8)...) // zero sentinel

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)
	assert.NoError(d.err)

	stat := stats[0]
	assert.Equal(uint16(0x2003), stat.ID)
	assert.Equal("Power-on Hours Count", stat.Name)
	assert.Equal(StatTypeSingle, stat.Type)
	assert.Equal(BehaviorNone, stat.Behavior)
	assert.Equal(UnitHour, stat.Unit)
	assert.Equal(DataTypeUint, stat.DataType)
	assert.Equal(uint16(1), stat.SizeDwords)
	require.NotNil(t, stat.Single)
	assert.Equal(uint64(12345), stat.Single.Uint)
}

func TestDecodeSingleIntWidths(t *testing.T) {
	assert := assert.New(t)

	// 8-byte signed value.
	buf := buildStat(0x2008, StatTypeSingle, BehaviorNone, UnitCelsius, 0, DataTypeInt,
		le64(0xffffffffffffffd8)) // -40
	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)
	assert.Equal(int64(-40), stats[0].Single.Int)

	// A 12-byte integer has no defined width: value 0 plus a diagnostic.
	buf = buildStat(0x2008, StatTypeSingle, BehaviorNone, UnitCelsius, 0, DataTypeInt,
		make([]byte, 12))
	d = diagSink{}
	stats = decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)
	assert.Equal(int64(0), stats[0].Single.Int)
	assert.Error(d.err)
}

func TestDecodeASCIIStat(t *testing.T) {
	buf := buildStat(0x2029, StatTypeSingle, BehaviorNA, UnitNA, 0, DataTypeASCII,
		[]byte("REV B1  "))

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)
	assert.Equal(t, "REV B1", stats[0].Single.Str)
}

func TestDecodeArrayStat(t *testing.T) {
	assert := assert.New(t)

	// Five little-endian u32 elements; body is 6 dwords with the element
	// header.
	elements := make([]byte, 0, 20)
	for _, v := range []uint32{1, 2, 3, 4, 5} {
		elements = append(elements, le32(v)...)
	}
	buf := buildStat(0x4003, StatTypeArray, BehaviorSC, UnitNA, 0, DataTypeUint,
		arrayBody(4, 5, elements))

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)
	assert.NoError(d.err)

	stat := stats[0]
	assert.Equal("Erase Count", stat.Name)
	assert.Equal(uint16(6), stat.SizeDwords)
	require.Len(t, stat.Array, 5)
	for i, v := range stat.Array {
		assert.Equal(uint64(i+1), v.Uint)
	}

	// The element extent fills the declared size exactly.
	elemSize, count := 4, 5
	assert.Equal(int(stat.SizeDwords)*4-4, elemSize*count)
}

func TestDecodeArrayStatReservedByte(t *testing.T) {
	body := arrayBody(1, 4, []byte{1, 2, 3, 4})
	body[1] = 0xaa
	buf := buildStat(0x4003, StatTypeArray, BehaviorSC, UnitNA, 0, DataTypeUint, body)

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1) // still decoded
	assert.Error(t, d.err)   // but flagged
}

func TestDecodeArrayStatExtentMismatch(t *testing.T) {
	// Declared element extent disagrees with the body size: the record is
	// skipped, the walk continues.
	bad := buildStat(0x4003, StatTypeArray, BehaviorSC, UnitNA, 0, DataTypeUint,
		arrayBody(4, 3, make([]byte, 12)))
	bad[8+2] = 9 // claim 10 elements
	good := buildStat(0x2004, StatTypeSingle, BehaviorNone, UnitNA, 0, DataTypeUint, le32(77))

	var d diagSink
	stats := decodeStatistics(append(bad, good...), nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)
	assert.Equal(t, uint16(0x2004), stats[0].ID)

	var malformed *MalformedRecordError
	assert.ErrorAs(t, d.err, &malformed)
}

func TestDecodeCustomATALogStat(t *testing.T) {
	assert := assert.New(t)

	page := make([]byte, LogPageSize)
	page[0] = 0x42
	body := append([]byte{0x11, 1, 0x10, 0x00}, page...)
	buf := buildStat(0x0002, StatTypeCustom, BehaviorNA, UnitNA, 0, DataTypeNA, body)

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)

	stat := stats[0]
	assert.Equal("ATA Log", stat.Name)
	require.NotNil(t, stat.ATALog)
	assert.Equal(uint8(0x11), stat.ATALog.LogAddress)
	assert.Equal(uint8(1), stat.ATALog.PageCount)
	assert.Equal(uint16(0x0010), stat.ATALog.InitialPage)
	require.Len(t, stat.ATALog.Pages, 1)
	assert.Equal(uint8(0x42), stat.ATALog.Pages[0][0])
}

func TestDecodeCustomSCSILogStat(t *testing.T) {
	body := append([]byte{0x19, 0x01, 0, 0}, []byte{0xca, 0xfe, 0xba, 0xbe}...)
	buf := buildStat(0x0003, StatTypeCustom, BehaviorNA, UnitNA, 0, DataTypeNA, body)

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)

	log := stats[0].SCSILog
	require.NotNil(t, log)
	assert.Equal(t, uint8(0x19), log.Page)
	assert.Equal(t, uint8(0x01), log.Subpage)
	assert.Equal(t, []byte{0xca, 0xfe, 0xba, 0xbe}, log.Data)
}

func TestDecodeCustomSpinupStat(t *testing.T) {
	assert := assert.New(t)

	body := make([]byte, 24)
	copy(body[0:2], le16(900))
	copy(body[2:4], le16(450))
	copy(body[4:6], le16(500)) // first history slot
	buf := buildStat(0x6006, StatTypeCustom, BehaviorNA, UnitMsec, 0, DataTypeNA, body)

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)

	spinup := stats[0].Spinup
	require.NotNil(t, spinup)
	assert.Equal(uint16(900), spinup.Max)
	assert.Equal(uint16(450), spinup.Min)
	assert.Equal(uint16(500), spinup.History[0])
	assert.Equal(uint16(0), spinup.History[1])
}

func TestDecodeCustomFallsThroughToDataType(t *testing.T) {
	buf := buildStat(0x9001, StatTypeCustom, BehaviorNA, UnitNA, 0, DataTypeUint, le32(42))

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, 1)
	require.NotNil(t, stats[0].Single)
	assert.Equal(t, uint64(42), stats[0].Single.Uint)
}

func TestMalformedStatTypeSkipped(t *testing.T) {
	assert := assert.New(t)

	before := buildStat(0x2003, StatTypeSingle, BehaviorNone, UnitHour, 0, DataTypeUint, le32(1))
	bad := buildStat(0x2004, StatType(3), BehaviorNone, UnitNA, 0, DataTypeUint, le32(2))
	after := buildStat(0x2005, StatTypeSingle, BehaviorNone, UnitNA, 0, DataTypeUint, le32(3))
	buf := append(append(append([]byte{}, before...), bad...), after...)
	buf = append(buf, make([]byte, 8)...) // zero sentinel

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)

	require.Len(t, stats, 2)
	assert.Equal(uint16(0x2003), stats[0].ID)
	assert.Equal(uint16(0x2005), stats[1].ID)

	var malformed *MalformedRecordError
	assert.ErrorAs(d.err, &malformed)
}

func TestWalkExhaustion(t *testing.T) {
	// The walk consumes header + size dwords per record up to the
	// sentinel.
	descs := [][]byte{
		buildStat(0x2003, StatTypeSingle, BehaviorNone, UnitHour, 0, DataTypeUint, le32(1)),
		buildStat(0x2004, StatTypeSingle, BehaviorNone, UnitNA, 0, DataTypeUint, le64(2)),
		buildStat(0x2010, StatTypeSingle, BehaviorSC, UnitNA, 0, DataTypeUint, le32(3)),
	}

	var buf []byte
	consumed := 0
	for _, desc := range descs {
		buf = append(buf, desc...)
		consumed += len(desc)
	}
	buf = append(buf, make([]byte, 16)...) // sentinel + slack

	var d diagSink
	stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
	require.Len(t, stats, len(descs))

	total := 0
	for _, stat := range stats {
		total += statHeaderSize + int(stat.SizeDwords)*4
	}
	assert.Equal(t, consumed, total)
}

func TestStatRoundTrip(t *testing.T) {
	// Synthesised fields survive encode-then-decode.
	assert := assert.New(t)

	for _, tc := range []struct {
		id       uint16
		behavior BehaviorType
		unit     UnitType
		hint     uint8
		dt       DataType
		body     []byte
	}{
		{0x2001, BehaviorRPC, UnitNA, 0, DataTypeUint, le32(9)},
		{0x2016, BehaviorSCR, UnitMsec, 1, DataTypeInt, le32(0x7fff)},
		{0x4011, BehaviorSCRPC, UnitTB, 0, DataTypeUint, le64(1 << 40)},
	} {
		buf := buildStat(tc.id, StatTypeSingle, tc.behavior, tc.unit, tc.hint, tc.dt, tc.body)

		var d diagSink
		stats := decodeStatistics(buf, nil, nil, "statistic area 1", &d)
		require.Len(t, stats, 1)

		stat := stats[0]
		assert.Equal(tc.id, stat.ID)
		assert.Equal(tc.behavior, stat.Behavior)
		assert.Equal(tc.unit, stat.Unit)
		assert.Equal(HostHintType(tc.hint), stat.HostHint)
		assert.Equal(tc.dt, stat.DataType)
		assert.Equal(uint16(len(tc.body)/4), stat.SizeDwords)
	}
}
