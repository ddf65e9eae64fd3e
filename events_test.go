// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package ocptel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTimestampEvent(t *testing.T) {
	assert := assert.New(t)

	buf := buildEvent(EventClassTimestamp, 0, le64(0x1122334455667788))
	buf = append(buf, make([]byte, 4)...) // sentinel

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(EventClassTimestamp, ev.Class)
	assert.True(ev.HasName)
	assert.Equal("Host Initiated Timestamp", ev.Name)
	require.NotNil(t, ev.Timestamp)
	assert.Equal(uint64(0x1122334455667788), *ev.Timestamp)
}

func TestDecodeMediaWearEvent(t *testing.T) {
	assert := assert.New(t)

	body := append(append(le32(100), le32(120)...), le32(80)...)
	buf := buildEvent(EventClassMediaWear, 0, body)

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)

	wear := events[0].Wear
	require.NotNil(t, wear)
	assert.Equal(uint32(100), wear.HostTBWritten)
	assert.Equal(uint32(120), wear.MediaTBWritten)
	assert.Equal(uint32(80), wear.SSDMediaTBErased)
	assert.Equal("Media Wear", events[0].Name)
}

func TestDecodeVirtualFIFOEvent(t *testing.T) {
	assert := assert.New(t)

	buf := buildEvent(EventClassVirtualFIFO, 0, []byte{0x31, 0x04, 0, 0})

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal("Virtual FIFO Start", ev.Name)
	require.NotNil(t, ev.VFIFO)
	assert.Equal(uint8(0), ev.VFIFO.DataArea)
	assert.Equal(uint16(0x031), ev.VFIFO.Number)
	// Without a catalog the marker resolves to the reserved fallback.
	assert.Equal("Reserved ID", ev.VFIFO.Name)
}

func TestDecodeVirtualFIFONameFromCatalog(t *testing.T) {
	cat, err := DecodeStrings(buildStringsLog(t), 8)
	require.NoError(t, err)

	buf := buildEvent(EventClassVirtualFIFO, 0, []byte{0x31, 0x04, 0, 0})

	var d diagSink
	events := decodeEvents(buf, cat, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].VFIFO)
	assert.Equal(t, "FIFO NAME", events[0].VFIFO.Name)
}

func TestDecodeSATATransportEvent(t *testing.T) {
	fis := make([]byte, 28)
	fis[0] = 0x34 // D2H register FIS type
	buf := buildEvent(EventClassSATATransport, 2, fis)

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)
	assert.Equal(t, "Data FIS Received", events[0].Name)
	assert.Equal(t, fis, events[0].FIS)
}

func TestDecodeSnapshotEvent(t *testing.T) {
	assert := assert.New(t)

	stat := buildStat(0x2003, StatTypeSingle, BehaviorNone, UnitHour, 0, DataTypeUint, le32(4242))
	buf := make([]byte, eventHeaderSize+len(stat))
	buf[0] = uint8(EventClassStatisticSnap)
	// The 8-bit data size field cannot hold the embedded descriptor; the
	// decoder must recover the length from the statistic header instead.
	buf[3] = 0
	copy(buf[eventHeaderSize:], stat)
	buf = append(buf, make([]byte, 4)...) // sentinel

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)

	ev := events[0]
	assert.False(ev.HasName)
	require.NotNil(t, ev.Snapshot)
	assert.Equal(uint16(0x2003), ev.Snapshot.ID)
	assert.Equal("Power-on Hours Count", ev.Snapshot.Name)
	assert.Equal(uint64(4242), ev.Snapshot.Single.Uint)
}

func TestDecodeSnapshotEventTruncated(t *testing.T) {
	// FIFO ends before the embedded statistic header: the record is
	// reported and the walk stops.
	buf := make([]byte, eventHeaderSize+4)
	buf[0] = uint8(EventClassStatisticSnap)

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	assert.Empty(t, events)

	var malformed *MalformedRecordError
	assert.ErrorAs(t, d.err, &malformed)
}

func TestDecodeEventVUTail(t *testing.T) {
	assert := assert.New(t)

	// Reset event with a 2-byte VU event id and 2 bytes of VU data.
	buf := buildEvent(EventClassReset, 1, []byte{0x01, 0x80, 0xde, 0xad})

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal("SATA - SRST", ev.Name)
	require.NotNil(t, ev.VUEventID)
	assert.Equal(uint16(0x8001), *ev.VUEventID)
	assert.Equal("Vendor Unique ID", ev.VUEventName)
	assert.Equal([]byte{0xde, 0xad}, ev.VUData)
}

func TestDecodeVendorUniqueClassKeepsRawData(t *testing.T) {
	buf := buildEvent(EventClass(0x91), 7, []byte{1, 2, 3, 4})

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Nil(t, ev.VUEventID) // no VU id parsing for VU classes
	assert.Equal(t, []byte{1, 2, 3, 4}, ev.VUData)
	assert.Equal(t, "Vendor Unique Class 91", ev.Class.String())
}

func TestDecodeEventsSentinel(t *testing.T) {
	buf := buildEvent(EventClassReset, 0, nil)
	buf = append(buf, make([]byte, 8)...) // class 0 terminates
	buf = append(buf, buildEvent(EventClassReset, 2, nil)...)

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	require.Len(t, events, 1)
	assert.Equal(t, uint16(0), events[0].ID)
}

func TestDecodeEventBeyondBuffer(t *testing.T) {
	buf := buildEvent(EventClassReset, 0, nil)
	buf[3] = 200 // declare a body the FIFO does not contain

	var d diagSink
	events := decodeEvents(buf, nil, nil, "event FIFO 1", &d)
	assert.Empty(t, events)

	var malformed *MalformedRecordError
	assert.ErrorAs(t, d.err, &malformed)
}
