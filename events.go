// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Event FIFO decoding. Events are length-prefixed records discriminated
// by debug class; the statistic snapshot class recovers its length from
// the embedded statistic descriptor header instead of its own size field.

package ocptel

import (
	"encoding/binary"
	"fmt"
)

// MediaWearData is the class 0x09, event id 0 body.
type MediaWearData struct {
	HostTBWritten    uint32
	MediaTBWritten   uint32
	SSDMediaTBErased uint32
}

// VirtualFIFOData is the class 0x0B body. The 16-bit marker doubles as
// the key under which the FIFO's name is stored in the VU event string
// table.
type VirtualFIFOData struct {
	DataArea uint8
	Number   uint16
	Name     string
}

// Event is one decoded event descriptor. The class-specific pointers are
// set only for their class; any remaining vendor-unique tail lands in
// VUEventID / VUData.
type Event struct {
	Class EventClass
	ID    uint16

	// Name of the event id; HasName is false for statistic snapshots,
	// which are named by their embedded statistic instead.
	Name    string
	HasName bool

	Timestamp *uint64
	Wear      *MediaWearData
	Snapshot  *Statistic
	VFIFO     *VirtualFIFOData
	FIS       []byte

	VUEventID   *uint16
	VUEventName string
	VUData      []byte
}

// eventDwords computes the length of the record at the front of buf in
// dwords. For statistic snapshots the embedded statistic header must be
// present; ok is false when it is not.
func eventDwords(buf []byte) (n int, ok bool) {
	if EventClass(buf[0]) == EventClassStatisticSnap {
		if len(buf) < eventHeaderSize+statHeaderSize {
			return 0, false
		}
		statSize := int(binary.LittleEndian.Uint16(buf[eventHeaderSize+6 : eventHeaderSize+8]))
		return eventHeaderSize/4 + statHeaderSize/4 + statSize, true
	}
	return eventHeaderSize/4 + int(buf[3]), true
}

func decodeEvent(class EventClass, id uint16, body []byte, cat *StringsCatalog,
	overlay NameOverlay, where string, d *diagSink) Event {

	ev := Event{Class: class, ID: id}
	ev.Name, ev.HasName = resolveEventName(class, id, cat, overlay)

	rest := body

	switch class {
	case EventClassTimestamp:
		if len(rest) >= 8 {
			ts := binary.LittleEndian.Uint64(rest[0:8])
			ev.Timestamp = &ts
			rest = rest[8:]
		} else {
			d.addf("%s: timestamp event body is %d bytes, want 8", where, len(rest))
			rest = nil
		}

	case EventClassMediaWear:
		if len(rest) >= 12 {
			if id == 0 {
				ev.Wear = &MediaWearData{
					HostTBWritten:    binary.LittleEndian.Uint32(rest[0:4]),
					MediaTBWritten:   binary.LittleEndian.Uint32(rest[4:8]),
					SSDMediaTBErased: binary.LittleEndian.Uint32(rest[8:12]),
				}
			}
			rest = rest[12:]
		} else {
			d.addf("%s: media wear event body is %d bytes, want 12", where, len(rest))
			rest = nil
		}

	case EventClassStatisticSnap:
		if snap, _, ok := decodeStatDescriptor(rest, cat, overlay, where, d); ok {
			ev.Snapshot = &snap
		}
		rest = nil

	case EventClassVirtualFIFO:
		if len(rest) >= 4 {
			marker := binary.LittleEndian.Uint16(rest[0:2])
			vf := &VirtualFIFOData{
				DataArea: uint8(marker >> 11 & 0x7),
				Number:   marker & 0x7ff,
			}
			vf.Name, _ = resolveEventName(class, marker, cat, overlay)
			ev.VFIFO = vf
			rest = rest[4:]
		} else {
			d.addf("%s: virtual FIFO event body is %d bytes, want 4", where, len(rest))
			rest = nil
		}

	case EventClassSATATransport:
		if len(rest) >= 28 {
			ev.FIS = rest[0:28] // one FIS, 7 dwords
			rest = rest[28:]
		} else {
			d.addf("%s: SATA transport event body is %d bytes, want 28", where, len(rest))
			rest = nil
		}
	}

	// Vendor-unique tail: defined classes may append a 2-byte VU event id
	// plus free-form data; vendor-unique classes carry raw data only.
	if len(rest) > 0 && class < 0x80 {
		if len(rest) >= 2 {
			vuID := binary.LittleEndian.Uint16(rest[0:2])
			ev.VUEventID = &vuID
			ev.VUEventName, _ = resolveEventName(class, vuID, cat, overlay)
			rest = rest[2:]
		} else {
			d.addf("%s: dangling byte after class %#02x event body", where, uint8(class))
			rest = nil
		}
	}
	if len(rest) > 0 {
		ev.VUData = rest
	}

	return ev
}

// decodeEvents walks one event FIFO snapshot. Class 0 is the end-of-FIFO
// sentinel.
func decodeEvents(buf []byte, cat *StringsCatalog, overlay NameOverlay,
	where string, d *diagSink) []Event {

	var events []Event

	for pos := 0; len(buf)-pos >= eventHeaderSize; {
		class := EventClass(buf[pos])
		if class == 0 {
			break
		}

		dwords, ok := eventDwords(buf[pos:])
		if !ok {
			d.add(&MalformedRecordError{Region: where,
				Reason: "statistic snapshot event truncated before its embedded statistic header"})
			break
		}
		consumed := dwords * 4
		if consumed > len(buf)-pos {
			d.add(&MalformedRecordError{Region: where, Reason: fmt.Sprintf(
				"class %#02x event declares %d dwords beyond end of FIFO", uint8(class), dwords)})
			break
		}

		id := binary.LittleEndian.Uint16(buf[pos+1 : pos+3])
		events = append(events, decodeEvent(class, id, buf[pos+eventHeaderSize:pos+consumed],
			cat, overlay, where, d))

		pos += consumed
	}

	return events
}
