// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Shared helpers for synthesising telemetry blobs in tests.

package ocptel

import "encoding/binary"

func le16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func le32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func le64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// buildStat synthesises one statistic descriptor. The body must be a
// whole number of dwords.
func buildStat(id uint16, st StatType, behavior BehaviorType, unit UnitType,
	hint uint8, dt DataType, body []byte) []byte {

	if len(body)%4 != 0 {
		panic("statistic body must be dword aligned")
	}

	b := make([]byte, statHeaderSize+len(body))
	binary.LittleEndian.PutUint16(b[0:2], id)
	b[2] = uint8(st)<<4 | uint8(behavior)
	b[3] = uint8(unit)
	b[4] = hint<<4 | uint8(dt)
	binary.LittleEndian.PutUint16(b[6:8], uint16(len(body)/4))
	copy(b[statHeaderSize:], body)
	return b
}

// buildEvent synthesises one event descriptor. The body must be a whole
// number of dwords.
func buildEvent(class EventClass, id uint16, body []byte) []byte {
	if len(body)%4 != 0 {
		panic("event body must be dword aligned")
	}

	b := make([]byte, eventHeaderSize+len(body))
	b[0] = uint8(class)
	binary.LittleEndian.PutUint16(b[1:3], id)
	b[3] = uint8(len(body) / 4)
	copy(b[eventHeaderSize:], body)
	return b
}

// arrayBody synthesises an ARRAY statistic body: element header plus
// packed elements.
func arrayBody(elementSize uint8, count uint16, elements []byte) []byte {
	b := make([]byte, 4+len(elements))
	b[0] = elementSize - 1
	binary.LittleEndian.PutUint16(b[2:4], count-1)
	copy(b[4:], elements)
	return b
}

// logBuilder assembles a raw log blob page by page.
type logBuilder struct {
	pages [][]byte
}

func newLogBuilder(pageCount int) *logBuilder {
	b := &logBuilder{pages: make([][]byte, pageCount)}
	for i := range b.pages {
		b.pages[i] = make([]byte, LogPageSize)
	}
	return b
}

// putAt writes data at an absolute byte offset into the blob.
func (b *logBuilder) putAt(off int, data []byte) {
	blob := b.bytes()
	copy(blob[off:], data)
	for i := range b.pages {
		copy(b.pages[i], blob[i*LogPageSize:])
	}
}

func (b *logBuilder) bytes() []byte {
	blob := make([]byte, 0, len(b.pages)*LogPageSize)
	for _, p := range b.pages {
		blob = append(blob, p...)
	}
	return blob
}

// putDword writes data at a dword offset relative to page 1 byte 0, the
// addressing used by region extents.
func (b *logBuilder) putDword(dword uint64, data []byte) {
	b.putAt(LogPageSize+int(dword)*4, data)
}

// internalStatus seeds page 0 with an area 1 last log page value.
func (b *logBuilder) internalStatus(logAddr uint8, area1Last uint16) {
	b.pages[0][0] = logAddr
	copy(b.pages[0][8:10], le16(area1Last))
}

// dataHeader seeds the telemetry data header extents on page 1.
func (b *logBuilder) dataHeader(s1, s2, e1, e2 Extent) {
	page := b.pages[1]
	for i, ext := range []Extent{s1, s2, e1, e2} {
		copy(page[110+i*16:], le64(ext.StartDword))
		copy(page[118+i*16:], le64(ext.SizeDword))
	}
}

func (b *logBuilder) reader(logAddr uint8) BlobReader {
	return BlobReader{logAddr: b.bytes()}
}
