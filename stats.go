// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Statistics area decoding: the length-prefixed statistic descriptor walk
// and its SINGLE / ARRAY / CUSTOM body variants.

package ocptel

import (
	"encoding/binary"
	"fmt"
)

// Value is one decoded statistic datum. Kind selects which field holds
// the decoded form; FP and NA payloads stay raw.
type Value struct {
	Kind DataType
	Int  int64
	Uint uint64
	Str  string
	Raw  []byte
}

// ATALogData is the CUSTOM statistic id 0x0002 body: captured raw pages
// of another ATA log.
type ATALogData struct {
	LogAddress  uint8
	PageCount   uint8
	InitialPage uint16
	Pages       [][]byte
}

// SCSILogData is the CUSTOM statistic id 0x0003 body.
type SCSILogData struct {
	Page    uint8
	Subpage uint8
	Data    []byte
}

// SpinupData is the CUSTOM statistic id 0x6006 body. Zero entries mean
// "absent" and are suppressed by the reporter.
type SpinupData struct {
	Max     uint16
	Min     uint16
	History [10]uint16
}

// Statistic is one decoded statistic descriptor. Exactly one of Single,
// Array, ATALog, SCSILog, Spinup is set, selected by Type and ID.
type Statistic struct {
	ID         uint16
	Name       string
	Type       StatType
	Behavior   BehaviorType
	Unit       UnitType
	HostHint   HostHintType
	DataType   DataType
	SizeDwords uint16

	Single  *Value
	Array   []Value
	ATALog  *ATALogData
	SCSILog *SCSILogData
	Spinup  *SpinupData
}

type statHeader struct {
	id    uint16
	info  [3]byte
	size  uint16 // body size in dwords
}

func parseStatHeader(b []byte) statHeader {
	return statHeader{
		id:   binary.LittleEndian.Uint16(b[0:2]),
		info: [3]byte{b[2], b[3], b[4]},
		size: binary.LittleEndian.Uint16(b[6:8]),
	}
}

func (h statHeader) statType() StatType     { return StatType(h.info[0] >> 4) }
func (h statHeader) behavior() BehaviorType { return BehaviorType(h.info[0] & 0xf) }
func (h statHeader) unit() UnitType         { return UnitType(h.info[1]) }
func (h statHeader) hostHint() HostHintType { return HostHintType((h.info[2] >> 4) & 0x3) }
func (h statHeader) dataType() DataType     { return DataType(h.info[2] & 0xf) }

// decodeValue interprets size bytes per the declared data type. Integer
// widths outside 1/2/4/8 decode to zero, matching the reference
// implementation, with a diagnostic recorded.
func decodeValue(kind DataType, b []byte, d *diagSink, where string) Value {
	v := Value{Kind: kind}

	switch kind {
	case DataTypeInt, DataTypeUint:
		var u uint64
		switch len(b) {
		case 1:
			u = uint64(b[0])
		case 2:
			u = uint64(binary.LittleEndian.Uint16(b))
		case 4:
			u = uint64(binary.LittleEndian.Uint32(b))
		case 8:
			u = binary.LittleEndian.Uint64(b)
		default:
			d.addf("%s: integer value of unsupported width %d decoded as 0", where, len(b))
		}
		if kind == DataTypeInt {
			switch len(b) {
			case 1:
				v.Int = int64(int8(u))
			case 2:
				v.Int = int64(int16(u))
			case 4:
				v.Int = int64(int32(u))
			case 8:
				v.Int = int64(u)
			}
		} else {
			v.Uint = u
		}
	case DataTypeASCII:
		v.Str = trimASCII(b)
	default: // FP and NA stay raw
		v.Raw = append([]byte(nil), b...)
	}
	return v
}

// decodeStatDescriptor decodes one statistic descriptor starting at the
// front of buf. ok is false when the descriptor is malformed and must be
// skipped; consumed is valid either way, so the caller can keep walking.
func decodeStatDescriptor(buf []byte, cat *StringsCatalog, overlay NameOverlay,
	where string, d *diagSink) (stat Statistic, consumed int, ok bool) {

	h := parseStatHeader(buf)
	consumed = statHeaderSize + int(h.size)*4

	if h.statType() > StatTypeCustom {
		d.add(&MalformedRecordError{Region: where, Reason: fmt.Sprintf("statistic type %#x not supported", uint8(h.statType()))})
		return Statistic{}, consumed, false
	}
	if h.dataType() > DataTypeASCII {
		d.add(&MalformedRecordError{Region: where, Reason: fmt.Sprintf("data type %#x not supported", uint8(h.dataType()))})
		return Statistic{}, consumed, false
	}
	if consumed > len(buf) {
		d.add(&MalformedRecordError{Region: where, Reason: fmt.Sprintf("descriptor declares %d dwords beyond end of region", h.size)})
		return Statistic{}, consumed, false
	}

	stat = Statistic{
		ID:         h.id,
		Name:       resolveStatName(h.id, cat, overlay),
		Type:       h.statType(),
		Behavior:   h.behavior(),
		Unit:       h.unit(),
		HostHint:   h.hostHint(),
		DataType:   h.dataType(),
		SizeDwords: h.size,
	}
	body := buf[statHeaderSize:consumed]

	switch stat.Type {
	case StatTypeSingle:
		v := decodeValue(stat.DataType, body, d, where)
		stat.Single = &v

	case StatTypeArray:
		if len(body) < 4 {
			d.add(&MalformedRecordError{Region: where, Reason: "array body shorter than its element header"})
			return Statistic{}, consumed, false
		}
		width := int(body[0]) + 1
		count := int(binary.LittleEndian.Uint16(body[2:4])) + 1
		if body[1] != 0 {
			d.addf("%s: array descriptor id %#04x has non-zero reserved byte %#02x", where, stat.ID, body[1])
		}
		if width*count != len(body)-4 {
			d.add(&MalformedRecordError{Region: where, Reason: fmt.Sprintf(
				"array of %d x %d-byte elements disagrees with declared size %d dwords", count, width, h.size)})
			return Statistic{}, consumed, false
		}
		stat.Array = make([]Value, 0, count)
		for i := 0; i < count; i++ {
			stat.Array = append(stat.Array, decodeValue(stat.DataType, body[4+i*width:4+(i+1)*width], d, where))
		}

	case StatTypeCustom:
		if !decodeCustomStat(&stat, body, d, where) {
			return Statistic{}, consumed, false
		}
	}

	return stat, consumed, true
}

// decodeCustomStat dispatches the three well-known CUSTOM layouts by
// statistic id; any other id falls through to the generic data type path.
func decodeCustomStat(stat *Statistic, body []byte, d *diagSink, where string) bool {
	switch stat.ID {
	case 0x0002: // ATA Log
		if len(body) < 4 {
			d.add(&MalformedRecordError{Region: where, Reason: "ATA log statistic body shorter than its header"})
			return false
		}
		data := &ATALogData{
			LogAddress:  body[0],
			PageCount:   body[1],
			InitialPage: binary.LittleEndian.Uint16(body[2:4]),
		}
		if 4+int(data.PageCount)*LogPageSize > len(body) {
			d.add(&MalformedRecordError{Region: where, Reason: fmt.Sprintf(
				"ATA log statistic declares %d pages beyond its %d-dword body", data.PageCount, stat.SizeDwords)})
			return false
		}
		for i := 0; i < int(data.PageCount); i++ {
			data.Pages = append(data.Pages, body[4+i*LogPageSize:4+(i+1)*LogPageSize])
		}
		stat.ATALog = data

	case 0x0003: // SCSI Log Page
		if len(body) < 4 {
			d.add(&MalformedRecordError{Region: where, Reason: "SCSI log statistic body shorter than its header"})
			return false
		}
		stat.SCSILog = &SCSILogData{
			Page:    body[0],
			Subpage: body[1],
			Data:    body[4:],
		}

	case 0x6006: // HDD Spinup Times
		if len(body) < 24 {
			d.add(&MalformedRecordError{Region: where, Reason: "spinup statistic body shorter than 24 bytes"})
			return false
		}
		spinup := &SpinupData{
			Max: binary.LittleEndian.Uint16(body[0:2]),
			Min: binary.LittleEndian.Uint16(body[2:4]),
		}
		for i := range spinup.History {
			spinup.History[i] = binary.LittleEndian.Uint16(body[4+i*2 : 6+i*2])
		}
		stat.Spinup = spinup

	default:
		v := decodeValue(stat.DataType, body, d, where)
		stat.Single = &v
	}
	return true
}

// decodeStatistics walks one statistics area. The list terminates at a
// zero statistic id or at the end of the buffer; malformed descriptors
// are skipped without ending the walk.
func decodeStatistics(buf []byte, cat *StringsCatalog, overlay NameOverlay,
	where string, d *diagSink) []Statistic {

	var stats []Statistic

	for pos := 0; len(buf)-pos >= statHeaderSize; {
		if binary.LittleEndian.Uint16(buf[pos:pos+2]) == 0 {
			break
		}

		stat, consumed, ok := decodeStatDescriptor(buf[pos:], cat, overlay, where, d)
		if ok {
			stats = append(stats, stat)
		}
		if consumed > len(buf)-pos {
			break
		}
		pos += consumed
	}

	return stats
}
