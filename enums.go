// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Stable enumerations of the OCP Datacenter SAS-SATA Device Specification
// v1.5, with the display strings used by the reference report.

package ocptel

import "fmt"

// StatType is the statistic type from info byte 0, bits 7..4.
type StatType uint8

const (
	StatTypeSingle StatType = 0x0
	StatTypeArray  StatType = 0x1
	StatTypeCustom StatType = 0x2
)

func (t StatType) String() string {
	switch t {
	case StatTypeSingle:
		return "Single"
	case StatTypeArray:
		return "Array"
	case StatTypeCustom:
		return "Custom"
	}
	return "Reserved"
}

// DataType is the statistic data type from info byte 2, bits 3..0.
type DataType uint8

const (
	DataTypeNA    DataType = 0x0
	DataTypeInt   DataType = 0x1
	DataTypeUint  DataType = 0x2
	DataTypeFP    DataType = 0x3
	DataTypeASCII DataType = 0x4
)

func (t DataType) String() string {
	switch t {
	case DataTypeNA:
		return "No Data Type Information"
	case DataTypeInt:
		return "Signed Integer"
	case DataTypeUint:
		return "Unsigned Integer"
	case DataTypeFP:
		return "Floating Point"
	case DataTypeASCII:
		return "ASCII (7-bit)"
	}
	return "Reserved"
}

// BehaviorType is the statistic behaviour type from info byte 0, bits 3..0.
type BehaviorType uint8

const (
	BehaviorNA     BehaviorType = 0x0
	BehaviorNone   BehaviorType = 0x1
	BehaviorRPC    BehaviorType = 0x2
	BehaviorSCR    BehaviorType = 0x3
	BehaviorSCRPC  BehaviorType = 0x4
	BehaviorSC     BehaviorType = 0x5
	BehaviorR      BehaviorType = 0x6
)

func (t BehaviorType) String() string {
	switch t {
	case BehaviorNA:
		return "N/A"
	case BehaviorNone:
		return "Runtime Value"
	case BehaviorRPC:
		return "Reset Persistent, Power Cycle Resistent"
	case BehaviorSCR:
		return "Saturating Counter, Reset Persistent"
	case BehaviorSCRPC:
		return "Saturating Counter, Reset Persistent, Power Cycle Resistent"
	case BehaviorSC:
		return "Saturating Counter"
	case BehaviorR:
		return "Reset Persistent"
	}
	return "Reserved"
}

// UnitType is the statistic unit from info byte 1.
type UnitType uint8

const (
	UnitNA UnitType = iota
	UnitMsec
	UnitSec
	UnitHour
	UnitDay
	UnitMB
	UnitGB
	UnitTB
	UnitPB
	UnitCelsius
	UnitKelvin
	UnitFahrenheit
	UnitMillivolt
	UnitMilliamp
	UnitOhm
	UnitRPM
	UnitMicrometer
	UnitNanometer
	UnitAngstrom

	unitMax = UnitAngstrom
)

var unitStrings = [...]string{"N/A", "ms", "s", "h", "d", "MB", "GB", "TB",
	"PB", "C", "K", "F", "mV", "mA", "Ohm", "RPM", "micrometer", "nanometer",
	"angstroms"}

func (u UnitType) String() string {
	if u > unitMax {
		return "Reserved"
	}
	return unitStrings[u]
}

// HostHintType is from info byte 2, bits 5..4.
type HostHintType uint8

func (t HostHintType) String() string {
	switch t {
	case 0x00:
		return "No Host Hint"
	case 0x01:
		return "Host Hint Type 1"
	}
	return "Reserved"
}

// EventClass is the debug event class of an event descriptor. Class 0 is
// the end-of-FIFO sentinel; classes 0x80 and above are vendor unique.
type EventClass uint8

const (
	EventClassTimestamp      EventClass = 0x01
	EventClassReset          EventClass = 0x04
	EventClassBootSeq        EventClass = 0x05
	EventClassFirmwareAssert EventClass = 0x06
	EventClassTemperature    EventClass = 0x07
	EventClassMedia          EventClass = 0x08
	EventClassMediaWear      EventClass = 0x09
	EventClassStatisticSnap  EventClass = 0x0a
	EventClassVirtualFIFO    EventClass = 0x0b
	EventClassSATAPhyLink    EventClass = 0x0c
	EventClassSATATransport  EventClass = 0x0d
	EventClassSASPhyLink     EventClass = 0x0e
	EventClassSASTransport   EventClass = 0x0f
)

func (c EventClass) String() string {
	switch c {
	case EventClassTimestamp:
		return "Timestamp Class"
	case EventClassReset:
		return "Reset Class"
	case EventClassBootSeq:
		return "Boot Sequence Class"
	case EventClassFirmwareAssert:
		return "Firmware Assert Class"
	case EventClassTemperature:
		return "Temperature Class"
	case EventClassMedia:
		return "Media Class"
	case EventClassMediaWear:
		return "Media Wear Class"
	case EventClassStatisticSnap:
		return "Statistic Snapshot Class"
	case EventClassVirtualFIFO:
		return "Virtual FIFO Event Class"
	case EventClassSATAPhyLink:
		return "SATA Phy/Link Class"
	case EventClassSATATransport:
		return "SATA Transport Class"
	case EventClassSASPhyLink:
		return "SAS Phy/Link Class"
	case EventClassSASTransport:
		return "SAS Transport Class"
	}
	if c < 0x80 {
		return fmt.Sprintf("Unknown Class %02x", uint8(c))
	}
	return fmt.Sprintf("Vendor Unique Class %02x", uint8(c))
}

// Reason ID valid_flags bits.
const (
	ReasonLineNumberValid = 0x1
	ReasonFileIDValid     = 0x2
	ReasonErrorIDValid    = 0x4
	ReasonVUExtValid      = 0x8
)
