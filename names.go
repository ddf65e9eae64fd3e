// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Built-in identifier tables from the OCP Datacenter SAS-SATA Device
// Specification v1.5, and the resolution order: built-in table first,
// then the device's strings catalog, then an optional overlay database,
// then the vendor-unique / reserved fallbacks.

package ocptel

// NameOverlay supplies names for identifiers that neither the built-in
// tables nor the device catalog know, e.g. from a statdb database.
type NameOverlay interface {
	StatName(id uint16) (string, bool)
	EventName(class uint8, id uint16) (string, bool)
}

// Tables 43-46 of the OCP specification.
var builtinStatNames = map[uint16]string{
	0x0002: "ATA Log",
	0x0003: "SCSI Log Page",

	0x2001: "Reallocated Block Count",
	0x2002: "Pending Defects Count",
	0x2003: "Power-on Hours Count",
	0x2004: "Power-on Cycle Count",
	0x2005: "Spare Blocks Used",
	0x2006: "Spare Blocks Remaining",
	0x2007: "Unexpected Power Loss Count",
	0x2008: "Current Temperature",
	0x2009: "Minimum Lifetime Temperature",
	0x200a: "Maximum Lifetime Temperature",
	0x200b: "Uncorrectable Read Error Count",
	0x200c: "Background Uncorrectable Read Error Count",
	0x200d: "Interface CRC Error Count",
	0x200e: "Volatile Memory Backup Source Failure",
	0x200f: "Read Only Mode",
	0x2010: "Host Write Commands",
	0x2011: "Host Read Commands",
	0x2012: "Logical Blocks Read",
	0x2013: "Logical Blocks Written",
	0x2014: "Total Media Writes",
	0x2015: "Total Media Reads",
	0x2016: "Soft ECC Error Count",
	0x2017: "Host Trim/Unmap Commands",
	0x2018: "End-to-end Detected Errors",
	0x2019: "End-to-end Corrected Errors",
	0x201a: "Unaligned I/O count",
	0x201b: "Security version number",
	0x201c: "Thermal Throttling Status",
	0x201d: "Thermal Throttling Count",
	0x201e: "DSS Specification Version",
	0x201f: "Incomplete Shutdown Count",
	0x2020: "Percent Free Blocks",
	0x2021: "Lowest Permitted Firmware Revision",
	0x2022: "Maximum Peak Power Capability",
	0x2023: "Current Maximum Average Power",
	0x2024: "Lifetime Power Consumed",
	0x2025: "Power Changes",
	0x2026: "Phy Reinitialization Count",
	0x2027: "Secondary Phy Reinitialization Count",
	0x2028: "Command Timeouts",
	0x2029: "Hardware Revision",
	0x202a: "Firmware Revision",

	0x4001: "Raw Capacity",
	0x4002: "User Capacity",
	0x4003: "Erase Count",
	0x4004: "Erase Fail Count",
	0x4005: "Maximum Erase Count",
	0x4006: "Average Erase Count",
	0x4007: "Program Fail Count",
	0x4008: "XOR Recovery Count",
	0x4009: "Percent Device Life Remaining",
	0x400a: "Lifetime Erase Count",
	0x400b: "Bad User NAND Blocks",
	0x400c: "Bad System NAND Blocks",
	0x400d: "Minimum Erase Count",
	0x400e: "Power Loss Protection Start Count",
	0x400f: "System Data Percent Used",
	0x4010: "Power Loss Protection Health",
	0x4011: "Endurance Estimate",
	0x4012: "Percent User Spare Available",
	0x4013: "Percent System Spare Available",
	0x4014: "Total Media Dies",
	0x4015: "Media Die Failure Tolerance",
	0x4016: "Media Dies Offline",
	0x4017: "System Area Program Fail Count",
	0x4018: "System Area Program Fail Percentage Remaining",
	0x4019: "System Area Uncorrectable Read Error Count",
	0x401a: "System Area Uncorrectable Read Percentage Remaining",
	0x401b: "System Area Erase Fail Count",
	0x401c: "System Area Erase Fail Percentage Remaining",

	0x6001: "Start/Stop Count",
	0x6002: "Load Cycle Count",
	0x6003: "Shock Overlimit Count",
	0x6004: "Head Flying Hours",
	0x6005: "Free Fall Events Count",
	0x6006: "Spinup Times",
}

var timestampEventNames = []string{
	"Host Initiated Timestamp",
	"Firmware Initiated Timestamp",
	"Obsolete ID (0x02)",
}

var resetEventNames = []string{
	"Main Power Cycle",
	"SATA - SRST",
	"SATA - COMRESET",
	"SAS - Hard Reset",
	"SAS - COMINIT",
	"SAS - DWORD Synchronization Loss",
	"SAS - SPL Packet Synchronization Loss",
	"SAS - Receive Identify Timeout Timer Expired",
	"SAS - Hot-plug Timeout",
}

// Boot sequence event ids below 0x100 are SSD milestones; 0x100..0x103 are
// the HDD equivalents.
const bootSeqHDDBase = 0x100

var ssdBootSeqEventNames = []string{
	"Main Firmware Boot Complete",
	"FTL Load From NVM Complete",
	"FTL Rebuild Started",
	"FTL Ready",
}

var hddBootSeqEventNames = []string{
	"Main Firmware Boot Complete",
	"Spin-up Start",
	"Spin-up Complete",
	"Device Ready",
}

var firmwareAssertEventNames = []string{
	"Assert in SAS, SCSI, SATA or ATA Processing Code",
	"Assert in Media Code",
	"Assert in Security Code",
	"Assert in Background Services Code",
	"FTL Rebuild Failed",
	"FTL Data Mismatch",
	"Assert in Bad Block Relocation Code",
	"Assert in Other Code",
}

var temperatureEventNames = []string{
	"Temperature decrease ceased thermal throttling",
	"Temperature increase commenced thermal throttling",
	"Temperature increase caused thermal shutdown",
}

var mediaEventNames = []string{
	"XOR (or equivalent) Recovery Invoked",
	"Uncorrectable Media Error",
	"Block Marked Bad Due To SSD Media Program Error",
	"Block Marked Bad Due To SSD Media Erase Error",
	"Block Marked Bad Due To Read Error",
	"SSD Media Plane Failure",
	"SSD Media Die Failure",
	"HDD Head or Surface Failure",
}

var mediaWearEventNames = []string{
	"Media Wear",
}

var virtualFIFOEventNames = []string{
	"Virtual FIFO Start",
	"Virtual FIFO End",
}

var sataPhyLinkEventNames = []string{
	"DR_Reset Entered due to Unexpected COMRESET",
	"DR_Reset Entered due to Phy Signal Not Detected",
	"Device Dropped Link while Host Link is Up",
	"DR_Ready entered at Gen 3",
	"DR_Ready entered at Gen 2",
	"DR_Ready entered at Gen 1",
	"DR_Partial Entered",
	"DR_Partial Exited",
	"DR_Reduce_Speed Entered",
	"DR_Error Entered",
	"Transmitting HOLD",
	"Receiving HOLD",
	"PMNAK Received",
	"PMNAK Transmitted",
	"R_ERR Received",
	"R_ERR Transmitted",
	"Set Device Bits Transmitted with Error Bit Set",
}

var sataTransportEventNames = []string{
	"Non-Data FIS Received",
	"Non-Data FIS Transmitted",
	"Data FIS Received",
	"Data FIS Transmitted",
}

var sasPhyLinkEventNames = []string{
	"Link Up - 1.5 Gbps",
	"Link Up - 3.0 Gbps",
	"Link Up - 6.0 Gbps",
	"Link Up - 12.0 Gbps",
	"Link Up - 22.5 Gbps",
	"Identify Received (Data)",
	"HARD_RESET Received",
	"Link Loss",
	"DWORD Synchronization Loss",
	"SPL Packet Synchronization Loss",
	"Identify Receive TImeout",
	"BREAK Received",
	"BREAK_REPLY Received",
}

var sasTransportEventNames = []string{
	"DATA Frame Received",
	"DATA Frame Sent",
	"XFER_RDY Frame Sent",
	"COMMAND Frame Received",
	"RESPONSE Frame Sent",
	"TASK Frame Received",
	"SSP Frame Received",
	"SSP Frame Sent",
	"NAK Received",
}

// resolveStatName names a statistic id. The built-in table always wins;
// ids at or above 0x8000 may then be named by the device catalog or the
// overlay database.
func resolveStatName(id uint16, cat *StringsCatalog, overlay NameOverlay) string {
	if name, ok := builtinStatNames[id]; ok {
		return name
	}

	if id >= 0x8000 {
		if name, ok := cat.StatName(id); ok {
			return name
		}
		if overlay != nil {
			if name, ok := overlay.StatName(id); ok {
				return name
			}
		}
		return "Vendor Unique ID"
	}
	return "Reserved ID"
}

func builtinEventName(class EventClass, id uint16) (string, bool) {
	indexed := func(names []string) (string, bool) {
		if int(id) < len(names) {
			return names[id], true
		}
		return "", false
	}

	switch class {
	case EventClassTimestamp:
		return indexed(timestampEventNames)
	case EventClassReset:
		return indexed(resetEventNames)
	case EventClassBootSeq:
		if int(id) < len(ssdBootSeqEventNames) {
			return ssdBootSeqEventNames[id], true
		}
		if id >= bootSeqHDDBase && int(id-bootSeqHDDBase) < len(hddBootSeqEventNames) {
			return hddBootSeqEventNames[id-bootSeqHDDBase], true
		}
	case EventClassFirmwareAssert:
		return indexed(firmwareAssertEventNames)
	case EventClassTemperature:
		return indexed(temperatureEventNames)
	case EventClassMedia:
		return indexed(mediaEventNames)
	case EventClassMediaWear:
		return indexed(mediaWearEventNames)
	case EventClassVirtualFIFO:
		return indexed(virtualFIFOEventNames)
	case EventClassSATAPhyLink:
		return indexed(sataPhyLinkEventNames)
	case EventClassSATATransport:
		return indexed(sataTransportEventNames)
	case EventClassSASPhyLink:
		return indexed(sasPhyLinkEventNames)
	case EventClassSASTransport:
		return indexed(sasTransportEventNames)
	}
	return "", false
}

// resolveEventName names a (class, event id) pair. Statistic snapshot
// events carry no name of their own; the embedded statistic is named
// instead, and ok is false.
func resolveEventName(class EventClass, id uint16, cat *StringsCatalog, overlay NameOverlay) (string, bool) {
	if class == EventClassStatisticSnap {
		return "", false
	}

	if name, ok := builtinEventName(class, id); ok {
		return name, true
	}
	if name, ok := cat.EventName(uint8(class), id); ok {
		return name, true
	}
	if overlay != nil {
		if name, ok := overlay.EventName(uint8(class), id); ok {
			return name, true
		}
	}
	if id >= 0x8000 {
		return "Vendor Unique ID", true
	}
	return "Reserved ID", true
}
