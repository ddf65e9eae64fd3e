// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Reporter bridge: a single deterministic traversal of the decoded
// structures feeding an abstract reporter. Sinks decide formatting; the
// bridge supplies typed content only, in decode order.

package ocptel

import "fmt"

// Reporter receives the decoded document. Implementations live in the
// report subpackage; the bridge never retains a Section beyond its Close.
type Reporter interface {
	OpenSection(path string) Section
}

// Section is one nesting level of the report document. Emit with an empty
// key appends an unkeyed element (inside lists). EmitList opens a nested
// section or list under the given key.
type Section interface {
	Emit(key string, value interface{})
	EmitList(key string) Section
	Close()
}

// Hex is a numeric report value that human sinks render in hexadecimal,
// zero padded to Digits.
type Hex struct {
	V      uint64
	Digits int
}

// IDName couples a numeric identifier with its resolved name. Human sinks
// render "0xNNNN, Name"; structured sinks keep both parts.
type IDName struct {
	ID     uint64
	Digits int
	Name   string
}

// Report walks the decoded telemetry document. Traversal order matches
// decode order: internal status, data header, S1, S2, E1, E2,
// diagnostics.
func (r *TelemetryReport) Report(rep Reporter) {
	root := rep.OpenSection("ocp_telemetry_data")
	defer root.Close()

	reportInternalStatus(root, &r.Status, true)
	reportDataHeader(root, r)

	if !r.Header.Statistic1.Empty() {
		reportStatisticArea(root, "statistic_area_1", "OCP Statistics Area 1", r.Statistics1)
	}
	if !r.Header.Statistic2.Empty() {
		reportStatisticArea(root, "statistic_area_2", "OCP Statistics Area 2", r.Statistics2)
	}
	if !r.Header.EventFIFO1.Empty() {
		reportEventFIFO(root, "event_fifo_1", "OCP Event FIFO 1", r.FIFO1Name, r.EventFIFO1)
	}
	if !r.Header.EventFIFO2.Empty() {
		reportEventFIFO(root, "event_fifo_2", "OCP Event FIFO 2", r.FIFO2Name, r.EventFIFO2)
	}

	if diags := r.Diagnostics(); len(diags) > 0 {
		sec := root.EmitList("diagnostics")
		for _, err := range diags {
			sec.Emit("", err.Error())
		}
		sec.Close()
	}
}

// Report walks the strings catalog document: internal status of log 0x25
// plus the strings header.
func (c *StringsCatalog) Report(rep Reporter) {
	root := rep.OpenSection("ocp_telemetry_strings")
	defer root.Close()

	reportInternalStatus(root, &c.Status, false)

	sec := root.EmitList("ocp_telemetry_strings_header")
	sec.Emit("Log Page Version", Hex{uint64(c.Header.LogPageVersion), 2})
	sec.Emit("GUID", GUIDString(c.Header.GUID))
	reportExtent(sec, "Statistics ID String Table", c.Header.StatisticsIDTable)
	reportExtent(sec, "Event String Table", c.Header.EventTable)
	reportExtent(sec, "VU Event String Table", c.Header.VUEventTable)
	reportExtent(sec, "ASCII Table", c.Header.ASCIITable)
	sec.Emit("Event FIFO 1 Name", c.Header.FIFO1Name)
	sec.Emit("Event FIFO 2 Name", c.Header.FIFO2Name)
	sec.Close()
}

func reportInternalStatus(parent Section, status *InternalStatus, current bool) {
	key := "ata saved device internal status"
	if current {
		key = "ata current device internal status"
	}
	sec := parent.EmitList(key)
	defer sec.Close()

	sec.Emit("Organization ID", Hex{uint64(status.OrganizationID), 8})
	sec.Emit("Area 1 Last Log Page", Hex{uint64(status.Area1LastLogPage), 4})
	sec.Emit("Area 2 Last Log Page", Hex{uint64(status.Area2LastLogPage), 4})
	sec.Emit("Area 3 Last Log Page", Hex{uint64(status.Area3LastLogPage), 4})
	sec.Emit("Saved Data Available", status.SavedDataAvailable)
	sec.Emit("Saved Data Generation Number", Hex{uint64(status.SavedDataGeneration), 2})

	reason := sec.EmitList("Reason ID")
	reason.Emit("Valid Flags", Hex{uint64(status.Reason.ValidFlags & 0xf), 1})
	if status.Reason.ValidFlags&ReasonErrorIDValid != 0 {
		reason.Emit("Error ID", status.Reason.ErrorID[:])
	}
	if status.Reason.ValidFlags&ReasonFileIDValid != 0 {
		reason.Emit("File ID", status.Reason.FileID[:])
	}
	if status.Reason.ValidFlags&ReasonLineNumberValid != 0 {
		reason.Emit("Line Number", Hex{uint64(status.Reason.LineNumber), 4})
	}
	if status.Reason.ValidFlags&ReasonVUExtValid != 0 {
		reason.Emit("VU Reason Extension", status.Reason.VUExtension[:])
	}
	reason.Close()
}

func reportExtent(parent Section, key string, ext Extent) {
	sec := parent.EmitList(key)
	sec.Emit("Start", Hex{ext.StartDword, 4})
	sec.Emit("Size", Hex{ext.SizeDword, 4})
	sec.Close()
}

func reportDataHeader(parent Section, r *TelemetryReport) {
	sec := parent.EmitList("ocp_telemetry_data_header")
	defer sec.Close()

	sec.Emit("Major Version", Hex{uint64(r.Header.MajorVersion), 4})
	sec.Emit("Minor Version", Hex{uint64(r.Header.MinorVersion), 4})
	sec.Emit("Timestamp", Hex{r.TimestampMillis, 4})
	sec.Emit("GUID", GUIDString(r.Header.GUID))
	sec.Emit("Device String Data Size", Hex{uint64(r.Header.DeviceStringDataSize), 4})
	sec.Emit("Firmware Version", r.Header.FirmwareVersion)
	reportExtent(sec, "Statistic Area 1", r.Header.Statistic1)
	reportExtent(sec, "Statistic Area 2", r.Header.Statistic2)
	reportExtent(sec, "Event FIFO 1", r.Header.EventFIFO1)
	reportExtent(sec, "Event FIFO 2", r.Header.EventFIFO2)
}

func reportStatisticArea(parent Section, key, title string, stats []Statistic) {
	sec := parent.EmitList(key)
	sec.Emit("", title)
	for i := range stats {
		desc := sec.EmitList(fmt.Sprintf("Statistic Descriptor %d", i))
		reportStatistic(desc, &stats[i])
		desc.Close()
	}
	sec.Close()
}

func reportStatistic(sec Section, stat *Statistic) {
	sec.Emit("Statistic ID", IDName{uint64(stat.ID), 4, stat.Name})
	sec.Emit("Statistic Type", IDName{uint64(stat.Type), 1, stat.Type.String()})
	sec.Emit("Behavior Type", IDName{uint64(stat.Behavior), 2, stat.Behavior.String()})
	sec.Emit("Unit", IDName{uint64(stat.Unit), 2, stat.Unit.String()})
	sec.Emit("Host Hint Type", IDName{uint64(stat.HostHint), 1, stat.HostHint.String()})
	sec.Emit("Data Type", IDName{uint64(stat.DataType), 1, stat.DataType.String()})
	sec.Emit("Statistic Data Size", Hex{uint64(stat.SizeDwords), 1})

	switch {
	case stat.Array != nil:
		list := sec.EmitList("Data")
		for i := range stat.Array {
			emitValue(list, "", &stat.Array[i])
		}
		list.Close()
	case stat.ATALog != nil:
		reportATALog(sec, stat.ATALog)
	case stat.SCSILog != nil:
		sec.Emit("Log Page", Hex{uint64(stat.SCSILog.Page), 2})
		sec.Emit("Log Subpage", Hex{uint64(stat.SCSILog.Subpage), 2})
		sec.Emit("Log Page Data", stat.SCSILog.Data)
	case stat.Spinup != nil:
		reportSpinup(sec, stat.Spinup)
	case stat.Single != nil:
		emitValue(sec, "Data", stat.Single)
	}
}

func reportATALog(sec Section, log *ATALogData) {
	sec.Emit("Log Address", Hex{uint64(log.LogAddress), 2})
	sec.Emit("Log Page Count", Hex{uint64(log.PageCount), 2})
	sec.Emit("Initial Log Page", Hex{uint64(log.InitialPage), 4})
	for i, page := range log.Pages {
		sec.Emit(fmt.Sprintf("Log Page 0x%04x", int(log.InitialPage)+i), page)
	}
}

func reportSpinup(sec Section, spinup *SpinupData) {
	if spinup.Max != 0 {
		sec.Emit("Lifetime Spinup Max", Hex{uint64(spinup.Max), 4})
	}
	if spinup.Min != 0 {
		sec.Emit("Lifetime Spinup Min", Hex{uint64(spinup.Min), 4})
	}
	hist := sec.EmitList("Spinup History")
	for _, v := range spinup.History {
		// The history is front-filled; the first zero ends it.
		if v == 0 {
			break
		}
		hist.Emit("", Hex{uint64(v), 4})
	}
	hist.Close()
}

func emitValue(sec Section, key string, v *Value) {
	switch v.Kind {
	case DataTypeInt:
		sec.Emit(key, v.Int)
	case DataTypeUint:
		sec.Emit(key, v.Uint)
	case DataTypeASCII:
		sec.Emit(key, v.Str)
	default:
		sec.Emit(key, v.Raw)
	}
}

func reportEventFIFO(parent Section, key, title, name string, events []Event) {
	sec := parent.EmitList(key)
	if name != "" {
		title = title + ": " + name
		sec.Emit("name", name)
	}
	sec.Emit("", title)

	list := sec.EmitList("events")
	for i := range events {
		desc := list.EmitList(fmt.Sprintf("Event Descriptor %d", i))
		reportEvent(desc, &events[i])
		desc.Close()
	}
	list.Close()
	sec.Close()
}

func reportEvent(sec Section, ev *Event) {
	sec.Emit("Class", IDName{uint64(ev.Class), 2, ev.Class.String()})
	if ev.HasName {
		sec.Emit("Id", IDName{uint64(ev.ID), 4, ev.Name})
	}

	switch {
	case ev.Timestamp != nil:
		sec.Emit("Timestamp", Hex{*ev.Timestamp, 4})
	case ev.Wear != nil:
		sec.Emit("Host TB Written", Hex{uint64(ev.Wear.HostTBWritten), 4})
		sec.Emit("Media TB Written", Hex{uint64(ev.Wear.MediaTBWritten), 4})
		sec.Emit("SSD Media TB Erased", Hex{uint64(ev.Wear.SSDMediaTBErased), 4})
	case ev.Snapshot != nil:
		snap := sec.EmitList("Statistic Descriptor Snapshot")
		reportStatistic(snap, ev.Snapshot)
		snap.Close()
	case ev.VFIFO != nil:
		sec.Emit("Virtual FIFO Data Area", Hex{uint64(ev.VFIFO.DataArea), 4})
		sec.Emit("Virtual FIFO Number", Hex{uint64(ev.VFIFO.Number), 4})
		sec.Emit("Virtual FIFO Name", ev.VFIFO.Name)
	case ev.FIS != nil:
		sec.Emit("FIS", ev.FIS)
	}

	if ev.VUEventID != nil {
		sec.Emit("VU Event ID", IDName{uint64(*ev.VUEventID), 4, ev.VUEventName})
	}
	if ev.VUData != nil {
		sec.Emit("VU Data", ev.VUData)
	}
}
