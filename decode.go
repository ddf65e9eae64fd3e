// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Telemetry decode frame: reads the Current Device Internal Status log
// (0x24), fetches the declared regions, and runs the statistic and event
// walks over them.

package ocptel

import (
	"fmt"

	"go.uber.org/multierr"
)

// DataHeader is the decoded OCP Telemetry Data Header.
type DataHeader struct {
	MajorVersion         uint16
	MinorVersion         uint16
	Timestamp            [6]byte
	TimestampInfo        uint16
	GUID                 [16]byte
	DeviceStringDataSize uint16
	FirmwareVersion      string
	Statistic1           Extent
	Statistic2           Extent
	EventFIFO1           Extent
	EventFIFO2           Extent
}

// TelemetryReport is the result of one telemetry decode. Regions are held
// in the fixed order S1, S2, E1, E2 irrespective of on-disk layout; a nil
// slice means the region was declared absent.
type TelemetryReport struct {
	Status InternalStatus
	Header DataHeader

	// TimestampMillis is the normalised header timestamp, milliseconds
	// since the Unix epoch; zero when the protocol field is unknown.
	TimestampMillis uint64

	Statistics1 []Statistic
	Statistics2 []Statistic
	EventFIFO1  []Event
	EventFIFO2  []Event

	// FIFO names from the strings catalog, empty without one.
	FIFO1Name string
	FIFO2Name string

	diag error
}

// Diagnostics returns the soft anomalies recorded during the decode
// (malformed records skipped, unknown timestamp protocol). The report
// remains valid when this is non-empty.
func (r *TelemetryReport) Diagnostics() []error {
	return multierr.Errors(r.diag)
}

// diagSink accumulates soft diagnostics during a decode frame.
type diagSink struct {
	err error
}

func (d *diagSink) add(err error) {
	d.err = multierr.Append(d.err, err)
}

func (d *diagSink) addf(format string, args ...interface{}) {
	d.add(fmt.Errorf(format, args...))
}

func decodeTelemetry(r PageReader, sectorBudget uint32, cat *StringsCatalog, overlay NameOverlay) (*TelemetryReport, error) {
	page0, err := readPage(r, LogCurrentInternalStatus, 0)
	if err != nil {
		return nil, err
	}
	status, err := decodeInternalStatus(page0)
	if err != nil {
		return nil, err
	}

	// Data area 1 starts at log page 1 with the telemetry data header at
	// byte 0; all region start offsets are relative to that byte.
	page1, err := readPage(r, LogCurrentInternalStatus, 1)
	if err != nil {
		return nil, err
	}
	var raw dataHeaderPage
	if err := readStruct(page1, &raw); err != nil {
		return nil, err
	}
	if err := validateDataHeader(&raw, sectorBudget); err != nil {
		return nil, err
	}

	report := &TelemetryReport{
		Status: status,
		Header: DataHeader{
			MajorVersion:         raw.MajorVersion,
			MinorVersion:         raw.MinorVersion,
			Timestamp:            raw.Timestamp,
			TimestampInfo:        raw.TimestampInfo,
			GUID:                 raw.GUID,
			DeviceStringDataSize: raw.DeviceStringDataSize,
			FirmwareVersion:      ataIDString(raw.FirmwareVersion[:]),
			Statistic1:           Extent{raw.Statistic1StartDword, raw.Statistic1SizeDword},
			Statistic2:           Extent{raw.Statistic2StartDword, raw.Statistic2SizeDword},
			EventFIFO1:           Extent{raw.Event1FIFOStartDword, raw.Event1FIFOSizeDword},
			EventFIFO2:           Extent{raw.Event2FIFOStartDword, raw.Event2FIFOSizeDword},
		},
	}
	if cat != nil {
		report.FIFO1Name = cat.Header.FIFO1Name
		report.FIFO2Name = cat.Header.FIFO2Name
	}

	var d diagSink
	if report.TimestampMillis, err = TimestampMillis(raw.Timestamp, raw.TimestampInfo); err != nil {
		d.add(err)
	}

	regions := []struct {
		ext   Extent
		name  string
		stats *[]Statistic
		evs   *[]Event
	}{
		{report.Header.Statistic1, "statistic area 1", &report.Statistics1, nil},
		{report.Header.Statistic2, "statistic area 2", &report.Statistics2, nil},
		{report.Header.EventFIFO1, "event FIFO 1", nil, &report.EventFIFO1},
		{report.Header.EventFIFO2, "event FIFO 2", nil, &report.EventFIFO2},
	}

	for _, region := range regions {
		if region.ext.Empty() {
			continue
		}
		buf, err := readRegion(r, LogCurrentInternalStatus, region.ext)
		if err != nil {
			return nil, err
		}
		if region.stats != nil {
			*region.stats = decodeStatistics(buf, cat, overlay, region.name, &d)
		} else {
			*region.evs = decodeEvents(buf, cat, overlay, region.name, &d)
		}
	}

	report.diag = d.err
	return report, nil
}
