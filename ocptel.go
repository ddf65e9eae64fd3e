// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package ocptel decodes OCP Datacenter SAS/SATA Device Telemetry blobs
// carried in the ATA Current / Saved Device Internal Status general purpose
// logs (log addresses 0x24 and 0x25), per the OCP Datacenter SAS-SATA
// Device Specification v1.5.
//
// The package consumes 512-byte log pages through the PageReader contract
// and produces typed statistic and event records plus a strings catalog
// for vendor-unique identifier names. Rendering is delegated to an
// abstract Reporter; text and JSON sinks live in the report subpackage,
// a live-device page reader in the scsi subpackage.
package ocptel

import "fmt"

const (
	// ATA general purpose log addresses.
	LogCurrentInternalStatus = 0x24
	LogSavedInternalStatus   = 0x25

	// LogPageSize is the size of one ATA log page in bytes.
	LogPageSize = 512

	dwordsPerPage = LogPageSize / 4
)

// PageReader yields 512-byte pages of an ATA general purpose log. Page 0
// holds the Internal Status Header. Implementations must return exactly
// LogPageSize bytes on success.
type PageReader interface {
	ReadPage(logAddr uint8, page uint16) ([]byte, error)
}

// BlobReader serves log pages from in-memory blobs, one blob per log
// address. Short final pages are zero padded. It backs offline decoding of
// saved telemetry dumps and the package tests.
type BlobReader map[uint8][]byte

func (r BlobReader) ReadPage(logAddr uint8, page uint16) ([]byte, error) {
	blob, ok := r[logAddr]
	if !ok {
		return nil, fmt.Errorf("no blob for log address %#02x", logAddr)
	}

	off := int(page) * LogPageSize
	if off >= len(blob) {
		return nil, fmt.Errorf("log %#02x: page %d beyond end of blob (%d bytes)", logAddr, page, len(blob))
	}

	buf := make([]byte, LogPageSize)
	copy(buf, blob[off:])
	return buf, nil
}

// DecodeStrings reads the Saved Device Internal Status log (0x25) and
// builds the strings catalog used to resolve vendor-unique statistic and
// event identifiers. sectorBudget caps the number of 512-byte pages that
// may be requested from the log.
func DecodeStrings(r PageReader, sectorBudget uint32) (*StringsCatalog, error) {
	return decodeStrings(r, sectorBudget)
}

// DecodeTelemetry reads the Current Device Internal Status log (0x24) and
// decodes the statistics areas and event FIFOs it declares. cat may be
// nil, in which case only built-in identifier names are resolved.
func DecodeTelemetry(r PageReader, sectorBudget uint32, cat *StringsCatalog) (*TelemetryReport, error) {
	return decodeTelemetry(r, sectorBudget, cat, nil)
}

// DecodeTelemetryOverlay is DecodeTelemetry with an additional name
// overlay, consulted only after the built-in tables and the device
// catalog both miss an identifier.
func DecodeTelemetryOverlay(r PageReader, sectorBudget uint32, cat *StringsCatalog, overlay NameOverlay) (*TelemetryReport, error) {
	return decodeTelemetry(r, sectorBudget, cat, overlay)
}
