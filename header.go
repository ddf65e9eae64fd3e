// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Internal Status Header decoding and sector budget validation.

package ocptel

import "fmt"

// InternalStatus is the decoded Internal Status Header carried on page 0
// of both internal status logs.
type InternalStatus struct {
	LogAddress          uint8
	OrganizationID      uint32
	Area1LastLogPage    uint16
	Area2LastLogPage    uint16
	Area3LastLogPage    uint16
	SavedDataAvailable  bool
	SavedDataGeneration uint8
	Reason              ReasonID
}

// ReasonID is the 128-byte reason identifier substructure. Only the
// fields flagged valid in ValidFlags carry meaning.
type ReasonID struct {
	ErrorID     [64]byte
	FileID      [8]byte
	LineNumber  uint16
	ValidFlags  uint8
	VUExtension [32]byte
}

// readPage fetches one page and normalises failures to *ReadError.
func readPage(r PageReader, logAddr uint8, page uint16) ([]byte, error) {
	buf, err := r.ReadPage(logAddr, page)
	if err != nil {
		return nil, &ReadError{LogAddr: logAddr, Page: page, Err: err}
	}
	if len(buf) != LogPageSize {
		return nil, &ReadError{LogAddr: logAddr, Page: page,
			Err: fmt.Errorf("short page: %d bytes", len(buf))}
	}
	return buf, nil
}

// decodeInternalStatus decodes log page 0 and checks that the device has
// telemetry to offer.
func decodeInternalStatus(page []byte) (InternalStatus, error) {
	var raw internalStatusPage
	if err := readStruct(page, &raw); err != nil {
		return InternalStatus{}, err
	}

	var reason reasonIDBlock
	if err := readStruct(raw.ReasonID[:], &reason); err != nil {
		return InternalStatus{}, err
	}

	status := InternalStatus{
		LogAddress:          raw.LogAddress,
		OrganizationID:      raw.OrganizationID,
		Area1LastLogPage:    raw.Area1LastLogPage,
		Area2LastLogPage:    raw.Area2LastLogPage,
		Area3LastLogPage:    raw.Area3LastLogPage,
		SavedDataAvailable:  raw.SavedDataAvailable != 0,
		SavedDataGeneration: raw.SavedDataGeneration,
		Reason: ReasonID{
			ErrorID:     reason.ErrorID,
			FileID:      reason.FileID,
			LineNumber:  reason.LineNumber,
			ValidFlags:  reason.ValidFlags,
			VUExtension: reason.VUExtension,
		},
	}

	if status.Area1LastLogPage == 0 {
		return status, ErrNoData
	}
	return status, nil
}

// validateDataHeader checks that every declared region of log 0x24 fits
// inside the caller's sector budget. Area 2 extents shadow area 1 extents
// in the maximum, and the header itself is the floor, exactly as the
// reference implementation computes it. The page requirement uses integer
// (floor) division of the maximum dword; see DESIGN.md for why this is
// reproduced rather than tightened.
func validateDataHeader(h *dataHeaderPage, sectorBudget uint32) error {
	maxDword := uint64(dataHeaderSize)

	if h.Statistic2SizeDword > 0 && h.Statistic2StartDword+h.Statistic2SizeDword > maxDword {
		maxDword = h.Statistic2StartDword + h.Statistic2SizeDword
	} else if h.Statistic1SizeDword > 0 && h.Statistic1StartDword+h.Statistic1SizeDword > maxDword {
		maxDword = h.Statistic1StartDword + h.Statistic1SizeDword
	}

	if h.Event2FIFOSizeDword > 0 && h.Event2FIFOStartDword+h.Event2FIFOSizeDword > maxDword {
		maxDword = h.Event2FIFOStartDword + h.Event2FIFOSizeDword
	} else if h.Event1FIFOSizeDword > 0 && h.Event1FIFOStartDword+h.Event1FIFOSizeDword > maxDword {
		maxDword = h.Event1FIFOStartDword + h.Event1FIFOSizeDword
	}

	need := maxDword/dwordsPerPage + 1
	if uint64(sectorBudget) < need {
		return &TruncatedError{LogAddr: LogCurrentInternalStatus, NeedSectors: need, Budget: sectorBudget}
	}
	return nil
}

// validateStringsHeader checks that the four string tables of log 0x25 fit
// inside the caller's sector budget. The tables are specified gapless, so
// the requirement follows from the sum of their sizes plus the header.
func validateStringsHeader(h *stringsHeaderPage, sectorBudget uint32) error {
	tableDwords := h.StatisticsIDTableSize + h.EventTableSize +
		h.VUEventTableSize + h.ASCIITableSize

	need := (tableDwords+stringsHeaderSize/4)/dwordsPerPage + 1
	if uint64(sectorBudget) < need {
		return &TruncatedError{LogAddr: LogSavedInternalStatus, NeedSectors: need, Budget: sectorBudget}
	}
	return nil
}
