// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Decode error kinds.

package ocptel

import (
	"errors"
	"fmt"
)

// ErrNoData indicates that the device reports no telemetry: the area 1
// last log page field of the Internal Status Header is zero.
var ErrNoData = errors.New("device reports no internal status data")

// ReadError wraps a page reader failure with the log address and page
// index that triggered it.
type ReadError struct {
	LogAddr uint8
	Page    uint16
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("log %#02x: reading page %d: %v", e.LogAddr, e.Page, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// TruncatedError indicates that the caller's sector budget is smaller than
// the number of pages the log header declares.
type TruncatedError struct {
	LogAddr     uint8
	NeedSectors uint64
	Budget      uint32
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("log %#02x: declared regions need %d sectors, budget is %d",
		e.LogAddr, e.NeedSectors, e.Budget)
}

// MalformedRecordError records a descriptor that was skipped during a
// region walk. It is a soft diagnostic: the walk continues past the
// record and the report is still produced.
type MalformedRecordError struct {
	Region string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: descriptor skipped: %s", e.Region, e.Reason)
}

// UnknownProtocolError records a timestamp_info protocol field outside the
// defined SAS/SATA values. Soft: the timestamp decodes to zero.
type UnknownProtocolError struct {
	Protocol uint8
}

func (e *UnknownProtocolError) Error() string {
	return fmt.Sprintf("unknown timestamp protocol (%d)", e.Protocol)
}
