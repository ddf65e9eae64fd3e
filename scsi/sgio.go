// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// SCSI generic IO functions.

package scsi

import (
	"fmt"
	"unsafe"

	"github.com/dswarbrick/ocptel/ioctl"
)

const (
	SG_DXFER_NONE        = -1
	SG_DXFER_TO_DEV      = -2
	SG_DXFER_FROM_DEV    = -3
	SG_DXFER_TO_FROM_DEV = -4

	SG_IO = 0x2285

	// SCSI commands used by this package
	SCSI_ATA_PASSTHRU_16 = 0x85

	// Timeout in milliseconds
	DEFAULT_TIMEOUT = 20000
)

// CDB16 is a 16-byte SCSI command descriptor block
type CDB16 [16]byte

// SCSI generic IO, defined in <scsi/sg.h>
type sgIoHdr struct {
	interface_id    int32
	dxfer_direction int32
	cmd_len         uint8
	mx_sb_len       uint8
	iovec_count     uint16
	dxfer_len       uint32
	dxferp          uintptr
	cmdp            uintptr // Command pointer
	sbp             uintptr // Sense buf pointer
	timeout         uint32
	flags           uint32
	pack_id         int32
	usr_ptr         uintptr
	status          uint8
	masked_status   uint8
	msg_status      uint8
	sb_len_wr       uint8
	host_status     uint16
	driver_status   uint16
	resid           int32
	duration        uint32
	info            uint32
}

type SgioError struct {
	ScsiStatus   uint8
	HostStatus   uint16
	DriverStatus uint16
}

func (e SgioError) Error() string {
	return fmt.Sprintf("SCSI status: %#02x, host status: %#02x, driver status: %#02x",
		e.ScsiStatus, e.HostStatus, e.DriverStatus)
}

// execCDB sends a CDB to the device and reads the response into resp.
func (d *Device) execCDB(cdb *CDB16, resp []byte) error {
	senseBuf := make([]byte, 32)

	hdr := sgIoHdr{
		interface_id:    'S',
		dxfer_direction: SG_DXFER_FROM_DEV,
		timeout:         DEFAULT_TIMEOUT,
		cmd_len:         uint8(len(cdb)),
		mx_sb_len:       uint8(len(senseBuf)),
		dxfer_len:       uint32(len(resp)),
		dxferp:          uintptr(unsafe.Pointer(&resp[0])),
		cmdp:            uintptr(unsafe.Pointer(cdb)),
		sbp:             uintptr(unsafe.Pointer(&senseBuf[0])),
	}

	if err := ioctl.Ioctl(uintptr(d.fd), SG_IO, uintptr(unsafe.Pointer(&hdr))); err != nil {
		return err
	}

	if hdr.status != 0 {
		return SgioError{
			ScsiStatus:   hdr.status,
			HostStatus:   hdr.host_status,
			DriverStatus: hdr.driver_status,
		}
	}

	return nil
}
