// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// SCSI / ATA Translation: ATA READ LOG EXT through ATA PASS-THROUGH (16).

package scsi

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
	"k8s.io/klog/v2"

	"github.com/dswarbrick/ocptel/ata"
)

const logPageSize = 512

// Device is a SATA disk reached through the Linux SG_IO passthrough. It
// satisfies the telemetry core's PageReader contract.
type Device struct {
	Name string
	fd   int
}

// Open opens a SCSI block device for passthrough access.
func Open(name string) (*Device, error) {
	fd, err := unix.Open(name, unix.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("cannot open device %s: %w", name, err)
	}
	return &Device{Name: name, fd: fd}, nil
}

func (d *Device) Close() error {
	return unix.Close(d.fd)
}

// ReadPage issues READ LOG EXT for one 512-byte page of a general purpose
// log.
func (d *Device) ReadPage(logAddr uint8, page uint16) ([]byte, error) {
	klog.V(2).Infof("%s: READ LOG EXT log %#02x page %d", d.Name, logAddr, page)

	// 0x09 : ATA protocol (4 << 1, PIO data-in), extend bit for a 48-bit command
	// 0x0e : BYT_BLOK = 1, T_LENGTH = 2, T_DIR = 1
	cdb := CDB16{SCSI_ATA_PASSTHRU_16, 0x09, 0x0e}
	cdb[6] = 1                // sector count: one page
	cdb[8] = logAddr          // LBA 7:0, log address
	cdb[9] = uint8(page >> 8) // LBA 39:32, page number 15:8
	cdb[10] = uint8(page)     // LBA 15:8, page number 7:0
	cdb[14] = ata.ATA_READ_LOG_EXT

	buf := make([]byte, logPageSize)
	if err := d.execCDB(&cdb, buf); err != nil {
		return nil, fmt.Errorf("READ LOG EXT log %#02x page %d: %w", logAddr, page, err)
	}

	return buf, nil
}

// LogPageCount consults the General Purpose Log Directory (log 0x00) for
// the number of pages the device implements at a log address. This is
// the drive-supplied sector budget when the caller does not override it.
func (d *Device) LogPageCount(logAddr uint8) (uint16, error) {
	dir, err := d.ReadPage(ata.GPL_DIRECTORY, 0)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(dir[int(logAddr)*2 : int(logAddr)*2+2]), nil
}
