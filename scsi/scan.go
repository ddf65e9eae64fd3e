// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package scsi

import "path/filepath"

// ScanDevices lists SCSI disk device nodes, skipping partitions.
func ScanDevices() []string {
	devices, err := filepath.Glob("/dev/sd*[^0-9]")
	if err != nil {
		return nil
	}
	return devices
}
