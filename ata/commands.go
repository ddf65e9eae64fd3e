// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// ATA command definitions.

package ata

const (
	// ATA commands
	ATA_READ_LOG_EXT = 0x2f

	// General purpose log addresses
	GPL_DIRECTORY               = 0x00
	GPL_CURRENT_INTERNAL_STATUS = 0x24
	GPL_SAVED_INTERNAL_STATUS   = 0x25
)
