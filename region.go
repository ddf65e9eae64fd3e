// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Region fetching: translation of dword-based (start, size) extents into
// contiguous byte buffers drawn from the page reader.

package ocptel

// Extent is a telemetry region location: start offset and size, both in
// dwords, relative to byte 0 of log page 1. A zero-size extent denotes an
// absent region.
type Extent struct {
	StartDword uint64
	SizeDword  uint64
}

// Empty reports whether the extent declares no data.
func (e Extent) Empty() bool { return e.SizeDword == 0 }

// readRegion copies one declared region into a contiguous buffer. Regions
// may start at any dword and may overlap each other; each is fetched
// independently, one page at a time.
func readRegion(r PageReader, logAddr uint8, ext Extent) ([]byte, error) {
	dest := make([]byte, ext.SizeDword*4)

	page := uint16(ext.StartDword/dwordsPerPage) + 1
	pageOffsetDw := ext.StartDword % dwordsPerPage
	remaining := ext.SizeDword
	pos := 0

	for remaining > 0 {
		buf, err := readPage(r, logAddr, page)
		if err != nil {
			return nil, err
		}

		n := dwordsPerPage - pageOffsetDw
		if remaining < n {
			n = remaining
		}
		copy(dest[pos:], buf[pageOffsetDw*4:(pageOffsetDw+n)*4])

		pos += int(n * 4)
		remaining -= n
		page++
		pageOffsetDw = 0
	}

	return dest, nil
}
