// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Strings catalog: the identifier-to-name tables of the Saved Device
// Internal Status log (0x25).

package ocptel

// StringsHeader is the decoded OCP Telemetry Strings Header.
type StringsHeader struct {
	LogPageVersion    uint8
	GUID              [16]byte
	StatisticsIDTable Extent
	EventTable        Extent
	VUEventTable      Extent
	ASCIITable        Extent
	FIFO1Name         string
	FIFO2Name         string
}

type catalogEntry struct {
	offset uint64
	length uint8
}

// StringsCatalog maps vendor-unique statistic and event identifiers to
// their ASCII names. The ASCII blob is retained for the catalog lifetime;
// name lookups slice into it.
type StringsCatalog struct {
	Status InternalStatus
	Header StringsHeader

	statIDs map[uint16]catalogEntry
	events  map[uint32]catalogEntry
	ascii   []byte
}

// eventKey packs a debug class and a little-endian event id into the
// 24-bit catalog key.
func eventKey(class uint8, id uint16) uint32 {
	return uint32(class)<<16 | uint32(id)
}

func decodeStrings(r PageReader, sectorBudget uint32) (*StringsCatalog, error) {
	page0, err := readPage(r, LogSavedInternalStatus, 0)
	if err != nil {
		return nil, err
	}
	status, err := decodeInternalStatus(page0)
	if err != nil {
		return nil, err
	}

	// The strings header occupies the first 432 bytes of log page 1; the
	// string tables follow it gapless, in the order statistics id, event,
	// VU event, ASCII.
	page1, err := readPage(r, LogSavedInternalStatus, 1)
	if err != nil {
		return nil, err
	}
	var raw stringsHeaderPage
	if err := readStruct(page1, &raw); err != nil {
		return nil, err
	}
	if err := validateStringsHeader(&raw, sectorBudget); err != nil {
		return nil, err
	}

	cat := &StringsCatalog{
		Status: status,
		Header: StringsHeader{
			LogPageVersion:    raw.LogPageVersion,
			GUID:              raw.GUID,
			StatisticsIDTable: Extent{raw.StatisticsIDTableStart, raw.StatisticsIDTableSize},
			EventTable:        Extent{raw.EventTableStart, raw.EventTableSize},
			VUEventTable:      Extent{raw.VUEventTableStart, raw.VUEventTableSize},
			ASCIITable:        Extent{raw.ASCIITableStart, raw.ASCIITableSize},
			FIFO1Name:         trimASCII(raw.FIFO1Name[:]),
			FIFO2Name:         trimASCII(raw.FIFO2Name[:]),
		},
		statIDs: make(map[uint16]catalogEntry),
		events:  make(map[uint32]catalogEntry),
	}

	if !cat.Header.StatisticsIDTable.Empty() {
		buf, err := readRegion(r, LogSavedInternalStatus, cat.Header.StatisticsIDTable)
		if err != nil {
			return nil, err
		}
		cat.addStatIDEntries(buf)
	}
	for _, ext := range []Extent{cat.Header.EventTable, cat.Header.VUEventTable} {
		if ext.Empty() {
			continue
		}
		buf, err := readRegion(r, LogSavedInternalStatus, ext)
		if err != nil {
			return nil, err
		}
		cat.addEventEntries(buf)
	}
	if !cat.Header.ASCIITable.Empty() {
		if cat.ascii, err = readRegion(r, LogSavedInternalStatus, cat.Header.ASCIITable); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

func (c *StringsCatalog) addStatIDEntries(buf []byte) {
	for len(buf) >= stringEntrySize {
		var entry statIDStringEntry
		if err := readStruct(buf, &entry); err != nil {
			return
		}
		c.statIDs[entry.VUStatisticID] = catalogEntry{
			offset: entry.ASCIIIDOffset,
			length: entry.ASCIIIDLength,
		}
		buf = buf[stringEntrySize:]
	}
}

func (c *StringsCatalog) addEventEntries(buf []byte) {
	for len(buf) >= stringEntrySize {
		var entry eventIDStringEntry
		if err := readStruct(buf, &entry); err != nil {
			return
		}
		id := uint16(entry.ID[0]) | uint16(entry.ID[1])<<8
		c.events[eventKey(entry.DebugClass, id)] = catalogEntry{
			offset: entry.ASCIIIDOffset,
			length: entry.ASCIIIDLength,
		}
		buf = buf[stringEntrySize:]
	}
}

func (c *StringsCatalog) slice(e catalogEntry) (string, bool) {
	end := e.offset + uint64(e.length)
	if end > uint64(len(c.ascii)) {
		return "", false
	}
	return string(c.ascii[e.offset:end]), true
}

// StatName resolves a vendor-unique statistic id against the catalog.
func (c *StringsCatalog) StatName(id uint16) (string, bool) {
	if c == nil {
		return "", false
	}
	entry, ok := c.statIDs[id]
	if !ok {
		return "", false
	}
	return c.slice(entry)
}

// EventName resolves a (class, event id) pair against the catalog. Event
// and vendor-unique event entries share one namespace.
func (c *StringsCatalog) EventName(class uint8, id uint16) (string, bool) {
	if c == nil {
		return "", false
	}
	entry, ok := c.events[eventKey(class, id)]
	if !ok {
		return "", false
	}
	return c.slice(entry)
}
