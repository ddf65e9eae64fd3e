// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Package statdb loads a YAML database of vendor statistic and event
// names. It supplements the built-in OCP tables and the device's own
// strings catalog for drives that ship vendor-unique identifiers without
// a strings log.
package statdb

import (
	"os"

	"gopkg.in/yaml.v2"
)

// EventName is one (class, event id) name entry.
type EventName struct {
	Class uint8  `yaml:"class"`
	ID    uint16 `yaml:"id"`
	Name  string `yaml:"name"`
}

// Db is a vendor identifier name database. It satisfies the core's
// NameOverlay contract.
type Db struct {
	Statistics map[uint16]string `yaml:"statistics"`
	Events     []EventName       `yaml:"events"`

	eventIndex map[uint32]string
}

// OpenDb opens a YAML-formatted name database, unmarshalls it, and
// returns a Db. A missing file yields an empty database, not an error.
func OpenDb(dbfile string) (Db, error) {
	var db Db

	f, err := os.Open(dbfile)
	if err != nil {
		return db, nil
	}

	defer f.Close()
	dec := yaml.NewDecoder(f)

	if err := dec.Decode(&db); err != nil {
		return db, err
	}

	db.eventIndex = make(map[uint32]string, len(db.Events))
	for _, e := range db.Events {
		db.eventIndex[uint32(e.Class)<<16|uint32(e.ID)] = e.Name
	}

	return db, nil
}

// StatName looks up a vendor statistic id.
func (db Db) StatName(id uint16) (string, bool) {
	name, ok := db.Statistics[id]
	return name, ok
}

// EventName looks up a (class, event id) pair.
func (db Db) EventName(class uint8, id uint16) (string, bool) {
	name, ok := db.eventIndex[uint32(class)<<16|uint32(id)]
	return name, ok
}
