// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package report

import "github.com/dswarbrick/ocptel"

// Multi fans one report traversal out to several sinks, preserving order,
// so human and machine output come from the same walk.
type Multi []ocptel.Reporter

func (m Multi) OpenSection(path string) ocptel.Section {
	secs := make(multiSection, 0, len(m))
	for _, rep := range m {
		secs = append(secs, rep.OpenSection(path))
	}
	return secs
}

type multiSection []ocptel.Section

func (m multiSection) Emit(key string, value interface{}) {
	for _, sec := range m {
		sec.Emit(key, value)
	}
}

func (m multiSection) EmitList(key string) ocptel.Section {
	secs := make(multiSection, 0, len(m))
	for _, sec := range m {
		secs = append(secs, sec.EmitList(key))
	}
	return secs
}

func (m multiSection) Close() {
	for _, sec := range m {
		sec.Close()
	}
}
