// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Machine-readable report sink: builds a JSON-marshallable document from
// the same traversal that feeds the text sink.

package report

import (
	"encoding/json"
	"io"

	"github.com/dswarbrick/ocptel"
	"github.com/dswarbrick/ocptel/utils"
)

// JSONReporter accumulates the report document as nested maps and arrays.
type JSONReporter struct {
	doc map[string]interface{}
}

// NewJSON returns an empty JSON document sink.
func NewJSON() *JSONReporter {
	return &JSONReporter{doc: make(map[string]interface{})}
}

// Document returns the accumulated document. Valid once every opened
// section has been closed.
func (j *JSONReporter) Document() map[string]interface{} { return j.doc }

// Encode writes the document as indented JSON.
func (j *JSONReporter) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.doc)
}

func (j *JSONReporter) OpenSection(path string) ocptel.Section {
	sec := &jsonSection{}
	sec.close = func(v interface{}) { j.doc[path] = v }
	return sec
}

type jsonSection struct {
	fields map[string]interface{}
	elems  []interface{}
	close  func(v interface{})
}

func (s *jsonSection) Emit(key string, value interface{}) {
	v := renderJSON(value)
	if key == "" {
		s.elems = append(s.elems, v)
		return
	}
	if s.fields == nil {
		s.fields = make(map[string]interface{})
	}
	s.fields[key] = v
}

func (s *jsonSection) EmitList(key string) ocptel.Section {
	child := &jsonSection{}
	child.close = func(v interface{}) {
		if key == "" {
			s.elems = append(s.elems, v)
			return
		}
		if s.fields == nil {
			s.fields = make(map[string]interface{})
		}
		s.fields[key] = v
	}
	return child
}

func (s *jsonSection) Close() {
	s.close(s.value())
}

// value collapses the section: pure element sequences become arrays,
// keyed content becomes an object, mixed content keeps its elements under
// "values".
func (s *jsonSection) value() interface{} {
	switch {
	case s.fields == nil && s.elems != nil:
		return s.elems
	case s.fields != nil && s.elems != nil:
		s.fields["values"] = s.elems
		return s.fields
	case s.fields != nil:
		return s.fields
	}
	return map[string]interface{}{}
}

func renderJSON(value interface{}) interface{} {
	switch v := value.(type) {
	case ocptel.Hex:
		return v.V
	case ocptel.IDName:
		return map[string]interface{}{"id": v.ID, "name": v.Name}
	case []byte:
		return utils.HexDumpLine(v)
	default:
		return v
	}
}
