// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// Human-readable report sink.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dswarbrick/ocptel"
	"github.com/dswarbrick/ocptel/utils"
)

// keyWidth is the label column width before the colon.
const keyWidth = 25

// singleLineMax is the largest byte-sequence value still rendered on one
// line; anything longer becomes 16-byte offset/ASCII dump rows.
const singleLineMax = 64

// TextReporter renders the report document as indented key/value lines,
// two spaces per nesting level.
type TextReporter struct {
	w      io.Writer
	header *color.Color
}

// NewText returns a text sink writing to w. Section headers are printed
// bold unless noColor is set (or the environment disables color).
func NewText(w io.Writer, noColor bool) *TextReporter {
	header := color.New(color.Bold)
	if noColor {
		header.DisableColor()
	}
	return &TextReporter{w: w, header: header}
}

func (t *TextReporter) OpenSection(path string) ocptel.Section {
	t.header.Fprintln(t.w, path)
	return &textSection{w: t.w, indent: 1}
}

type textSection struct {
	w      io.Writer
	indent int
}

func (s *textSection) prefix() string {
	return strings.Repeat("  ", s.indent)
}

func (s *textSection) Emit(key string, value interface{}) {
	if key == "" {
		fmt.Fprintf(s.w, "%s%s\n", s.prefix(), renderText(value))
		return
	}

	if b, ok := value.([]byte); ok && len(b) > singleLineMax {
		fmt.Fprintf(s.w, "%s%-*s:\n", s.prefix(), keyWidth, key)
		for _, line := range utils.HexDumpLines(b) {
			fmt.Fprintf(s.w, "%s  %s\n", s.prefix(), line)
		}
		return
	}
	fmt.Fprintf(s.w, "%s%-*s: %s\n", s.prefix(), keyWidth, key, renderText(value))
}

func (s *textSection) EmitList(key string) ocptel.Section {
	if key != "" {
		fmt.Fprintf(s.w, "%s%s:\n", s.prefix(), key)
	}
	return &textSection{w: s.w, indent: s.indent + 1}
}

func (s *textSection) Close() {}

func renderText(value interface{}) string {
	switch v := value.(type) {
	case ocptel.Hex:
		return fmt.Sprintf("0x%0*x", v.Digits, v.V)
	case ocptel.IDName:
		return fmt.Sprintf("0x%0*x, %s", v.Digits, v.ID, v.Name)
	case []byte:
		return utils.HexDumpLine(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
