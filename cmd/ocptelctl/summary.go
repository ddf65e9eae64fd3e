// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dswarbrick/ocptel"
)

// printSummary renders a compact table of every decoded statistic across
// both areas, in report order.
func printSummary(w io.Writer, rep *ocptel.TelemetryReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Area", "ID", "Name", "Type", "Unit", "Value"})

	for _, area := range []struct {
		name  string
		stats []ocptel.Statistic
	}{
		{"S1", rep.Statistics1},
		{"S2", rep.Statistics2},
	} {
		for i := range area.stats {
			stat := &area.stats[i]
			t.AppendRow(table.Row{
				area.name,
				fmt.Sprintf("0x%04x", stat.ID),
				stat.Name,
				stat.Type.String(),
				stat.Unit.String(),
				summaryValue(stat),
			})
		}
	}

	t.Render()
}

func summaryValue(stat *ocptel.Statistic) string {
	switch {
	case stat.Array != nil:
		return fmt.Sprintf("[%d values]", len(stat.Array))
	case stat.ATALog != nil:
		return fmt.Sprintf("ATA log %#02x, %d pages", stat.ATALog.LogAddress, stat.ATALog.PageCount)
	case stat.SCSILog != nil:
		return fmt.Sprintf("SCSI log page %#02x/%#02x", stat.SCSILog.Page, stat.SCSILog.Subpage)
	case stat.Spinup != nil:
		return fmt.Sprintf("max %d ms, min %d ms", stat.Spinup.Max, stat.Spinup.Min)
	case stat.Single != nil:
		return valueString(stat.Single)
	}
	return ""
}

func valueString(v *ocptel.Value) string {
	switch v.Kind {
	case ocptel.DataTypeInt:
		return humanize.Comma(v.Int)
	case ocptel.DataTypeUint:
		if v.Uint <= math.MaxInt64 {
			return humanize.Comma(int64(v.Uint))
		}
		return strconv.FormatUint(v.Uint, 10)
	case ocptel.DataTypeASCII:
		return v.Str
	}
	return fmt.Sprintf("% x", v.Raw)
}
