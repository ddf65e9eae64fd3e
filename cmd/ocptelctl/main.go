// Copyright 2026 Daniel Swarbrick. All rights reserved.
// Use of this source code is governed by a GPL license that can be found in the LICENSE file.

// OCP SAS/SATA device telemetry reference CLI: decodes the ATA Current /
// Saved Device Internal Status logs of a live SATA device or of raw log
// dumps, and renders the report as text, JSON, or a summary table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/dswarbrick/ocptel"
	"github.com/dswarbrick/ocptel/report"
	"github.com/dswarbrick/ocptel/scsi"
	"github.com/dswarbrick/ocptel/statdb"
)

var (
	device         string
	inData         string
	inStrings      string
	sectorsData    uint32
	sectorsStrings uint32
	jsonOut        bool
	summaryOut     bool
	statdbFile     string
	noColor        bool
	scan           bool
)

func main() {
	cmd := &cobra.Command{
		Use:           "ocptelctl",
		Short:         "Decode OCP datacenter SAS/SATA device telemetry logs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}

	cmd.Flags().StringVar(&device, "device", "", "SATA device to read telemetry from, e.g. /dev/sda")
	cmd.Flags().StringVar(&inData, "in-data", "", "raw dump of GP log 0x24 to decode instead of a device")
	cmd.Flags().StringVar(&inStrings, "in-strings", "", "raw dump of GP log 0x25")
	cmd.Flags().Uint32Var(&sectorsData, "sectors-data", 0, "sector budget for log 0x24 (default: from drive or dump size)")
	cmd.Flags().Uint32Var(&sectorsStrings, "sectors-strings", 0, "sector budget for log 0x25 (default: from drive or dump size)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the machine-readable JSON document")
	cmd.Flags().BoolVar(&summaryOut, "summary", false, "append a statistics summary table")
	cmd.Flags().StringVar(&statdbFile, "statdb", "", "YAML vendor name database")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored section headers")
	cmd.Flags().BoolVar(&scan, "scan", false, "list SCSI disk devices and exit")

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.Flags().AddGoFlagSet(klogFlags)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if scan {
		for _, dev := range scsi.ScanDevices() {
			fmt.Println(dev)
		}
		return nil
	}

	reader, cleanup, err := openReader()
	if err != nil {
		return err
	}
	defer cleanup()

	overlay, err := openOverlay()
	if err != nil {
		return err
	}

	cat, err := ocptel.DecodeStrings(reader, stringsBudget(reader))
	if err != nil {
		// Telemetry decodes without vendor-unique names; keep going.
		klog.Warningf("strings catalog unavailable: %v", err)
		cat = nil
	}

	rep, err := ocptel.DecodeTelemetryOverlay(reader, dataBudget(reader), cat, overlay)
	if err != nil {
		return err
	}

	var sink ocptel.Reporter
	jsonRep := report.NewJSON()
	if jsonOut {
		sink = jsonRep
	} else {
		sink = report.NewText(os.Stdout, noColor)
	}

	if cat != nil {
		cat.Report(sink)
	}
	rep.Report(sink)

	if jsonOut {
		if err := jsonRep.Encode(os.Stdout); err != nil {
			return err
		}
	}
	if summaryOut && !jsonOut {
		printSummary(os.Stdout, rep)
	}

	return nil
}

// openReader builds the page reader from either a live device or raw
// dumps, plus its teardown.
func openReader() (ocptel.PageReader, func(), error) {
	if device != "" {
		dev, err := scsi.Open(device)
		if err != nil {
			return nil, nil, err
		}
		return dev, func() { dev.Close() }, nil
	}

	if inData == "" && inStrings == "" {
		return nil, nil, fmt.Errorf("one of --device, --in-data or --in-strings is required")
	}

	blobs := ocptel.BlobReader{}
	for logAddr, path := range map[uint8]string{
		ocptel.LogCurrentInternalStatus: inData,
		ocptel.LogSavedInternalStatus:   inStrings,
	} {
		if path == "" {
			continue
		}
		blob, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		blobs[logAddr] = blob
	}
	return blobs, func() {}, nil
}

func openOverlay() (ocptel.NameOverlay, error) {
	if statdbFile == "" {
		return nil, nil
	}
	db, err := statdb.OpenDb(statdbFile)
	if err != nil {
		return nil, fmt.Errorf("loading statdb %s: %w", statdbFile, err)
	}
	return db, nil
}

// budgetFor resolves a sector budget: explicit flag, else the drive's GP
// log directory, else the dump size.
func budgetFor(reader ocptel.PageReader, logAddr uint8, override uint32) uint32 {
	if override != 0 {
		return override
	}

	switch r := reader.(type) {
	case *scsi.Device:
		if n, err := r.LogPageCount(logAddr); err == nil && n > 0 {
			return uint32(n)
		}
		klog.Warningf("no log directory entry for log %#02x, assuming 1024 sectors", logAddr)
		return 1024
	case ocptel.BlobReader:
		return uint32((len(r[logAddr]) + ocptel.LogPageSize - 1) / ocptel.LogPageSize)
	}
	return 1024
}

func dataBudget(r ocptel.PageReader) uint32 {
	return budgetFor(r, ocptel.LogCurrentInternalStatus, sectorsData)
}

func stringsBudget(r ocptel.PageReader) uint32 {
	return budgetFor(r, ocptel.LogSavedInternalStatus, sectorsStrings)
}
