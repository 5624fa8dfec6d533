package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/flightdataservices-tutor/FlightDataAccessor/pkg/codec"
)

// RunExport encodes one channel of a definition table as a CBOR
// parameter snapshot.
func RunExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	channel := fs.String("channel", "", "channel to export (required)")
	output := fs.String("o", "", "output file (required)")
	verbose := fs.Bool("verbose", false, "print parse diagnostics")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("export: expected exactly one table file")
	}
	if *channel == "" || *output == "" {
		return fmt.Errorf("export: -channel and -o are required")
	}

	doc, err := parseTable(fs.Arg(0), *verbose)
	if err != nil {
		return err
	}
	ch, err := doc.Channel(*channel)
	if err != nil {
		return err
	}
	p, err := ch.Parameter()
	if err != nil {
		return err
	}

	snap, err := codec.NewSnapshot(p)
	if err != nil {
		return err
	}
	data, err := codec.EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	pterm.Success.Printfln("exported %q (%d samples, recording %s) to %s",
		p.Name, len(snap.Values), snap.RecordingID, *output)
	return nil
}
