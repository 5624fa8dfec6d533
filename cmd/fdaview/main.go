// Command fdaview is a tool for viewing recorded-channel definition
// tables and parameter snapshots.
//
// Usage:
//
//	fdaview <command> [flags] <file>
//
// Commands:
//
//	show     Render channels with resolved state labels
//	states   List the state tables of each channel
//	export   Export a channel as a CBOR parameter snapshot
//
// Examples:
//
//	# Render every channel in a table
//	fdaview show channels.yaml
//
//	# Render one channel, with parse diagnostics
//	fdaview show -channel "Gear Selected Down" -verbose channels.yaml
//
//	# List state tables
//	fdaview states channels.yaml
//
//	# Export a channel snapshot
//	fdaview export -channel "Gear Selected Down" -o gear.fda channels.yaml
package main

import (
	"fmt"
	"os"

	"github.com/flightdataservices-tutor/FlightDataAccessor/cmd/fdaview/commands"
)

const usage = `fdaview - Flight Data Channel Viewer

Usage:
  fdaview <command> [flags] <file>

Commands:
  show     Render channels with resolved state labels
  states   List the state tables of each channel
  export   Export a channel as a CBOR parameter snapshot

Use "fdaview <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "show":
		err = commands.RunShow(os.Args[2:])
	case "states":
		err = commands.RunStates(os.Args[2:])
	case "export":
		err = commands.RunExport(os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fdaview: %v\n", err)
		os.Exit(1)
	}
}
