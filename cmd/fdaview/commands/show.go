package commands

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/flightdataservices-tutor/FlightDataAccessor/pkg/inspect"
	"github.com/flightdataservices-tutor/FlightDataAccessor/pkg/log"
	"github.com/flightdataservices-tutor/FlightDataAccessor/pkg/statetable"
)

// RunShow renders the channels of a definition table with their state
// labels resolved.
func RunShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	channel := fs.String("channel", "", "render only the named channel")
	raw := fs.Bool("raw", true, "include the raw code view")
	verbose := fs.Bool("verbose", false, "print parse diagnostics")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("show: expected exactly one table file")
	}

	doc, err := parseTable(fs.Arg(0), *verbose)
	if err != nil {
		return err
	}

	channels, err := selectChannels(doc, *channel)
	if err != nil {
		return err
	}

	formatter := inspect.NewFormatter()
	formatter.ShowRaw = *raw
	for i := range channels {
		p, err := channels[i].Parameter()
		if err != nil {
			pterm.Error.Printfln("channel %q: %v", channels[i].Name, err)
			continue
		}
		title := fmt.Sprintf("%s | %.4g Hz", p.Name, p.Frequency)
		pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Println(formatter.FormatParameter(p))
	}
	return nil
}

// parseTable reads and parses a table file, optionally routing parse
// diagnostics to the console.
func parseTable(path string, verbose bool) (*statetable.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	parser := statetable.NewParser()
	if verbose {
		parser.Logger = log.NewSlogAdapter(slog.Default())
	}
	return parser.Parse(data)
}

// selectChannels returns the named channel, or all channels when name
// is empty.
func selectChannels(doc *statetable.Document, name string) ([]statetable.Channel, error) {
	if name == "" {
		return doc.Channels, nil
	}
	ch, err := doc.Channel(name)
	if err != nil {
		return nil, err
	}
	return []statetable.Channel{*ch}, nil
}
