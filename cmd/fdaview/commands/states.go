package commands

import (
	"flag"
	"fmt"
	"sort"
	"strconv"

	"github.com/pterm/pterm"
)

// RunStates lists the state tables of each channel in a definition
// table.
func RunStates(args []string) error {
	fs := flag.NewFlagSet("states", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "print parse diagnostics")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("states: expected exactly one table file")
	}

	doc, err := parseTable(fs.Arg(0), *verbose)
	if err != nil {
		return err
	}

	for i := range doc.Channels {
		ch := &doc.Channels[i]
		pterm.DefaultSection.Println(ch.Name)
		if len(ch.States) == 0 {
			pterm.Info.Println("plain numeric channel, no state table")
			continue
		}

		codes := make([]int64, 0, len(ch.States))
		for code := range ch.States {
			codes = append(codes, code)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

		rows := pterm.TableData{{"Code", "Label"}}
		for _, code := range codes {
			rows = append(rows, []string{strconv.FormatInt(code, 10), ch.States[code]})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}
	}
	return nil
}
