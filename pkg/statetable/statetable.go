package statetable

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flightdataservices-tutor/FlightDataAccessor/pkg/log"
	"github.com/flightdataservices-tutor/FlightDataAccessor/pkg/parameter"
)

// TableVersion is the current version of the table format.
const TableVersion = 1

// Table errors.
var (
	// ErrInvalidTable is returned for structurally invalid tables
	// (missing channel name, mismatched values/mask lengths).
	ErrInvalidTable = errors.New("invalid state table")

	// ErrChannelNotFound is returned when a named channel is absent.
	ErrChannelNotFound = errors.New("channel not found")
)

// Document is a parsed channel definition table.
type Document struct {
	// Version is the table format version.
	Version int `yaml:"version"`

	// Channels are the channel definitions, in document order.
	Channels []Channel `yaml:"channels"`
}

// Channel defines one recorded channel: its metadata, its state table
// and optionally its recorded samples.
type Channel struct {
	// Name is the channel name.
	Name string `yaml:"name"`

	// Frequency is the sampling frequency in Hz. 0 defaults to 1.
	Frequency float64 `yaml:"frequency"`

	// Offset is the timing offset in seconds.
	Offset float64 `yaml:"offset"`

	// ARINC429 is the optional bus-origin flag.
	ARINC429 *bool `yaml:"arinc_429"`

	// States is the code-to-label table. Empty means the channel is a
	// plain numeric series.
	States map[int64]string `yaml:"states"`

	// Values are recorded raw codes, if the table embeds samples.
	Values []int64 `yaml:"values"`

	// Mask marks masked samples (true = invalid). Must match Values in
	// length when both are present; absent means all samples valid.
	Mask []bool `yaml:"mask"`
}

// Parser parses channel definition tables.
type Parser struct {
	// Logger receives parse diagnostics (duplicate labels and the
	// like). Defaults to NoopLogger.
	Logger log.Logger
}

// NewParser creates a Parser with logging disabled.
func NewParser() *Parser {
	return &Parser{Logger: log.NoopLogger{}}
}

// Parse parses and validates a table document.
func (p *Parser) Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	for i := range doc.Channels {
		ch := &doc.Channels[i]
		if ch.Name == "" {
			return nil, fmt.Errorf("%w: channel %d has no name", ErrInvalidTable, i)
		}
		if ch.Mask != nil && len(ch.Mask) != len(ch.Values) {
			return nil, fmt.Errorf("%w: channel %q has %d values but %d mask entries",
				ErrInvalidTable, ch.Name, len(ch.Values), len(ch.Mask))
		}
		p.reportDuplicateLabels(ch)
	}
	return &doc, nil
}

// ParseStates parses a bare code-to-label mapping document, the form in
// which state tables travel as recording attributes. Codes may be bare
// integers (YAML) or quoted (JSON attribute form).
func ParseStates(data []byte) (map[int64]string, error) {
	var rawStates map[any]string
	if err := yaml.Unmarshal(data, &rawStates); err != nil {
		return nil, fmt.Errorf("state table parse error: %w", err)
	}
	states := make(map[int64]string, len(rawStates))
	for key, label := range rawStates {
		code, ok := stateCode(key)
		if !ok {
			return nil, fmt.Errorf("%w: code %v is not an integer", ErrInvalidTable, key)
		}
		states[code] = label
	}
	return states, nil
}

func stateCode(key any) (int64, bool) {
	switch k := key.(type) {
	case int:
		return int64(k), true
	case int64:
		return k, true
	case uint64:
		return int64(k), true
	case string:
		code, err := strconv.ParseInt(k, 10, 64)
		return code, err == nil
	default:
		return 0, false
	}
}

// reportDuplicateLabels warns once per label that is shared by several
// codes. The table stays usable; reverse lookup is last-defined-wins.
func (p *Parser) reportDuplicateLabels(ch *Channel) {
	if p.Logger == nil {
		return
	}
	byLabel := make(map[string][]int64)
	for code, label := range ch.States {
		byLabel[label] = append(byLabel[label], code)
	}
	for label, codes := range byLabel {
		if len(codes) < 2 {
			continue
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		code := codes[len(codes)-1]
		p.Logger.Log(log.Event{
			Timestamp: time.Now(),
			Level:     log.LevelWarn,
			Channel:   ch.Name,
			Message:   fmt.Sprintf("label shared by %d codes, reverse lookup resolves to the highest", len(codes)),
			Code:      &code,
			Label:     label,
		})
	}
}

// Channel returns the named channel definition.
func (d *Document) Channel(name string) (*Channel, error) {
	for i := range d.Channels {
		if d.Channels[i].Name == name {
			return &d.Channels[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrChannelNotFound, name)
}

// Parameter builds a Parameter from the channel definition. Channels
// with a state table hold a MappedArray; plain channels hold their raw
// values unchanged.
func (c *Channel) Parameter() (*parameter.Parameter, error) {
	opts := &parameter.ParameterOptions{
		Frequency: c.Frequency,
		Offset:    c.Offset,
		ARINC429:  c.ARINC429,
	}
	if len(c.States) == 0 {
		opts.Array = append([]int64(nil), c.Values...)
		return parameter.NewParameter(c.Name, opts), nil
	}
	array, err := parameter.NewMappedArray(c.Values, c.Mask, parameter.NewStateMapping(c.States))
	if err != nil {
		return nil, fmt.Errorf("channel %q: %w", c.Name, err)
	}
	opts.Array = array
	return parameter.NewParameter(c.Name, opts), nil
}
