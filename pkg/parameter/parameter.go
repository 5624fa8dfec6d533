package parameter

// Parameter is the metadata record for one recorded channel: a name,
// sampling frequency in Hz, timing offset in seconds, an optional
// ARINC 429 bus-origin flag, and the held sample array. It is a plain
// container; the array passes through unchanged.
type Parameter struct {
	// Name is the channel name.
	Name string

	// Frequency is the sampling frequency in Hz.
	Frequency float64

	// Offset is the timing offset of the first sample in seconds.
	Offset float64

	// ARINC429 indicates whether the channel was recorded from an
	// ARINC 429 bus. Nil means unknown.
	ARINC429 *bool

	array any
}

// ParameterOptions configures a Parameter. The zero value gives an
// empty array, frequency 1 and offset 0.
type ParameterOptions struct {
	// Array is the held sample array: a *MappedArray or a plain numeric
	// slice ([]int64 or []float64).
	Array any

	// States attaches a state mapping, wrapping a plain []int64 array
	// into a MappedArray. Ignored when Array already is a *MappedArray
	// with a mapping.
	States map[int64]string

	// Frequency is the sampling frequency in Hz. 0 defaults to 1.
	Frequency float64

	// Offset is the timing offset in seconds.
	Offset float64

	// ARINC429 is the optional bus-origin flag.
	ARINC429 *bool
}

// NewParameter creates a Parameter. opts may be nil for an empty record
// with default frequency and offset.
func NewParameter(name string, opts *ParameterOptions) *Parameter {
	p := &Parameter{
		Name:      name,
		Frequency: 1,
	}
	if opts == nil {
		return p
	}
	if opts.Frequency != 0 {
		p.Frequency = opts.Frequency
	}
	p.Offset = opts.Offset
	p.ARINC429 = opts.ARINC429
	p.array = opts.Array
	if opts.States != nil {
		states := NewStateMapping(opts.States)
		switch held := opts.Array.(type) {
		case nil:
			empty, _ := NewMappedArray(nil, nil, states)
			p.array = empty
		case *MappedArray:
			if held.Mapping() == nil {
				p.array = held.WithStates(states)
			}
		case []int64:
			wrapped, _ := NewMappedArray(held, nil, states)
			p.array = wrapped
		}
	}
	return p
}

// Array returns the held array in its label view: for a MappedArray,
// reads resolve codes to state labels. Without a held array it returns
// an empty numeric slice.
func (p *Parameter) Array() any {
	if p.array == nil {
		return []int64{}
	}
	return p.array
}

// RawArray returns the held array in its code view, bypassing label
// resolution. For plain numeric arrays it is identical to Array.
func (p *Parameter) RawArray() any {
	if held, ok := p.array.(*MappedArray); ok {
		return held.Raw()
	}
	return p.Array()
}
