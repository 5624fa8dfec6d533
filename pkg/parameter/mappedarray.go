package parameter

import (
	"fmt"
	"sort"
	"strings"
)

// MappedArray is a masked array of raw integer codes with an optional
// state mapping. Element reads and writes accept raw codes and state
// labels interchangeably; per-element validity propagates through every
// operation.
//
// The raw and valid buffers are exclusively owned by one MappedArray.
// Slice, Raw and Copy return independent arrays with copied buffers;
// only the (immutable) StateMapping is shared.
type MappedArray struct {
	raw    []int64
	valid  []bool
	states *StateMapping
}

// NewMappedArray creates a MappedArray from raw sample values. The mask
// follows the recording convention: true means the sample is masked
// (invalid). A nil mask marks every sample valid. The state mapping is
// optional; without one the array behaves as a plain masked numeric
// array and no label resolution takes place.
func NewMappedArray(values []int64, mask []bool, states *StateMapping) (*MappedArray, error) {
	if mask != nil && len(mask) != len(values) {
		return nil, fmt.Errorf("%w: %d values, %d mask entries", ErrShapeMismatch, len(values), len(mask))
	}
	a := &MappedArray{
		raw:    make([]int64, len(values)),
		valid:  make([]bool, len(values)),
		states: states,
	}
	copy(a.raw, values)
	for i := range a.valid {
		a.valid[i] = mask == nil || !mask[i]
	}
	return a, nil
}

// WithStates returns a copy of the array with the given state mapping
// attached, replacing any previous interpretation.
func (a *MappedArray) WithStates(states *StateMapping) *MappedArray {
	out := a.Copy()
	out.states = states
	return out
}

// Len returns the number of samples.
func (a *MappedArray) Len() int {
	return len(a.raw)
}

// Mapping returns the attached state mapping, or nil.
func (a *MappedArray) Mapping() *StateMapping {
	return a.states
}

// State returns the label-to-code table of the attached mapping for
// lookups by name. Without a mapping it returns an empty table.
func (a *MappedArray) State() map[string]int64 {
	if a.states == nil {
		return map[string]int64{}
	}
	return a.states.States()
}

// Data returns a copy of the raw codes, ignoring the mask.
func (a *MappedArray) Data() []int64 {
	data := make([]int64, len(a.raw))
	copy(data, a.raw)
	return data
}

// Mask returns a copy of the mask; true means the sample is masked.
func (a *MappedArray) Mask() []bool {
	mask := make([]bool, len(a.valid))
	for i, v := range a.valid {
		mask[i] = !v
	}
	return mask
}

// SetMask replaces the whole mask; true means masked. Raw codes are
// untouched, so unmasking reveals the previously recorded code.
func (a *MappedArray) SetMask(mask []bool) error {
	if len(mask) != len(a.valid) {
		return fmt.Errorf("%w: %d samples, %d mask entries", ErrShapeMismatch, len(a.valid), len(mask))
	}
	for i, m := range mask {
		a.valid[i] = !m
	}
	return nil
}

// SetMaskAll masks or unmasks every sample.
func (a *MappedArray) SetMaskAll(masked bool) {
	for i := range a.valid {
		a.valid[i] = !masked
	}
}

// At reads element i. It returns the Masked sentinel for invalid
// samples; the state label for valid samples whose code is mapped;
// StateUnknown for valid samples with an unmapped code when a mapping
// is present; and the raw code (int64) when no mapping is attached.
// Out-of-range indices panic, matching slice indexing.
func (a *MappedArray) At(i int) any {
	if !a.valid[i] {
		return Masked
	}
	if a.states == nil {
		return a.raw[i]
	}
	if label, ok := a.states.LabelOf(a.raw[i]); ok {
		return label
	}
	return StateUnknown
}

// Slice returns a new MappedArray over [i, j). The result owns copies
// of the raw and valid buffers and shares the parent's state mapping;
// mutating a slice never affects the array it was taken from.
func (a *MappedArray) Slice(i, j int) *MappedArray {
	out := &MappedArray{
		raw:    make([]int64, j-i),
		valid:  make([]bool, j-i),
		states: a.states,
	}
	copy(out.raw, a.raw[i:j])
	copy(out.valid, a.valid[i:j])
	return out
}

// Copy returns an independent copy of the array.
func (a *MappedArray) Copy() *MappedArray {
	return a.Slice(0, len(a.raw))
}

// Raw returns the code view of the array: an independent copy without
// the state mapping, so reads yield raw codes (or Masked) instead of
// labels.
func (a *MappedArray) Raw() *MappedArray {
	out := a.Copy()
	out.states = nil
	return out
}

// Set writes element i. The value may be the Masked sentinel (marks the
// sample invalid, raw code untouched), a state label known to the
// mapping (stored as its code, sample marked valid), or a raw numeric
// code (stored as-is, sample marked valid). Unknown labels fail with
// ErrUnknownState; sequences and other values fail with
// ErrInvalidAssignment. The array is unchanged on failure.
func (a *MappedArray) Set(i int, value any) error {
	if i < 0 || i >= len(a.raw) {
		return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, len(a.raw))
	}
	elem, err := a.resolveWrite(value)
	if err != nil {
		return err
	}
	a.apply(i, elem)
	return nil
}

// SetRange writes elements [i, j). A scalar value (sentinel, label or
// code) is broadcast to every target position. A sequence must have
// either exactly one element (broadcast, numeric-array convention) or
// as many elements as target positions (assigned position-wise); any
// other length fails with ErrInvalidAssignment. All operands are
// resolved before the first position is written, so a failing call
// leaves the array unchanged.
func (a *MappedArray) SetRange(i, j int, value any) error {
	if i < 0 || j < i || j > len(a.raw) {
		return fmt.Errorf("%w: [%d:%d] (length %d)", ErrIndexOutOfRange, i, j, len(a.raw))
	}
	seq, ok := normalizeSequence(value)
	if !ok {
		// Scalar: broadcast to every target position.
		elem, err := a.resolveWrite(value)
		if err != nil {
			return err
		}
		for k := i; k < j; k++ {
			a.apply(k, elem)
		}
		return nil
	}
	if len(seq) == 1 {
		seq = broadcast(seq[0], j-i)
	}
	if len(seq) != j-i {
		return fmt.Errorf("%w: %d values for %d positions", ErrInvalidAssignment, len(seq), j-i)
	}
	elems := make([]writeOp, len(seq))
	for k, v := range seq {
		elem, err := a.resolveWrite(v)
		if err != nil {
			return err
		}
		elems[k] = elem
	}
	for k, elem := range elems {
		a.apply(i+k, elem)
	}
	return nil
}

// writeOp is a resolved write operand: either "mask this sample" or
// "store this code and mark the sample valid".
type writeOp struct {
	code    int64
	hasCode bool
}

func (a *MappedArray) apply(i int, op writeOp) {
	if !op.hasCode {
		a.valid[i] = false
		return
	}
	a.raw[i] = op.code
	a.valid[i] = true
}

// resolveWrite classifies a scalar write operand.
func (a *MappedArray) resolveWrite(value any) (writeOp, error) {
	if _, ok := value.(MaskedValue); ok {
		return writeOp{}, nil
	}
	if label, ok := value.(string); ok {
		if a.states == nil {
			return writeOp{}, fmt.Errorf("%w: %q (no state mapping)", ErrUnknownState, label)
		}
		code, ok := a.states.CodeOf(label)
		if !ok {
			return writeOp{}, fmt.Errorf("%w: %q", ErrUnknownState, label)
		}
		return writeOp{code: code, hasCode: true}, nil
	}
	if code, ok := toCode(value); ok {
		return writeOp{code: code, hasCode: true}, nil
	}
	return writeOp{}, fmt.Errorf("%w: cannot assign %T", ErrInvalidAssignment, value)
}

// String renders the labels alongside the numeric representation so the
// output stays human-inspectable. With a mapping attached the rendering
// contains resolved label strings; masked samples print as "--".
func (a *MappedArray) String() string {
	var sb strings.Builder
	sb.WriteString("MappedArray(data: [")
	for i := range a.raw {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", a.At(i))
	}
	sb.WriteString("], raw: [")
	for i, code := range a.raw {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if a.valid[i] {
			fmt.Fprintf(&sb, "%d", code)
		} else {
			sb.WriteString("--")
		}
	}
	sb.WriteByte(']')
	if a.states != nil {
		sb.WriteString(", states: {")
		codes := make([]int64, 0, a.states.Len())
		for code := range a.states.Codes() {
			codes = append(codes, code)
		}
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		for i, code := range codes {
			if i > 0 {
				sb.WriteString(", ")
			}
			label, _ := a.states.LabelOf(code)
			fmt.Fprintf(&sb, "%d: %s", code, label)
		}
		sb.WriteByte('}')
	}
	sb.WriteByte(')')
	return sb.String()
}
