package parameter

import "fmt"

// Equal compares the array elementwise against a scalar or a sequence.
//
// A scalar operand (state label, raw code, or the Masked sentinel) is
// compared against every position: the result is a *BoolArray where a
// position is true iff the operand resolves to that position's raw
// code. Masked positions stay masked, except when the operand is the
// Masked sentinel itself, in which case they compare true.
//
// A sequence operand of mismatched length yields the untyped scalar
// false (numeric-array convention); matching length yields elementwise
// *BoolArray results, each operand element resolved independently. An
// element that resolves to nothing (nil, StateUnknown, an unmapped
// label) compares false at its position, never masked and never
// skipped.
func (a *MappedArray) Equal(operand any) any {
	if seq, ok := normalizeSequence(operand); ok {
		if len(seq) != len(a.raw) {
			return false
		}
		out := newBoolArray(len(a.raw))
		for i, elem := range seq {
			out.values[i], out.valid[i] = a.compareElement(i, elem)
		}
		return out
	}
	out := newBoolArray(len(a.raw))
	for i := range a.raw {
		out.values[i], out.valid[i] = a.compareElement(i, operand)
	}
	return out
}

// NotEqual is the elementwise negation of Equal, including masked
// handling. A mismatched-length sequence yields the untyped scalar
// true.
func (a *MappedArray) NotEqual(operand any) any {
	switch result := a.Equal(operand).(type) {
	case bool:
		return !result
	case *BoolArray:
		return result.Not()
	default:
		return nil // unreachable
	}
}

// compareElement compares one position against one resolved operand.
// The second return value is false when the result is masked.
func (a *MappedArray) compareElement(i int, operand any) (bool, bool) {
	if _, ok := operand.(MaskedValue); ok {
		if !a.valid[i] {
			return true, true
		}
		return false, false
	}
	if !a.valid[i] {
		return false, false
	}
	if label, ok := operand.(string); ok {
		if a.states == nil {
			return false, true
		}
		code, ok := a.states.CodeOf(label)
		if !ok {
			return false, true
		}
		return a.raw[i] == code, true
	}
	if code, ok := toCode(operand); ok {
		return a.raw[i] == code, true
	}
	return false, true
}

// AnyOf reports per position whether the sample is in one of the given
// states. The result is masked wherever the source is masked. A label
// absent from the mapping fails with ErrUnknownState; use AnyOfKnown to
// tolerate unknown labels.
func (a *MappedArray) AnyOf(labels ...string) (*BoolArray, error) {
	return a.anyOf(labels, false)
}

// AnyOfKnown is AnyOf with unknown labels silently treated as matching
// no sample.
func (a *MappedArray) AnyOfKnown(labels ...string) *BoolArray {
	out, _ := a.anyOf(labels, true)
	return out
}

func (a *MappedArray) anyOf(labels []string, ignoreMissing bool) (*BoolArray, error) {
	codes := make(map[int64]struct{}, len(labels))
	for _, label := range labels {
		var code int64
		var ok bool
		if a.states != nil {
			code, ok = a.states.CodeOf(label)
		}
		if !ok {
			if ignoreMissing {
				continue
			}
			return nil, fmt.Errorf("%w: %q", ErrUnknownState, label)
		}
		codes[code] = struct{}{}
	}
	out := newBoolArray(len(a.raw))
	for i := range a.raw {
		if !a.valid[i] {
			out.valid[i] = false
			continue
		}
		_, hit := codes[a.raw[i]]
		out.values[i] = hit
	}
	return out, nil
}

// LessEqual compares raw codes against a threshold, bypassing labels.
// Masked positions stay masked.
func (a *MappedArray) LessEqual(code int64) *BoolArray {
	return a.threshold(func(raw int64) bool { return raw <= code })
}

// GreaterEqual compares raw codes against a threshold, bypassing
// labels. Masked positions stay masked.
func (a *MappedArray) GreaterEqual(code int64) *BoolArray {
	return a.threshold(func(raw int64) bool { return raw >= code })
}

func (a *MappedArray) threshold(match func(int64) bool) *BoolArray {
	out := newBoolArray(len(a.raw))
	for i := range a.raw {
		if !a.valid[i] {
			out.valid[i] = false
			continue
		}
		out.values[i] = match(a.raw[i])
	}
	return out
}

// SelectWhere returns a new array containing the samples at positions
// where cond is true (masked condition positions select nothing). The
// result shares the state mapping and keeps each selected sample's
// validity.
func (a *MappedArray) SelectWhere(cond *BoolArray) (*MappedArray, error) {
	if cond.Len() != len(a.raw) {
		return nil, fmt.Errorf("%w: %d samples, %d conditions", ErrShapeMismatch, len(a.raw), cond.Len())
	}
	out := &MappedArray{states: a.states}
	for i := range a.raw {
		if cond.valid[i] && cond.values[i] {
			out.raw = append(out.raw, a.raw[i])
			out.valid = append(out.valid, a.valid[i])
		}
	}
	return out, nil
}

// MaskWhere masks every sample at a position where cond is true. Other
// positions, and positions where cond itself is masked, are untouched.
func (a *MappedArray) MaskWhere(cond *BoolArray) error {
	if cond.Len() != len(a.raw) {
		return fmt.Errorf("%w: %d samples, %d conditions", ErrShapeMismatch, len(a.raw), cond.Len())
	}
	for i := range a.raw {
		if cond.valid[i] && cond.values[i] {
			a.valid[i] = false
		}
	}
	return nil
}
