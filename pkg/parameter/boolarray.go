package parameter

import (
	"fmt"
	"strings"
)

// MaskedValue is the type of the Masked sentinel. It exists so callers
// can type-switch on read results.
type MaskedValue struct{}

// String renders the sentinel the way masked samples print.
func (MaskedValue) String() string { return "--" }

// Masked is the sentinel returned when reading an invalid sample and
// accepted by writes to mark samples invalid.
var Masked = MaskedValue{}

// StateUnknown is the sentinel returned when reading a valid sample
// whose code has no entry in the state mapping. Distinct from Masked:
// the sample is usable, it just has no label. Out-of-range codes occur
// legitimately in recorded data, so this is not an error.
const StateUnknown = "?"

// BoolArray is a masked boolean sequence, the result of membership and
// comparison queries. Positions that were masked in the source array
// stay masked in the result.
type BoolArray struct {
	values []bool
	valid  []bool
}

func newBoolArray(n int) *BoolArray {
	b := &BoolArray{
		values: make([]bool, n),
		valid:  make([]bool, n),
	}
	for i := range b.valid {
		b.valid[i] = true
	}
	return b
}

// Len returns the number of positions.
func (b *BoolArray) Len() int {
	return len(b.values)
}

// At returns the value at position i: Masked for masked positions,
// otherwise a bool.
func (b *BoolArray) At(i int) any {
	if !b.valid[i] {
		return Masked
	}
	return b.values[i]
}

// Values returns a copy of the boolean values. Masked positions read
// false; use Mask to tell them apart.
func (b *BoolArray) Values() []bool {
	values := make([]bool, len(b.values))
	copy(values, b.values)
	return values
}

// Mask returns a copy of the mask; true means the position is masked.
func (b *BoolArray) Mask() []bool {
	mask := make([]bool, len(b.valid))
	for i, v := range b.valid {
		mask[i] = !v
	}
	return mask
}

// Not returns the elementwise negation. Masked positions stay masked.
func (b *BoolArray) Not() *BoolArray {
	out := newBoolArray(len(b.values))
	for i := range b.values {
		out.values[i] = !b.values[i]
		out.valid[i] = b.valid[i]
	}
	return out
}

// String renders the array as a bracketed list with masked positions
// shown as "--".
func (b *BoolArray) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range b.values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", b.At(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
