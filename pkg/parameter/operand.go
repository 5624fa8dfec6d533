package parameter

// Operand classification for writes and comparisons. Mixed-kind operands
// (labels, codes, sentinels, sequences of any of these) are classified
// once before a single strategy is applied; there is no implicit
// coercion between kinds.

// toCode converts a numeric operand to a raw code. State codes are
// integers; strings and floats never convert.
func toCode(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

// normalizeSequence reports whether v is a sequence operand and, if so,
// returns its elements. A MappedArray operand contributes its raw code
// per valid position and the Masked sentinel per invalid one.
func normalizeSequence(v any) ([]any, bool) {
	switch seq := v.(type) {
	case []any:
		return seq, true
	case []string:
		out := make([]any, len(seq))
		for i, s := range seq {
			out[i] = s
		}
		return out, true
	case []int64:
		out := make([]any, len(seq))
		for i, n := range seq {
			out[i] = n
		}
		return out, true
	case []int:
		out := make([]any, len(seq))
		for i, n := range seq {
			out[i] = n
		}
		return out, true
	case *MappedArray:
		out := make([]any, len(seq.raw))
		for i, code := range seq.raw {
			if seq.valid[i] {
				out[i] = code
			} else {
				out[i] = Masked
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// broadcast repeats a single element across n positions.
func broadcast(elem any, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = elem
	}
	return out
}
