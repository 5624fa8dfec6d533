package parameter

import "sort"

// StateMapping is an immutable bidirectional association between raw
// integer codes and symbolic state labels. A mapping is built once and
// never mutated; replacing an array's interpretation means attaching a
// new mapping, not patching the old one. Sharing one StateMapping across
// arrays is safe.
type StateMapping struct {
	codeToLabel map[int64]string
	labelToCode map[string]int64
}

// NewStateMapping builds a StateMapping from a code-to-label table. The
// forward table is copied and authoritative. The reverse table is built
// by inverting entries over ascending codes, so when two codes share a
// label the highest code wins reverse lookup. Duplicate labels are an
// accepted ambiguity, not an error.
func NewStateMapping(codeToLabel map[int64]string) *StateMapping {
	m := &StateMapping{
		codeToLabel: make(map[int64]string, len(codeToLabel)),
		labelToCode: make(map[string]int64, len(codeToLabel)),
	}
	codes := make([]int64, 0, len(codeToLabel))
	for code := range codeToLabel {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	for _, code := range codes {
		label := codeToLabel[code]
		m.codeToLabel[code] = label
		m.labelToCode[label] = code
	}
	return m
}

// LabelOf returns the label for a raw code.
func (m *StateMapping) LabelOf(code int64) (string, bool) {
	label, ok := m.codeToLabel[code]
	return label, ok
}

// CodeOf returns the raw code for a state label.
func (m *StateMapping) CodeOf(label string) (int64, bool) {
	code, ok := m.labelToCode[label]
	return code, ok
}

// States returns a copy of the label-to-code table for lookups by name.
func (m *StateMapping) States() map[string]int64 {
	states := make(map[string]int64, len(m.labelToCode))
	for label, code := range m.labelToCode {
		states[label] = code
	}
	return states
}

// Codes returns a copy of the authoritative code-to-label table.
func (m *StateMapping) Codes() map[int64]string {
	codes := make(map[int64]string, len(m.codeToLabel))
	for code, label := range m.codeToLabel {
		codes[code] = label
	}
	return codes
}

// Len returns the number of mapped codes.
func (m *StateMapping) Len() int {
	return len(m.codeToLabel)
}
