package parameter

import "testing"

func TestStateMappingLookups(t *testing.T) {
	m := NewStateMapping(map[int64]string{0: "Off", 1: "On"})

	t.Run("LabelOf", func(t *testing.T) {
		label, ok := m.LabelOf(1)
		if !ok || label != "On" {
			t.Errorf("LabelOf(1) = %q, %v; want On, true", label, ok)
		}
		if _, ok := m.LabelOf(7); ok {
			t.Error("LabelOf(7) reported a label for an unmapped code")
		}
	})

	t.Run("CodeOf", func(t *testing.T) {
		code, ok := m.CodeOf("Off")
		if !ok || code != 0 {
			t.Errorf("CodeOf(Off) = %d, %v; want 0, true", code, ok)
		}
		if _, ok := m.CodeOf("Standby"); ok {
			t.Error("CodeOf(Standby) reported a code for an unmapped label")
		}
	})

	t.Run("Len", func(t *testing.T) {
		if m.Len() != 2 {
			t.Errorf("Len() = %d, want 2", m.Len())
		}
	})
}

func TestStateMappingDuplicateLabels(t *testing.T) {
	// Two codes sharing one label: the forward table keeps both entries,
	// reverse lookup resolves to the highest code.
	m := NewStateMapping(map[int64]string{1: "Up", 2: "Up", 3: "Down"})

	for code := int64(1); code <= 2; code++ {
		label, ok := m.LabelOf(code)
		if !ok || label != "Up" {
			t.Errorf("LabelOf(%d) = %q, %v; forward table must stay intact", code, label, ok)
		}
	}
	code, ok := m.CodeOf("Up")
	if !ok || code != 2 {
		t.Errorf("CodeOf(Up) = %d, %v; want last-defined code 2", code, ok)
	}
}

func TestStateMappingViewsAreCopies(t *testing.T) {
	table := map[int64]string{1: "one"}
	m := NewStateMapping(table)

	// Mutating the caller's table after construction changes nothing.
	table[1] = "mutated"
	if label, _ := m.LabelOf(1); label != "one" {
		t.Errorf("LabelOf(1) = %q after caller mutation, want one", label)
	}

	states := m.States()
	states["one"] = 99
	if code, _ := m.CodeOf("one"); code != 1 {
		t.Errorf("CodeOf(one) = %d after view mutation, want 1", code)
	}

	codes := m.Codes()
	codes[1] = "mutated"
	if label, _ := m.LabelOf(1); label != "one" {
		t.Errorf("LabelOf(1) = %q after view mutation, want one", label)
	}
}
