package parameter

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

var testStates = NewStateMapping(map[int64]string{1: "one", 2: "two", 3: "three"})

// mustArray builds a MappedArray or fails the test.
func mustArray(t *testing.T, values []int64, mask []bool, states *StateMapping) *MappedArray {
	t.Helper()
	a, err := NewMappedArray(values, mask, states)
	if err != nil {
		t.Fatalf("NewMappedArray failed: %v", err)
	}
	return a
}

func TestNewMappedArray(t *testing.T) {
	t.Run("MaskShapeMismatch", func(t *testing.T) {
		_, err := NewMappedArray([]int64{1, 2, 3}, []bool{false}, nil)
		if !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("expected ErrShapeMismatch, got %v", err)
		}
	})

	t.Run("NilMaskAllValid", func(t *testing.T) {
		a := mustArray(t, []int64{1, 2}, nil, testStates)
		for i := 0; i < a.Len(); i++ {
			if a.At(i) == Masked {
				t.Errorf("position %d masked without a mask argument", i)
			}
		}
	})
}

func TestAtReadsLabels(t *testing.T) {
	a := mustArray(t, []int64{1, 2, 3}, []bool{false, true, false}, testStates)

	if got := a.At(0); got != "one" {
		t.Errorf("At(0) = %v, want one", got)
	}
	if got := a.At(1); got != Masked {
		t.Errorf("At(1) = %v, want Masked", got)
	}
	if got := a.At(2); got != "three" {
		t.Errorf("At(2) = %v, want three", got)
	}
}

func TestAtUnknownCode(t *testing.T) {
	// Code 9 is valid data but has no label: reads yield StateUnknown,
	// never an error, and stay distinct from Masked.
	a := mustArray(t, []int64{1, 9}, nil, testStates)
	if got := a.At(1); got != StateUnknown {
		t.Errorf("At(1) = %v, want %q", got, StateUnknown)
	}
}

func TestAtMaskedWinsOverMapping(t *testing.T) {
	// A masked sample reads as Masked regardless of raw code or mapping.
	for _, mapped := range []*StateMapping{testStates, nil} {
		a := mustArray(t, []int64{1, 99}, []bool{true, true}, mapped)
		for i := 0; i < a.Len(); i++ {
			if got := a.At(i); got != Masked {
				t.Errorf("At(%d) = %v with mapping=%v, want Masked", i, got, mapped != nil)
			}
		}
	}
}

func TestNoMapping(t *testing.T) {
	values := make([]int64, 10)
	for i := range values {
		values[i] = int64(i)
	}
	a := mustArray(t, values, nil, nil)
	for i := range values {
		if got := a.At(i); got != values[i] {
			t.Errorf("At(%d) = %v, want raw code %d", i, got, values[i])
		}
	}
}

func TestWithStates(t *testing.T) {
	plain := mustArray(t, []int64{1, 2, 3}, []bool{false, true, false}, nil)
	a := plain.WithStates(testStates)

	if got := a.At(0); got != "one" {
		t.Errorf("At(0) = %v, want one", got)
	}
	if got := a.At(1); got != Masked {
		t.Errorf("At(1) = %v, want Masked", got)
	}
	// The original is untouched and still label-free.
	if got := plain.At(0); got != int64(1) {
		t.Errorf("source At(0) = %v after WithStates, want raw 1", got)
	}
}

func TestSlice(t *testing.T) {
	a := mustArray(t, []int64{1, 2, 3}, []bool{false, true, false}, testStates)
	s := a.Slice(0, 2)

	if s.Len() != 2 {
		t.Fatalf("Slice length = %d, want 2", s.Len())
	}
	if got := s.At(0); got != "one" {
		t.Errorf("slice At(0) = %v, want one", got)
	}
	if got := s.At(1); got != Masked {
		t.Errorf("slice At(1) = %v, want Masked", got)
	}
	// The mapping reference carries over.
	if code := s.State()["one"]; code != 1 {
		t.Errorf("slice State()[one] = %d, want 1", code)
	}
}

func TestSliceIsACopy(t *testing.T) {
	a := mustArray(t, []int64{1, 2, 3}, nil, testStates)
	s := a.Slice(0, 2)

	if err := s.Set(0, "three"); err != nil {
		t.Fatalf("Set on slice failed: %v", err)
	}
	if err := s.Set(1, Masked); err != nil {
		t.Fatalf("Set on slice failed: %v", err)
	}
	if got := a.At(0); got != "one" {
		t.Errorf("parent At(0) = %v after slice mutation, want one", got)
	}
	if got := a.At(1); got != "two" {
		t.Errorf("parent At(1) = %v after slice mutation, want two", got)
	}
}

func TestSetScalar(t *testing.T) {
	a := mustArray(t, []int64{1, 2, 3}, nil, testStates)

	t.Run("Label", func(t *testing.T) {
		if err := a.Set(0, "two"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if got := a.At(0); got != "two" {
			t.Errorf("At(0) = %v, want two", got)
		}
		if raw := a.Data()[0]; raw != 2 {
			t.Errorf("Data()[0] = %d, want 2", raw)
		}
	})

	t.Run("Code", func(t *testing.T) {
		if err := a.Set(1, int64(3)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if got := a.At(1); got != "three" {
			t.Errorf("At(1) = %v, want three", got)
		}
	})

	t.Run("MaskedLeavesRaw", func(t *testing.T) {
		if err := a.Set(2, Masked); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if got := a.At(2); got != Masked {
			t.Errorf("At(2) = %v, want Masked", got)
		}
		if raw := a.Data()[2]; raw != 3 {
			t.Errorf("Data()[2] = %d after masking, want untouched 3", raw)
		}
	})

	t.Run("UnknownLabel", func(t *testing.T) {
		before := a.Data()
		err := a.Set(0, "invalid")
		if !errors.Is(err, ErrUnknownState) {
			t.Errorf("expected ErrUnknownState, got %v", err)
		}
		if !reflect.DeepEqual(a.Data(), before) {
			t.Error("array mutated by a failed write")
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		if err := a.Set(7, int64(1)); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestSetRange(t *testing.T) {
	a := mustArray(t, []int64{1, 2, 3, 3}, []bool{false, true, false, true}, testStates)

	// Assigning labels position-wise unmasks the second sample.
	if err := a.SetRange(0, 2, []string{"two", "three"}); err != nil {
		t.Fatalf("SetRange failed: %v", err)
	}
	if got := a.At(0); got != "two" {
		t.Errorf("At(0) = %v, want two", got)
	}
	if got := a.At(1); got != "three" {
		t.Errorf("At(1) = %v, want three (mask must be lost)", got)
	}
	if !reflect.DeepEqual(a.Data(), []int64{2, 3, 3, 3}) {
		t.Errorf("Data() = %v, want [2 3 3 3]", a.Data())
	}
	if got := a.At(3); got != Masked {
		t.Errorf("At(3) = %v, want Masked (mask must be maintained)", got)
	}

	// Masked sentinel broadcast over a range.
	a.SetMaskAll(false)
	if err := a.SetRange(0, 3, Masked); err != nil {
		t.Fatalf("SetRange(Masked) failed: %v", err)
	}
	if !reflect.DeepEqual(a.Mask(), []bool{true, true, true, false}) {
		t.Errorf("Mask() = %v, want [true true true false]", a.Mask())
	}

	// Assigning another masked array copies values and mask per position.
	src := mustArray(t, []int64{3, 3, 3, 3}, []bool{false, false, true, true}, nil)
	if err := a.SetRange(0, 4, src); err != nil {
		t.Fatalf("SetRange(array) failed: %v", err)
	}
	if !reflect.DeepEqual(a.Mask(), []bool{false, false, true, true}) {
		t.Errorf("Mask() = %v, want [false false true true]", a.Mask())
	}

	// Scalar broadcast: label, then code.
	if err := a.SetRange(2, 4, "one"); err != nil {
		t.Fatalf("SetRange(label) failed: %v", err)
	}
	if !reflect.DeepEqual(a.Data()[2:], []int64{1, 1}) {
		t.Errorf("Data()[2:] = %v, want [1 1]", a.Data()[2:])
	}
	if err := a.SetRange(2, 4, int64(3)); err != nil {
		t.Fatalf("SetRange(code) failed: %v", err)
	}
	if !reflect.DeepEqual(a.Data()[2:], []int64{3, 3}) {
		t.Errorf("Data()[2:] = %v, want [3 3]", a.Data()[2:])
	}

	// Single-element sequences broadcast (numeric-array convention).
	if err := a.SetRange(2, 4, []int64{2}); err != nil {
		t.Fatalf("SetRange([2]) failed: %v", err)
	}
	if !reflect.DeepEqual(a.Data()[2:], []int64{2, 2}) {
		t.Errorf("Data()[2:] = %v, want [2 2]", a.Data()[2:])
	}
	if err := a.SetRange(2, 4, []string{"three"}); err != nil {
		t.Fatalf("SetRange([three]) failed: %v", err)
	}
	if !reflect.DeepEqual(a.Data()[2:], []int64{3, 3}) {
		t.Errorf("Data()[2:] = %v, want [3 3]", a.Data()[2:])
	}

	// Any other length mismatch fails.
	err := a.SetRange(1, 4, []string{"one", "one"})
	if !errors.Is(err, ErrInvalidAssignment) {
		t.Errorf("expected ErrInvalidAssignment, got %v", err)
	}
}

func TestSetRangeAtomicOnFailure(t *testing.T) {
	a := mustArray(t, []int64{1, 2, 3}, nil, testStates)
	data, mask := a.Data(), a.Mask()

	// Length mismatch and unknown label must both leave the array
	// untouched, even when earlier operands were resolvable.
	for _, bad := range []any{
		[]string{"one", "two"},
		[]any{"one", "two", "invalid"},
	} {
		if err := a.SetRange(0, 3, bad); err == nil {
			t.Fatalf("SetRange(%v) unexpectedly succeeded", bad)
		}
		if !reflect.DeepEqual(a.Data(), data) || !reflect.DeepEqual(a.Mask(), mask) {
			t.Errorf("array mutated by failed SetRange(%v)", bad)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	a := mustArray(t, []int64{1, 1, 1}, nil, testStates)
	if err := a.Set(1, "three"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := a.At(1); got != "three" {
		t.Errorf("At(1) = %v after label write, want three", got)
	}
	code, _ := testStates.CodeOf("three")
	if raw := a.Raw().At(1); raw != code {
		t.Errorf("Raw().At(1) = %v, want %d", raw, code)
	}
}

func TestRawView(t *testing.T) {
	a := mustArray(t, []int64{1, 2}, []bool{false, true}, testStates)
	raw := a.Raw()

	if got := raw.At(0); got != int64(1) {
		t.Errorf("Raw().At(0) = %v, want 1", got)
	}
	if got := raw.At(1); got != Masked {
		t.Errorf("Raw().At(1) = %v, want Masked", got)
	}
	// The raw view is independent.
	if err := raw.Set(0, int64(9)); err != nil {
		t.Fatalf("Set on raw view failed: %v", err)
	}
	if got := a.At(0); got != "one" {
		t.Errorf("At(0) = %v after raw-view mutation, want one", got)
	}
}

func TestStringContainsLabels(t *testing.T) {
	a := mustArray(t, []int64{1, 2, 3, 3}, []bool{false, true, false, true}, testStates)
	s := a.String()
	if !strings.Contains(s, "one") {
		t.Errorf("String() = %q, want a resolved label in the rendering", s)
	}
	if !strings.Contains(s, "--") {
		t.Errorf("String() = %q, want masked samples rendered", s)
	}
}
