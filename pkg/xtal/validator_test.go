package xtal

import (
	"math"
	"testing"
)

// TestCheckAcceptsEveryKnownXtal validates every entry of the built-in
// table round-trips through Check.
func TestCheckAcceptsEveryKnownXtal(t *testing.T) {
	v := New()
	for _, freq := range knownXtals {
		if !v.Check(freq) {
			t.Errorf("Check(%v) = false, want true", freq)
		}
	}
}

func TestCheckRejectsUnknownValues(t *testing.T) {
	v := New()
	unknown := []float64{
		1,          // far below the table
		33_000,     // between 32768 and 38400
		14_050_000, // between known entries
		999_999_999,
	}
	for _, freq := range unknown {
		if v.Check(freq) {
			t.Errorf("Check(%v) = true, want false", freq)
		}
	}
}

func TestNewWithTable(t *testing.T) {
	tests := []struct {
		name    string
		table   []float64
		wantErr error
	}{
		{"valid", []float64{100, 200, 300}, nil},
		{"single entry", []float64{100}, nil},
		{"empty", nil, ErrTableEmpty},
		{"descending", []float64{300, 200, 100}, ErrTableUnsorted},
		{"duplicate", []float64{100, 100, 200}, ErrTableUnsorted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewWithTable(tt.table)
			if err != tt.wantErr {
				t.Fatalf("NewWithTable() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && v == nil {
				t.Fatal("NewWithTable returned nil validator on success")
			}
		})
	}
}

func TestCheckMidTableGap(t *testing.T) {
	v, err := NewWithTable([]float64{100, 200, 300})
	if err != nil {
		t.Fatal(err)
	}

	if v.Check(250) {
		t.Fatal("Check(250) = true, want false")
	}
	b := v.Bracket()
	if !b.HasLow || b.Low != 200 {
		t.Errorf("bracket low = %v (has=%v), want 200", b.Low, b.HasLow)
	}
	if !b.HasHigh || b.High != 300 {
		t.Errorf("bracket high = %v (has=%v), want 300", b.High, b.HasHigh)
	}
}

func TestCheckExactBoundaryLanding(t *testing.T) {
	v, err := NewWithTable([]float64{100, 200, 300})
	if err != nil {
		t.Fatal(err)
	}
	for _, freq := range []float64{100, 200, 300} {
		if !v.Check(freq) {
			t.Errorf("Check(%v) = false, want true", freq)
		}
	}
}

func TestCheckBelowTableRange(t *testing.T) {
	v := New()
	candidate := Min() - 1
	if v.Check(candidate) {
		t.Fatalf("Check(%v) = true, want false", candidate)
	}
	b := v.Bracket()
	if b.HasLow {
		t.Errorf("bracket low present (%v), want none", b.Low)
	}
	if !b.HasHigh || b.High != Min() {
		t.Errorf("bracket high = %v (has=%v), want %v", b.High, b.HasHigh, Min())
	}
}

func TestCheckAboveTableRange(t *testing.T) {
	v := New()
	candidate := Max() + 1
	if v.Check(candidate) {
		t.Fatalf("Check(%v) = true, want false", candidate)
	}
	b := v.Bracket()
	if b.HasHigh {
		t.Errorf("bracket high present (%v), want none", b.High)
	}
	if !b.HasLow || b.Low != Max() {
		t.Errorf("bracket low = %v (has=%v), want %v", b.Low, b.HasLow, Max())
	}
}

// TestCheckTolerance verifies the relative-tolerance bound: representation
// noise on the order of machine epsilon passes, a 0.1% deviation fails.
// The entries here are ones the search loop probes with the tolerance
// comparison; see TestCheckFirstEntryExactLanding for the slot-0 edge.
func TestCheckTolerance(t *testing.T) {
	v := New()
	for _, entry := range []float64{3_579_545, 14_318_181, 200_000_000} {
		if !v.Check(entry * (1 + machineEpsilon)) {
			t.Errorf("Check(%v*(1+eps)) = false, want true", entry)
		}
		if v.Check(entry * 1.001) {
			t.Errorf("Check(%v*1.001) = true, want false", entry)
		}
	}
}

// TestCheckFirstEntryExactLanding pins the landing edge at slot 0. The
// search loop's step=1 left-retract lands on index 0 without probing it,
// so the first entry is only ever matched by the post-loop comparison,
// which is exact: the entry itself passes, while a 1-ulp perturbation of
// it is a mismatch bracketed by the first two entries.
func TestCheckFirstEntryExactLanding(t *testing.T) {
	v := New()
	first, second := knownXtals[0], knownXtals[1]

	if !v.Check(first) {
		t.Fatalf("Check(%v) = false, want true", first)
	}

	nudged := first * (1 + machineEpsilon)
	if v.Check(nudged) {
		t.Fatalf("Check(%v) = true, want false", nudged)
	}
	b := v.Bracket()
	if !b.HasLow || b.Low != first {
		t.Errorf("bracket low = %v (has=%v), want %v", b.Low, b.HasLow, first)
	}
	if !b.HasHigh || b.High != second {
		t.Errorf("bracket high = %v (has=%v), want %v", b.High, b.HasHigh, second)
	}
}

// TestCheckCacheFastPath verifies a repeated Check of the same value skips
// the table search entirely.
func TestCheckCacheFastPath(t *testing.T) {
	v := New()
	if !v.Check(32_768) {
		t.Fatal("Check(32768) = false, want true")
	}
	before := v.searches
	if !v.Check(32_768) {
		t.Fatal("second Check(32768) = false, want true")
	}
	if v.searches != before {
		t.Errorf("second Check performed %d searches, want 0", v.searches-before)
	}

	// A different value must search again and refill the cache.
	if !v.Check(38_400) {
		t.Fatal("Check(38400) = false, want true")
	}
	if v.searches == before {
		t.Error("Check of a new value did not search the table")
	}
}

// TestSuccessClearsBracket ensures a success never leaves a stale bracket
// from an earlier failure for a later report to pick up.
func TestSuccessClearsBracket(t *testing.T) {
	v := New()
	if v.Check(33_000) {
		t.Fatal("Check(33000) = true, want false")
	}
	if b := v.Bracket(); !b.HasLow && !b.HasHigh {
		t.Fatal("failed Check recorded no bracket")
	}

	if !v.Check(32_768) {
		t.Fatal("Check(32768) = false, want true")
	}
	if b := v.Bracket(); b.HasLow || b.HasHigh {
		t.Errorf("bracket survived a success: %+v", b)
	}
}

// TestFailureOverwritesBothBracketSides ensures an out-of-range failure
// clears the side left over from an earlier in-range failure.
func TestFailureOverwritesBothBracketSides(t *testing.T) {
	v, err := NewWithTable([]float64{100, 200, 300})
	if err != nil {
		t.Fatal(err)
	}

	if v.Check(250) {
		t.Fatal("Check(250) = true, want false")
	}
	if b := v.Bracket(); !b.HasLow || !b.HasHigh {
		t.Fatalf("in-range failure bracket = %+v, want both sides", b)
	}

	if v.Check(50) {
		t.Fatal("Check(50) = true, want false")
	}
	b := v.Bracket()
	if b.HasLow {
		t.Errorf("stale low bracket survived: %+v", b)
	}
	if !b.HasHigh || b.High != 100 {
		t.Errorf("bracket high = %v (has=%v), want 100", b.High, b.HasHigh)
	}
}

func TestCheckSingleEntryTable(t *testing.T) {
	v, err := NewWithTable([]float64{1_000_000})
	if err != nil {
		t.Fatal(err)
	}
	if !v.Check(1_000_000) {
		t.Error("Check(1000000) = false, want true")
	}
	if v.Check(2_000_000) {
		t.Error("Check(2000000) = true, want false")
	}
	b := v.Bracket()
	if !b.HasLow || b.Low != 1_000_000 || b.HasHigh {
		t.Errorf("bracket = %+v, want low 1000000 only", b)
	}
}

// TestCheckIdempotent repeats every known value twice; both calls must
// agree and the second must come from the cache.
func TestCheckIdempotent(t *testing.T) {
	v := New()
	for _, freq := range knownXtals {
		if !v.Check(freq) || !v.Check(freq) {
			t.Fatalf("Check(%v) not idempotent", freq)
		}
	}
}

func TestToleranceValue(t *testing.T) {
	// Guard against the constant drifting from the IEEE-754 double epsilon.
	if machineEpsilon != math.Nextafter(1, 2)-1 {
		t.Fatalf("machineEpsilon = %g, want %g", machineEpsilon, math.Nextafter(1, 2)-1)
	}
}
