package xtal

import "testing"

// TestTableStrictlyAscending enforces the curation contract the binary
// search depends on: positive entries, strictly ascending, no duplicates.
func TestTableStrictlyAscending(t *testing.T) {
	if len(knownXtals) == 0 {
		t.Fatal("reference table is empty")
	}
	if knownXtals[0] <= 0 {
		t.Fatalf("table[0] = %v, want positive", knownXtals[0])
	}
	for i := 1; i < len(knownXtals); i++ {
		if knownXtals[i] <= knownXtals[i-1] {
			t.Errorf("table[%d] = %v <= table[%d] = %v", i, knownXtals[i], i-1, knownXtals[i-1])
		}
	}
}

func TestKnownReturnsCopy(t *testing.T) {
	got := Known()
	if len(got) != Count() {
		t.Fatalf("len(Known()) = %d, want %d", len(got), Count())
	}
	got[0] = -1
	if knownXtals[0] == -1 {
		t.Error("Known() aliases the internal table")
	}
}

func TestMinMax(t *testing.T) {
	if Min() != knownXtals[0] {
		t.Errorf("Min() = %v, want %v", Min(), knownXtals[0])
	}
	if Max() != knownXtals[len(knownXtals)-1] {
		t.Errorf("Max() = %v, want %v", Max(), knownXtals[len(knownXtals)-1])
	}
	if Min() != 32_768 {
		t.Errorf("Min() = %v, want 32768", Min())
	}
	if Max() != 200_000_000 {
		t.Errorf("Max() = %v, want 200000000", Max())
	}
}
