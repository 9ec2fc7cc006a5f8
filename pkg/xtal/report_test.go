package xtal

import "testing"

func TestFailureMessage(t *testing.T) {
	table := []float64{100, 200, 300}

	tests := []struct {
		name      string
		candidate float64
		context   string
		want      string
	}{
		{
			"in-range mismatch suggests both sides",
			250, "galaga/maincpu",
			"Unknown crystal value 250.  Did you mean 200 or 300? Context: galaga/maincpu",
		},
		{
			"below range suggests high side only",
			50, "test",
			"Unknown crystal value 50.  Did you mean 100? Context: test",
		},
		{
			"above range suggests low side only",
			400, "test",
			"Unknown crystal value 400.  Did you mean 300? Context: test",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewWithTable(table)
			if err != nil {
				t.Fatal(err)
			}
			if v.Check(tt.candidate) {
				t.Fatalf("Check(%v) = true, want false", tt.candidate)
			}
			if got := v.FailureMessage(tt.candidate, tt.context); got != tt.want {
				t.Errorf("FailureMessage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFailureMessageRendersWholeHz(t *testing.T) {
	v := New()
	if v.Check(14_050_000) {
		t.Fatal("Check(14050000) = true, want false")
	}
	want := "Unknown crystal value 14050000.  Did you mean 14000000 or 14112000? Context: driver"
	if got := v.FailureMessage(14_050_000, "driver"); got != want {
		t.Errorf("FailureMessage = %q, want %q", got, want)
	}
}

func TestPackageLevelCheck(t *testing.T) {
	if !Check(32_768) {
		t.Error("Check(32768) = false, want true")
	}
	if Check(33_000) {
		t.Error("Check(33000) = true, want false")
	}
}
