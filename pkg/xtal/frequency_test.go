package xtal

import (
	"errors"
	"testing"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"14318181", 14_318_181, false},
		{"14_318_181", 14_318_181, false},
		{"14.31818MHz", 14_318_180, false},
		{"32.768kHz", 32_768, false},
		{"32.768 kHz", 32_768, false},
		{"32.768KHZ", 32_768, false},
		{"200MHz", 200_000_000, false},
		{"1GHz", 1_000_000_000, false},
		{"455000Hz", 455_000, false},
		{"", 0, true},
		{"fast", 0, true},
		{"12.5furlongs", 0, true},
		{"-100", 0, true},
		{"0", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFrequency(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFrequency(%q) = %v, want error", tt.in, got)
				}
				if !errors.Is(err, ErrBadFrequency) {
					t.Errorf("error = %v, want ErrBadFrequency", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrequency(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFrequency(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{32_768, "32.768 kHz"},
		{455_000, "455 kHz"},
		{14_318_181, "14.318181 MHz"},
		{200_000_000, "200 MHz"},
		{1_000_000_000, "1 GHz"},
		{500, "500 Hz"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatFrequency(tt.in); got != tt.want {
				t.Errorf("FormatFrequency(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
