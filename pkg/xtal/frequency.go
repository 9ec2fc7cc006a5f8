package xtal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadFrequency reports an unparseable frequency string.
var ErrBadFrequency = errors.New("invalid frequency")

// unitScale maps frequency unit suffixes to their Hz multiplier. Matching
// is case-insensitive so "14.31818MHZ" and "14.31818mhz" both parse.
var unitScale = map[string]float64{
	"":    1,
	"hz":  1,
	"khz": 1e3,
	"mhz": 1e6,
	"ghz": 1e9,
}

// ParseFrequency converts a frequency string to Hz. It accepts a plain
// number ("14318181") or a number with a unit suffix ("14.31818MHz",
// "32.768 kHz"), the notation the crystal reference list is documented in.
func ParseFrequency(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)

	numEnd := len(lower)
	for i, r := range lower {
		if (r < '0' || r > '9') && r != '.' && r != '_' {
			numEnd = i
			break
		}
	}
	numPart := lower[:numEnd]
	unitPart := strings.TrimSpace(lower[numEnd:])

	scale, ok := unitScale[unitPart]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrBadFrequency, unitPart, s)
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(numPart, "_", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadFrequency, s)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w: frequency must be positive, got %q", ErrBadFrequency, s)
	}
	return value * scale, nil
}

// FormatFrequency renders hz in the unit that reads most naturally,
// trimming trailing zeros: 32768 -> "32.768 kHz", 14318181 -> "14.318181 MHz".
func FormatFrequency(hz float64) string {
	switch {
	case hz >= 1e9:
		return trimZeros(hz/1e9) + " GHz"
	case hz >= 1e6:
		return trimZeros(hz/1e6) + " MHz"
	case hz >= 1e3:
		return trimZeros(hz/1e3) + " kHz"
	default:
		return trimZeros(hz) + " Hz"
	}
}

func trimZeros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
