package xtal

import (
	"errors"
	"math"
)

// machineEpsilon is the IEEE-754 double machine epsilon (2^-52), the gap
// between 1.0 and the next representable value.
const machineEpsilon = 0x1p-52

// tolerance is the relative error permitted when comparing a candidate
// against a table entry. The table stores the closest practical integer
// approximation of each true crystal frequency (the NTSC colorburst
// crystal, for example, is really 315/88 MHz, a repeating fraction), so
// outright equality would reject correct values that picked up
// representation noise. 2*machineEpsilon absorbs that noise while still
// rejecting every genuinely different manufactured frequency.
const tolerance = 2 * machineEpsilon

// Table construction errors.
var (
	ErrTableEmpty    = errors.New("reference table is empty")
	ErrTableUnsorted = errors.New("reference table must be strictly ascending")
)

// Bracket holds the two table entries nearest a rejected candidate. A side
// is absent (HasLow/HasHigh false) when the candidate fell outside the
// table's range on that side.
type Bracket struct {
	Low     float64
	High    float64
	HasLow  bool
	HasHigh bool
}

// Validator checks candidate frequencies against a reference table of
// known crystal values. It keeps a one-slot cache of the last frequency
// confirmed valid (the same oscillator is typically re-validated once per
// device instance sharing it) and, after a failed Check, the bracket of
// nearest valid neighbors for diagnostics.
//
// A Validator is not safe for concurrent use; validation happens during
// sequential machine initialization. The reference table itself is
// immutable and may be shared. Give each goroutine its own Validator if
// concurrent validation is ever needed.
type Validator struct {
	table []float64

	// One-slot cache of the last value that passed validation.
	lastConfirmed float64
	hasConfirmed  bool

	// Bracket recorded by the most recent failed Check. Overwritten on
	// every failure, cleared on every success, so a stale bracket can
	// never leak into a later, unrelated failure report.
	bracket Bracket

	// searches counts full table searches, for tests exercising the
	// cache fast path.
	searches int
}

// New returns a Validator over the built-in table of known crystals.
func New() *Validator {
	return &Validator{table: knownXtals}
}

// NewWithTable returns a Validator over a caller-supplied table. The table
// must be non-empty and strictly ascending; this is checked once here, not
// on every Check.
func NewWithTable(table []float64) (*Validator, error) {
	if len(table) == 0 {
		return nil, ErrTableEmpty
	}
	for i := 1; i < len(table); i++ {
		if table[i] <= table[i-1] {
			return nil, ErrTableUnsorted
		}
	}
	return &Validator{table: table}, nil
}

// Check reports whether candidate matches a table entry within tolerance.
// On success it updates the cache; on failure it records the bracket of
// nearest table entries for FailureMessage. Check never aborts; fatal
// behavior belongs to Validate.
//
// The search walks the table with a descending power-of-two step instead
// of midpoint halving. Probe order then depends only on the table length,
// not on midpoint rounding, so the index reported as a mismatch's nearest
// neighbor is reproducible at table boundaries.
func (v *Validator) Check(candidate float64) bool {
	if v.hasConfirmed && candidate == v.lastConfirmed {
		return true
	}
	v.searches++

	// Largest power of two <= last index, via bit fill.
	last := uint(len(v.table) - 1)
	fill := last | last>>1
	fill |= fill >> 2
	fill |= fill >> 4
	fill |= fill >> 8
	fill |= fill >> 16
	fill |= fill >> 32
	ppow2 := fill - fill>>1

	slot := ppow2
	step := ppow2
	for step != 0 {
		if slot > last {
			// Stepped past the end; retract.
			slot ^= step | step>>1
		} else {
			entry := v.table[slot]
			if math.Abs((candidate-entry)/candidate) <= tolerance {
				v.confirm(candidate)
				return true
			}
			if candidate > entry {
				slot |= step >> 1
			} else {
				slot ^= step | step>>1
			}
		}
		step >>= 1
	}

	// The loop can land on a match without testing it (the step=1 left
	// retract reaches index 0 unprobed). This comparison is exact, not
	// tolerance-based, so the landing entry only matches bit-identical
	// candidates.
	entry := v.table[slot]
	if candidate == entry {
		v.confirm(candidate)
		return true
	}

	// Definitive mismatch: record both bracket sides, unconditionally.
	if candidate < entry {
		v.bracket = Bracket{High: entry, HasHigh: true}
		if slot > 0 {
			v.bracket.Low = v.table[slot-1]
			v.bracket.HasLow = true
		}
	} else {
		v.bracket = Bracket{Low: entry, HasLow: true}
		if slot < last {
			v.bracket.High = v.table[slot+1]
			v.bracket.HasHigh = true
		}
	}
	return false
}

// confirm records a successful validation and clears any bracket left by
// an earlier failure.
func (v *Validator) confirm(candidate float64) {
	v.lastConfirmed = candidate
	v.hasConfirmed = true
	v.bracket = Bracket{}
}

// Bracket returns the nearest-neighbor pair recorded by the most recent
// failed Check. After a success both sides are absent.
func (v *Validator) Bracket() Bracket {
	return v.bracket
}
