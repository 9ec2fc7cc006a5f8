package xtal

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// FailureMessage builds the diagnostic for the most recent failed Check:
// the rejected value, the nearest valid frequencies on either side (one
// side only when the candidate fell outside the table's range), and the
// caller-supplied context identifying who asked for validation.
//
// Call it only after Check has returned false; after a success there is
// no bracket and the suggestion clause is dropped.
func (v *Validator) FailureMessage(candidate float64, context string) string {
	msg := fmt.Sprintf("Unknown crystal value %.0f. ", candidate)
	switch {
	case v.bracket.HasLow && v.bracket.HasHigh:
		msg += fmt.Sprintf(" Did you mean %.0f or %.0f?", v.bracket.Low, v.bracket.High)
	case v.bracket.HasLow:
		msg += fmt.Sprintf(" Did you mean %.0f?", v.bracket.Low)
	case v.bracket.HasHigh:
		msg += fmt.Sprintf(" Did you mean %.0f?", v.bracket.High)
	}
	msg += fmt.Sprintf(" Context: %s", context)
	return msg
}

// Validate checks candidate and aborts the process on mismatch. An unknown
// crystal value in a machine definition is a data error in the definition,
// not a runtime condition to recover from, so this path is deliberately
// terminal: it logs the failure diagnostic at fatal level and exits.
// Callers that need non-fatal behavior use Check and FailureMessage.
func (v *Validator) Validate(candidate float64, context string) {
	if !v.Check(candidate) {
		log.Fatal().Msg(v.FailureMessage(candidate, context))
	}
}

// defaultValidator backs the package-level convenience functions, for
// single-threaded hosts that want one process-wide validation state.
var defaultValidator = New()

// Check validates candidate against the built-in table using the shared
// process-wide Validator. See Validator.Check.
func Check(candidate float64) bool {
	return defaultValidator.Check(candidate)
}

// Validate validates candidate against the built-in table using the shared
// process-wide Validator, aborting on mismatch. See Validator.Validate.
func Validate(candidate float64, context string) {
	defaultValidator.Validate(candidate, context)
}
