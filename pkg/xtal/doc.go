// Package xtal validates hardware clock frequencies against the curated
// list of crystal oscillators known to have been physically manufactured.
//
// There is a finite list of manufactured crystals. When a clock speed is
// transcribed into a machine definition from a datasheet or a frequency
// counter, a typo or a mismeasurement should fail loudly rather than
// silently drive an emulated device at the wrong rate. A Validator decides
// match vs. mismatch with relative-tolerance equality and, on mismatch,
// records the two nearest legitimate frequencies so the error message can
// suggest what the author probably meant.
//
// Validation is a pure boolean decision; the fatal reporting path lives in
// Validate and never returns on mismatch. Callers that want to recover use
// Check directly.
package xtal

// Version is the quartz release version.
const Version = "v0.1.0"
