package chart

import "errors"

// The engine distinguishes exactly two error kinds. Both are fatal to the
// single analysis call that raises them; an orchestrator may still degrade
// the overall report per-branch.

// ErrValidation marks input that is structurally wrong: a missing chart, a
// wrong field count, an out-of-range longitude, incomplete nakshatra data.
// Always raised before any computation begins, always naming the offending
// side and field.
var ErrValidation = errors.New("validation")

// ErrCalculation marks an internal invariant that broke during otherwise
// valid computation, such as an empty lookup result or arithmetic producing
// NaN. It wraps the originating cause.
var ErrCalculation = errors.New("calculation")
