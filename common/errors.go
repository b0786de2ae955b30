package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// ErrorInvalidMeasurement is a caller error: the measurement value is
	// non-positive and can never map to a reference percentile.
	ErrorInvalidMeasurement = errors.New("invalid measurement value")

	// ErrorOutOfDomain is a caller error: the subject age is outside the
	// reference table coverage. No extrapolation is attempted.
	ErrorOutOfDomain = errors.New("age outside reference table domain")

	// ErrorCorruptReferenceData is a configuration fault, not a caller
	// error: a reference row (or whole series) is malformed.
	ErrorCorruptReferenceData = errors.New("corrupt reference table data")

	// ErrorNotEnoughHistory is the forecast's terminal "not enough data
	// yet" state. Callers distinguish it with errors.Is and render it as
	// an empty state, not a failure.
	ErrorNotEnoughHistory = errors.New("not enough feeding history")
)
