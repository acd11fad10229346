package season

import "errors"

var (
	// ErrMalformedSeason is returned when a season identifier is not of the form "Y1_Y2".
	ErrMalformedSeason = errors.New("malformed season")
	// ErrUnknownVersion is returned for a version tag outside the fixed cycle.
	ErrUnknownVersion = errors.New("unknown version")
)
