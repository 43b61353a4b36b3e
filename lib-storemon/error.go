package storemon

import (
	"errors"
)

// The errors in Storemon library can check the error type via errors.Is function.
var (
	// ErrInvalidTimestamp is a error for if a timestamp string could not be
	// parsed as an absolute instant.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrUnknownTimezone is a error for if a timezone identifier could not be
	// resolved. Callers should validate identifiers or keep a fallback zone
	// because report generation does not retry on this error.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrNoData is a error for if the observation store holds no record to
	// anchor the report's reference time on.
	ErrNoData = errors.New("no status observations available")

	// ErrJobNotFound is a error for if the queried report job does not exist.
	ErrJobNotFound = errors.New("report job not found")
)
