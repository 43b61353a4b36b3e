package storemon

const (
	// StatusUnknown means the observation carried a status value that
	// Storemon does not understand.
	StatusUnknown Status = iota

	// StatusActive means the store was reachable and serving.
	StatusActive

	// StatusInactive means the store was not serving at the observed time.
	StatusInactive
)

// Status is the observed status of a store.
type Status int8

// ParseStatus is parse status string
//
// If passed unsupported status, it will returns StatusUnknown
func ParseStatus(raw string) Status {
	switch raw {
	case "active":
		return StatusActive
	case "inactive":
		return StatusInactive
	default:
		return StatusUnknown
	}
}

// UnmarshalText is unmarshal text as status
//
// This function always returns nil.
// This parses as StatusUnknown instead of returns error if unsupported status passed.
func (s *Status) UnmarshalText(text []byte) error {
	*s = ParseStatus(string(text))
	return nil
}

// String is make Status a string
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// MarshalText is marshal Status as text
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
