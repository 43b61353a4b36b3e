// Package timezone converts absolute instants into a store's local civil time.
package timezone

import (
	"time"

	"github.com/storemon/storemon/internal/smerr"
	api "github.com/storemon/storemon/lib-storemon"
)

// FallbackZone is used for stores that have no timezone record.
const FallbackZone = "America/Chicago"

// Load resolves an IANA zone identifier.
// An empty name resolves to FallbackZone.
func Load(name string) (*time.Location, error) {
	if name == "" {
		name = FallbackZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, smerr.New(api.ErrUnknownTimezone, err, "")
	}
	return loc, nil
}

// ToLocal converts an absolute instant into the civil time of the zone.
func ToLocal(t time.Time, name string) (time.Time, error) {
	loc, err := Load(name)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// ParseInZone parses a timestamp string and converts it into the zone's
// local time. A trailing " UTC" or "Z" suffix means explicit UTC.
func ParseInZone(s, name string) (time.Time, error) {
	t, err := api.ParseTime(s)
	if err != nil {
		return time.Time{}, err
	}
	return ToLocal(t, name)
}
