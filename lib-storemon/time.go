package storemon

import (
	"fmt"
	"strings"
	"time"
)

var timeformats []string

func init() {
	dfs := []string{
		"2006-01-02 ",
		"2006-01-02T",
		"2006-01-02_",
	}
	tfs := []string{
		"15:04:05",
		"15:04:05.999999999",
	}
	zfs := []string{
		"Z07:00",
		"Z0700",
		"Z07",
		"",
	}
	for _, df := range dfs {
		for _, tf := range tfs {
			for _, zf := range zfs {
				timeformats = append(timeformats, df+tf+zf)
			}
		}
	}
}

// ParseTime parses a timestamp string in Storemon way.
//
// It accepts RFC3339 and some variant formats that appear in seed data,
// including a trailing " UTC" suffix. A " UTC" or "Z" suffix, and a missing
// zone, all mean explicit UTC.
func ParseTime(s string) (time.Time, error) {
	x := strings.TrimSpace(s)
	if strings.HasSuffix(x, " UTC") {
		x = strings.TrimSuffix(x, " UTC")
	}
	for _, f := range timeformats {
		t, err := time.Parse(f, x)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}
