// Package uptime estimates how long a store was active and inactive inside a
// time window, from a sparse sequence of status observations.
package uptime

import (
	"math"
	"sort"
	"time"

	"github.com/storemon/storemon/internal/hours"
	api "github.com/storemon/storemon/lib-storemon"
)

type point struct {
	time   time.Time
	status api.Status
}

// Estimate integrates the active and inactive durations of a store within
// [windowStart, windowEnd], restricted to the business hours of sched.
// Both window edges must be in the store's local time.
//
// An observation is treated as valid until superseded by the next one. The
// window edges extend the nearest known status: the first observation's
// status is assumed to hold since windowStart, and the last one's until
// windowEnd. No observation at all means no measured uptime nor downtime.
//
// The integration walks in fixed one-minute steps and gates each slice on
// the openness of its start instant. Sub-minute boundary slivers are
// approximated by the openness of their minute's start instant, so the walk
// never exceeds 10080 steps for the weekly window.
//
// The returned durations are minutes rounded to 2 decimal places.
func Estimate(observations []api.Observation, sched hours.Schedule, loc *time.Location, windowStart, windowEnd time.Time) (uptimeMinutes, downtimeMinutes float64) {
	if len(observations) == 0 {
		return 0, 0
	}

	sorted := make([]api.Observation, len(observations))
	copy(sorted, observations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	points := make([]point, 0, len(sorted)+2)
	for _, o := range sorted {
		points = append(points, point{o.Time.In(loc), o.Status})
	}

	if points[0].time.After(windowStart) {
		points = append([]point{{windowStart, points[0].status}}, points...)
	}
	if last := points[len(points)-1]; last.time.Before(windowEnd) {
		points = append(points, point{windowEnd, last.status})
	}

	var up, down time.Duration
	for i := 0; i+1 < len(points); i++ {
		start := maxTime(points[i].time, windowStart)
		end := minTime(points[i+1].time, windowEnd)
		if !start.Before(end) {
			continue
		}

		for cur := start; cur.Before(end); cur = cur.Add(time.Minute) {
			if !sched.Contains(cur) {
				continue
			}
			next := cur.Add(time.Minute)
			if next.After(end) {
				next = end
			}
			if points[i].status == api.StatusActive {
				up += next.Sub(cur)
			} else {
				down += next.Sub(cur)
			}
		}
	}

	return round2(up.Minutes()), round2(down.Minutes())
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
