package uptime_test

import (
	"testing"
	"time"

	"github.com/storemon/storemon/internal/hours"
	"github.com/storemon/storemon/internal/uptime"
	api "github.com/storemon/storemon/lib-storemon"
)

var alwaysOpen = hours.Schedule{AlwaysOpen: true}

func mustSchedule(t *testing.T, entries ...api.HoursEntry) hours.Schedule {
	t.Helper()
	s, err := hours.New(entries)
	if err != nil {
		t.Fatalf("failed to build schedule: %s", err)
	}
	return s
}

func obs(t time.Time, status api.Status) api.Observation {
	return api.Observation{StoreID: "1", Time: t, Status: status}
}

func TestEstimate_emptyLog(t *testing.T) {
	end := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	up, down := uptime.Estimate(nil, alwaysOpen, time.UTC, end.Add(-time.Hour), end)
	if up != 0 || down != 0 {
		t.Errorf("expected (0, 0) but got (%v, %v)", up, down)
	}
}

func TestEstimate_singleObservationFillsWindow(t *testing.T) {
	end := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	start := end.Add(-time.Hour)

	// One reading 30 minutes before the window end. Its status extends
	// backward to the window start and forward to the window end.
	up, down := uptime.Estimate(
		[]api.Observation{obs(end.Add(-30*time.Minute), api.StatusActive)},
		alwaysOpen, time.UTC, start, end,
	)
	if up != 60.0 || down != 0.0 {
		t.Errorf("expected (60, 0) but got (%v, %v)", up, down)
	}
}

func TestEstimate_preWindowObservationExtendsForward(t *testing.T) {
	end := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	start := end.Add(-time.Hour)

	up, down := uptime.Estimate(
		[]api.Observation{obs(start.Add(-30*time.Minute), api.StatusActive)},
		alwaysOpen, time.UTC, start, end,
	)
	if up != 60.0 || down != 0.0 {
		t.Errorf("expected (60, 0) but got (%v, %v)", up, down)
	}
}

func TestEstimate_statusSwitch(t *testing.T) {
	end := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	start := end.Add(-time.Hour)

	// Active since before the window start, switched to inactive 20 minutes
	// before the end: [start, end-20m) active, [end-20m, end) inactive.
	up, down := uptime.Estimate(
		[]api.Observation{
			obs(end.Add(-50*time.Minute), api.StatusActive),
			obs(end.Add(-20*time.Minute), api.StatusInactive),
		},
		alwaysOpen, time.UTC, start, end,
	)
	if up != 40.0 || down != 20.0 {
		t.Errorf("expected (40, 20) but got (%v, %v)", up, down)
	}
}

func TestEstimate_unsortedInput(t *testing.T) {
	end := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	start := end.Add(-time.Hour)

	up, down := uptime.Estimate(
		[]api.Observation{
			obs(end.Add(-20*time.Minute), api.StatusInactive),
			obs(end.Add(-50*time.Minute), api.StatusActive),
		},
		alwaysOpen, time.UTC, start, end,
	)
	if up != 40.0 || down != 20.0 {
		t.Errorf("expected (40, 20) but got (%v, %v)", up, down)
	}
}

func TestEstimate_coverageConservation(t *testing.T) {
	end := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)

	for _, window := range []time.Duration{time.Hour, 24 * time.Hour, 7 * 24 * time.Hour} {
		start := end.Add(-window)
		up, down := uptime.Estimate(
			[]api.Observation{obs(start.Add(5*time.Minute), api.StatusInactive)},
			alwaysOpen, time.UTC, start, end,
		)
		if got, want := up+down, window.Minutes(); got != want {
			t.Errorf("window %s: expected uptime+downtime = %v but got %v", window, want, got)
		}
		if up != 0 {
			t.Errorf("window %s: single inactive status should give no uptime, got %v", window, up)
		}
	}
}

func TestEstimate_closedHoursContributeNothing(t *testing.T) {
	// Open Monday 09:00-17:00 only. The window is on Tuesday 2023-01-24.
	sched := mustSchedule(t, api.HoursEntry{StoreID: "1", Weekday: 0, Start: "09:00:00", End: "17:00:00"})

	end := time.Date(2023, 1, 24, 12, 0, 0, 0, time.UTC)
	start := end.Add(-time.Hour)

	up, down := uptime.Estimate(
		[]api.Observation{obs(end.Add(-30*time.Minute), api.StatusActive)},
		sched, time.UTC, start, end,
	)
	if up != 0 || down != 0 {
		t.Errorf("expected (0, 0) outside business hours but got (%v, %v)", up, down)
	}
}

func TestEstimate_windowCrossesClosingTime(t *testing.T) {
	// Open Monday until 12:29:00; the last-hour window 11:30-12:30 overlaps
	// the open interval for 60 one-minute slices (the 12:29 boundary slice
	// counts as open).
	sched := mustSchedule(t, api.HoursEntry{StoreID: "1", Weekday: 0, Start: "09:00:00", End: "12:29:00"})

	end := time.Date(2023, 1, 23, 12, 30, 0, 0, time.UTC)
	start := end.Add(-time.Hour)

	up, down := uptime.Estimate(
		[]api.Observation{obs(start.Add(10*time.Minute), api.StatusActive)},
		sched, time.UTC, start, end,
	)
	if up != 60.0 || down != 0.0 {
		t.Errorf("expected (60, 0) but got (%v, %v)", up, down)
	}
}

func TestEstimate_localTimezone(t *testing.T) {
	denver, err := time.LoadLocation("America/Denver")
	if err != nil {
		t.Fatalf("failed to load location: %s", err)
	}

	// Open Monday 09:00-17:00 local. 2023-01-23 17:30 UTC is 10:30 in
	// Denver, inside business hours only after conversion.
	sched := mustSchedule(t, api.HoursEntry{StoreID: "1", Weekday: 0, Start: "09:00:00", End: "17:00:00"})

	end := time.Date(2023, 1, 23, 11, 0, 0, 0, denver)
	start := end.Add(-time.Hour)

	up, down := uptime.Estimate(
		[]api.Observation{obs(time.Date(2023, 1, 23, 17, 30, 0, 0, time.UTC), api.StatusActive)},
		sched, denver, start, end,
	)
	if up != 60.0 || down != 0.0 {
		t.Errorf("expected (60, 0) but got (%v, %v)", up, down)
	}
}

func TestEstimate_subMinuteRemainder(t *testing.T) {
	end := time.Date(2023, 1, 25, 12, 1, 30, 0, time.UTC)
	start := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)

	up, down := uptime.Estimate(
		[]api.Observation{obs(start, api.StatusActive)},
		alwaysOpen, time.UTC, start, end,
	)
	if up != 1.5 || down != 0 {
		t.Errorf("expected (1.5, 0) but got (%v, %v)", up, down)
	}
}
