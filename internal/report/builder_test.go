package report_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/storemon/storemon/internal/report"
	"github.com/storemon/storemon/internal/smerr"
	api "github.com/storemon/storemon/lib-storemon"
)

// fakeStore is an in-memory report.Store for tests.
type fakeStore struct {
	mu sync.Mutex

	ids          []string
	observations map[string][]api.Observation
	hours        map[string][]api.HoursEntry
	zones        map[string]string
	jobs         map[string]*api.ReportJob

	hoursErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		observations: make(map[string][]api.Observation),
		hours:        make(map[string][]api.HoursEntry),
		zones:        make(map[string]string),
		jobs:         make(map[string]*api.ReportJob),
	}
}

func (f *fakeStore) addObservation(storeID string, ts time.Time, status api.Status) {
	f.observations[storeID] = append(f.observations[storeID], api.Observation{
		StoreID: storeID,
		Time:    ts,
		Status:  status,
	})

	for _, id := range f.ids {
		if id == storeID {
			return
		}
	}
	f.ids = append(f.ids, storeID)
}

func (f *fakeStore) LatestTimestamp(ctx context.Context) (time.Time, error) {
	var latest time.Time
	for _, os := range f.observations {
		for _, o := range os {
			if o.Time.After(latest) {
				latest = o.Time
			}
		}
	}
	if latest.IsZero() {
		return time.Time{}, smerr.New(api.ErrNoData, nil, "status log is empty")
	}
	return latest, nil
}

func (f *fakeStore) StoreIDs(ctx context.Context) ([]string, error) {
	return f.ids, nil
}

func (f *fakeStore) ObservationsBetween(ctx context.Context, storeID string, since, until time.Time) ([]api.Observation, error) {
	var result []api.Observation
	for _, o := range f.observations[storeID] {
		if !o.Time.Before(since) && !o.Time.After(until) {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeStore) Hours(ctx context.Context, storeID string) ([]api.HoursEntry, error) {
	if f.hoursErr != nil {
		return nil, f.hoursErr
	}
	return f.hours[storeID], nil
}

func (f *fakeStore) Timezone(ctx context.Context, storeID string) (string, error) {
	return f.zones[storeID], nil
}

func (f *fakeStore) CreateJob(ctx context.Context, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[jobID] = &api.ReportJob{ID: jobID, Status: api.JobRunning, CreatedAt: time.Now()}
	return nil
}

func (f *fakeStore) CompleteJob(ctx context.Context, jobID, artifact string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[jobID]; ok && j.Status == api.JobRunning {
		j.Status = api.JobComplete
		j.Artifact = artifact
	}
	return nil
}

func (f *fakeStore) FailJob(ctx context.Context, jobID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[jobID]; ok && j.Status == api.JobRunning {
		j.Status = api.JobFailed
		j.Error = message
	}
	return nil
}

func (f *fakeStore) Job(ctx context.Context, jobID string) (api.ReportJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[jobID]; ok {
		return *j, nil
	}
	return api.ReportJob{}, smerr.New(api.ErrJobNotFound, nil, "job %s", jobID)
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return nil
}

func TestBuildRow_unitScaling(t *testing.T) {
	f := newFakeStore()

	refTime := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	f.addObservation("1", refTime.Add(-8*24*time.Hour), api.StatusActive)
	f.addObservation("1", refTime, api.StatusActive)

	row, err := report.Builder{Store: f}.BuildRow(context.Background(), "1", refTime)
	if err != nil {
		t.Fatalf("failed to build row: %s", err)
	}

	// Always-open store that was active the whole time: the full hour in
	// minutes, the full day and week in hours.
	want := api.ReportRow{
		StoreID:        "1",
		UptimeLastHour: 60,
		UptimeLastDay:  24,
		UptimeLastWeek: 168,
	}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("unexpected row:\n%s", diff)
	}
}

func TestBuildRow_noObservations(t *testing.T) {
	f := newFakeStore()

	refTime := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	row, err := report.Builder{Store: f}.BuildRow(context.Background(), "ghost", refTime)
	if err != nil {
		t.Fatalf("failed to build row: %s", err)
	}

	if diff := cmp.Diff(api.ReportRow{StoreID: "ghost"}, row); diff != "" {
		t.Errorf("expected an all-zero row:\n%s", diff)
	}
}

func TestBuildRow_statusSwitch(t *testing.T) {
	f := newFakeStore()

	refTime := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	f.addObservation("1", refTime.Add(-50*time.Minute), api.StatusActive)
	f.addObservation("1", refTime.Add(-20*time.Minute), api.StatusInactive)

	row, err := report.Builder{Store: f}.BuildRow(context.Background(), "1", refTime)
	if err != nil {
		t.Fatalf("failed to build row: %s", err)
	}

	if row.UptimeLastHour != 40 || row.DowntimeLastHour != 20 {
		t.Errorf("expected (40, 20) for the last hour but got (%v, %v)", row.UptimeLastHour, row.DowntimeLastHour)
	}

	// Over the whole day the pre-window status extends backward:
	// 23h40m active and 20m inactive.
	if row.UptimeLastDay != 23.67 || row.DowntimeLastDay != 0.33 {
		t.Errorf("expected (23.67, 0.33) for the last day but got (%v, %v)", row.UptimeLastDay, row.DowntimeLastDay)
	}
}

func TestBuildRow_unknownTimezone(t *testing.T) {
	f := newFakeStore()

	refTime := time.Date(2023, 1, 25, 12, 0, 0, 0, time.UTC)
	f.addObservation("1", refTime, api.StatusActive)
	f.zones["1"] = "Mars/Olympus"

	_, err := report.Builder{Store: f}.BuildRow(context.Background(), "1", refTime)
	if !errors.Is(err, api.ErrUnknownTimezone) {
		t.Errorf("expected ErrUnknownTimezone but got %v", err)
	}
}

func TestBuildRow_localBusinessHours(t *testing.T) {
	f := newFakeStore()

	// 2023-01-23 is a Monday. The store is in Denver and open Monday
	// 09:00-16:59 local; the reference time 2023-01-23 24:00 UTC is
	// 17:00 Denver, so the last hour is 16:00-17:00 local and every one of
	// its minute slices starts inside business hours.
	refTime := time.Date(2023, 1, 24, 0, 0, 0, 0, time.UTC)
	f.addObservation("1", refTime.Add(-30*time.Minute), api.StatusActive)
	f.zones["1"] = "America/Denver"
	f.hours["1"] = []api.HoursEntry{
		{StoreID: "1", Weekday: 0, Start: "09:00:00", End: "16:59:00"},
	}

	row, err := report.Builder{Store: f}.BuildRow(context.Background(), "1", refTime)
	if err != nil {
		t.Fatalf("failed to build row: %s", err)
	}

	if row.UptimeLastHour != 60 || row.DowntimeLastHour != 0 {
		t.Errorf("expected (60, 0) but got (%v, %v)", row.UptimeLastHour, row.DowntimeLastHour)
	}
}
