// Package report computes per-store uptime/downtime reports and tracks
// their job lifecycle.
package report

import (
	"context"
	"time"

	api "github.com/storemon/storemon/lib-storemon"
)

// Window is one trailing interval ending at the report's reference time.
type Window struct {
	Label    string
	Duration time.Duration
}

// Windows are the three trailing windows of every report row.
var Windows = []Window{
	{"last_hour", time.Hour},
	{"last_day", 24 * time.Hour},
	{"last_week", 7 * 24 * time.Hour},
}

// Store is the persistence that report computation reads and writes.
type Store interface {
	// LatestTimestamp returns the reference time anchor.
	// It fails with ErrNoData when there is no observation at all.
	LatestTimestamp(ctx context.Context) (time.Time, error)

	// StoreIDs enumerates the distinct store ids, in a stable order.
	StoreIDs(ctx context.Context) ([]string, error)

	// ObservationsBetween fetches observations in [since, until], inclusive,
	// ordered by timestamp.
	ObservationsBetween(ctx context.Context, storeID string, since, until time.Time) ([]api.Observation, error)

	// Hours fetches the business-hours rows of a store.
	Hours(ctx context.Context, storeID string) ([]api.HoursEntry, error)

	// Timezone returns a store's zone identifier, or "" when unset.
	Timezone(ctx context.Context, storeID string) (string, error)

	// CreateJob persists a new job in running state.
	CreateJob(ctx context.Context, jobID string) error

	// CompleteJob transitions a running job to complete.
	CompleteJob(ctx context.Context, jobID, artifact string) error

	// FailJob transitions a running job to failed.
	FailJob(ctx context.Context, jobID, message string) error

	// Job fetches a job record; ErrJobNotFound when it does not exist.
	Job(ctx context.Context, jobID string) (api.ReportJob, error)

	// Ping reports whether the persistence is reachable.
	Ping(ctx context.Context) error
}
