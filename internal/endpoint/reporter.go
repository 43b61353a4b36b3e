package endpoint

import (
	"context"

	api "github.com/storemon/storemon/lib-storemon"
)

type Reporter interface {
	// Trigger starts a new report job and returns its id.
	Trigger(ctx context.Context) (string, error)

	// Status returns the lifecycle record of a report job.
	Status(ctx context.Context, jobID string) (api.ReportJob, error)

	// Ping reports whether the backing persistence is reachable.
	Ping(ctx context.Context) error
}
