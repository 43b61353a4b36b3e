package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/storemon/storemon/internal/reportconv"
	api "github.com/storemon/storemon/lib-storemon"
)

// DefaultWorkers is the concurrency ceiling of per-store aggregation.
const DefaultWorkers = 10

// Runner owns the report job lifecycle: it allocates jobs, runs the
// computation in the background, writes the artifact, and records the
// terminal state. Concurrent jobs are independent; there is no
// deduplication and no cancellation of a started job.
type Runner struct {
	Store   Store
	Dir     string
	Workers int
	Console io.Writer
}

// New creates a Runner that writes artifacts into dir.
func New(s Store, dir string) *Runner {
	return &Runner{
		Store:   s,
		Dir:     dir,
		Workers: DefaultWorkers,
		Console: io.Discard,
	}
}

// Trigger allocates a job id, persists the job in running state, and starts
// the computation in the background. It returns the id without waiting.
func (r *Runner) Trigger(ctx context.Context) (string, error) {
	jobID := uuid.New().String()
	if err := r.Store.CreateJob(ctx, jobID); err != nil {
		return "", err
	}

	go r.Execute(context.Background(), jobID)

	return jobID, nil
}

// Status returns the current lifecycle record of a job.
// It is read only and safe to poll repeatedly.
func (r *Runner) Status(ctx context.Context, jobID string) (api.ReportJob, error) {
	return r.Store.Job(ctx, jobID)
}

// Ping reports whether the backing persistence is reachable.
func (r *Runner) Ping(ctx context.Context) error {
	return r.Store.Ping(ctx)
}

// Execute computes the report of a triggered job and writes its terminal
// state. Any failure marks the job failed with the error's description;
// rows computed before the failure are discarded.
func (r *Runner) Execute(ctx context.Context, jobID string) {
	rows, err := r.compute(ctx)
	if err != nil {
		r.fail(ctx, jobID, err)
		return
	}

	path := filepath.Join(r.Dir, jobID+".csv")
	if err := r.writeArtifact(path, rows); err != nil {
		r.fail(ctx, jobID, err)
		return
	}

	if err := r.Store.CompleteJob(ctx, jobID, path); err != nil {
		fmt.Fprintf(r.Console, "report %s: failed to record completion: %s\n", jobID, err)
		return
	}
	fmt.Fprintf(r.Console, "report %s: complete, %d stores\n", jobID, len(rows))
}

func (r *Runner) fail(ctx context.Context, jobID string, reason error) {
	fmt.Fprintf(r.Console, "report %s: failed: %s\n", jobID, reason)
	if err := r.Store.FailJob(ctx, jobID, reason.Error()); err != nil {
		fmt.Fprintf(r.Console, "report %s: failed to record failure: %s\n", jobID, err)
	}
}

// compute builds all report rows, fanning the per-store aggregation out over
// a bounded worker pool. Row order follows the store id enumeration order so
// artifacts are reproducible.
func (r *Runner) compute(ctx context.Context) ([]api.ReportRow, error) {
	refTime, err := r.Store.LatestTimestamp(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := r.Store.StoreIDs(ctx)
	if err != nil {
		return nil, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	builder := Builder{Store: r.Store}
	rows := make([]api.ReportRow, len(ids))
	indexes := make(chan int)

	var mu sync.Mutex
	var firstErr error

	wg := &sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				row, err := builder.BuildRow(ctx, ids[i], refTime)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				rows[i] = row
			}
		}()
	}

	for i := range ids {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return rows, nil
}

func (r *Runner) writeArtifact(path string, rows []api.ReportRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := reportconv.ToCSV(f, rows); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
