package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/storemon/storemon/internal/smerr"
	api "github.com/storemon/storemon/lib-storemon"
)

// Store is the database access layer of Storemon.
type Store struct {
	db *gorm.DB
}

// New wraps an opened database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.db.WithContext(ctx).DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// ObservationsBetween fetches a store's observations with timestamp in
// [since, until], both ends inclusive, ordered by timestamp ascending.
func (s *Store) ObservationsBetween(ctx context.Context, storeID string, since, until time.Time) ([]api.Observation, error) {
	var logs []StatusLog
	err := s.db.WithContext(ctx).
		Where("store_id = ? AND timestamp >= ? AND timestamp <= ?", storeID, since, until).
		Order("timestamp asc").
		Find(&logs).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch status logs")
	}

	observations := make([]api.Observation, len(logs))
	for i, l := range logs {
		observations[i] = api.Observation{
			StoreID: l.StoreID,
			Time:    l.Timestamp,
			Status:  api.ParseStatus(l.Status),
		}
	}
	return observations, nil
}

// LatestTimestamp returns the timestamp of the most recent observation
// across all stores. It fails with ErrNoData when the table is empty.
func (s *Store) LatestTimestamp(ctx context.Context) (time.Time, error) {
	var log StatusLog
	err := s.db.WithContext(ctx).Order("timestamp desc").First(&log).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, smerr.New(api.ErrNoData, nil, "status log is empty")
	}
	if err != nil {
		return time.Time{}, errors.Wrap(err, "fetch latest status log")
	}
	return log.Timestamp, nil
}

// StoreIDs returns the distinct store ids present in the status log,
// in a stable order.
func (s *Store) StoreIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&StatusLog{}).
		Distinct().
		Order("store_id asc").
		Pluck("store_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch store ids")
	}
	return ids, nil
}

// Hours fetches all business-hours rows of a store.
// Zero rows mean the store is always open.
func (s *Store) Hours(ctx context.Context, storeID string) ([]api.HoursEntry, error) {
	var rows []BusinessHour
	err := s.db.WithContext(ctx).
		Where(&BusinessHour{StoreID: storeID}).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch business hours")
	}

	entries := make([]api.HoursEntry, len(rows))
	for i, r := range rows {
		entries[i] = api.HoursEntry{
			StoreID: r.StoreID,
			Weekday: r.Weekday,
			Start:   r.StartTimeLocal,
			End:     r.EndTimeLocal,
		}
	}
	return entries, nil
}

// Timezone returns a store's IANA zone identifier, or an empty string when
// the store has no timezone record.
func (s *Store) Timezone(ctx context.Context, storeID string) (string, error) {
	var row StoreTimezone
	err := s.db.WithContext(ctx).Where(&StoreTimezone{StoreID: storeID}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "fetch timezone")
	}
	return row.TimezoneStr, nil
}

// CreateStatusLogs inserts status log rows in batches.
func (s *Store) CreateStatusLogs(ctx context.Context, logs []StatusLog) error {
	if len(logs) == 0 {
		return nil
	}
	return errors.Wrap(s.db.WithContext(ctx).CreateInBatches(logs, insertBatchSize).Error, "create status logs")
}

// CreateBusinessHours inserts business-hours rows in batches.
func (s *Store) CreateBusinessHours(ctx context.Context, rows []BusinessHour) error {
	if len(rows) == 0 {
		return nil
	}
	return errors.Wrap(s.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error, "create business hours")
}

// CreateStoreTimezones inserts timezone rows in batches.
func (s *Store) CreateStoreTimezones(ctx context.Context, rows []StoreTimezone) error {
	if len(rows) == 0 {
		return nil
	}
	return errors.Wrap(s.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error, "create store timezones")
}

// CreateJob persists a new report job in running state.
func (s *Store) CreateJob(ctx context.Context, jobID string) error {
	job := ReportJob{
		JobID:     jobID,
		Status:    api.JobRunning.String(),
		CreatedAt: time.Now(),
	}
	return errors.Wrap(s.db.WithContext(ctx).Create(&job).Error, "create report job")
}

// CompleteJob transitions a running job to complete with its artifact path.
// A job that already reached a terminal state is left untouched.
func (s *Store) CompleteJob(ctx context.Context, jobID, artifact string) error {
	err := s.db.WithContext(ctx).
		Model(&ReportJob{}).
		Where("job_id = ? AND status = ?", jobID, api.JobRunning.String()).
		Updates(map[string]interface{}{
			"status":   api.JobComplete.String(),
			"artifact": artifact,
		}).Error
	return errors.Wrap(err, "complete report job")
}

// FailJob transitions a running job to failed with a human readable detail.
// A job that already reached a terminal state is left untouched.
func (s *Store) FailJob(ctx context.Context, jobID, message string) error {
	err := s.db.WithContext(ctx).
		Model(&ReportJob{}).
		Where("job_id = ? AND status = ?", jobID, api.JobRunning.String()).
		Updates(map[string]interface{}{
			"status": api.JobFailed.String(),
			"error":  message,
		}).Error
	return errors.Wrap(err, "fail report job")
}

// Job fetches a report job by id. It fails with ErrJobNotFound when no such
// job exists.
func (s *Store) Job(ctx context.Context, jobID string) (api.ReportJob, error) {
	var row ReportJob
	err := s.db.WithContext(ctx).Where(&ReportJob{JobID: jobID}).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return api.ReportJob{}, smerr.New(api.ErrJobNotFound, nil, "job %s", jobID)
	}
	if err != nil {
		return api.ReportJob{}, errors.Wrap(err, "fetch report job")
	}

	return api.ReportJob{
		ID:        row.JobID,
		Status:    api.ParseJobStatus(row.Status),
		Artifact:  row.Artifact,
		Error:     row.Error,
		CreatedAt: row.CreatedAt,
	}, nil
}
