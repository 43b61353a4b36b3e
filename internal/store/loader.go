package store

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	api "github.com/storemon/storemon/lib-storemon"
)

const insertBatchSize = 1000

// LoadResult reports how many rows each seed file contributed.
// A count of -1 means the table already held rows and the file was skipped.
type LoadResult struct {
	Observations int
	Hours        int
	Timezones    int
}

// LoadSeedCSV bulk-loads the three seed files into the database.
// A table that already holds rows is left untouched, so re-running the
// loader is safe.
func (s *Store) LoadSeedCSV(ctx context.Context, statusPath, hoursPath, timezonePath string) (LoadResult, error) {
	result := LoadResult{Observations: -1, Hours: -1, Timezones: -1}

	empty, err := s.tableEmpty(ctx, &StatusLog{})
	if err != nil {
		return result, err
	}
	if empty {
		result.Observations, err = s.loadStatusCSV(ctx, statusPath)
		if err != nil {
			return result, errors.Wrapf(err, "load %s", statusPath)
		}
	}

	empty, err = s.tableEmpty(ctx, &BusinessHour{})
	if err != nil {
		return result, err
	}
	if empty {
		result.Hours, err = s.loadHoursCSV(ctx, hoursPath)
		if err != nil {
			return result, errors.Wrapf(err, "load %s", hoursPath)
		}
	}

	empty, err = s.tableEmpty(ctx, &StoreTimezone{})
	if err != nil {
		return result, err
	}
	if empty {
		result.Timezones, err = s.loadTimezoneCSV(ctx, timezonePath)
		if err != nil {
			return result, errors.Wrapf(err, "load %s", timezonePath)
		}
	}

	return result, nil
}

func (s *Store) tableEmpty(ctx context.Context, model interface{}) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(model).Count(&count).Error
	return count == 0, errors.Wrap(err, "count rows")
}

// columnIndex maps required header names to their positions.
func columnIndex(header []string, names ...string) (map[string]int, error) {
	idx := make(map[string]int, len(names))
	for i, h := range header {
		idx[h] = i
	}
	for _, name := range names {
		if _, ok := idx[name]; !ok {
			return nil, errors.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}

// eachRow reads a CSV file with a header row and calls fn for every data
// row. fn receives a getter keyed by column name.
func eachRow(path string, names []string, fn func(get func(string) string) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return 0, errors.Wrap(err, "read header")
	}
	idx, err := columnIndex(header, names...)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}

		err = fn(func(name string) string { return record[idx[name]] })
		if err != nil {
			return count, errors.Wrapf(err, "row %d", count+2)
		}
		count++
	}
}

func (s *Store) loadStatusCSV(ctx context.Context, path string) (int, error) {
	var rows []StatusLog

	count, err := eachRow(path, []string{"store_id", "status", "timestamp_utc"}, func(get func(string) string) error {
		ts, err := api.ParseTime(get("timestamp_utc"))
		if err != nil {
			return err
		}
		rows = append(rows, StatusLog{
			StoreID:   get("store_id"),
			Timestamp: ts,
			Status:    get("status"),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, s.CreateStatusLogs(ctx, rows)
}

func (s *Store) loadHoursCSV(ctx context.Context, path string) (int, error) {
	var rows []BusinessHour

	count, err := eachRow(path, []string{"store_id", "dayOfWeek", "start_time_local", "end_time_local"}, func(get func(string) string) error {
		day, err := strconv.Atoi(get("dayOfWeek"))
		if err != nil || day < 0 || day > 6 {
			return errors.Errorf("invalid dayOfWeek %q", get("dayOfWeek"))
		}
		rows = append(rows, BusinessHour{
			StoreID:        get("store_id"),
			Weekday:        day,
			StartTimeLocal: get("start_time_local"),
			EndTimeLocal:   get("end_time_local"),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, s.CreateBusinessHours(ctx, rows)
}

func (s *Store) loadTimezoneCSV(ctx context.Context, path string) (int, error) {
	var rows []StoreTimezone

	count, err := eachRow(path, []string{"store_id", "timezone_str"}, func(get func(string) string) error {
		rows = append(rows, StoreTimezone{
			StoreID:     get("store_id"),
			TimezoneStr: get("timezone_str"),
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, s.CreateStoreTimezones(ctx, rows)
}
