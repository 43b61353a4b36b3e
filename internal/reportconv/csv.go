// Package reportconv serializes report rows to tabular formats.
package reportconv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	api "github.com/storemon/storemon/lib-storemon"
)

// Columns is the fixed column order of every report artifact.
var Columns = []string{
	"store_id",
	"uptime_last_hour",
	"uptime_last_day",
	"uptime_last_week",
	"downtime_last_hour",
	"downtime_last_day",
	"downtime_last_week",
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ToCSV writes rows as a CSV report with a header row.
func ToCSV(w io.Writer, rows []api.ReportRow) error {
	c := csv.NewWriter(w)

	if err := c.Write(Columns); err != nil {
		return err
	}

	for _, r := range rows {
		err := c.Write([]string{
			r.StoreID,
			formatValue(r.UptimeLastHour),
			formatValue(r.UptimeLastDay),
			formatValue(r.UptimeLastWeek),
			formatValue(r.DowntimeLastHour),
			formatValue(r.DowntimeLastDay),
			formatValue(r.DowntimeLastWeek),
		})
		if err != nil {
			return err
		}
	}

	c.Flush()

	return c.Error()
}

// FromCSV reads a report artifact back into rows.
func FromCSV(r io.Reader) ([]api.ReportRow, error) {
	c := csv.NewReader(r)

	header, err := c.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if len(header) != len(Columns) {
		return nil, errors.Errorf("unexpected column count: %d", len(header))
	}

	var rows []api.ReportRow
	for {
		record, err := c.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		values := make([]float64, 6)
		for i := range values {
			values[i], err = strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "column %s", Columns[i+1])
			}
		}

		rows = append(rows, api.ReportRow{
			StoreID:          record[0],
			UptimeLastHour:   values[0],
			UptimeLastDay:    values[1],
			UptimeLastWeek:   values[2],
			DowntimeLastHour: values[3],
			DowntimeLastDay:  values[4],
			DowntimeLastWeek: values[5],
		})
	}
}
