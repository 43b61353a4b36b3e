package report

import (
	"context"
	"math"
	"time"

	"github.com/storemon/storemon/internal/hours"
	"github.com/storemon/storemon/internal/timezone"
	"github.com/storemon/storemon/internal/uptime"
	api "github.com/storemon/storemon/lib-storemon"
)

// Builder computes one report row per store.
type Builder struct {
	Store Store
}

// BuildRow computes the uptime/downtime of one store over the three trailing
// windows ending at refTime. A store with no observation in a window yields
// zeros for that window, not an error.
func (b Builder) BuildRow(ctx context.Context, storeID string, refTime time.Time) (api.ReportRow, error) {
	zone, err := b.Store.Timezone(ctx, storeID)
	if err != nil {
		return api.ReportRow{}, err
	}
	loc, err := timezone.Load(zone)
	if err != nil {
		return api.ReportRow{}, err
	}

	entries, err := b.Store.Hours(ctx, storeID)
	if err != nil {
		return api.ReportRow{}, err
	}
	sched, err := hours.New(entries)
	if err != nil {
		return api.ReportRow{}, err
	}

	row := api.ReportRow{StoreID: storeID}
	for _, w := range Windows {
		windowStart := refTime.Add(-w.Duration)

		observations, err := b.Store.ObservationsBetween(ctx, storeID, windowStart, refTime)
		if err != nil {
			return api.ReportRow{}, err
		}

		up, down := uptime.Estimate(observations, sched, loc, windowStart.In(loc), refTime.In(loc))

		switch w.Label {
		case "last_hour":
			row.UptimeLastHour = up
			row.DowntimeLastHour = down
		case "last_day":
			row.UptimeLastDay = toHours(up)
			row.DowntimeLastDay = toHours(down)
		case "last_week":
			row.UptimeLastWeek = toHours(up)
			row.DowntimeLastWeek = toHours(down)
		}
	}

	return row, nil
}

// toHours converts minutes to hours, rounded to 2 decimal places.
func toHours(minutes float64) float64 {
	return math.Round(minutes/60*100) / 100
}
