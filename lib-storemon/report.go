package storemon

// ReportRow is the computed uptime/downtime result for one store.
//
// Last-hour values are minutes; last-day and last-week values are hours.
// All values are rounded to 2 decimal places.
type ReportRow struct {
	StoreID string `json:"store_id"`

	UptimeLastHour float64 `json:"uptime_last_hour"`
	UptimeLastDay  float64 `json:"uptime_last_day"`
	UptimeLastWeek float64 `json:"uptime_last_week"`

	DowntimeLastHour float64 `json:"downtime_last_hour"`
	DowntimeLastDay  float64 `json:"downtime_last_day"`
	DowntimeLastWeek float64 `json:"downtime_last_week"`
}
