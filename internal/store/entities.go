// Package store persists status observations, business hours, store
// timezones, and report jobs.
package store

import (
	"time"
)

// List entities to auto-migrate
var entities []interface{} = []interface{}{
	StatusLog{},
	BusinessHour{},
	StoreTimezone{},
	ReportJob{},
}

// Abstract entity, all other entities should be derived from it
type BaseEntity struct {
	ID uint64 `gorm:"primaryKey"`
}

// StatusLog is one sampled status reading of a store.
type StatusLog struct {
	BaseEntity
	StoreID   string    `gorm:"type:varchar(64);not null;index:idx_status_store_time,priority:1"`
	Timestamp time.Time `gorm:"not null;index:idx_status_store_time,priority:2"`
	Status    string    `gorm:"type:varchar(10);not null"`
}

// BusinessHour is one open interval on one weekday of a store.
// Weekday follows the Monday=0 convention.
type BusinessHour struct {
	BaseEntity
	StoreID        string `gorm:"type:varchar(64);not null;index"`
	Weekday        int    `gorm:"not null"`
	StartTimeLocal string `gorm:"type:varchar(8);not null"`
	EndTimeLocal   string `gorm:"type:varchar(8);not null"`
}

// StoreTimezone maps a store to its IANA timezone identifier.
type StoreTimezone struct {
	BaseEntity
	StoreID     string `gorm:"type:varchar(64);not null;index"`
	TimezoneStr string `gorm:"type:varchar(64);not null"`
}

// ReportJob is the lifecycle record of one report generation request.
// A job is created running and updated exactly once to complete or failed.
type ReportJob struct {
	BaseEntity
	JobID     string `gorm:"type:varchar(40);not null;uniqueIndex"`
	Status    string `gorm:"type:varchar(10);not null"`
	Artifact  string `gorm:"type:varchar(256)"`
	Error     string `gorm:"type:varchar(1024)"`
	CreatedAt time.Time
}
