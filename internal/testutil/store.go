// Package testutil provides shared fixtures for Storemon tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/storemon/storemon/internal/store"
)

// NewStore creates a Store backed by a fresh in-memory database.
func NewStore(t testing.TB) *store.Store {
	t.Helper()

	db, err := store.ConnectAndInitializeTestDB()
	if err != nil {
		t.Fatalf("failed to create test database: %s", err)
	}

	return store.New(db)
}

// SeedObservation inserts one status log row.
func SeedObservation(t testing.TB, s *store.Store, storeID string, timestamp time.Time, status string) {
	t.Helper()

	err := s.CreateStatusLogs(context.Background(), []store.StatusLog{
		{StoreID: storeID, Timestamp: timestamp, Status: status},
	})
	if err != nil {
		t.Fatalf("failed to seed observation: %s", err)
	}
}

// SeedHours inserts one business-hours row.
func SeedHours(t testing.TB, s *store.Store, storeID string, weekday int, start, end string) {
	t.Helper()

	err := s.CreateBusinessHours(context.Background(), []store.BusinessHour{
		{StoreID: storeID, Weekday: weekday, StartTimeLocal: start, EndTimeLocal: end},
	})
	if err != nil {
		t.Fatalf("failed to seed business hours: %s", err)
	}
}

// SeedTimezone inserts one timezone row.
func SeedTimezone(t testing.TB, s *store.Store, storeID, zone string) {
	t.Helper()

	err := s.CreateStoreTimezones(context.Background(), []store.StoreTimezone{
		{StoreID: storeID, TimezoneStr: zone},
	})
	if err != nil {
		t.Fatalf("failed to seed timezone: %s", err)
	}
}
