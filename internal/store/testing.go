package store

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectAndInitializeTestDB opens an in-memory database with the full
// schema, for tests.
func ConnectAndInitializeTestDB() (*gorm.DB, error) {
	gormConfig := gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gormConfig)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(entities...)
	if err != nil {
		return nil, err
	}
	return db, nil
}
