package services

import (
	"fmt"
	"testing"
	"time"

	"hotel-persistence/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// seededTestDB opens a named in-memory SQLite database and loads the
// bootstrap fixture into it.
func seededTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := config.ResetAndSeed(db); err != nil {
		t.Fatalf("ResetAndSeed: %v", err)
	}
	return db
}

func uintPtr(v uint) *uint { return &v }

func dtt(year, month, day, hour, min int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, 0, 0, time.UTC)
}
