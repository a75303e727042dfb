package services

import (
	"testing"

	"sensorhub/config"
	"sensorhub/database"
)

// testDB 테스트마다 독립된 in-memory SQLite
func testDB(t *testing.T) SQLExecutor {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLite.Path = ":memory:"

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewDatabaseExecutor(db)
}
