package database

import (
	"context"
	"strings"
	"testing"

	"sensorhub/config"
)

func memoryConfig() *config.Config {
	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLite.Path = ":memory:"
	return cfg
}

func TestOpen_SQLiteMemoryCreatesTables(t *testing.T) {
	db, err := Open(memoryConfig())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if db.Dialect != SQLite {
		t.Errorf("Dialect = %q, want sqlite", db.Dialect)
	}

	for _, table := range []string{"api_keys", "sensor_data", "temperature_readings", "device_logs", "screenshots"} {
		var name string
		err := db.QueryRowContext(context.Background(),
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	db, err := Open(memoryConfig())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := db.createTables(context.Background()); err != nil {
		t.Fatalf("createTables() second run error = %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.Database.Driver = "oracle"
	if _, err := Open(cfg); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("Open() error = %v, want unsupported driver", err)
	}
}

func TestSQLiteIdentityIsMonotonic(t *testing.T) {
	db, err := Open(memoryConfig())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	var first, second int64
	db.QueryRowContext(ctx, "INSERT INTO device_logs (device_id, message, created_at) VALUES ('d', 'a', 'x') RETURNING id").Scan(&first)
	db.ExecContext(ctx, "DELETE FROM device_logs WHERE id = ?", first)
	db.QueryRowContext(ctx, "INSERT INTO device_logs (device_id, message, created_at) VALUES ('d', 'b', 'x') RETURNING id").Scan(&second)

	if second <= first {
		t.Errorf("second id = %d, want > %d", second, first)
	}
}

func TestDialect_Rebind(t *testing.T) {
	q := "SELECT * FROM t WHERE a = ? AND b = '?' AND c = ?"
	if got := Postgres.Rebind(q); got != "SELECT * FROM t WHERE a = $1 AND b = '?' AND c = $2" {
		t.Errorf("Postgres.Rebind() = %q", got)
	}
	if got := SQLite.Rebind(q); got != q {
		t.Errorf("SQLite.Rebind() changed the query: %q", got)
	}
	if got := MySQL.Rebind(q); got != q {
		t.Errorf("MySQL.Rebind() changed the query: %q", got)
	}
}

func TestDialect_Properties(t *testing.T) {
	if Postgres.DriverName() != "pgx" || MySQL.DriverName() != "mysql" || SQLite.DriverName() != "sqlite" {
		t.Error("unexpected driver names")
	}
	if MySQL.SupportsReturning() {
		t.Error("MySQL should not use RETURNING")
	}
	if !SQLite.SupportsReturning() || !Postgres.SupportsReturning() {
		t.Error("SQLite and PostgreSQL support RETURNING")
	}
	if _, ok := ParseDialect("POSTGRES"); !ok {
		t.Error("ParseDialect should be case-insensitive")
	}
}

func TestSchema_MySQLInlinesIndexes(t *testing.T) {
	d := &Database{Dialect: MySQL}
	for _, stmt := range d.schema() {
		if strings.HasPrefix(stmt, "CREATE INDEX") {
			t.Fatalf("mysql schema contains standalone index: %s", stmt)
		}
	}
	joined := strings.Join(d.schema(), "\n")
	if !strings.Contains(joined, "AUTO_INCREMENT") || !strings.Contains(joined, "LONGBLOB") {
		t.Error("mysql schema should use AUTO_INCREMENT and LONGBLOB")
	}
}

func TestSchema_MySQLBinaryCollation(t *testing.T) {
	d := &Database{Dialect: MySQL}
	for _, stmt := range d.schema() {
		if !strings.HasPrefix(strings.TrimSpace(stmt), "CREATE TABLE") {
			continue
		}
		if !strings.Contains(stmt, "COLLATE utf8mb4_bin") {
			t.Errorf("table is not case-sensitive: %s", stmt)
		}
		if strings.Contains(stmt, "_ci") {
			t.Errorf("table uses case-insensitive collation: %s", stmt)
		}
	}
}
