package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sensorhub/config"
	"sensorhub/logger"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// connectionTimeout 초기 연결 확인 타임아웃
const connectionTimeout = 5 * time.Second

// Database *sql.DB 와 방언 정보를 함께 보관
type Database struct {
	*sql.DB
	Dialect Dialect
}

// Open 설정에 맞는 드라이버로 데이터베이스를 열고 테이블을 준비한다
func Open(cfg *config.Config) (*Database, error) {
	dialect, ok := ParseDialect(cfg.Database.Driver)
	if !ok {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := sql.Open(dialect.DriverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite: 단일 writer, :memory: 는 커넥션이 닫히면 사라지므로 수명 제한 없음
	if dialect == SQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(config.Timeout(cfg.Database.ConnMaxLifetime))
	}

	d := &Database{DB: db, Dialect: dialect}

	// 연결 테스트
	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// 테이블 생성
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"driver": string(dialect),
	}).Info("Database initialized successfully")
	return d, nil
}

// createTables 엔티티별 테이블 및 인덱스 생성
func (d *Database) createTables(ctx context.Context) error {
	for _, stmt := range d.schema() {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			// MySQL 은 CREATE INDEX IF NOT EXISTS 를 지원하지 않아 인덱스를 테이블 정의에 포함한다
			if strings.Contains(err.Error(), "already exists") || strings.Contains(err.Error(), "Duplicate key name") {
				continue
			}
			return fmt.Errorf("failed to execute SQL: %w", err)
		}
	}
	return nil
}

// schema 방언별 DDL 목록
func (d *Database) schema() []string {
	id := d.Dialect.identityColumn()
	opts := d.Dialect.tableOptions()
	mysql := d.Dialect == MySQL

	index := func(name, table, column string) string {
		if mysql {
			return ""
		}
		return fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", name, table, column)
	}
	inline := func(name, column string) string {
		if !mysql {
			return ""
		}
		return fmt.Sprintf(",\n\t\t\tINDEX %s (%s)", name, column)
	}

	stmts := []string{
		// API 키 테이블 (시크릿은 다이제스트로만 저장)
		`CREATE TABLE IF NOT EXISTS api_keys (
			` + id + `,
			key_hash VARCHAR(128) NOT NULL UNIQUE,
			device_id VARCHAR(255) NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT ''` + inline("idx_api_keys_device", "device_id") + `
		)` + opts,

		// 센서 측정값 테이블
		`CREATE TABLE IF NOT EXISTS sensor_data (
			` + id + `,
			device_id VARCHAR(255) NOT NULL,
			sensor_type VARCHAR(255) NOT NULL,
			value DOUBLE PRECISION NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT ''` + inline("idx_sensor_data_device", "device_id") + `
		)` + opts,

		// 온습도 측정값 테이블
		`CREATE TABLE IF NOT EXISTS temperature_readings (
			` + id + `,
			device_id VARCHAR(255) NOT NULL,
			temperature_celsius DOUBLE PRECISION NOT NULL,
			humidity_percent DOUBLE PRECISION NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT ''` + inline("idx_temperature_device", "device_id") + `
		)` + opts,

		// 디바이스 로그 테이블
		`CREATE TABLE IF NOT EXISTS device_logs (
			` + id + `,
			device_id VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT ''` + inline("idx_device_logs_device", "device_id") + `
		)` + opts,

		// 스크린샷 테이블
		`CREATE TABLE IF NOT EXISTS screenshots (
			` + id + `,
			device_id VARCHAR(255) NOT NULL,
			format TEXT NOT NULL,
			size_bytes BIGINT NOT NULL,
			image_data ` + d.Dialect.blobType() + ` NOT NULL,
			created_at VARCHAR(50) NOT NULL DEFAULT ''` + inline("idx_screenshots_device", "device_id") + `
		)` + opts,

		index("idx_api_keys_device", "api_keys", "device_id"),
		index("idx_sensor_data_device", "sensor_data", "device_id"),
		index("idx_sensor_data_type", "sensor_data", "sensor_type"),
		index("idx_temperature_device", "temperature_readings", "device_id"),
		index("idx_device_logs_device", "device_logs", "device_id"),
		index("idx_screenshots_device", "screenshots", "device_id"),
	}

	out := stmts[:0]
	for _, s := range stmts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Close 데이터베이스 연결 종료
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
