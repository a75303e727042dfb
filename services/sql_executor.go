package services

import (
	"context"
	"database/sql"
	"fmt"

	"sensorhub/database"
)

// SQLExecutor는 서비스 계층이 데이터베이스 구현 세부사항으로부터 분리되도록 해주는 최소한의 인터페이스입니다.
// 쿼리는 ? 플레이스홀더로 작성하며, 방언에 맞는 변환은 구현체가 담당합니다.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PingContext(ctx context.Context) error
	Dialect() database.Dialect
}

type sqlDBExecutor struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewSQLExecutor는 *sql.DB를 감싸는 SQLExecutor를 생성합니다.
func NewSQLExecutor(db *sql.DB, dialect database.Dialect) SQLExecutor {
	return &sqlDBExecutor{db: db, dialect: dialect}
}

// NewDatabaseExecutor는 database.Open 결과로부터 SQLExecutor를 생성합니다.
func NewDatabaseExecutor(db *database.Database) SQLExecutor {
	return NewSQLExecutor(db.DB, db.Dialect)
}

func (s *sqlDBExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *sqlDBExecutor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *sqlDBExecutor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.dialect.Rebind(query), args...)
}

func (s *sqlDBExecutor) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlDBExecutor) Dialect() database.Dialect {
	return s.dialect
}

// insertReturningID는 단일 INSERT를 실행하고 생성된 id를 반환합니다.
// SQLite/PostgreSQL은 RETURNING, MySQL은 LastInsertId를 사용합니다.
func insertReturningID(ctx context.Context, db SQLExecutor, query string, args ...any) (int64, error) {
	if db.Dialect().SupportsReturning() {
		var id int64
		if err := db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read insert id: %w", err)
	}
	return id, nil
}
