package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sensorhub/logger"
	"sensorhub/utils"
)

// Filter 동등 비교 필터 (컬럼 → 값). 빈 값은 무시한다.
type Filter map[string]string

// RecordStore 레코드 종류별 저장소
type RecordStore[T any] struct {
	db   SQLExecutor
	kind RecordKind[T]
}

// NewRecordStore RecordStore 생성
func NewRecordStore[T any](db SQLExecutor, kind RecordKind[T]) *RecordStore[T] {
	return &RecordStore[T]{db: db, kind: kind}
}

// Create 입력 검증 후 단일 INSERT 로 저장
func (s *RecordStore[T]) Create(ctx context.Context, input map[string]any) (T, error) {
	var zero T

	values, err := s.kind.Validate(input)
	if err != nil {
		return zero, err
	}

	cols := s.kind.columns()
	args := make([]any, 0, len(cols)+1)
	for _, f := range s.kind.Fields {
		if f.Numeric {
			args = append(args, values.Number(f.Name))
		} else {
			args = append(args, values.String(f.Name))
		}
	}

	now := utils.NowUTC()
	args = append(args, utils.FormatTimestamp(now))

	query := fmt.Sprintf("INSERT INTO %s (%s, created_at) VALUES (%s)",
		s.kind.Table, strings.Join(cols, ", "), placeholders(len(args)))

	id, err := insertReturningID(ctx, s.db, query, args...)
	if err != nil {
		return zero, fmt.Errorf("failed to insert %s: %w", s.kind.Name, err)
	}

	logger.WithFields(map[string]interface{}{
		"id":        id,
		"kind":      s.kind.Name,
		"device_id": values.String("device_id"),
	}).Debug("Record created")

	return s.kind.Build(id, now, values), nil
}

// List 필터 조건에 맞는 최신 레코드 목록 (id 내림차순, ListLimit 개 이하)
func (s *RecordStore[T]) List(ctx context.Context, filter Filter) ([]T, error) {
	where, args := s.where(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id DESC LIMIT %d",
		s.selectColumns(), s.kind.Table, where, s.kind.ListLimit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.kind.Name, err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		record, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", s.kind.Name, err)
	}
	return records, nil
}

// Get id 로 단건 조회
func (s *RecordStore[T]) Get(ctx context.Context, id int64) (T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", s.selectColumns(), s.kind.Table)
	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// Latest 필터 조건에 맞는 가장 최근 레코드
func (s *RecordStore[T]) Latest(ctx context.Context, filter Filter) (T, error) {
	where, args := s.where(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY id DESC LIMIT 1",
		s.selectColumns(), s.kind.Table, where)
	return s.scanOne(s.db.QueryRowContext(ctx, query, args...))
}

// Count 전체 레코드 수
func (s *RecordStore[T]) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, s.db, s.kind.Table)
}

func (s *RecordStore[T]) selectColumns() string {
	return "id, " + strings.Join(s.kind.columns(), ", ") + ", created_at"
}

// where 허용된 필터 컬럼만 순서대로 적용
func (s *RecordStore[T]) where(filter Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	for _, name := range s.kind.Filters {
		value := strings.TrimSpace(filter[name])
		if value == "" {
			continue
		}
		conds = append(conds, name+" = ?")
		args = append(args, value)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *RecordStore[T]) scanOne(row rowScanner) (T, error) {
	record, err := s.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, ErrNotFound
	}
	return record, err
}

func (s *RecordStore[T]) scan(row rowScanner) (T, error) {
	var (
		zero T
		id   int64
		ts   string
	)
	strs := make([]string, len(s.kind.Fields))
	nums := make([]float64, len(s.kind.Fields))

	dest := make([]any, 0, len(s.kind.Fields)+2)
	dest = append(dest, &id)
	for i, f := range s.kind.Fields {
		if f.Numeric {
			dest = append(dest, &nums[i])
		} else {
			dest = append(dest, &strs[i])
		}
	}
	dest = append(dest, &ts)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, err
		}
		return zero, fmt.Errorf("failed to scan %s: %w", s.kind.Name, err)
	}

	values := Values{strs: map[string]string{}, nums: map[string]float64{}}
	for i, f := range s.kind.Fields {
		if f.Numeric {
			values.nums[f.Name] = nums[i]
		} else {
			values.strs[f.Name] = strs[i]
		}
	}

	created, err := utils.ParseTimestamp(ts)
	if err != nil {
		return zero, err
	}
	return s.kind.Build(id, created, values), nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func countRows(ctx context.Context, db SQLExecutor, table string) (int64, error) {
	var n int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
