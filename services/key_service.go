package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"sensorhub/logger"
	"sensorhub/models"
	"sensorhub/utils"
)

// secretAttempts 시크릿 충돌 시 재생성 횟수
const secretAttempts = 3

// KeyService API 키 발급 및 조회
type KeyService struct {
	db       SQLExecutor
	generate func() (string, error)
}

// NewKeyService KeyService 생성
func NewKeyService(db SQLExecutor) *KeyService {
	return &KeyService{db: db, generate: utils.GenerateAPISecret}
}

// CreateKey 새 API 키 발급. 반환값의 Secret 은 이 응답에서만 노출된다.
func (s *KeyService) CreateKey(ctx context.Context, deviceLabel string) (*models.APIKey, error) {
	label := strings.TrimSpace(deviceLabel)
	if label == "" {
		return nil, missingFields("device_id")
	}
	if utf8.RuneCountInString(label) > models.MaxDeviceIDLength {
		return nil, invalidField("device_id", fmt.Sprintf("must be at most %d characters", models.MaxDeviceIDLength))
	}

	createdAt := utils.NowUTC()
	for attempt := 1; attempt <= secretAttempts; attempt++ {
		secret, err := s.generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate api key: %w", err)
		}

		id, err := insertReturningID(ctx, s.db,
			"INSERT INTO api_keys (key_hash, device_id, created_at) VALUES (?, ?, ?)",
			utils.HashAPIKey(secret), label, utils.FormatTimestamp(createdAt))
		if err != nil {
			if isDuplicateKeyError(err) {
				logger.WithFields(map[string]interface{}{
					"attempt": attempt,
				}).Warn("API key secret collision, regenerating")
				continue
			}
			return nil, fmt.Errorf("failed to insert api key: %w", err)
		}

		logger.WithFields(map[string]interface{}{
			"id":        id,
			"device_id": label,
			"key":       utils.MaskSecret(secret),
		}).Info("API key created")

		return &models.APIKey{
			ID:        id,
			DeviceID:  label,
			Secret:    secret,
			CreatedAt: createdAt,
		}, nil
	}

	return nil, ErrDuplicateSecret
}

// FindBySecret 시크릿과 정확히 일치하는 키 조회
func (s *KeyService) FindBySecret(ctx context.Context, secret string) (*models.APIKey, error) {
	if secret == "" {
		return nil, ErrNotFound
	}

	var (
		key       models.APIKey
		createdAt string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, device_id, created_at FROM api_keys WHERE key_hash = ?",
		utils.HashAPIKey(secret)).Scan(&key.ID, &key.DeviceID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query api key: %w", err)
	}

	key.CreatedAt, err = utils.ParseTimestamp(createdAt)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// ListDeviceLabels 중복 없는 디바이스 라벨 목록 (오름차순)
func (s *KeyService) ListDeviceLabels(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT device_id FROM api_keys ORDER BY device_id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	labels := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate devices: %w", err)
	}

	// 드라이버별 collation 차이와 무관하게 바이트 순서로 정렬
	sort.Strings(labels)
	return labels, nil
}

// Authenticate API 키 검증 규칙 (HTTP 헤더, MQTT 페이로드 공통)
// 빈 값은 조회 없이 ErrUnauthorized, 발급되지 않은 키는 ErrForbidden.
func (s *KeyService) Authenticate(ctx context.Context, secret string) (*models.APIKey, error) {
	if secret == "" {
		return nil, ErrUnauthorized
	}
	key, err := s.FindBySecret(ctx, secret)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

// Count 발급된 키 수
func (s *KeyService) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, s.db, "api_keys")
}

// DeviceCount 키가 발급된 서로 다른 디바이스 라벨 수
func (s *KeyService) DeviceCount(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT device_id) FROM api_keys").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count devices: %w", err)
	}
	return n, nil
}

// DeviceLabel 키 발급 요청 본문에서 라벨 추출 (device_id 우선).
// 값이 있는데 문자열이 아니면 invalid_field.
func DeviceLabel(input map[string]any) (string, error) {
	var req models.CreateAPIKeyRequest
	for _, f := range []struct {
		name string
		dest *string
	}{
		{"device_id", &req.DeviceID},
		{"device_name", &req.DeviceName},
	} {
		v, ok := input[f.name]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return "", invalidField(f.name, "must be a string")
		}
		*f.dest = s
	}
	return req.Label(), nil
}
