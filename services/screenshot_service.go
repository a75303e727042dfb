package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"sensorhub/logger"
	"sensorhub/models"
	"sensorhub/utils"
)

const screenshotListLimit = 100

// imageContentTypes 포맷 태그 → MIME 하위 타입
var imageContentTypes = map[string]string{
	"png":  "png",
	"jpg":  "jpeg",
	"jpeg": "jpeg",
	"gif":  "gif",
	"bmp":  "bmp",
	"webp": "webp",
}

// ScreenshotService 스크린샷 바이너리 저장소
type ScreenshotService struct {
	db SQLExecutor
}

// NewScreenshotService ScreenshotService 생성
func NewScreenshotService(db SQLExecutor) *ScreenshotService {
	return &ScreenshotService{db: db}
}

// Create 스크린샷 저장. 검증은 device_id, format, 이미지 존재, 비어있지 않음 순서.
// image 가 nil 이면 파일 파트가 없었던 것으로 본다.
func (s *ScreenshotService) Create(ctx context.Context, deviceID, format string, image []byte) (*models.ScreenshotMeta, error) {
	deviceID = strings.TrimSpace(deviceID)
	if deviceID == "" {
		return nil, missingFields("device_id")
	}
	if utf8.RuneCountInString(deviceID) > models.MaxDeviceIDLength {
		return nil, invalidField("device_id", fmt.Sprintf("must be at most %d characters", models.MaxDeviceIDLength))
	}
	if strings.TrimSpace(format) == "" {
		return nil, missingFields("format")
	}
	if image == nil {
		return nil, missingFields("image")
	}
	if len(image) == 0 {
		return nil, invalidField("image", "empty file")
	}

	now := utils.NowUTC()
	id, err := insertReturningID(ctx, s.db,
		"INSERT INTO screenshots (device_id, format, size_bytes, image_data, created_at) VALUES (?, ?, ?, ?, ?)",
		deviceID, format, int64(len(image)), image, utils.FormatTimestamp(now))
	if err != nil {
		return nil, fmt.Errorf("failed to insert screenshot: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"id":        id,
		"device_id": deviceID,
		"format":    format,
		"size":      len(image),
	}).Info("Screenshot stored")

	return &models.ScreenshotMeta{
		ID:        id,
		DeviceID:  deviceID,
		Format:    format,
		SizeBytes: int64(len(image)),
		Timestamp: now,
	}, nil
}

// List 스크린샷 메타데이터 목록 (바이트 제외)
func (s *ScreenshotService) List(ctx context.Context, deviceID string) ([]models.ScreenshotMeta, error) {
	query := "SELECT id, device_id, format, size_bytes, created_at FROM screenshots"
	var args []any
	if deviceID = strings.TrimSpace(deviceID); deviceID != "" {
		query += " WHERE device_id = ?"
		args = append(args, deviceID)
	}
	query += fmt.Sprintf(" ORDER BY id DESC LIMIT %d", screenshotListLimit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query screenshots: %w", err)
	}
	defer rows.Close()

	metas := make([]models.ScreenshotMeta, 0)
	for rows.Next() {
		var (
			meta models.ScreenshotMeta
			ts   string
		)
		if err := rows.Scan(&meta.ID, &meta.DeviceID, &meta.Format, &meta.SizeBytes, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan screenshot: %w", err)
		}
		if meta.Timestamp, err = utils.ParseTimestamp(ts); err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate screenshots: %w", err)
	}
	return metas, nil
}

// Get id 로 이미지 조회
func (s *ScreenshotService) Get(ctx context.Context, id int64) (*models.ScreenshotImage, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, device_id, format, size_bytes, image_data, created_at FROM screenshots WHERE id = ?", id)
	img, err := scanImage(row)
	if err != nil {
		return nil, err
	}
	img.Filename = ScreenshotFilename(fmt.Sprintf("%d", img.ID), img.Format)
	return img, nil
}

// Latest 가장 최근 이미지 조회
func (s *ScreenshotService) Latest(ctx context.Context, deviceID string) (*models.ScreenshotImage, error) {
	query := "SELECT id, device_id, format, size_bytes, image_data, created_at FROM screenshots"
	var args []any
	if deviceID = strings.TrimSpace(deviceID); deviceID != "" {
		query += " WHERE device_id = ?"
		args = append(args, deviceID)
	}
	query += " ORDER BY id DESC LIMIT 1"

	img, err := scanImage(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	img.Filename = ScreenshotFilename("latest", img.Format)
	return img, nil
}

// Count 전체 스크린샷 수
func (s *ScreenshotService) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, s.db, "screenshots")
}

func scanImage(row rowScanner) (*models.ScreenshotImage, error) {
	var (
		img models.ScreenshotImage
		ts  string
	)
	err := row.Scan(&img.ID, &img.DeviceID, &img.Format, &img.SizeBytes, &img.Data, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan screenshot: %w", err)
	}
	if img.Timestamp, err = utils.ParseTimestamp(ts); err != nil {
		return nil, err
	}
	img.ContentType = ContentTypeForFormat(img.Format)
	return &img, nil
}

// ContentTypeForFormat 포맷 태그로 Content-Type 추론
func ContentTypeForFormat(format string) string {
	if sub, ok := imageContentTypes[strings.ToLower(strings.TrimSpace(format))]; ok {
		return "image/" + sub
	}
	return "application/octet-stream"
}

// ScreenshotFilename 다운로드 파일명 (screenshot_<suffix>.<format|bin>)
func ScreenshotFilename(suffix, format string) string {
	ext := strings.TrimSpace(format)
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("screenshot_%s.%s", suffix, ext)
}
