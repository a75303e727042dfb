package models

import "time"

// ScreenshotMeta 스크린샷 메타데이터 (이미지 바이트 제외)
type ScreenshotMeta struct {
	ID        int64     `json:"id"`
	DeviceID  string    `json:"device_id"`
	Format    string    `json:"format"`
	SizeBytes int64     `json:"size_bytes"`
	Timestamp time.Time `json:"timestamp"`
}

// ScreenshotImage 다운로드용 스크린샷 데이터
type ScreenshotImage struct {
	ScreenshotMeta
	Data        []byte `json:"-"`
	ContentType string `json:"-"`
	Filename    string `json:"-"`
}
