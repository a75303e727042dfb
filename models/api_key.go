package models

import (
	"strings"
	"time"
)

// APIKey 디바이스 API 키
// Secret 은 발급 응답에서만 채워진다 (저장소에는 다이제스트만 보관)
type APIKey struct {
	ID        int64     `json:"id" db:"id"`
	DeviceID  string    `json:"device_id" db:"device_id"`
	Secret    string    `json:"api_key,omitempty" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateAPIKeyRequest API 키 발급 요청
// device_id 와 device_name 은 같은 디바이스 라벨로 취급한다
type CreateAPIKeyRequest struct {
	DeviceID   string `json:"device_id,omitempty"`
	DeviceName string `json:"device_name,omitempty"`
}

// Label 요청에서 디바이스 라벨 추출 (device_id 우선)
func (r CreateAPIKeyRequest) Label() string {
	if label := strings.TrimSpace(r.DeviceID); label != "" {
		return label
	}
	return strings.TrimSpace(r.DeviceName)
}
