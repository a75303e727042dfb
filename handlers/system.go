package handlers

import (
	"context"
	"net/http"
	"time"

	"sensorhub/logger"
	"sensorhub/models"
	"sensorhub/services"
	"sensorhub/utils"
)

const healthTimeout = 2 * time.Second

// SystemHandler 루트, 헬스 체크, 디바이스 목록, 통계, 명령
type SystemHandler struct {
	keys  *services.KeyService
	stats *services.StatsService
}

// NewSystemHandler SystemHandler 생성
func NewSystemHandler(keys *services.KeyService, stats *services.StatsService) *SystemHandler {
	return &SystemHandler{keys: keys, stats: stats}
}

// Home 고정 응답 (인증 없음)
// @Summary 루트
// @Tags 시스템
// @Produce plain
// @Success 418 {string} string "I am a teapot"
// @Router / [get]
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusTeapot)
	w.Write([]byte("I am a teapot"))
}

// Health 데이터베이스 연결 확인 (인증 없음)
// @Summary 헬스 체크
// @Tags 시스템
// @Produce json
// @Success 200 {object} models.HealthStatus "정상"
// @Failure 503 {object} models.HealthStatus "데이터베이스 연결 불가"
// @Router /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status := models.HealthStatus{
		Status:   "ok",
		Database: "ok",
		Time:     utils.FormatTimestamp(utils.NowUTC()),
	}
	if err := h.stats.Ping(ctx); err != nil {
		logger.Warn("Health check failed: %v", err)
		status.Status = "degraded"
		status.Database = "unreachable"
		writeJSON(w, http.StatusServiceUnavailable, status)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Devices 디바이스 라벨 목록
// @Summary 디바이스 목록
// @Description 발급된 API 키의 디바이스 라벨을 중복 없이 오름차순으로 반환합니다
// @Tags 조회
// @Produce json
// @Security APIKeyAuth
// @Success 200 {array} string "디바이스 라벨"
// @Router /devices [get]
func (h *SystemHandler) Devices(w http.ResponseWriter, r *http.Request) {
	labels, err := h.keys.ListDeviceLabels(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Devices")
		return
	}
	writeJSON(w, http.StatusOK, labels)
}

// Stats 저장소 통계
// @Summary 저장소 통계
// @Tags 조회
// @Produce json
// @Security APIKeyAuth
// @Success 200 {object} models.Stats "통계"
// @Router /stats [get]
func (h *SystemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Collect(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "Stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Command 디바이스 제어 명령 (고정 응답)
// @Summary 제어 명령 조회
// @Tags 디바이스
// @Produce json
// @Security APIKeyAuth
// @Success 200 {object} models.Command "명령"
// @Router /command [get]
func (h *SystemHandler) Command(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.DefaultCommand())
}
