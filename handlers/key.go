package handlers

import (
	"net/http"

	"sensorhub/logger"
	"sensorhub/middleware"
	"sensorhub/models"
	"sensorhub/services"
)

// KeyHandler API 키 발급
type KeyHandler struct {
	keys *services.KeyService
}

// NewKeyHandler KeyHandler 생성
func NewKeyHandler(keys *services.KeyService) *KeyHandler {
	return &KeyHandler{keys: keys}
}

// CreateAPIKey API 키 발급
// @Summary API 키 발급
// @Description 디바이스 라벨(device_id 또는 device_name)로 새 API 키를 발급합니다. 키는 이 응답에서만 확인할 수 있습니다.
// @Tags 인증
// @Accept json
// @Produce json
// @Param request body models.CreateAPIKeyRequest true "디바이스 라벨"
// @Success 200 {object} models.APIKey "발급 성공"
// @Failure 400 {object} models.APIResponse "라벨 누락 또는 문자열이 아님"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /create_api_key [post]
func (h *KeyHandler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	body, err := decodeObject(w, r)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid create key request")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid request body", err))
		return
	}
	label, err := services.DeviceLabel(body)
	if err != nil {
		writeServiceError(w, r, err, "API key")
		return
	}

	key, err := h.keys.CreateKey(r.Context(), label)
	if err != nil {
		writeServiceError(w, r, err, "API key")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, key)
}

