package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"sensorhub/logger"
	"sensorhub/middleware"
	"sensorhub/models"
	"sensorhub/services"

	"github.com/gorilla/mux"
)

// maxJSONBody JSON 요청 본문 최대 크기
const maxJSONBody = 1 << 20

var errNotObject = errors.New("request body must be a JSON object")

// writeJSON 상태 코드와 함께 JSON 응답
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError 서비스 오류를 HTTP 상태로 변환
// 내부 오류는 로그에만 남기고 클라이언트에는 일반 메시지만 전달한다
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, subject string) {
	if ve, ok := services.IsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse(ve.Message, ve.Code, ve.Fields))
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse(subject+" not found", nil))
	case errors.Is(err, services.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse("API key missing", nil))
	case errors.Is(err, services.ErrForbidden):
		writeJSON(w, http.StatusForbidden, models.ErrorResponse("Invalid API key", nil))
	default:
		logger.WithFields(map[string]interface{}{
			"request_id": middleware.RequestID(r.Context()),
			"path":       r.URL.Path,
			"error":      err.Error(),
		}).Error("Request failed")
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse("Internal server error", nil))
	}
}

// decodeObject JSON 객체 본문을 map 으로 디코딩 (숫자는 json.Number 유지)
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}

// pathID 라우트 변수 {id} 파싱
func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", raw, services.ErrNotFound)
	}
	return id, nil
}

// NotFound 등록되지 않은 경로
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, models.ErrorResponse("Resource not found", nil))
}

// MethodNotAllowed 허용되지 않은 메서드
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse("Method not allowed", nil))
}
