package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"sensorhub/logger"
	"sensorhub/models"
	"sensorhub/services"
	"sensorhub/utils"
)

// APIKeyHeader 디바이스 인증 헤더
const APIKeyHeader = "X-API-KEY"

const apiKeyContextKey contextKey = "api_key"

// Authenticator API 키 검증기 (services.KeyService)
type Authenticator interface {
	Authenticate(ctx context.Context, secret string) (*models.APIKey, error)
}

// APIKeyMiddleware X-API-KEY 헤더 검증 미들웨어
// 헤더 없음 → 401 (저장소 조회 없음), 미발급 키 → 403
func APIKeyMiddleware(auth Authenticator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			secret := r.Header.Get(APIKeyHeader)
			requestID := RequestID(r.Context())

			key, err := auth.Authenticate(r.Context(), secret)
			if err != nil {
				status, message := http.StatusInternalServerError, "Internal server error"
				switch {
				case errors.Is(err, services.ErrUnauthorized):
					status, message = http.StatusUnauthorized, "API key missing"
				case errors.Is(err, services.ErrForbidden):
					status, message = http.StatusForbidden, "Invalid API key"
				}

				fields := map[string]interface{}{
					"request_id": requestID,
					"ip":         getClientIP(r),
					"status":     status,
				}
				if secret != "" {
					fields["key"] = utils.MaskSecret(secret)
				}
				if status == http.StatusInternalServerError {
					fields["error"] = err.Error()
					logger.WithFields(fields).Error("API key lookup failed")
				} else {
					logger.WithFields(fields).Warn("API key rejected")
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				json.NewEncoder(w).Encode(models.ErrorResponse(message, nil))
				return
			}

			logger.WithFields(map[string]interface{}{
				"request_id": requestID,
				"device_id":  key.DeviceID,
			}).Debug("API key accepted")

			ctx := context.WithValue(r.Context(), apiKeyContextKey, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// APIKeyFromContext 인증된 키 (로그용, 접근 제어에는 사용하지 않음)
func APIKeyFromContext(ctx context.Context) (*models.APIKey, bool) {
	key, ok := ctx.Value(apiKeyContextKey).(*models.APIKey)
	return key, ok
}
