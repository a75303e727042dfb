package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"sensorhub/logger"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDHeader 요청/응답 추적 헤더. 클라이언트가 UUID 를 보내면 그대로 사용한다.
const RequestIDHeader = "X-Request-ID"

// statusRecorder 상태 코드와 응답 크기 기록
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wroteHeader {
		return
	}
	sr.status = code
	sr.wroteHeader = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if !sr.wroteHeader {
		sr.WriteHeader(http.StatusOK)
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// LoggingMiddleware 요청마다 요청 ID 를 부여하고 처리 결과를 한 줄로 기록한다.
// 요청 시작은 DEBUG, 완료는 상태 코드에 따라 INFO/WARN/ERROR.
func LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := incomingRequestID(r)
		w.Header().Set(RequestIDHeader, requestID)

		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Debug("request started")

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey, requestID)))

		fields := map[string]interface{}{
			"request_id":  requestID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
			"bytes":       rec.bytes,
			"ip":          getClientIP(r),
		}
		if r.URL.RawQuery != "" {
			fields["query"] = r.URL.RawQuery
		}
		if ua := r.UserAgent(); ua != "" {
			fields["user_agent"] = ua
		}
		logger.WithFields(fields).Log(getLogLevelForStatus(rec.status), "%s %s", r.Method, r.URL.Path)
	}
}

// incomingRequestID 유효한 UUID 헤더가 있으면 재사용, 없으면 새로 생성
func incomingRequestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// RequestID 컨텍스트의 요청 ID. 미들웨어 밖에서는 빈 문자열.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func getLogLevelForStatus(status int) logger.LogLevel {
	if status >= http.StatusInternalServerError {
		return logger.ERROR
	}
	if status >= http.StatusBadRequest {
		return logger.WARN
	}
	return logger.INFO
}

// getClientIP X-Forwarded-For 첫 항목, X-Real-IP, RemoteAddr 순
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// SetJSONHeader 기본 Content-Type 을 JSON 으로. 핸들러가 덮어쓸 수 있다 (스크린샷 다운로드).
func SetJSONHeader(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next(w, r)
	}
}

// ChainMiddleware 앞에 온 미들웨어가 바깥쪽에서 실행되도록 감싼다
func ChainMiddleware(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
