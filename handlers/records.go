package handlers

import (
	"net/http"

	"sensorhub/logger"
	"sensorhub/middleware"
	"sensorhub/models"
	"sensorhub/services"
)

// RecordHandler 레코드 종류별 HTTP 핸들러 (센서, 온습도, 로그 공용)
type RecordHandler[T any] struct {
	store    *services.RecordStore[T]
	subject  string
	onCreate func(T)
}

// NewRecordHandler RecordHandler 생성. onCreate 는 저장 성공 후 호출된다 (nil 허용).
func NewRecordHandler[T any](store *services.RecordStore[T], subject string, onCreate func(T)) *RecordHandler[T] {
	return &RecordHandler[T]{store: store, subject: subject, onCreate: onCreate}
}

// Create 레코드 저장
// @Summary 레코드 저장
// @Description 센서 측정값, 온습도 측정값, 디바이스 로그를 저장합니다. 누락 필드는 한 번에 보고되며 숫자 필드는 숫자 문자열도 허용합니다.
// @Tags 수집
// @Accept json
// @Produce json
// @Security APIKeyAuth
// @Param request body object true "레코드 필드"
// @Success 201 {object} object "저장된 레코드"
// @Failure 400 {object} models.APIResponse "검증 실패"
// @Failure 401 {object} models.APIResponse "API 키 누락"
// @Failure 403 {object} models.APIResponse "유효하지 않은 API 키"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /sensor-data [post]
// @Router /sensor/temperature [post]
// @Router /logs [post]
func (h *RecordHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	record, ok := h.create(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// LegacyCreate 구버전 펌웨어용 /data 수집 (응답 형식만 다름)
// @Summary 레거시 센서 데이터 수집
// @Description POST /sensor-data 와 같은 검증/저장을 수행하고 고정 메시지를 반환합니다
// @Tags 수집
// @Accept json
// @Produce json
// @Security APIKeyAuth
// @Param request body object true "센서 측정값"
// @Success 200 {object} models.StatusMessage "저장 성공"
// @Failure 400 {object} models.APIResponse "검증 실패"
// @Router /data [post]
func (h *RecordHandler[T]) LegacyCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.create(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, models.StatusMessage{Status: "ok", Message: "Data logged"})
}

func (h *RecordHandler[T]) create(w http.ResponseWriter, r *http.Request) (T, bool) {
	var zero T

	input, err := decodeObject(w, r)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"request_id": middleware.RequestID(r.Context()),
			"error":      err.Error(),
		}).Warn("Invalid record body")
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid request body", err))
		return zero, false
	}

	record, err := h.store.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, err, h.subject)
		return zero, false
	}

	if h.onCreate != nil {
		h.onCreate(record)
	}
	return record, true
}

// List 최근 레코드 목록
// @Summary 레코드 목록 조회
// @Description 최신순(id 내림차순)으로 조회합니다. 센서/온습도는 최대 100건, 로그는 최대 200건입니다.
// @Tags 조회
// @Produce json
// @Security APIKeyAuth
// @Param device_id query string false "디바이스 ID"
// @Param sensor_type query string false "센서 종류 (센서 측정값만 해당)"
// @Success 200 {array} object "레코드 목록"
// @Failure 401 {object} models.APIResponse "API 키 누락"
// @Failure 403 {object} models.APIResponse "유효하지 않은 API 키"
// @Router /sensor-data [get]
// @Router /sensor/temperature [get]
// @Router /logs [get]
func (h *RecordHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(r.Context(), queryFilter(r))
	if err != nil {
		writeServiceError(w, r, err, h.subject)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Get id 로 단건 조회
// @Summary 레코드 단건 조회
// @Tags 조회
// @Produce json
// @Security APIKeyAuth
// @Param id path int true "레코드 ID"
// @Success 200 {object} object "레코드"
// @Failure 404 {object} models.APIResponse "레코드 없음"
// @Router /sensor-data/{id} [get]
// @Router /sensor/temperature/{id} [get]
// @Router /logs/{id} [get]
func (h *RecordHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err, h.subject)
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.subject)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// Latest 가장 최근 레코드
// @Summary 최신 레코드 조회
// @Tags 조회
// @Produce json
// @Security APIKeyAuth
// @Param device_id query string false "디바이스 ID"
// @Success 200 {object} object "레코드"
// @Failure 404 {object} models.APIResponse "레코드 없음"
// @Router /sensor-data/latest [get]
// @Router /sensor/temperature/latest [get]
// @Router /logs/latest [get]
func (h *RecordHandler[T]) Latest(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.Latest(r.Context(), queryFilter(r))
	if err != nil {
		writeServiceError(w, r, err, h.subject)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// queryFilter 쿼리 문자열 필터. 종류별로 지원하지 않는 컬럼은 저장소에서 무시된다.
func queryFilter(r *http.Request) services.Filter {
	q := r.URL.Query()
	return services.Filter{
		"device_id":   q.Get("device_id"),
		"sensor_type": q.Get("sensor_type"),
	}
}
