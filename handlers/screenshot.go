package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"sensorhub/logger"
	"sensorhub/middleware"
	"sensorhub/models"
	"sensorhub/services"
)

// imageParts 이미지 파일 파트 이름 (우선순위 순)
var imageParts = []string{"image", "file"}

// ScreenshotHandler 스크린샷 업로드/다운로드
type ScreenshotHandler struct {
	screenshots *services.ScreenshotService
	maxUpload   int64
}

// NewScreenshotHandler ScreenshotHandler 생성
func NewScreenshotHandler(screenshots *services.ScreenshotService, maxUpload int64) *ScreenshotHandler {
	return &ScreenshotHandler{screenshots: screenshots, maxUpload: maxUpload}
}

// Upload 스크린샷 업로드
// @Summary 스크린샷 업로드
// @Description multipart/form-data 로 device_id, format, image 파일을 전송합니다
// @Tags 스크린샷
// @Accept multipart/form-data
// @Produce json
// @Security APIKeyAuth
// @Param device_id formData string true "디바이스 ID"
// @Param format formData string true "이미지 포맷 (png, jpg 등)"
// @Param image formData file true "이미지 파일"
// @Success 201 {object} models.ScreenshotMeta "업로드 성공"
// @Failure 400 {object} models.APIResponse "검증 실패 또는 용량 초과"
// @Failure 401 {object} models.APIResponse "API 키 누락"
// @Failure 403 {object} models.APIResponse "유효하지 않은 API 키"
// @Router /sensor/screenshot [post]
func (h *ScreenshotHandler) Upload(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestID(r.Context())

	// 업로드 크기 제한
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	var form *multipart.Form
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			logger.WithFields(map[string]interface{}{
				"request_id": requestID,
				"limit":      h.maxUpload,
			}).Warn("Screenshot upload too large")
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse(
				fmt.Sprintf("Upload exceeds %d bytes", h.maxUpload), nil))
			return
		case errors.Is(err, http.ErrNotMultipart):
			// 폼이 없으면 device_id 누락으로 처리된다
		default:
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid multipart form", err))
			return
		}
	} else {
		form = r.MultipartForm
		defer form.RemoveAll()
	}

	image, err := readImagePart(form)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Failed to read image", err))
		return
	}

	meta, err := h.screenshots.Create(r.Context(), formValue(form, "device_id"), formValue(form, "format"), image)
	if err != nil {
		writeServiceError(w, r, err, "Screenshot")
		return
	}
	writeJSON(w, http.StatusCreated, meta)
}

// List 스크린샷 메타데이터 목록
// @Summary 스크린샷 목록 조회
// @Description 이미지 바이트 없이 메타데이터만 최신순으로 최대 100건 반환합니다
// @Tags 스크린샷
// @Produce json
// @Security APIKeyAuth
// @Param device_id query string false "디바이스 ID"
// @Success 200 {array} models.ScreenshotMeta "메타데이터 목록"
// @Router /sensor/screenshot [get]
func (h *ScreenshotHandler) List(w http.ResponseWriter, r *http.Request) {
	metas, err := h.screenshots.List(r.Context(), r.URL.Query().Get("device_id"))
	if err != nil {
		writeServiceError(w, r, err, "Screenshot")
		return
	}
	writeJSON(w, http.StatusOK, metas)
}

// Get 스크린샷 이미지 다운로드
// @Summary 스크린샷 다운로드
// @Tags 스크린샷
// @Produce octet-stream
// @Security APIKeyAuth
// @Param id path int true "스크린샷 ID"
// @Success 200 {file} file "이미지"
// @Failure 404 {object} models.APIResponse "스크린샷 없음"
// @Router /sensor/screenshot/{id} [get]
func (h *ScreenshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err, "Screenshot")
		return
	}

	img, err := h.screenshots.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Screenshot")
		return
	}
	writeImage(w, img)
}

// Latest 최신 스크린샷 다운로드
// @Summary 최신 스크린샷 다운로드
// @Tags 스크린샷
// @Produce octet-stream
// @Security APIKeyAuth
// @Param device_id query string false "디바이스 ID"
// @Success 200 {file} file "이미지"
// @Failure 404 {object} models.APIResponse "스크린샷 없음"
// @Router /sensor/screenshot/latest [get]
func (h *ScreenshotHandler) Latest(w http.ResponseWriter, r *http.Request) {
	img, err := h.screenshots.Latest(r.Context(), r.URL.Query().Get("device_id"))
	if err != nil {
		writeServiceError(w, r, err, "Screenshot")
		return
	}
	writeImage(w, img)
}

func writeImage(w http.ResponseWriter, img *models.ScreenshotImage) {
	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", img.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(img.Data)
}

func formValue(form *multipart.Form, name string) string {
	if form == nil || len(form.Value[name]) == 0 {
		return ""
	}
	return strings.TrimSpace(form.Value[name][0])
}

// readImagePart 파일 파트가 없으면 nil, 비어 있으면 길이 0 슬라이스
func readImagePart(form *multipart.Form) ([]byte, error) {
	if form == nil {
		return nil, nil
	}
	for _, name := range imageParts {
		headers := form.File[name]
		if len(headers) == 0 {
			continue
		}
		f, err := headers[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		if data == nil {
			data = []byte{}
		}
		return data, nil
	}
	return nil, nil
}
