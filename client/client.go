// Package client is a management client for the sensorhub HTTP API.
package client

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"sensorhub/models"
)

const defaultTimeout = 15 * time.Second

// APIError non-2xx 응답
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sensorhub: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("sensorhub: HTTP %d: %s", e.StatusCode, e.Message)
}

// Client sensorhub API 클라이언트
type Client struct {
	http *resty.Client
}

// New baseURL 과 API 키로 클라이언트 생성. apiKey 는 키 발급에만 쓰는 경우 비워도 된다.
func New(baseURL, apiKey string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		rc.SetHeader("X-API-KEY", apiKey)
	}
	return &Client{http: rc}
}

// Image 다운로드한 스크린샷
type Image struct {
	Data        []byte
	ContentType string
	Filename    string
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetError(&models.APIResponse{})
}

// check 전송 오류와 HTTP 오류를 하나의 error 로
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("sensorhub request failed: %w", err)
	}
	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		if body, ok := resp.Error().(*models.APIResponse); ok && body != nil {
			apiErr.Message = body.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return apiErr
	}
	return nil
}

// filter 비어 있지 않은 값만 쿼리로
func filter(pairs ...string) map[string]string {
	q := make(map[string]string)
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			q[pairs[i]] = pairs[i+1]
		}
	}
	return q
}

// CreateKey 디바이스 라벨로 API 키 발급
func (c *Client) CreateKey(ctx context.Context, deviceLabel string) (*models.APIKey, error) {
	var key models.APIKey
	resp, err := c.request(ctx).
		SetBody(models.CreateAPIKeyRequest{DeviceID: deviceLabel}).
		SetResult(&key).
		Post("/create_api_key")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &key, nil
}

// Devices 디바이스 라벨 목록
func (c *Client) Devices(ctx context.Context) ([]string, error) {
	var labels []string
	resp, err := c.request(ctx).SetResult(&labels).Get("/devices")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return labels, nil
}

// ListSensorReadings 센서 측정값 목록
func (c *Client) ListSensorReadings(ctx context.Context, deviceID, sensorType string) ([]models.SensorReading, error) {
	var out []models.SensorReading
	resp, err := c.request(ctx).
		SetQueryParams(filter("device_id", deviceID, "sensor_type", sensorType)).
		SetResult(&out).
		Get("/sensor-data")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// LatestSensorReading 최신 센서 측정값
func (c *Client) LatestSensorReading(ctx context.Context, deviceID string) (*models.SensorReading, error) {
	var out models.SensorReading
	resp, err := c.request(ctx).
		SetQueryParams(filter("device_id", deviceID)).
		SetResult(&out).
		Get("/sensor-data/latest")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// PushSensorReading 센서 측정값 전송
func (c *Client) PushSensorReading(ctx context.Context, deviceID, sensorType string, value float64) (*models.SensorReading, error) {
	var out models.SensorReading
	resp, err := c.request(ctx).
		SetBody(map[string]any{"device_id": deviceID, "sensor_type": sensorType, "value": value}).
		SetResult(&out).
		Post("/sensor-data")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTemperatureReadings 온습도 측정값 목록
func (c *Client) ListTemperatureReadings(ctx context.Context, deviceID string) ([]models.TemperatureReading, error) {
	var out []models.TemperatureReading
	resp, err := c.request(ctx).
		SetQueryParams(filter("device_id", deviceID)).
		SetResult(&out).
		Get("/sensor/temperature")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLogs 디바이스 로그 목록
func (c *Client) ListLogs(ctx context.Context, deviceID string) ([]models.LogEntry, error) {
	var out []models.LogEntry
	resp, err := c.request(ctx).
		SetQueryParams(filter("device_id", deviceID)).
		SetResult(&out).
		Get("/logs")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// ListScreenshots 스크린샷 메타데이터 목록
func (c *Client) ListScreenshots(ctx context.Context, deviceID string) ([]models.ScreenshotMeta, error) {
	var out []models.ScreenshotMeta
	resp, err := c.request(ctx).
		SetQueryParams(filter("device_id", deviceID)).
		SetResult(&out).
		Get("/sensor/screenshot")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// DownloadScreenshot id 가 0 이면 최신 스크린샷 (deviceID 필터 적용)
func (c *Client) DownloadScreenshot(ctx context.Context, id int64, deviceID string) (*Image, error) {
	req := c.request(ctx).SetHeader("Accept", "*/*")
	path := "/sensor/screenshot/latest"
	if id > 0 {
		path = "/sensor/screenshot/" + strconv.FormatInt(id, 10)
	} else {
		req.SetQueryParams(filter("device_id", deviceID))
	}

	resp, err := req.Get(path)
	if err := check(resp, err); err != nil {
		return nil, err
	}

	img := &Image{
		Data:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		img.Filename = params["filename"]
	}
	return img, nil
}

// Command 디바이스 제어 명령
func (c *Client) Command(ctx context.Context) (*models.Command, error) {
	var out models.Command
	resp, err := c.request(ctx).SetResult(&out).Get("/command")
	if err := check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
