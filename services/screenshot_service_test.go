package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"sensorhub/models"
)

func TestScreenshotService_CreateValidationOrder(t *testing.T) {
	svc := NewScreenshotService(testDB(t))
	ctx := context.Background()

	tests := []struct {
		name      string
		deviceID  string
		format    string
		image     []byte
		wantCode  string
		wantField string
	}{
		{"everything missing", "", "", nil, CodeMissingFields, "device_id"},
		{"format missing", "d1", "", nil, CodeMissingFields, "format"},
		{"image missing", "d1", "png", nil, CodeMissingFields, "image"},
		{"image empty", "d1", "png", []byte{}, CodeInvalidField, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.deviceID, tt.format, tt.image)
			ve, ok := IsValidationError(err)
			if !ok {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if ve.Code != tt.wantCode || len(ve.Fields) != 1 || ve.Fields[0] != tt.wantField {
				t.Errorf("Create() error = %+v, want %s on %s", ve, tt.wantCode, tt.wantField)
			}
		})
	}
}

func TestScreenshotService_RoundTrip(t *testing.T) {
	svc := NewScreenshotService(testDB(t))
	ctx := context.Background()
	data := []byte("0123456789")

	meta, err := svc.Create(ctx, "d1", "png", data)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if meta.SizeBytes != 10 || meta.Format != "png" || meta.DeviceID != "d1" {
		t.Errorf("Create() = %+v", meta)
	}

	img, err := svc.Get(ctx, meta.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(img.Data, data) {
		t.Errorf("Get() data = %q, want %q", img.Data, data)
	}
	if img.ContentType != "image/png" {
		t.Errorf("ContentType = %q, want image/png", img.ContentType)
	}
	if want := "screenshot_1.png"; img.Filename != want {
		t.Errorf("Filename = %q, want %q", img.Filename, want)
	}

	latest, err := svc.Latest(ctx, "")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.ID != meta.ID || latest.Filename != "screenshot_latest.png" {
		t.Errorf("Latest() = id %d filename %q", latest.ID, latest.Filename)
	}
}

func TestScreenshotService_ListAndLatestFilter(t *testing.T) {
	svc := NewScreenshotService(testDB(t))
	ctx := context.Background()

	for _, dev := range []string{"d1", "d2", "d1"} {
		if _, err := svc.Create(ctx, dev, "jpg", []byte{1, 2, 3}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 || all[0].ID != 3 || all[2].ID != 1 {
		t.Errorf("List() = %+v", all)
	}

	d2, err := svc.List(ctx, "d2")
	if err != nil || len(d2) != 1 || d2[0].DeviceID != "d2" {
		t.Errorf("List(d2) = %+v, %v", d2, err)
	}

	latest, err := svc.Latest(ctx, "d2")
	if err != nil {
		t.Fatalf("Latest(d2) error = %v", err)
	}
	if latest.ID != 2 || latest.ContentType != "image/jpeg" {
		t.Errorf("Latest(d2) = id %d type %q", latest.ID, latest.ContentType)
	}

	if _, err := svc.Latest(ctx, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Latest(nobody) error = %v, want ErrNotFound", err)
	}
	if _, err := svc.Get(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(99) error = %v, want ErrNotFound", err)
	}
}

func TestScreenshotService_TrimsDeviceID(t *testing.T) {
	svc := NewScreenshotService(testDB(t))
	ctx := context.Background()

	meta, err := svc.Create(ctx, " cam-1 ", "png", []byte{1})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if meta.DeviceID != "cam-1" {
		t.Errorf("DeviceID = %q, want cam-1", meta.DeviceID)
	}
	if list, err := svc.List(ctx, meta.DeviceID); err != nil || len(list) != 1 {
		t.Errorf("List(%q) = %d, %v; want 1", meta.DeviceID, len(list), err)
	}
	if _, err := svc.Latest(ctx, meta.DeviceID); err != nil {
		t.Errorf("Latest(%q) error = %v", meta.DeviceID, err)
	}

	long := strings.Repeat("화", models.MaxDeviceIDLength)
	if _, err := svc.Create(ctx, long, "png", []byte{1}); err != nil {
		t.Errorf("Create() with %d-character device_id error = %v", models.MaxDeviceIDLength, err)
	}
}

func TestContentTypeForFormat(t *testing.T) {
	tests := map[string]string{
		"png":  "image/png",
		"PNG":  "image/png",
		"jpg":  "image/jpeg",
		"jpeg": "image/jpeg",
		"gif":  "image/gif",
		"bmp":  "image/bmp",
		"webp": "image/webp",
		"tiff": "application/octet-stream",
		"":     "application/octet-stream",
	}
	for format, want := range tests {
		if got := ContentTypeForFormat(format); got != want {
			t.Errorf("ContentTypeForFormat(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestScreenshotFilename(t *testing.T) {
	if got := ScreenshotFilename("7", "webp"); got != "screenshot_7.webp" {
		t.Errorf("ScreenshotFilename() = %q", got)
	}
	if got := ScreenshotFilename("latest", ""); got != "screenshot_latest.bin" {
		t.Errorf("ScreenshotFilename() = %q", got)
	}
}
