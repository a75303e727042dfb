package services

import (
	"context"
	"testing"

	"sensorhub/models"
)

func TestStatsService_Collect(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	svc := New(db)
	keys := svc.Keys
	for _, label := range []string{"a", "b", "a"} {
		if _, err := keys.CreateKey(ctx, label); err != nil {
			t.Fatalf("CreateKey() error = %v", err)
		}
	}
	if _, err := svc.Sensors.Create(ctx, map[string]any{"device_id": "a", "sensor_type": "t", "value": 1}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Logs.Create(ctx, map[string]any{"device_id": "a", "message": "m"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Screenshots.Create(ctx, "a", "png", []byte{1}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stats := svc.Stats
	if err := stats.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	got, err := stats.Collect(ctx)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	want := models.Stats{APIKeys: 3, Devices: 2, SensorReadings: 1, LogEntries: 1, Screenshots: 1}
	if *got != want {
		t.Errorf("Collect() = %+v, want %+v", *got, want)
	}
}
