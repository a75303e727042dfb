package mqttbridge

import (
	"context"
	"errors"
	"testing"

	"sensorhub/config"
	"sensorhub/database"
	"sensorhub/models"
	"sensorhub/services"
)

type countingMirror struct {
	sensors, temps int
}

func (m *countingMirror) SensorReading(models.SensorReading)           { m.sensors++ }
func (m *countingMirror) TemperatureReading(models.TemperatureReading) { m.temps++ }
func (m *countingMirror) Close() error                                 { return nil }

func testBridge(t *testing.T) (*Bridge, *services.Services, *countingMirror, string) {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLite.Path = ":memory:"
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("database.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := services.New(services.NewDatabaseExecutor(db))
	key, err := svc.Keys.CreateKey(context.Background(), "mqtt-device")
	if err != nil {
		t.Fatalf("CreateKey() error = %v", err)
	}

	m := &countingMirror{}
	return New(config.MQTTConfig{TopicPrefix: "sensorhub/"}, svc, m), svc, m, key.Secret
}

func TestBridge_Topics(t *testing.T) {
	b, _, _, _ := testBridge(t)
	want := []string{"sensorhub/sensor-data", "sensorhub/temperature", "sensorhub/logs"}
	got := b.Topics()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Topics()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBridge_HandleStoresRecords(t *testing.T) {
	ctx := context.Background()
	b, svc, m, secret := testBridge(t)

	msgs := []struct {
		topic   string
		payload string
	}{
		{"sensorhub/sensor-data", `{"api_key":"` + secret + `","device_id":"d1","sensor_type":"temp","value":"19.5"}`},
		{"sensorhub/temperature", `{"api_key":"` + secret + `","device_id":"d1","temperature_celsius":21,"humidity_percent":50}`},
		{"sensorhub/logs", `{"api_key":"` + secret + `","device_id":"d1","message":"hello"}`},
	}
	for _, msg := range msgs {
		if err := b.Handle(ctx, msg.topic, []byte(msg.payload)); err != nil {
			t.Fatalf("Handle(%s) error = %v", msg.topic, err)
		}
	}

	reading, err := svc.Sensors.Latest(ctx, nil)
	if err != nil || reading.Value != 19.5 {
		t.Errorf("latest sensor = %+v, %v", reading, err)
	}
	entry, err := svc.Logs.Latest(ctx, nil)
	if err != nil || entry.Message != "hello" {
		t.Errorf("latest log = %+v, %v", entry, err)
	}
	if m.sensors != 1 || m.temps != 1 {
		t.Errorf("mirror counts = %d/%d, want 1/1", m.sensors, m.temps)
	}
}

func TestBridge_HandleRejects(t *testing.T) {
	ctx := context.Background()
	b, svc, _, secret := testBridge(t)

	tests := []struct {
		name    string
		topic   string
		payload string
		check   func(error) bool
	}{
		{"missing key", "sensorhub/logs", `{"device_id":"d1","message":"x"}`,
			func(err error) bool { return errors.Is(err, services.ErrUnauthorized) }},
		{"unknown key", "sensorhub/logs", `{"api_key":"nope","device_id":"d1","message":"x"}`,
			func(err error) bool { return errors.Is(err, services.ErrForbidden) }},
		{"not json", "sensorhub/logs", `hello`,
			func(err error) bool { return errors.Is(err, ErrInvalidPayload) }},
		{"unknown topic", "other/logs", `{}`,
			func(err error) bool { return errors.Is(err, ErrUnknownTopic) }},
		{"validation", "sensorhub/sensor-data", `{"api_key":"` + secret + `","device_id":"d1","sensor_type":"t","value":"abc"}`,
			func(err error) bool { _, ok := services.IsValidationError(err); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Handle(ctx, tt.topic, []byte(tt.payload)); !tt.check(err) {
				t.Errorf("Handle() error = %v", err)
			}
		})
	}

	if n, _ := svc.Logs.Count(ctx); n != 0 {
		t.Errorf("rejected messages stored %d log entries", n)
	}
}
