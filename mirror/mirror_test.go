package mirror

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"sensorhub/config"
	"sensorhub/models"
)

func TestNewInflux_Disabled(t *testing.T) {
	if _, err := NewInflux(config.InfluxDBConfig{Enabled: false}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("NewInflux() error = %v, want ErrDisabled", err)
	}
}

func TestSensorPoint(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := sensorPoint(models.SensorReading{ID: 7, DeviceID: "d1", SensorType: "temp", Value: 21.5, Timestamp: ts})

	line := write.PointToLineProtocol(p, time.Second)
	if !strings.HasPrefix(line, "sensor_reading,device_id=d1,sensor_type=temp ") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "value=21.5") || !strings.Contains(line, "id=7i") {
		t.Errorf("line fields = %q", line)
	}
	if !strings.Contains(line, " 1714564800") {
		t.Errorf("line timestamp = %q", line)
	}
}

func TestTemperaturePoint(t *testing.T) {
	p := temperaturePoint(models.TemperatureReading{ID: 1, DeviceID: "d2", TemperatureCelsius: 20, HumidityPercent: 55.5, Timestamp: time.Now()})
	line := write.PointToLineProtocol(p, time.Second)
	if !strings.HasPrefix(line, "temperature_reading,device_id=d2 ") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "humidity_percent=55.5") || !strings.Contains(line, "temperature_celsius=20") {
		t.Errorf("line fields = %q", line)
	}
}

func TestNoop(t *testing.T) {
	var m Mirror = Noop{}
	m.SensorReading(models.SensorReading{})
	m.TemperatureReading(models.TemperatureReading{})
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
