package mirror

import (
	"context"
	"errors"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"sensorhub/config"
	"sensorhub/logger"
	"sensorhub/models"
)

const (
	connectTimeout = 10 * time.Second

	measurementSensor      = "sensor_reading"
	measurementTemperature = "temperature_reading"
)

// ErrDisabled influxdb.enabled 가 false
var ErrDisabled = errors.New("influxdb mirror disabled")

// Influx InfluxDB v2 미러 (비동기 배치 쓰기)
type Influx struct {
	client   influxdb2.Client
	writeAPI api.WriteAPI
	done     chan struct{}
}

// NewInflux InfluxDB 에 연결하고 non-blocking WriteAPI 를 준비한다
func NewInflux(cfg config.InfluxDBConfig) (*Influx, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	flushInterval := cfg.FlushInterval
	if flushInterval <= 0 {
		flushInterval = 10
	}

	client := influxdb2.NewClientWithOptions(
		cfg.URL,
		cfg.Token,
		influxdb2.DefaultOptions().
			SetBatchSize(uint(batchSize)).
			SetFlushInterval(uint(flushInterval)*1000),
	)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	healthy, err := client.Ping(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("influxdb ping failed: %w", err)
	}
	if !healthy {
		client.Close()
		return nil, fmt.Errorf("influxdb server not healthy")
	}

	m := &Influx{
		client:   client,
		writeAPI: client.WriteAPI(cfg.Org, cfg.Bucket),
		done:     make(chan struct{}),
	}
	go m.logWriteErrors(m.writeAPI.Errors())

	logger.WithFields(map[string]interface{}{
		"url":    cfg.URL,
		"bucket": cfg.Bucket,
	}).Info("InfluxDB mirror connected")
	return m, nil
}

// logWriteErrors 비동기 쓰기 오류 로깅
func (m *Influx) logWriteErrors(errs <-chan error) {
	for {
		select {
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("InfluxDB write failed: %v", err)
		case <-m.done:
			return
		}
	}
}

func (m *Influx) SensorReading(r models.SensorReading) {
	m.writeAPI.WritePoint(sensorPoint(r))
}

func (m *Influx) TemperatureReading(r models.TemperatureReading) {
	m.writeAPI.WritePoint(temperaturePoint(r))
}

// Close 남은 포인트를 flush 하고 연결 종료
func (m *Influx) Close() error {
	m.writeAPI.Flush()
	close(m.done)
	m.client.Close()
	return nil
}

func sensorPoint(r models.SensorReading) *write.Point {
	return influxdb2.NewPoint(measurementSensor,
		map[string]string{
			"device_id":   r.DeviceID,
			"sensor_type": r.SensorType,
		},
		map[string]interface{}{
			"value": r.Value,
			"id":    r.ID,
		},
		r.Timestamp)
}

func temperaturePoint(r models.TemperatureReading) *write.Point {
	return influxdb2.NewPoint(measurementTemperature,
		map[string]string{
			"device_id": r.DeviceID,
		},
		map[string]interface{}{
			"temperature_celsius": r.TemperatureCelsius,
			"humidity_percent":    r.HumidityPercent,
			"id":                  r.ID,
		},
		r.Timestamp)
}
