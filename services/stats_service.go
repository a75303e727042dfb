package services

import (
	"context"
	"fmt"

	"sensorhub/models"
)

// Counter 전체 레코드 수를 제공하는 저장소 (RecordStore, ScreenshotService, KeyService)
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsService 저장소 상태 및 통계
type StatsService struct {
	db           SQLExecutor
	keys         *KeyService
	sensors      Counter
	temperatures Counter
	logs         Counter
	screenshots  Counter
}

// NewStatsService StatsService 생성
func NewStatsService(db SQLExecutor, keys *KeyService, sensors, temperatures, logs, screenshots Counter) *StatsService {
	return &StatsService{
		db:           db,
		keys:         keys,
		sensors:      sensors,
		temperatures: temperatures,
		logs:         logs,
		screenshots:  screenshots,
	}
}

// Ping 데이터베이스 연결 확인
func (s *StatsService) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Collect 종류별 레코드 수와 디바이스 수 집계
func (s *StatsService) Collect(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	counts := []struct {
		name    string
		counter Counter
		dest    *int64
	}{
		{"api keys", s.keys, &stats.APIKeys},
		{"sensor readings", s.sensors, &stats.SensorReadings},
		{"temperature readings", s.temperatures, &stats.TemperatureReadings},
		{"log entries", s.logs, &stats.LogEntries},
		{"screenshots", s.screenshots, &stats.Screenshots},
	}
	for _, c := range counts {
		n, err := c.counter.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("stats %s: %w", c.name, err)
		}
		*c.dest = n
	}

	devices, err := s.keys.DeviceCount(ctx)
	if err != nil {
		return nil, err
	}
	stats.Devices = devices
	return &stats, nil
}
