package scheduler

import (
	"context"
	"time"

	"sensorhub/logger"
	"sensorhub/models"
)

// reportTimeout 주기 작업 한 번의 DB 작업 제한 시간
const reportTimeout = 10 * time.Second

// StatsSource 저장소 상태 조회 (services.StatsService)
type StatsSource interface {
	Ping(ctx context.Context) error
	Collect(ctx context.Context) (*models.Stats, error)
}

// StartScheduler 스케줄러 시작. ctx 가 취소되면 종료된다.
func StartScheduler(ctx context.Context, stats StatsSource, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	logger.WithFields(map[string]interface{}{
		"interval": interval.String(),
	}).Info("Scheduler started")

	// 서버 시작 시 즉시 한 번 실행
	ReportStats(ctx, stats)

	ticker := time.NewTicker(interval)

	// 고루틴으로 주기적 실행
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("Scheduler stopped")
				return
			case <-ticker.C:
				logger.Debug("Scheduler tick: Running ReportStats")
				ReportStats(ctx, stats)
			}
		}
	}()
}

// ReportStats 데이터베이스 연결 확인 후 레코드 수를 로그로 남긴다
func ReportStats(ctx context.Context, stats StatsSource) *models.Stats {
	ctx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()

	if err := stats.Ping(ctx); err != nil {
		logger.WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Database ping failed")
		return nil
	}

	s, err := stats.Collect(ctx)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Failed to collect stats")
		return nil
	}

	logger.WithFields(map[string]interface{}{
		"api_keys":             s.APIKeys,
		"devices":              s.Devices,
		"sensor_readings":      s.SensorReadings,
		"temperature_readings": s.TemperatureReadings,
		"log_entries":          s.LogEntries,
		"screenshots":          s.Screenshots,
	}).Info("Datastore stats")
	return s
}
