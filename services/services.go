package services

import "sensorhub/models"

// Services 핸들러와 MQTT 브리지가 공유하는 서비스 묶음
type Services struct {
	Keys         *KeyService
	Sensors      *RecordStore[models.SensorReading]
	Temperatures *RecordStore[models.TemperatureReading]
	Logs         *RecordStore[models.LogEntry]
	Screenshots  *ScreenshotService
	Stats        *StatsService
}

// New 하나의 데이터베이스 핸들로 모든 서비스를 생성한다
func New(db SQLExecutor) *Services {
	svc := &Services{
		Keys:         NewKeyService(db),
		Sensors:      NewRecordStore(db, SensorKind),
		Temperatures: NewRecordStore(db, TemperatureKind),
		Logs:         NewRecordStore(db, LogKind),
		Screenshots:  NewScreenshotService(db),
	}
	svc.Stats = NewStatsService(db, svc.Keys, svc.Sensors, svc.Temperatures, svc.Logs, svc.Screenshots)
	return svc
}
