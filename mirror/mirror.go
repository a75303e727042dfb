// Package mirror copies ingested readings to a time-series store.
package mirror

import "sensorhub/models"

// Mirror receives readings after they have been persisted.
// Implementations must not block the caller and never fail the request.
type Mirror interface {
	SensorReading(r models.SensorReading)
	TemperatureReading(r models.TemperatureReading)
	Close() error
}

// Noop 미러링 비활성화 시 사용
type Noop struct{}

func (Noop) SensorReading(models.SensorReading)           {}
func (Noop) TemperatureReading(models.TemperatureReading) {}
func (Noop) Close() error                                 { return nil }
