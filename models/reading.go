package models

import "time"

// SensorReading 센서 측정값
type SensorReading struct {
	ID         int64     `json:"id"`
	DeviceID   string    `json:"device_id"`
	SensorType string    `json:"sensor_type"`
	Value      float64   `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

// TemperatureReading 온도/습도 측정값
type TemperatureReading struct {
	ID                 int64     `json:"id"`
	DeviceID           string    `json:"device_id"`
	TemperatureCelsius float64   `json:"temperature_celsius"`
	HumidityPercent    float64   `json:"humidity_percent"`
	Timestamp          time.Time `json:"timestamp"`
}

// LogEntry 디바이스 로그
type LogEntry struct {
	ID        int64     `json:"id"`
	DeviceID  string    `json:"device_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// MaxLogMessageLength 로그 메시지 최대 길이 (문자 수)
const MaxLogMessageLength = 2000

// MaxDeviceIDLength device_id 최대 길이
const MaxDeviceIDLength = 255
